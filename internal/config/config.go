// Package config handles etch configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/etch/internal/grid"
)

// Config represents etch configuration.
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	UI     UIConfig     `toml:"ui"`
	Window WindowConfig `toml:"window"`
	Keys   KeysConfig   `toml:"keys"`
	Debug  DebugConfig  `toml:"debug"`
}

// GridConfig contains grid settings.
type GridConfig struct {
	// Column count used on startup, as the prompt pre-fill and on cancel (1-32)
	DefaultColumns int `toml:"default_columns"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Terminal columns per grid cell (1-4)
	CellWidth int `toml:"cell_width"`

	// Color theme: auto, dark, light
	Theme string `toml:"theme"`

	// Show the key help footer
	ShowHelp bool `toml:"show_help"`
}

// WindowConfig contains settings for the etch-window frontend.
type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Toggle string `toml:"toggle"`
	Reset  string `toml:"reset"`
	Help   string `toml:"help"`
	Quit   string `toml:"quit"`
}

// DebugConfig contains debug logging settings.
type DebugConfig struct {
	// Log file used with --debug (empty = user cache dir)
	LogFile string `toml:"log_file"`
}

var validThemes = []string{"auto", "dark", "light"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			DefaultColumns: grid.DefaultColumns,
		},
		UI: UIConfig{
			CellWidth: 2,
			Theme:     "auto",
			ShowHelp:  true,
		},
		Window: WindowConfig{
			Width:  640,
			Height: 720,
			Title:  "etch",
		},
		Keys: KeysConfig{
			Toggle: "d",
			Reset:  "r,n",
			Help:   "?",
			Quit:   "q,ctrl+c",
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/etch/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "etch", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "etch", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "etch", "config.toml")
	}
	return filepath.Join(configDir, "etch", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
// A missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Shared lock so a concurrent Save is never read half-written.
	// Read-only config dirs can't hold the lock file; read anyway.
	fileLock := flock.New(path + ".lock")
	if err := fileLock.RLock(); err == nil {
		defer fileLock.Unlock()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything unspecified (including booleans).
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to path.
func Save(cfg *Config, path string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return writeLocked(path, data)
}

// CreateDefaultConfigFile writes a commented default config file to path.
func CreateDefaultConfigFile(path string) error {
	return writeLocked(path, []byte(generateDefaultConfigContent()))
}

// writeLocked writes data atomically under an exclusive lock.
func writeLocked(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return err
	}
	defer fileLock.Unlock()

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# etch configuration\n\n")

	b.WriteString("[grid]\n")
	fmt.Fprintf(&b, "# Columns on startup, pre-filled in the new grid prompt and used on cancel (%d-%d)\n", grid.MinColumns, grid.MaxColumns)
	fmt.Fprintf(&b, "default_columns = %d\n\n", cfg.Grid.DefaultColumns)

	b.WriteString("[ui]\n")
	b.WriteString("# Terminal columns per cell (1-4)\n")
	fmt.Fprintf(&b, "cell_width = %d\n", cfg.UI.CellWidth)
	b.WriteString("# Color theme: \"auto\", \"dark\", or \"light\"\n")
	fmt.Fprintf(&b, "theme = %q\n", cfg.UI.Theme)
	b.WriteString("# Show the key help footer\n")
	fmt.Fprintf(&b, "show_help = %v\n\n", cfg.UI.ShowHelp)

	b.WriteString("[window]\n")
	b.WriteString("# Initial etch-window size in pixels\n")
	fmt.Fprintf(&b, "width = %d\n", cfg.Window.Width)
	fmt.Fprintf(&b, "height = %d\n", cfg.Window.Height)
	fmt.Fprintf(&b, "title = %q\n\n", cfg.Window.Title)

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# toggle = %q\n", cfg.Keys.Toggle)
	fmt.Fprintf(&b, "# reset = %q\n", cfg.Keys.Reset)
	fmt.Fprintf(&b, "# help = %q\n", cfg.Keys.Help)
	fmt.Fprintf(&b, "# quit = %q\n\n", cfg.Keys.Quit)

	b.WriteString("[debug]\n")
	b.WriteString("# Log file written with --debug (defaults to the user cache dir)\n")
	b.WriteString("# log_file = \"/tmp/etch.log\"\n")

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if !grid.IsValid(float64(c.Grid.DefaultColumns)) {
		warnings = append(warnings, fmt.Sprintf("grid.default_columns must be %d-%d, got %d", grid.MinColumns, grid.MaxColumns, c.Grid.DefaultColumns))
	}

	if c.UI.CellWidth < 1 || c.UI.CellWidth > 4 {
		warnings = append(warnings, fmt.Sprintf("ui.cell_width must be 1-4, got %d", c.UI.CellWidth))
	}

	if c.UI.Theme != "" && !contains(validThemes, c.UI.Theme) {
		msg := fmt.Sprintf("Invalid value for ui.theme: %s (expected auto, dark, or light)", c.UI.Theme)
		if s := suggest(c.UI.Theme, validThemes); s != "" {
			msg += fmt.Sprintf("; did you mean %q?", s)
		}
		warnings = append(warnings, msg)
	}

	if c.Window.Width < 0 || c.Window.Height < 0 {
		warnings = append(warnings, fmt.Sprintf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height))
	}

	// Duplicate bindings make one action unreachable.
	seen := make(map[string]string)
	for _, binding := range []struct{ action, keys string }{
		{"toggle", c.Keys.Toggle},
		{"reset", c.Keys.Reset},
		{"help", c.Keys.Help},
		{"quit", c.Keys.Quit},
	} {
		for _, k := range ParseKeys(binding.keys) {
			if prev, ok := seen[k]; ok && prev != binding.action {
				warnings = append(warnings, fmt.Sprintf("Key %q is bound to both %s and %s", k, prev, binding.action))
				continue
			}
			seen[k] = binding.action
		}
	}

	return warnings
}

// Normalize replaces invalid values with their defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if !grid.IsValid(float64(c.Grid.DefaultColumns)) {
		c.Grid.DefaultColumns = def.Grid.DefaultColumns
	}
	if c.UI.CellWidth < 1 || c.UI.CellWidth > 4 {
		c.UI.CellWidth = def.UI.CellWidth
	}
	if !contains(validThemes, c.UI.Theme) {
		c.UI.Theme = def.UI.Theme
	}
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
}

// ParseKeys parses a comma-separated list of keys.
func ParseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// suggest returns the closest option to value, or "". Abbreviations match
// directly ("drk"); otherwise value may carry extra letters ("darkk") or
// one wrong or swapped letter ("drak", "lihgt").
func suggest(value string, options []string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return ""
	}

	if matches := fuzzy.Find(value, options); len(matches) > 0 {
		return matches[0].Str
	}

	for _, opt := range options {
		if len(fuzzy.Find(opt, []string{value})) > 0 {
			return opt
		}
	}

	runes := []rune(value)
	if len(runes) < 4 {
		return ""
	}
	best, bestScore := "", 0
	for i := range runes {
		dropped := string(runes[:i]) + string(runes[i+1:])
		for _, m := range fuzzy.Find(dropped, options) {
			if best == "" || m.Score > bestScore {
				best, bestScore = m.Str, m.Score
			}
		}
	}
	return best
}
