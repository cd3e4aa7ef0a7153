package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/henri123lemoine/etch/internal/config"
)

func TestPrintWarnings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid.DefaultColumns = 64
	cfg.UI.Theme = "drak"

	warnings := cfg.Validate()
	if len(warnings) != 2 {
		t.Fatalf("Expected 2 warnings, got %v", warnings)
	}

	var buf bytes.Buffer
	printWarnings(&buf, warnings)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != len(warnings) {
		t.Fatalf("Expected one line per warning, got %q", buf.String())
	}
	for i, line := range lines {
		if line != "Warning: config: "+warnings[i] {
			t.Errorf("line %d = %q", i, line)
		}
	}
}

func TestPrintWarningsNone(t *testing.T) {
	var buf bytes.Buffer
	printWarnings(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("Expected no output, got %q", buf.String())
	}
}
