// Package paint generates the random colors cells are painted with.
package paint

import (
	"fmt"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// channelLimit is the exclusive upper bound of a color channel.
const channelLimit = 256

// RGB is an opaque 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns a Source backed by the auto-seeded global generator.
func DefaultSource() Source {
	return globalSource{}
}

// Random draws each channel independently and uniformly from [0, 255].
// A nil source falls back to DefaultSource.
func Random(src Source) RGB {
	if src == nil {
		src = DefaultSource()
	}
	return RGB{
		R: uint8(src.IntN(channelLimit)),
		G: uint8(src.IntN(channelLimit)),
		B: uint8(src.IntN(channelLimit)),
	}
}

// String renders the color as "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// CSS renders the color as a background-color directive.
func (c RGB) CSS() string {
	return "background-color: " + c.String()
}

// Hex renders the color as "#rrggbb".
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

// Colorful converts the color for blending and conversions.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

