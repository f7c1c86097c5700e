package layout

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Score range the gradient maps over. Scores are clamped to these bounds.
const (
	ScoreMin = -15.0
	ScoreMax = 15.0
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Gradient anchor colors. The mapping must stay bit-reproducible: visual
// regression tests pin exact channel values.
var (
	GradientRed     = RGB{R: 214, G: 69, B: 69}
	GradientNeutral = RGB{R: 140, G: 155, B: 171}
	GradientGreen   = RGB{R: 62, G: 168, B: 101}
)

// ScoreColor maps an impact score to a display color: red at -15 through
// neutral at 0 to green at +15, piecewise linear per channel with
// round-to-nearest. Non-finite scores are treated as zero.
func ScoreColor(score float64) RGB {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		score = 0
	}
	if score < ScoreMin {
		score = ScoreMin
	}
	if score > ScoreMax {
		score = ScoreMax
	}

	t := (score - ScoreMin) / (ScoreMax - ScoreMin)
	if t < 0.5 {
		return lerpRGB(GradientRed, GradientNeutral, t/0.5)
	}
	return lerpRGB(GradientNeutral, GradientGreen, (t-0.5)/0.5)
}

func lerpRGB(a, b RGB, u float64) RGB {
	return RGB{
		R: lerpChannel(a.R, b.R, u),
		G: lerpChannel(a.G, b.G, u),
		B: lerpChannel(a.B, b.B, u),
	}
}

func lerpChannel(a, b uint8, u float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*u))
}

// Hex renders the triple as "#rrggbb" for terminal styling.
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
