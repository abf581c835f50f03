package material

import (
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
)

// SolidColor is a texture that always returns the same color.
type SolidColor struct {
	Color core.Color
}

func NewSolidColor(c core.Color) *SolidColor {
	return &SolidColor{Color: c}
}

func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Color {
	return s.Color
}

// Checker alternates between two textures by the parity of
// floor(p.x/scale) + floor(p.y/scale) + floor(p.z/scale).
type Checker struct {
	InvScale float64
	Even     Texture
	Odd      Texture
}

func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

func NewCheckerColors(scale float64, evenColor, oddColor core.Color) *Checker {
	return NewChecker(scale, NewSolidColor(evenColor), NewSolidColor(oddColor))
}

func (c *Checker) Value(u, v float64, p core.Vec3) core.Color {
	x := int(math.Floor(c.InvScale * p.X))
	y := int(math.Floor(c.InvScale * p.Y))
	z := int(math.Floor(c.InvScale * p.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
