package material

import (
	"github.com/Jabolol/raytracer/pkg/core"
)

// ImageTexture samples a rectangular RGB buffer. A zero-sized buffer
// (Width==0 or Height==0) stands for "failed to load" and always reports
// cyan, the visible sentinel spec'd for the loader's silent-fail path.
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // row-major: Pixels[y*Width+x]
}

func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

var cyanSentinel = core.Color{X: 0, Y: 1, Z: 1}

func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Color {
	if t.Width <= 0 || t.Height <= 0 {
		return cyanSentinel
	}

	u = core.NewInterval(0, 1).Clamp(u)
	v = 1 - core.NewInterval(0, 1).Clamp(v)

	i := int(u * float64(t.Width))
	j := int(v * float64(t.Height))
	if i >= t.Width {
		i = t.Width - 1
	}
	if j >= t.Height {
		j = t.Height - 1
	}
	return t.Pixels[j*t.Width+i]
}
