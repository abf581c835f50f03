package material

import (
	"testing"

	"github.com/Jabolol/raytracer/pkg/core"
)

func TestSolidColorValue(t *testing.T) {
	c := core.NewVec3(0.2, 0.4, 0.6)
	s := NewSolidColor(c)
	if got := s.Value(0, 0, core.NewVec3(1, 2, 3)); got != c {
		t.Errorf("Value = %v, want %v", got, c)
	}
}

func TestCheckerParity(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	c := NewCheckerColors(1, even, odd)

	if got := c.Value(0, 0, core.NewVec3(0.5, 0.5, 0.5)); got != even {
		t.Errorf("Value at origin cell = %v, want even %v", got, even)
	}
	if got := c.Value(0, 0, core.NewVec3(1.5, 0.5, 0.5)); got != odd {
		t.Errorf("Value one cell over = %v, want odd %v", got, odd)
	}
}
