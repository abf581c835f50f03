package core

// minAxisSize is the padding floor applied to every axis interval so the
// slab test in Hit never divides through a zero-thickness box.
const minAxisSize = 1e-4

// AABB is an axis-aligned bounding box: a triple of Interval, one per axis.
type AABB struct {
	X, Y, Z Interval
}

var (
	AABBEmpty    = AABB{X: Empty, Y: Empty, Z: Empty}
	AABBUniverse = AABB{X: Universe, Y: Universe, Z: Universe}
)

// NewAABB builds an AABB from three axis intervals, padding any axis
// thinner than minAxisSize.
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: pad(x), Y: pad(y), Z: pad(z)}
}

// NewAABBFromPoints builds the AABB spanning two arbitrary corner points.
func NewAABBFromPoints(a, b Vec3) AABB {
	x := Interval{Min: minf(a.X, b.X), Max: maxf(a.X, b.X)}
	y := Interval{Min: minf(a.Y, b.Y), Max: maxf(a.Y, b.Y)}
	z := Interval{Min: minf(a.Z, b.Z), Max: maxf(a.Z, b.Z)}
	return NewAABB(x, y, z)
}

// NewAABBFromBoxes returns the union of two boxes.
func NewAABBFromBoxes(a, b AABB) AABB {
	return NewAABB(a.X.Union(b.X), a.Y.Union(b.Y), a.Z.Union(b.Z))
}

func pad(iv Interval) Interval {
	if iv.Size() < minAxisSize {
		return iv.Expand(minAxisSize)
	}
	return iv
}

// AxisInterval returns the Interval for axis 0=X, 1=Y, 2=Z.
func (b AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	default:
		return b.Z
	}
}

// LongestAxis returns 0, 1, or 2 for the axis with the greatest extent.
func (b AABB) LongestAxis() int {
	xs, ys, zs := b.X.Size(), b.Y.Size(), b.Z.Size()
	if xs > ys && xs > zs {
		return 0
	}
	if ys > zs {
		return 1
	}
	return 2
}

// Hit implements the slab method: for each axis, shrink [tMin,tMax] by the
// axis's entry/exit parameters, rejecting as soon as the interval inverts.
func (b AABB) Hit(ray Ray, ray_t Interval) bool {
	tMin, tMax := ray_t.Min, ray_t.Max
	for axis := 0; axis < 3; axis++ {
		ax := b.AxisInterval(axis)
		origin := axisComponent(ray.Origin, axis)
		direction := axisComponent(ray.Direction, axis)

		invD := 1.0 / direction
		t0 := (ax.Min - origin) * invD
		t1 := (ax.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func axisComponent(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Translate shifts the box by offset, used by the Translate decorator.
func (b AABB) Translate(offset Vec3) AABB {
	return NewAABB(
		Interval{Min: b.X.Min + offset.X, Max: b.X.Max + offset.X},
		Interval{Min: b.Y.Min + offset.Y, Max: b.Y.Max + offset.Y},
		Interval{Min: b.Z.Min + offset.Z, Max: b.Z.Max + offset.Z},
	)
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
