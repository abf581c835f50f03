package geometry

import (
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// Plane is an infinite plane N . (p - P) = 0. Its AABB degenerates to a
// point, padded to the minimum axis thickness by NewAABB.
type Plane struct {
	Point, Normal core.Vec3
	Mat           material.Material
}

func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Unit(), Mat: mat}
}

func (p *Plane) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	denom := ray.Direction.Dot(p.Normal)
	if math.Abs(denom) < 1e-8 {
		return material.HitRecord{}, false
	}

	t := p.Point.Sub(ray.Origin).Dot(p.Normal) / denom
	if !rayT.Contains(t) {
		return material.HitRecord{}, false
	}

	rec := material.HitRecord{T: t, Point: ray.At(t), Material: p.Mat}
	rec.SetFaceNormal(ray, p.Normal)
	return rec, true
}

func (p *Plane) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(p.Point, p.Point)
}
