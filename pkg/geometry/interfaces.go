package geometry

import (
	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// Hittable is the closed-variant polymorphic capability every primitive,
// decorator, Scene, and BVH node implements. The hot path is Hit; it
// should not allocate beyond the returned HitRecord.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool)
	BoundingBox() core.AABB
}
