package geometry

import (
	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// Translate shifts a child hittable by a fixed offset.
type Translate struct {
	Child  Hittable
	Offset core.Vec3
	box    core.AABB
}

func NewTranslate(child Hittable, offset core.Vec3) *Translate {
	return &Translate{Child: child, Offset: offset, box: child.BoundingBox().Translate(offset)}
}

func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	offsetRay := core.NewRayAt(ray.Origin.Sub(t.Offset), ray.Direction, ray.Time)

	rec, ok := t.Child.Hit(offsetRay, rayT)
	if !ok {
		return material.HitRecord{}, false
	}
	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

func (t *Translate) BoundingBox() core.AABB {
	return t.box
}
