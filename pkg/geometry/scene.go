package geometry

import (
	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// Scene is the linear-list Hittable aggregate: it iterates its children,
// tightening the interval's max to the closest t found so far. Used both
// during scene construction and to compose boxes before handing the
// children to a BVH.
type Scene struct {
	Objects []Hittable
	box     core.AABB
	boxSet  bool
}

func NewScene() *Scene {
	return &Scene{box: core.AABBEmpty}
}

func (s *Scene) Add(h Hittable) {
	s.Objects = append(s.Objects, h)
	if !s.boxSet {
		s.box = h.BoundingBox()
		s.boxSet = true
	} else {
		s.box = core.NewAABBFromBoxes(s.box, h.BoundingBox())
	}
}

func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	var closest material.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, obj := range s.Objects {
		if rec, ok := obj.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

func (s *Scene) BoundingBox() core.AABB {
	return s.box
}
