package geometry

import (
	"sort"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// BVHNode is a strictly binary bounding volume hierarchy node built by
// recursive longest-axis partitioning, sorted rather than binned so the
// split is exact rather than approximate.
type BVHNode struct {
	box         core.AABB
	left, right Hittable
}

// NewBVH builds a BVH over objects[start:end], mutating the backing slice
// in place (callers that need to preserve the original order should pass
// a copy).
func NewBVH(objects []Hittable, start, end int) *BVHNode {
	node := &BVHNode{}

	span := end - start
	node.box = core.AABBEmpty
	for i := start; i < end; i++ {
		node.box = core.NewAABBFromBoxes(node.box, objects[i].BoundingBox())
	}

	axis := node.box.LongestAxis()
	sub := objects[start:end]
	sort.Slice(sub, func(i, j int) bool {
		return boxAxisMin(sub[i].BoundingBox(), axis) < boxAxisMin(sub[j].BoundingBox(), axis)
	})

	switch span {
	case 1:
		node.left = objects[start]
		node.right = objects[start]
	case 2:
		node.left = objects[start]
		node.right = objects[start+1]
	default:
		mid := start + span/2
		node.left = NewBVH(objects, start, mid)
		node.right = NewBVH(objects, mid, end)
	}

	return node
}

// NewBVHFromScene builds a BVH over a copy of objects, so the caller's
// slice ordering is never disturbed.
func NewBVHFromScene(objects []Hittable) Hittable {
	if len(objects) == 0 {
		return NewScene()
	}
	cp := make([]Hittable, len(objects))
	copy(cp, objects)
	return NewBVH(cp, 0, len(cp))
}

func boxAxisMin(b core.AABB, axis int) float64 {
	return b.AxisInterval(axis).Min
}

func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	if !n.box.Hit(ray, rayT) {
		return material.HitRecord{}, false
	}

	leftRec, hitLeft := n.left.Hit(ray, rayT)

	rightT := rayT
	if hitLeft {
		rightT = core.NewInterval(rayT.Min, leftRec.T)
	}
	rightRec, hitRight := n.right.Hit(ray, rightT)

	if hitRight {
		return rightRec, true
	}
	if hitLeft {
		return leftRec, true
	}
	return material.HitRecord{}, false
}

func (n *BVHNode) BoundingBox() core.AABB {
	return n.box
}
