package geometry

import (
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// Quad is a parallelogram given by a corner and two edge vectors.
type Quad struct {
	Q, U, V core.Vec3
	Mat     material.Material
	normal  core.Vec3
	d       float64
	w       core.Vec3
	box     core.AABB
}

func NewQuad(q, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Unit()
	d := normal.Dot(q)
	w := n.Div(n.Dot(n))

	box := core.NewAABBFromBoxes(
		core.NewAABBFromPoints(q, q.Add(u).Add(v)),
		core.NewAABBFromPoints(q.Add(u), q.Add(v)),
	)

	return &Quad{Q: q, U: u, V: v, Mat: mat, normal: normal, d: d, w: w, box: box}
}

func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	denom := ray.Direction.Dot(q.normal)
	if math.Abs(denom) < 1e-8 {
		return material.HitRecord{}, false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denom
	if !rayT.Contains(t) {
		return material.HitRecord{}, false
	}

	p := ray.At(t)
	hitVec := p.Sub(q.Q)
	alpha := q.w.Dot(hitVec.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVec))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return material.HitRecord{}, false
	}

	rec := material.HitRecord{T: t, Point: p, Material: q.Mat, U: alpha, V: beta}
	rec.SetFaceNormal(ray, q.normal)
	return rec, true
}

func (q *Quad) BoundingBox() core.AABB {
	return q.box
}
