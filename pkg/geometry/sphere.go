package geometry

import (
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// Sphere is a stationary or linearly-moving sphere. When Center1 equals
// Center0 the sphere is stationary; otherwise the center is swept linearly
// over the ray's [0,1] time parameter for motion blur.
type Sphere struct {
	Center0, Center1 core.Vec3
	Radius           float64
	Mat              material.Material
	moving           bool
	box              core.AABB
}

func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	s := &Sphere{Center0: center, Center1: center, Radius: radius, Mat: mat}
	rvec := core.NewVec3(radius, radius, radius)
	s.box = core.NewAABBFromPoints(center.Sub(rvec), center.Add(rvec))
	return s
}

func NewMovingSphere(center0, center1 core.Vec3, radius float64, mat material.Material) *Sphere {
	s := &Sphere{Center0: center0, Center1: center1, Radius: radius, Mat: mat, moving: true}
	rvec := core.NewVec3(radius, radius, radius)
	box0 := core.NewAABBFromPoints(center0.Sub(rvec), center0.Add(rvec))
	box1 := core.NewAABBFromPoints(center1.Sub(rvec), center1.Add(rvec))
	s.box = core.NewAABBFromBoxes(box0, box1)
	return s
}

func (s *Sphere) centerAt(time float64) core.Vec3 {
	if !s.moving {
		return s.Center0
	}
	return s.Center0.Add(s.Center1.Sub(s.Center0).Mul(time))
}

func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	center := s.centerAt(ray.Time)
	oc := center.Sub(ray.Origin)

	a := ray.Direction.LengthSquared()
	h := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	disc := h*h - a*c
	if disc < 0 {
		return material.HitRecord{}, false
	}
	sqrtd := math.Sqrt(disc)

	root := (h - sqrtd) / a
	if !rayT.Surrounds(root) {
		root = (h + sqrtd) / a
		if !rayT.Surrounds(root) {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Sub(center).Div(s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := material.HitRecord{T: root, Point: point, Material: s.Mat, U: u, V: v}
	rec.SetFaceNormal(ray, outwardNormal)
	return rec, true
}

func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

func (s *Sphere) BoundingBox() core.AABB {
	return s.box
}
