package geometry

import (
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// Cylinder is a finite, y-axis-aligned cylinder with base center Center,
// radius Radius, and height Height (spanning y in [Center.Y, Center.Y+Height]).
type Cylinder struct {
	Center core.Vec3
	Radius float64
	Height float64
	Mat    material.Material
	box    core.AABB
}

func NewCylinder(center core.Vec3, radius, height float64, mat material.Material) *Cylinder {
	rvec := core.NewVec3(radius, 0, radius)
	box := core.NewAABBFromPoints(
		center.Sub(rvec),
		center.Add(rvec).Add(core.NewVec3(0, height, 0)),
	)
	return &Cylinder{Center: center, Radius: radius, Height: height, Mat: mat, box: box}
}

func (c *Cylinder) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	best := rayT.Max
	var rec material.HitRecord
	found := false

	if dy := ray.Direction.Y; math.Abs(dy) > 1e-12 {
		for _, yCap := range [2]float64{c.Center.Y, c.Center.Y + c.Height} {
			t := (yCap - ray.Origin.Y) / dy
			if !rayT.Contains(t) || t >= best {
				continue
			}
			p := ray.At(t)
			dx, dz := p.X-c.Center.X, p.Z-c.Center.Z
			if dx*dx+dz*dz > c.Radius*c.Radius {
				continue
			}
			normal := core.NewVec3(0, 1, 0)
			if yCap == c.Center.Y {
				normal = core.NewVec3(0, -1, 0)
			}
			r := material.HitRecord{T: t, Point: p, Material: c.Mat}
			r.SetFaceNormal(ray, normal)
			rec, best, found = r, t, true
		}
	}

	dx, dz := ray.Direction.X, ray.Direction.Z
	a := dx*dx + dz*dz
	if a > 1e-12 {
		ox, oz := ray.Origin.X-c.Center.X, ray.Origin.Z-c.Center.Z
		b := 2 * (dx*ox + dz*oz)
		cc := ox*ox + oz*oz - c.Radius*c.Radius
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sqrtd := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sqrtd) / (2 * a), (-b + sqrtd) / (2 * a)} {
				if !core.NewInterval(rayT.Min, best).Surrounds(t) {
					continue
				}
				p := ray.At(t)
				y := p.Y
				if y < c.Center.Y || y > c.Center.Y+c.Height {
					continue
				}
				axisPoint := core.NewVec3(c.Center.X, y, c.Center.Z)
				normal := p.Sub(axisPoint).Unit()
				r := material.HitRecord{T: t, Point: p, Material: c.Mat}
				r.SetFaceNormal(ray, normal)
				rec, best, found = r, t, true
				break
			}
		}
	}

	return rec, found
}

func (c *Cylinder) BoundingBox() core.AABB {
	return c.box
}
