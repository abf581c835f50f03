package geometry

import (
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// Cone is a finite, y-axis-aligned cone: apex at Center (radius 0), widening
// to Radius at y = Center.Y + Height.
type Cone struct {
	Center core.Vec3
	Radius float64
	Height float64
	Mat    material.Material
	box    core.AABB
}

func NewCone(center core.Vec3, radius, height float64, mat material.Material) *Cone {
	rvec := core.NewVec3(radius, 0, radius)
	box := core.NewAABBFromPoints(
		center.Sub(rvec),
		center.Add(rvec).Add(core.NewVec3(0, height, 0)),
	)
	return &Cone{Center: center, Radius: radius, Height: height, Mat: mat, box: box}
}

func (c *Cone) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	best := rayT.Max
	var rec material.HitRecord
	found := false

	// Top cap.
	if dy := ray.Direction.Y; math.Abs(dy) > 1e-12 {
		yCap := c.Center.Y + c.Height
		t := (yCap - ray.Origin.Y) / dy
		if rayT.Contains(t) && t < best {
			p := ray.At(t)
			dx, dz := p.X-c.Center.X, p.Z-c.Center.Z
			if dx*dx+dz*dz <= c.Radius*c.Radius {
				r := material.HitRecord{T: t, Point: p, Material: c.Mat}
				r.SetFaceNormal(ray, core.NewVec3(0, 1, 0))
				rec, best, found = r, t, true
			}
		}
	}

	// Lateral surface.
	k := c.Radius / c.Height
	k2 := k * k
	ox, oy, oz := ray.Origin.X-c.Center.X, ray.Origin.Y-c.Center.Y, ray.Origin.Z-c.Center.Z
	dx, dy, dz := ray.Direction.X, ray.Direction.Y, ray.Direction.Z

	a := dx*dx + dz*dz - k2*dy*dy
	b := 2 * (dx*ox + dz*oz - k2*dy*oy)
	cc := ox*ox + oz*oz - k2*oy*oy

	if math.Abs(a) > 1e-12 {
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sqrtd := math.Sqrt(disc)
			for _, t := range [2]float64{(-b - sqrtd) / (2 * a), (-b + sqrtd) / (2 * a)} {
				if !core.NewInterval(rayT.Min, best).Surrounds(t) {
					continue
				}
				p := ray.At(t)
				if p.Y < c.Center.Y || p.Y > c.Center.Y+c.Height {
					continue
				}
				normal := core.NewVec3(p.X-c.Center.X, 0, p.Z-c.Center.Z).Unit()
				r := material.HitRecord{T: t, Point: p, Material: c.Mat}
				r.SetFaceNormal(ray, normal)
				rec, best, found = r, t, true
				break
			}
		}
	}

	return rec, found
}

func (c *Cone) BoundingBox() core.AABB {
	return c.box
}
