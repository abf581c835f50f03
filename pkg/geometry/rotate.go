package geometry

import (
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/material"
)

// rotateAxis names which world axis a Rotate decorator turns around.
type rotateAxis int

const (
	axisX rotateAxis = iota
	axisY
	axisZ
)

// Rotate wraps a child and rotates it by a fixed angle around one world
// axis. An unnamed "Rotate" in the external scene format is RotateY.
type Rotate struct {
	Child       Hittable
	axis        rotateAxis
	sinT, cosT  float64
	box         core.AABB
}

func newRotate(child Hittable, axis rotateAxis, angleDegrees float64) *Rotate {
	radians := angleDegrees * math.Pi / 180
	r := &Rotate{Child: child, axis: axis, sinT: math.Sin(radians), cosT: math.Cos(radians)}
	r.box = r.rotateBoxForward(child.BoundingBox())
	return r
}

func NewRotateX(child Hittable, angleDegrees float64) *Rotate { return newRotate(child, axisX, angleDegrees) }
func NewRotateY(child Hittable, angleDegrees float64) *Rotate { return newRotate(child, axisY, angleDegrees) }
func NewRotateZ(child Hittable, angleDegrees float64) *Rotate { return newRotate(child, axisZ, angleDegrees) }

// NewRotateDefault implements the open question resolution: an unnamed
// Rotate behaves as RotateY.
func NewRotateDefault(child Hittable, angleDegrees float64) *Rotate {
	return NewRotateY(child, angleDegrees)
}

func (r *Rotate) rotateVec(v core.Vec3, sin, cos float64) core.Vec3 {
	switch r.axis {
	case axisX:
		return core.NewVec3(v.X, cos*v.Y-sin*v.Z, sin*v.Y+cos*v.Z)
	case axisZ:
		return core.NewVec3(cos*v.X-sin*v.Y, sin*v.X+cos*v.Y, v.Z)
	default: // axisY
		return core.NewVec3(cos*v.X+sin*v.Z, v.Y, -sin*v.X+cos*v.Z)
	}
}

// rotateBoxForward computes the envelope of the 8 transformed corners of
// box once, at construction time.
func (r *Rotate) rotateBoxForward(box core.AABB) core.AABB {
	result := core.AABBEmpty
	first := true
	for i := 0; i < 8; i++ {
		x := pick(i&1 == 0, box.X.Min, box.X.Max)
		y := pick(i&2 == 0, box.Y.Min, box.Y.Max)
		z := pick(i&4 == 0, box.Z.Min, box.Z.Max)
		corner := r.rotateVec(core.NewVec3(x, y, z), r.sinT, r.cosT)
		if first {
			result = core.NewAABBFromPoints(corner, corner)
			first = false
		} else {
			result = core.NewAABBFromBoxes(result, core.NewAABBFromPoints(corner, corner))
		}
	}
	return result
}

func pick(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}

func (r *Rotate) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	// Rotate the incoming ray by -theta before forwarding to the child.
	origin := r.rotateVec(ray.Origin, -r.sinT, r.cosT)
	direction := r.rotateVec(ray.Direction, -r.sinT, r.cosT)
	rotatedRay := core.NewRayAt(origin, direction, ray.Time)

	rec, ok := r.Child.Hit(rotatedRay, rayT)
	if !ok {
		return material.HitRecord{}, false
	}

	// Rotate the hit back by +theta.
	rec.Point = r.rotateVec(rec.Point, r.sinT, r.cosT)
	rec.Normal = r.rotateVec(rec.Normal, r.sinT, r.cosT)
	return rec, true
}

func (r *Rotate) BoundingBox() core.AABB {
	return r.box
}
