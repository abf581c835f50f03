package material

import (
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that always
// scatters, choosing between reflection and refraction by Schlick's
// approximation weighted against a uniform random draw.
type Dielectric struct {
	RefractionIndex float64
	Albedo          core.Color // usually white
}

func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex, Albedo: core.Color{X: 1, Y: 1, Z: 1}}
}

func NewDielectricTinted(refractionIndex float64, albedo core.Color) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex, Albedo: albedo}
}

func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	var eta float64
	if hit.FrontFace {
		eta = 1.0 / d.RefractionIndex
	} else {
		eta = d.RefractionIndex
	}

	unitDirection := rayIn.Direction.Unit()
	cosTheta := math.Min(unitDirection.Neg().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	if eta*sinTheta > 1.0 || Reflectance(cosTheta, eta) > sampler.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, eta)
	}

	return ScatterResult{
		Attenuation: d.Albedo,
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
	}, true
}

func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Color {
	return core.Color{}
}

// Reflectance is Schlick's approximation to Fresnel reflectance.
func Reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
