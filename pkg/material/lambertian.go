package material

import (
	"github.com/Jabolol/raytracer/pkg/core"
)

// Lambertian is a perfectly diffuse material: it always scatters, toward a
// direction drawn from normal + a random unit vector.
type Lambertian struct {
	Tex Texture
}

func NewLambertian(albedo core.Color) *Lambertian {
	return &Lambertian{Tex: NewSolidColor(albedo)}
}

func NewLambertianTexture(tex Texture) *Lambertian {
	return &Lambertian{Tex: tex}
}

func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	direction := hit.Normal.Add(sampler.RandomUnitVector())
	if direction.NearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Attenuation: l.Tex.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAt(hit.Point, direction, rayIn.Time),
	}, true
}

func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Color {
	return core.Color{}
}
