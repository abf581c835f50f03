package material

import (
	"github.com/Jabolol/raytracer/pkg/core"
)

// DiffuseLight never scatters; Emitted returns the texture value
// regardless of incidence, including from the back face.
type DiffuseLight struct {
	Tex Texture
}

func NewDiffuseLight(emit core.Color) *DiffuseLight {
	return &DiffuseLight{Tex: NewSolidColor(emit)}
}

func NewDiffuseLightTexture(tex Texture) *DiffuseLight {
	return &DiffuseLight{Tex: tex}
}

func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Color {
	return d.Tex.Value(u, v, p)
}

// Isotropic scatters uniformly over the sphere; it is the phase function
// used by the Smoke/ConstantMedium volume decorator.
type Isotropic struct {
	Tex Texture
}

func NewIsotropic(albedo core.Color) *Isotropic {
	return &Isotropic{Tex: NewSolidColor(albedo)}
}

func NewIsotropicTexture(tex Texture) *Isotropic {
	return &Isotropic{Tex: tex}
}

func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler *core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Attenuation: i.Tex.Value(hit.U, hit.V, hit.Point),
		Scattered:   core.NewRayAt(hit.Point, sampler.RandomUnitVector(), rayIn.Time),
	}, true
}

func (i *Isotropic) Emitted(u, v float64, p core.Vec3) core.Color {
	return core.Color{}
}
