package material

import (
	"math"
	"math/rand"

	"github.com/Jabolol/raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin holds the lattice of random unit-ish vectors and the three
// independent permutation tables used to evaluate gradient noise without
// any owning pointers: every table is a bounded, value-owned array.
type Perlin struct {
	randVec [perlinPointCount]core.Vec3
	permX   [perlinPointCount]int
	permY   [perlinPointCount]int
	permZ   [perlinPointCount]int
}

// NewPerlin builds a Perlin lattice from rng, so callers control
// reproducibility instead of relying on a process-global generator.
func NewPerlin(rng *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.randVec {
		p.randVec[i] = core.Vec3{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
			Z: rng.Float64()*2 - 1,
		}.Unit()
	}
	perlinGeneratePerm(rng, &p.permX)
	perlinGeneratePerm(rng, &p.permY)
	perlinGeneratePerm(rng, &p.permZ)
	return p
}

func perlinGeneratePerm(rng *rand.Rand, perm *[perlinPointCount]int) {
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := rng.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise evaluates trilinearly-interpolated, smoothstep-weighted gradient
// noise at p.
func (pn *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.randVec[idx]
			}
		}
	}
	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.Vec3{X: u - float64(i), Y: v - float64(j), Z: w - float64(k)}
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turbulence accumulates |sum(w_i * noise(2^i * p))| over depth octaves,
// with w_i = 2^-i.
func (pn *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	temp := p
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * pn.Noise(temp)
		weight *= 0.5
		temp = temp.Mul(2)
	}
	return math.Abs(accum)
}

// NoiseTexture returns Vec3(0.5,0.5,0.5) * (1 + sin(scale*p.z + 10*turbulence(p,7))).
type NoiseTexture struct {
	Scale  float64
	Perlin *Perlin
}

func NewNoiseTexture(scale float64, rng *rand.Rand) *NoiseTexture {
	return &NoiseTexture{Scale: scale, Perlin: NewPerlin(rng)}
}

func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Color {
	gray := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.Perlin.Turbulence(p, 7)))
	return core.Vec3{X: gray, Y: gray, Z: gray}
}
