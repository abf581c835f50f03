package core

import (
	"math"
	"math/rand"
)

// Sampler is the single mutable surface a render worker owns: a private
// PRNG stream. Replacing the reference source's global rand() with a fresh
// Sampler per pixel sample (seeded from pixel/sample coordinates) is what
// makes per-pixel parallel rendering safe without synchronization.
type Sampler struct {
	rng *rand.Rand
}

func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// SeedFor derives a deterministic per-sample seed from pixel and sample
// coordinates, so a render is reproducible given a fixed base seed.
func SeedFor(base int64, pixelX, pixelY, sampleIndex int) int64 {
	h := base
	h = h*1000003 + int64(pixelX)
	h = h*1000003 + int64(pixelY)
	h = h*1000003 + int64(sampleIndex)
	return h
}

// Float64 returns a uniform double in [0,1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Float64Range returns a uniform double in [min,max).
func (s *Sampler) Float64Range(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}

// IntRange returns a uniform int in [min,max] inclusive.
func (s *Sampler) IntRange(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

// Vec3 returns a vector with each component uniform in [0,1).
func (s *Sampler) Vec3() Vec3 {
	return Vec3{X: s.Float64(), Y: s.Float64(), Z: s.Float64()}
}

// Vec3Range returns a vector with each component uniform in [min,max).
func (s *Sampler) Vec3Range(min, max float64) Vec3 {
	return Vec3{
		X: s.Float64Range(min, max),
		Y: s.Float64Range(min, max),
		Z: s.Float64Range(min, max),
	}
}

// RandomUnitVector returns a uniformly-distributed point on the unit sphere
// via rejection sampling in the unit ball, then normalizes.
func (s *Sampler) RandomUnitVector() Vec3 {
	for {
		p := s.Vec3Range(-1, 1)
		lensq := p.LengthSquared()
		if 1e-160 < lensq && lensq <= 1 {
			return p.Div(math.Sqrt(lensq))
		}
	}
}

// RandomInUnitDisk rejection-samples a uniform point in the unit disk
// (z=0), used for defocus-disk sampling.
func (s *Sampler) RandomInUnitDisk() Vec3 {
	for {
		p := Vec3{X: s.Float64Range(-1, 1), Y: s.Float64Range(-1, 1), Z: 0}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
