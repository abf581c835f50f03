package renderer

import (
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
)

// CameraConfig holds the 11 parameters spec'd for camera setup, each with
// the default matching a fresh zero-value-adjacent Camera.
type CameraConfig struct {
	AspectRatio      float64
	ImageWidth       int
	SamplesPerPixel  int
	MaxDepth         int
	Background       core.Color
	VFov             float64 // degrees
	LookFrom         core.Vec3
	LookAt           core.Vec3
	VUp              core.Vec3
	DefocusAngle     float64 // degrees
	FocusDistance    float64
}

func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:     1,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
		Background:      core.Color{},
		VFov:            90,
		LookFrom:        core.Vec3{},
		LookAt:          core.Vec3{X: 0, Y: 0, Z: -1},
		VUp:             core.Vec3{X: 0, Y: 1, Z: 0},
		DefocusAngle:    0,
		FocusDistance:   10,
	}
}

// Camera holds the setup computed once before rendering: basis vectors,
// pixel deltas, and the defocus disk.
type Camera struct {
	Config CameraConfig

	ImageHeight int
	center      core.Vec3
	pixel00     core.Vec3
	pixelDeltaU core.Vec3
	pixelDeltaV core.Vec3
	defocusU    core.Vec3
	defocusV    core.Vec3

	pixelSampleScale float64
}

func NewCamera(cfg CameraConfig) *Camera {
	c := &Camera{Config: cfg}
	c.setup()
	return c
}

func (c *Camera) setup() {
	cfg := c.Config

	c.ImageHeight = int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if c.ImageHeight < 1 {
		c.ImageHeight = 1
	}

	c.center = cfg.LookFrom

	theta := cfg.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	viewportWidth := viewportHeight * float64(cfg.ImageWidth) / float64(c.ImageHeight)

	w := cfg.LookFrom.Sub(cfg.LookAt).Unit()
	u := cfg.VUp.Cross(w).Unit()
	v := w.Cross(u)

	viewportU := u.Mul(viewportWidth)
	viewportV := v.Neg().Mul(viewportHeight)

	c.pixelDeltaU = viewportU.Div(float64(cfg.ImageWidth))
	c.pixelDeltaV = viewportV.Div(float64(c.ImageHeight))

	viewportUpperLeft := c.center.
		Sub(w.Mul(cfg.FocusDistance)).
		Sub(viewportU.Div(2)).
		Sub(viewportV.Div(2))
	c.pixel00 = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Mul(0.5))

	defocusRadius := cfg.FocusDistance * math.Tan(cfg.DefocusAngle/2*math.Pi/180)
	c.defocusU = u.Mul(defocusRadius)
	c.defocusV = v.Mul(defocusRadius)

	c.pixelSampleScale = 1.0 / float64(cfg.SamplesPerPixel)
}

// GetRay constructs a jittered, possibly defocused, time-sampled ray
// through pixel (i, j) using sampler for all randomness.
func (c *Camera) GetRay(i, j int, sampler *core.Sampler) core.Ray {
	offset := c.sampleSquare(sampler)
	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Mul(float64(i) + offset.X)).
		Add(c.pixelDeltaV.Mul(float64(j) + offset.Y))

	origin := c.center
	if c.Config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}
	direction := pixelSample.Sub(origin)
	time := sampler.Float64()

	return core.NewRayAt(origin, direction, time)
}

func (c *Camera) sampleSquare(sampler *core.Sampler) core.Vec3 {
	return core.NewVec3(sampler.Float64()-0.5, sampler.Float64()-0.5, 0)
}

func (c *Camera) defocusDiskSample(sampler *core.Sampler) core.Vec3 {
	p := sampler.RandomInUnitDisk()
	return c.center.Add(c.defocusU.Mul(p.X)).Add(c.defocusV.Mul(p.Y))
}

func (c *Camera) PixelSampleScale() float64 {
	return c.pixelSampleScale
}
