package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/geometry"
)

// Raytracer couples a Camera with a world and renders it to a PPM stream.
type Raytracer struct {
	Camera *Camera
	World  geometry.Hittable
	Logger core.Logger
}

func NewRaytracer(camera *Camera, world geometry.Hittable, logger core.Logger) *Raytracer {
	return &Raytracer{Camera: camera, World: world, Logger: logger}
}

// RayColor is the recursive Monte-Carlo estimator: no next-event
// estimation, no multiple-importance sampling, no Russian roulette. It
// terminates purely on depth or a miss against the world.
func RayColor(ray core.Ray, depth int, world geometry.Hittable, background core.Color, sampler *core.Sampler) core.Color {
	if depth <= 0 {
		return core.Color{}
	}

	rec, hit := world.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		return background
	}

	emission := rec.Material.Emitted(rec.U, rec.V, rec.Point)

	scatter, ok := rec.Material.Scatter(ray, rec, sampler)
	if !ok {
		return emission
	}

	incoming := RayColor(scatter.Scattered, depth-1, world, background, sampler)
	return emission.Add(scatter.Attenuation.MulVec(incoming))
}

// Render drives the full image render and writes it to out as PPM P3,
// distributing scanlines across numWorkers goroutines via a WorkerPool.
func (rt *Raytracer) Render(out io.Writer, numWorkers int) error {
	cfg := rt.Camera.Config
	width := cfg.ImageWidth
	height := rt.Camera.ImageHeight

	pool := NewWorkerPool(rt, width, height, numWorkers)
	pool.Start()

	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}

	buffer := make([][]core.Color, height)
	for i := 0; i < height; i++ {
		res, ok := pool.GetResult()
		if !ok {
			break
		}
		buffer[res.Row] = res.Pixels
		if rt.Logger != nil {
			rt.Logger.Printf("rendered row %d/%d", res.Row+1, height)
		}
	}
	pool.Stop()

	return writePPM(out, width, height, buffer)
}

// writePPM writes buffer as ASCII PPM (P3), gamma-encoding each linear
// channel with sqrt and clamping into [0, 0.999] before quantizing.
func writePPM(out io.Writer, width, height int, buffer [][]core.Color) error {
	w := bufio.NewWriter(out)
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	clamp := core.NewInterval(0, 0.999)
	for j := 0; j < height; j++ {
		row := buffer[j]
		for i := 0; i < width; i++ {
			c := row[i]
			r := gammaCorrect(c.X)
			g := gammaCorrect(c.Y)
			b := gammaCorrect(c.Z)
			ir := int(256 * clamp.Clamp(r))
			ig := int(256 * clamp.Clamp(g))
			ib := int(256 * clamp.Clamp(b))
			if _, err := fmt.Fprintf(w, "%d %d %d\n", ir, ig, ib); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}

func gammaCorrect(linear float64) float64 {
	if linear <= 0 {
		return 0
	}
	return math.Sqrt(linear)
}
