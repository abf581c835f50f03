package loaders

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Jabolol/raytracer/pkg/core"
	"github.com/Jabolol/raytracer/pkg/geometry"
	"github.com/Jabolol/raytracer/pkg/material"
	"github.com/Jabolol/raytracer/pkg/renderer"
)

// loadContext accumulates every entity declared across a scene file and
// its transitive imports, so ids resolve across file boundaries.
type loadContext struct {
	textures  map[string]material.Texture
	materials map[string]material.Material
	shapes    map[string]geometry.Hittable

	shapeOrder []string
	visited    map[string]bool
}

func newLoadContext() *loadContext {
	return &loadContext{
		textures:  map[string]material.Texture{},
		materials: map[string]material.Material{},
		shapes:    map[string]geometry.Hittable{},
		visited:   map[string]bool{},
	}
}

// Load reads a TOML scene file (plus any files it imports) and returns the
// scene's Hittable root and populated CameraConfig, per the loader
// contract of spec.md §6.
func Load(path string) (geometry.Hittable, renderer.CameraConfig, error) {
	ctx := newLoadContext()
	sf, err := ctx.loadFile(path)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}

	cam, err := buildCameraConfig(sf.Camera)
	if err != nil {
		return nil, renderer.CameraConfig{}, err
	}

	objects := make([]geometry.Hittable, 0, len(ctx.shapeOrder))
	for _, id := range ctx.shapeOrder {
		objects = append(objects, ctx.shapes[id])
	}

	return geometry.NewBVHFromScene(objects), cam, nil
}

func (ctx *loadContext) loadFile(path string) (*SceneFile, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, &FileError{Path: path, Message: err.Error()}
	}
	if ctx.visited[abs] {
		return nil, &CyclicError{ID: path}
	}
	ctx.visited[abs] = true

	if !strings.HasSuffix(path, ".toml") {
		return nil, &FileError{Path: path, Message: "expected a .toml scene file"}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Message: err.Error()}
	}
	if len(data) == 0 {
		return nil, &FileError{Path: path, Message: "empty scene file"}
	}

	var sf SceneFile
	if _, err := toml.Decode(string(data), &sf); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error()}
	}

	dir := filepath.Dir(path)
	for _, imp := range sf.Imports {
		impPath := imp
		if !filepath.IsAbs(impPath) {
			impPath = filepath.Join(dir, imp)
		}
		if _, err := ctx.loadFile(impPath); err != nil {
			return nil, err
		}
	}

	if err := ctx.registerTextures(sf.Textures); err != nil {
		return nil, err
	}
	if err := ctx.registerMaterials(sf.Materials); err != nil {
		return nil, err
	}
	if err := ctx.registerShapes(sf.Shapes); err != nil {
		return nil, err
	}
	if err := ctx.applyEffects(sf.Effects); err != nil {
		return nil, err
	}

	return &sf, nil
}

func (ctx *loadContext) registerTextures(entries []TextureFile) error {
	for _, t := range entries {
		if t.ID == "" {
			return &ParseError{Message: "texture entry missing id"}
		}
		if _, exists := ctx.textures[t.ID]; exists {
			return &CyclicError{ID: t.ID}
		}

		tex, err := ctx.buildTexture(t)
		if err != nil {
			return err
		}
		ctx.textures[t.ID] = tex
	}
	return nil
}

func (ctx *loadContext) buildTexture(t TextureFile) (material.Texture, error) {
	switch t.Type {
	case "solid":
		c, err := vecFromSlice(t.Color, "color")
		if err != nil {
			return nil, err
		}
		return material.NewSolidColor(c), nil

	case "noise":
		if t.Scale <= 0 {
			return nil, &RangeError{Field: "scale", Value: t.Scale}
		}
		seed := int64(len(ctx.textures)) + 1
		return material.NewNoiseTexture(t.Scale, rand.New(rand.NewSource(seed))), nil

	case "image":
		img := LoadImage(t.Path)
		return material.NewImageTexture(img.Width, img.Height, img.Pixels), nil

	case "checker":
		if t.Scale <= 0 {
			return nil, &RangeError{Field: "scale", Value: t.Scale}
		}
		even, err := ctx.resolveTexture(t.TextureEven, t.ColorEven, "color_even")
		if err != nil {
			return nil, err
		}
		odd, err := ctx.resolveTexture(t.TextureOdd, t.ColorOdd, "color_odd")
		if err != nil {
			return nil, err
		}
		return material.NewChecker(t.Scale, even, odd), nil

	default:
		return nil, &ParseError{Message: fmt.Sprintf("unknown texture type %q", t.Type)}
	}
}

// resolveTexture prefers a named texture reference, falling back to an
// inline color, matching the "color_even|texture_even" either/or surface.
func (ctx *loadContext) resolveTexture(ref string, color []float64, field string) (material.Texture, error) {
	if ref != "" {
		tex, ok := ctx.textures[ref]
		if !ok {
			return nil, &MissingError{Kind: "texture", ID: ref}
		}
		return tex, nil
	}
	c, err := vecFromSlice(color, field)
	if err != nil {
		return nil, err
	}
	return material.NewSolidColor(c), nil
}

func (ctx *loadContext) registerMaterials(entries []MaterialFile) error {
	for _, m := range entries {
		if m.ID == "" {
			return &ParseError{Message: "material entry missing id"}
		}
		if _, exists := ctx.materials[m.ID]; exists {
			return &CyclicError{ID: m.ID}
		}

		mat, err := ctx.buildMaterial(m)
		if err != nil {
			return err
		}
		ctx.materials[m.ID] = mat
	}
	return nil
}

func (ctx *loadContext) buildMaterial(m MaterialFile) (material.Material, error) {
	switch m.Type {
	case "lambertian":
		tex, err := ctx.materialTexture(m)
		if err != nil {
			return nil, err
		}
		return material.NewLambertianTexture(tex), nil

	case "metal":
		c, err := vecFromSlice(m.Color, "color")
		if err != nil {
			return nil, err
		}
		return material.NewMetal(c, m.Fuzz), nil

	case "dielectric":
		if m.RefractionIndex <= 0 {
			return nil, &RangeError{Field: "refraction_index", Value: m.RefractionIndex}
		}
		if len(m.Color) == 0 {
			return material.NewDielectric(m.RefractionIndex), nil
		}
		c, err := vecFromSlice(m.Color, "color")
		if err != nil {
			return nil, err
		}
		return material.NewDielectricTinted(m.RefractionIndex, c), nil

	case "diffuse_light":
		tex, err := ctx.materialTexture(m)
		if err != nil {
			return nil, err
		}
		return material.NewDiffuseLightTexture(tex), nil

	case "isotropic":
		tex, err := ctx.materialTexture(m)
		if err != nil {
			return nil, err
		}
		return material.NewIsotropicTexture(tex), nil

	default:
		return nil, &ParseError{Message: fmt.Sprintf("unknown material type %q", m.Type)}
	}
}

// materialTexture resolves the "color|texture" either/or surface shared by
// lambertian, diffuse_light, and isotropic.
func (ctx *loadContext) materialTexture(m MaterialFile) (material.Texture, error) {
	if m.Texture != "" {
		tex, ok := ctx.textures[m.Texture]
		if !ok {
			return nil, &MissingError{Kind: "texture", ID: m.Texture}
		}
		return tex, nil
	}
	c, err := vecFromSlice(m.Color, "color")
	if err != nil {
		return nil, err
	}
	return material.NewSolidColor(c), nil
}

func (ctx *loadContext) registerShapes(entries []ShapeFile) error {
	for _, s := range entries {
		if s.ID == "" {
			return &ParseError{Message: "shape entry missing id"}
		}
		if _, exists := ctx.shapes[s.ID]; exists {
			return &CyclicError{ID: s.ID}
		}

		mat, ok := ctx.materials[s.Material]
		if !ok {
			return &MissingError{Kind: "material", ID: s.Material}
		}

		shape, err := buildShape(s, mat)
		if err != nil {
			return err
		}
		ctx.shapes[s.ID] = shape
		ctx.shapeOrder = append(ctx.shapeOrder, s.ID)
	}
	return nil
}

func buildShape(s ShapeFile, mat material.Material) (geometry.Hittable, error) {
	switch s.Type {
	case "sphere":
		radius := s.Radius
		if radius <= 0 {
			return nil, &RangeError{Field: "radius", Value: radius}
		}
		if len(s.CenterOne) > 0 || len(s.CenterTwo) > 0 {
			c0, err := vecFromSlice(s.CenterOne, "center_one")
			if err != nil {
				return nil, err
			}
			c1, err := vecFromSlice(s.CenterTwo, "center_two")
			if err != nil {
				return nil, err
			}
			return geometry.NewMovingSphere(c0, c1, radius, mat), nil
		}
		c, err := vecFromSlice(s.Center, "center")
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(c, radius, mat), nil

	case "quad":
		q, err := vecFromSlice(s.Q, "q")
		if err != nil {
			return nil, err
		}
		u, err := vecFromSlice(s.U, "u")
		if err != nil {
			return nil, err
		}
		v, err := vecFromSlice(s.V, "v")
		if err != nil {
			return nil, err
		}
		return geometry.NewQuad(q, u, v, mat), nil

	case "plane":
		point, err := vecFromSlice(s.Point, "point")
		if err != nil {
			return nil, err
		}
		normal, err := vecFromSlice(s.Normal, "normal")
		if err != nil {
			return nil, err
		}
		return geometry.NewPlane(point, normal, mat), nil

	case "cylinder":
		if s.Radius <= 0 {
			return nil, &RangeError{Field: "radius", Value: s.Radius}
		}
		if s.Height <= 0 {
			return nil, &RangeError{Field: "height", Value: s.Height}
		}
		c, err := vecFromSlice(s.Center, "center")
		if err != nil {
			return nil, err
		}
		return geometry.NewCylinder(c, s.Radius, s.Height, mat), nil

	case "cone":
		if s.Radius <= 0 {
			return nil, &RangeError{Field: "radius", Value: s.Radius}
		}
		if s.Height <= 0 {
			return nil, &RangeError{Field: "height", Value: s.Height}
		}
		c, err := vecFromSlice(s.Center, "center")
		if err != nil {
			return nil, err
		}
		return geometry.NewCone(c, s.Radius, s.Height, mat), nil

	default:
		return nil, &ParseError{Message: fmt.Sprintf("unknown shape type %q", s.Type)}
	}
}

// applyEffects wraps a referenced shape in its decorator, replacing it in
// place so the scene's render order is unaffected.
func (ctx *loadContext) applyEffects(entries []EffectFile) error {
	for _, e := range entries {
		target, ok := ctx.shapes[e.Target]
		if !ok {
			return &MissingError{Kind: "shape", ID: e.Target}
		}

		wrapped, err := ctx.buildEffect(e, target)
		if err != nil {
			return err
		}
		ctx.shapes[e.Target] = wrapped
	}
	return nil
}

func (ctx *loadContext) buildEffect(e EffectFile, target geometry.Hittable) (geometry.Hittable, error) {
	switch e.Type {
	case "translate":
		offset, err := vecFromSlice(e.Offset, "offset")
		if err != nil {
			return nil, err
		}
		return geometry.NewTranslate(target, offset), nil

	case "rotate":
		return geometry.NewRotateDefault(target, e.Angle), nil
	case "rotate_x":
		return geometry.NewRotateX(target, e.Angle), nil
	case "rotate_y":
		return geometry.NewRotateY(target, e.Angle), nil
	case "rotate_z":
		return geometry.NewRotateZ(target, e.Angle), nil

	case "smoke":
		if e.Density <= 0 {
			return nil, &RangeError{Field: "density", Value: e.Density}
		}
		if e.Texture != "" {
			tex, ok := ctx.textures[e.Texture]
			if !ok {
				return nil, &MissingError{Kind: "texture", ID: e.Texture}
			}
			return geometry.NewConstantMediumTexture(target, e.Density, tex), nil
		}
		c, err := vecFromSlice(e.Color, "color")
		if err != nil {
			return nil, err
		}
		return geometry.NewConstantMedium(target, e.Density, c), nil

	default:
		return nil, &ParseError{Message: fmt.Sprintf("unknown effect type %q", e.Type)}
	}
}

func buildCameraConfig(c CameraFile) (renderer.CameraConfig, error) {
	cfg := renderer.DefaultCameraConfig()

	if c.AspectRatio != 0 {
		cfg.AspectRatio = c.AspectRatio
	}
	if c.ImageWidth != 0 {
		cfg.ImageWidth = c.ImageWidth
	}
	if c.SamplesPerPixel != 0 {
		cfg.SamplesPerPixel = c.SamplesPerPixel
	}
	if c.MaxDepth != 0 {
		cfg.MaxDepth = c.MaxDepth
	}
	if len(c.BackgroundColor) > 0 {
		bg, err := vecFromSlice(c.BackgroundColor, "background_color")
		if err != nil {
			return cfg, err
		}
		cfg.Background = bg
	}
	if c.VFov != 0 {
		cfg.VFov = c.VFov
	}
	if len(c.LookFrom) > 0 {
		v, err := vecFromSlice(c.LookFrom, "look_from")
		if err != nil {
			return cfg, err
		}
		cfg.LookFrom = v
	}
	if len(c.LookAt) > 0 {
		v, err := vecFromSlice(c.LookAt, "look_at")
		if err != nil {
			return cfg, err
		}
		cfg.LookAt = v
	}
	if len(c.VUp) > 0 {
		v, err := vecFromSlice(c.VUp, "v_up")
		if err != nil {
			return cfg, err
		}
		cfg.VUp = v
	}
	cfg.DefocusAngle = c.DefocusAngle
	if c.FocusDistance != 0 {
		cfg.FocusDistance = c.FocusDistance
	}

	if cfg.ImageWidth <= 0 {
		return cfg, &RangeError{Field: "image_width", Value: float64(cfg.ImageWidth)}
	}
	if cfg.SamplesPerPixel <= 0 {
		return cfg, &RangeError{Field: "samples_per_pixel", Value: float64(cfg.SamplesPerPixel)}
	}

	return cfg, nil
}

func vecFromSlice(v []float64, field string) (core.Vec3, error) {
	if len(v) != 3 {
		return core.Vec3{}, &ParseError{Message: fmt.Sprintf("%s must have exactly 3 components", field)}
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}
