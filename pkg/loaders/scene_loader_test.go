package loaders_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jabolol/raytracer/pkg/loaders"
)

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadSingleSphereScene(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "scene.toml", `
[camera]
aspect_ratio = 1.0
image_width = 32
samples_per_pixel = 4
max_depth = 4
background_color = [1.0, 1.0, 1.0]
look_from = [0.0, 0.0, 3.0]
look_at = [0.0, 0.0, 0.0]

[[materials]]
id = "white"
type = "lambertian"
color = [1.0, 1.0, 1.0]

[[shapes]]
id = "ball"
type = "sphere"
center = [0.0, 0.0, 0.0]
radius = 1.0
material = "white"
`)

	world, cam, err := loaders.Load(path)
	require.NoError(t, err)
	require.NotNil(t, world)
	require.Equal(t, 32, cam.ImageWidth)
	require.Equal(t, 4, cam.SamplesPerPixel)
}

func TestLoadMissingMaterialReference(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "scene.toml", `
[camera]
image_width = 16

[[shapes]]
id = "ball"
type = "sphere"
center = [0.0, 0.0, 0.0]
radius = 1.0
material = "does-not-exist"
`)

	_, _, err := loaders.Load(path)
	require.Error(t, err)
	var missing *loaders.MissingError
	require.ErrorAs(t, err, &missing)
}

func TestLoadDuplicateIDIsCyclicError(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "scene.toml", `
[camera]
image_width = 16

[[materials]]
id = "white"
type = "lambertian"
color = [1.0, 1.0, 1.0]

[[materials]]
id = "white"
type = "lambertian"
color = [0.0, 0.0, 0.0]
`)

	_, _, err := loaders.Load(path)
	require.Error(t, err)
	var cyclic *loaders.CyclicError
	require.ErrorAs(t, err, &cyclic)
}

func TestLoadMissingFileIsFileError(t *testing.T) {
	_, _, err := loaders.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	var fileErr *loaders.FileError
	require.ErrorAs(t, err, &fileErr)
}

func TestLoadWrongExtensionIsFileError(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "scene.txt", `[camera]`)

	_, _, err := loaders.Load(path)
	require.Error(t, err)
	var fileErr *loaders.FileError
	require.ErrorAs(t, err, &fileErr)
}

func TestLoadInvalidRadiusIsRangeError(t *testing.T) {
	dir := t.TempDir()
	path := writeScene(t, dir, "scene.toml", `
[camera]
image_width = 16

[[materials]]
id = "white"
type = "lambertian"
color = [1.0, 1.0, 1.0]

[[shapes]]
id = "ball"
type = "sphere"
center = [0.0, 0.0, 0.0]
radius = -1.0
material = "white"
`)

	_, _, err := loaders.Load(path)
	require.Error(t, err)
	var rangeErr *loaders.RangeError
	require.ErrorAs(t, err, &rangeErr)
}

func TestLoadImportsAreProcessedFirst(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "materials.toml", `
[[materials]]
id = "white"
type = "lambertian"
color = [1.0, 1.0, 1.0]
`)
	path := writeScene(t, dir, "scene.toml", `
imports = ["materials.toml"]

[camera]
image_width = 16

[[shapes]]
id = "ball"
type = "sphere"
center = [0.0, 0.0, 0.0]
radius = 1.0
material = "white"
`)

	world, _, err := loaders.Load(path)
	require.NoError(t, err)
	require.NotNil(t, world)
}

func TestLoadImportCycleIsCyclicError(t *testing.T) {
	dir := t.TempDir()
	writeScene(t, dir, "a.toml", `imports = ["b.toml"]`+"\n[camera]\nimage_width = 16\n")
	writeScene(t, dir, "b.toml", `imports = ["a.toml"]`+"\n[camera]\nimage_width = 16\n")

	_, _, err := loaders.Load(filepath.Join(dir, "a.toml"))
	require.Error(t, err)
	var cyclic *loaders.CyclicError
	require.ErrorAs(t, err, &cyclic)
}
