package loaders_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Jabolol/raytracer/pkg/loaders"
)

func writePPM(t *testing.T, dir, name string, header string, pixels []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	data := append([]byte(header), pixels...)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadImageValidP6(t *testing.T) {
	dir := t.TempDir()
	pixels := []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 255, 255, 255}
	path := writePPM(t, dir, "img.ppm", "P6\n2 2\n255\n", pixels)

	img := loaders.LoadImage(path)
	require.Equal(t, 2, img.Width)
	require.Equal(t, 2, img.Height)
	require.Len(t, img.Pixels, 4)
	require.InDelta(t, 1.0, img.Pixels[0].X, 1e-9)
	require.InDelta(t, 0.0, img.Pixels[0].Y, 1e-9)
}

func TestLoadImageMissingFileIsZeroSized(t *testing.T) {
	img := loaders.LoadImage(filepath.Join(t.TempDir(), "nope.ppm"))
	require.Equal(t, 0, img.Width)
	require.Empty(t, img.Pixels)
}

func TestLoadImageWrongMagicIsZeroSized(t *testing.T) {
	dir := t.TempDir()
	path := writePPM(t, dir, "img.ppm", "P3\n2 2\n255\n", []byte{0, 0, 0})

	img := loaders.LoadImage(path)
	require.Equal(t, 0, img.Width)
	require.Empty(t, img.Pixels)
}

func TestLoadImageWrongMaxvalIsZeroSized(t *testing.T) {
	dir := t.TempDir()
	path := writePPM(t, dir, "img.ppm", "P6\n2 2\n65535\n", []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})

	img := loaders.LoadImage(path)
	require.Equal(t, 0, img.Width)
	require.Empty(t, img.Pixels)
}

func TestLoadImageTruncatedDataIsZeroSized(t *testing.T) {
	dir := t.TempDir()
	path := writePPM(t, dir, "img.ppm", "P6\n4 4\n255\n", []byte{1, 2, 3})

	img := loaders.LoadImage(path)
	require.Equal(t, 0, img.Width)
	require.Empty(t, img.Pixels)
}
