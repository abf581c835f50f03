package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/Jabolol/raytracer/pkg/core"
)

// ImageData is a decoded binary PPM (P6) image, converted to linear [0,1]
// Vec3 colors in row-major order.
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage reads a binary PPM (P6, 8-bit, maxval=255) texture file. Per
// the format's loader contract, any failure (missing file, wrong magic,
// wrong maxval, truncated data) is not returned as an error: it yields a
// zero-sized ImageData so the Image texture can fall back to its cyan
// sentinel. Comment lines in the header are not handled.
func LoadImage(filename string) *ImageData {
	file, err := os.Open(filename)
	if err != nil {
		return &ImageData{}
	}
	defer file.Close()

	r := bufio.NewReader(file)

	magic, err := readToken(r)
	if err != nil || magic != "P6" {
		return &ImageData{}
	}

	width, err := readIntToken(r)
	if err != nil || width <= 0 {
		return &ImageData{}
	}
	height, err := readIntToken(r)
	if err != nil || height <= 0 {
		return &ImageData{}
	}
	maxval, err := readIntToken(r)
	if err != nil || maxval != 255 {
		return &ImageData{}
	}

	raw := make([]byte, width*height*3)
	if _, err := io.ReadFull(r, raw); err != nil {
		return &ImageData{}
	}

	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		pixels[i] = core.NewVec3(
			float64(raw[i*3])/255.0,
			float64(raw[i*3+1])/255.0,
			float64(raw[i*3+2])/255.0,
		)
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}
}

// readToken reads one whitespace-delimited ASCII token from r.
func readToken(r *bufio.Reader) (string, error) {
	var b []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if isSpace(c) {
			if len(b) == 0 {
				continue
			}
			break
		}
		b = append(b, c)
	}
	return string(b), nil
}

func readIntToken(r *bufio.Reader) (int, error) {
	tok, err := readToken(r)
	if err != nil {
		return 0, err
	}
	var n int
	if _, err := fmt.Sscanf(tok, "%d", &n); err != nil {
		return 0, err
	}
	return n, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
