package renderer

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/dfalck/go-path-tracer/pkg/core"
)

// WritePPM writes averaged linear radiance values as a plain ASCII PPM
// (magic P3) image. The pixels slice must already be in emission order:
// top-to-bottom, left-to-right. Tone mapping is gamma 2 (per-channel
// square root), clamped to [0, 0.999] and scaled by 256.
// Sink write failures are returned verbatim.
func WritePPM(w io.Writer, pixels []core.Vec3, width, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("pixel buffer has %d entries, want %d", len(pixels), width*height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}

	for _, pixel := range pixels {
		ir, ig, ib := pixelBytes(pixel)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", ir, ig, ib); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// pixelBytes tone-maps an averaged linear color to byte values
func pixelBytes(pixel core.Vec3) (int, int, int) {
	gamma := core.NewVec3(
		math.Sqrt(pixel.X),
		math.Sqrt(pixel.Y),
		math.Sqrt(pixel.Z),
	).Clamp(0, 0.999)

	return int(256 * gamma.X), int(256 * gamma.Y), int(256 * gamma.Z)
}
