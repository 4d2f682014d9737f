package imaging

import (
	"errors"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/sync/errgroup"
)

// PixelFunc maps one non-premultiplied color to another.
type PixelFunc func(c color.NRGBA) color.NRGBA

// Executor applies a PixelFunc to every pixel of an image using a bounded
// number of concurrent workers.
//
// # Work Distribution
//
// Rows are split with Partition. Each worker owns one contiguous band and
// receives the matching sub-slices of the source and destination pixel
// buffers; the destination slice is capped at the band's last byte, so no
// worker can reach another worker's rows. No locks are taken. While the
// workers run, the calling goroutine processes the remainder rows itself and
// then waits for every worker to finish.
//
// # Failure
//
// A panic inside a worker is recovered and reported as a *WorkerError. The
// first failure is returned once all workers have been joined, and no output
// image is returned in that case.
//
// The zero value uses one worker per processor.
type Executor struct {
	// Workers is the requested worker count. See EffectiveWorkers.
	Workers int
}

// Map applies fn to every pixel of src and returns a new image of the same
// dimensions, anchored at the origin.
//
// Parameters:
//   - src: Source image. Any color model is accepted; it is converted to
//     8-bit non-premultiplied RGBA first. src is never modified.
//   - fn: Pixel transform. It must be safe for concurrent use.
//
// Returns:
//   - *image.NRGBA: The transformed image.
//   - error: Non-nil if src is nil or any worker failed.
func (e *Executor) Map(src image.Image, fn PixelFunc) (*image.NRGBA, error) {
	if src == nil {
		return nil, errors.New("source image is nil")
	}
	if fn == nil {
		return nil, errors.New("pixel function is nil")
	}

	in := asNRGBA(src)
	width := in.Rect.Dx()
	height := in.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, width, height))

	plan := Partition(height, EffectiveWorkers(e.Workers))

	var g errgroup.Group
	for _, band := range plan.Bands {
		band := band
		srcRows := bandPix(in, band)
		dstRows := bandPix(out, band)
		g.Go(func() error {
			return mapBand(band, srcRows, in.Stride, dstRows, out.Stride, width, fn)
		})
	}

	// Remainder rows run here, overlapping with the workers.
	remErr := mapBand(plan.Remainder, bandPix(in, plan.Remainder), in.Stride,
		bandPix(out, plan.Remainder), out.Stride, width, fn)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if remErr != nil {
		return nil, remErr
	}

	return out, nil
}

// Apply mirrors the hue of every pixel in src about axis (degrees).
// Alpha is preserved exactly.
func (e *Executor) Apply(src image.Image, axis float64) (*image.NRGBA, error) {
	return e.Map(src, HueReflector(axis))
}

// ReflectImage is the core entry point: it reflects the hue of every pixel of
// src about axis using the given number of workers (0 = one per processor).
// The axis is expected to be normalized by the caller, see NormalizeAxis.
func ReflectImage(src image.Image, axis float64, workers int) (*image.NRGBA, error) {
	e := Executor{Workers: workers}
	return e.Apply(src, axis)
}

// asNRGBA returns src as an origin-anchored *image.NRGBA, copying only when
// the layout differs.
func asNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(src)
}

// bandPix returns the bytes backing the rows of b. The capacity is limited to
// the band so appends or overruns cannot touch neighbouring rows.
func bandPix(img *image.NRGBA, b Band) []uint8 {
	if b.Len() <= 0 {
		return nil
	}
	start := b.Start * img.Stride
	end := (b.End-1)*img.Stride + img.Rect.Dx()*4
	return img.Pix[start:end:end]
}

// mapBand transforms the rows of one band, left to right, top to bottom.
func mapBand(b Band, src []uint8, srcStride int, dst []uint8, dstStride int, width int, fn PixelFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &WorkerError{Band: b, Value: r}
		}
	}()

	for y := 0; y < b.Len(); y++ {
		so := y * srcStride
		do := y * dstStride
		for x := 0; x < width; x++ {
			i := so + x*4
			j := do + x*4
			c := fn(color.NRGBA{R: src[i], G: src[i+1], B: src[i+2], A: src[i+3]})
			dst[j] = c.R
			dst[j+1] = c.G
			dst[j+2] = c.B
			dst[j+3] = c.A
		}
	}
	return nil
}
