package pipeline

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/hue-reflect/internal/imaging"
)

// writePNG writes img to a file in dir and returns its path.
func writePNG(t *testing.T, dir string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, "input.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestRun_RedToCyan(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, solidImage(9, 13, color.NRGBA{255, 0, 0, 77}))
	out := filepath.Join(dir, "out.png")

	res, err := Run(Options{InputPath: in, OutputPath: out, Angle: 90, Workers: 4})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Width != 9 || res.Height != 13 {
		t.Errorf("dimensions: got %dx%d, want 9x13", res.Width, res.Height)
	}
	if res.OutputPath != out {
		t.Errorf("output path: got %s, want %s", res.OutputPath, out)
	}

	got, err := imaging.LoadNRGBA(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	for y := 0; y < 13; y++ {
		for x := 0; x < 9; x++ {
			if c := got.NRGBAAt(x, y); c != (color.NRGBA{0, 255, 255, 77}) {
				t.Fatalf("pixel (%d,%d): got %v, want cyan with alpha 77", x, y, c)
			}
		}
	}
}

func TestRun_AxisNormalized(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, solidImage(2, 2, color.NRGBA{255, 0, 0, 255}))

	res, err := Run(Options{InputPath: in, OutputPath: filepath.Join(dir, "o.png"), Angle: 270})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Axis != 90 {
		t.Errorf("axis: got %v, want 90", res.Axis)
	}
}

func TestRun_DefaultOutput(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, solidImage(3, 3, color.NRGBA{0, 0, 0, 128}))
	chdir(t, dir)

	res, err := Run(Options{InputPath: in, Angle: 45})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.OutputPath != DefaultOutput {
		t.Errorf("output path: got %s, want %s", res.OutputPath, DefaultOutput)
	}
	if _, err := os.Stat(filepath.Join(dir, DefaultOutput)); err != nil {
		t.Errorf("default output not written: %v", err)
	}
}

func TestRun_DecodeError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")

	_, err := Run(Options{InputPath: filepath.Join(dir, "missing.png"), OutputPath: out})
	if !errors.Is(err, imaging.ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output must not be written when decoding fails")
	}
}

func TestRun_EncodeError(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, solidImage(2, 2, color.NRGBA{1, 2, 3, 4}))

	_, err := Run(Options{InputPath: in, OutputPath: filepath.Join(dir, "nope", "out.png")})
	if !errors.Is(err, imaging.ErrEncode) {
		t.Fatalf("expected ErrEncode, got %v", err)
	}
}

func TestRun_ReportsGoroutinesUsed(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		height  int
		workers int
		want    int
	}{
		{"fewer rows than workers runs synchronously", 3, 8, 1},
		{"one band per worker", 13, 4, 4},
		{"single worker", 13, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writePNG(t, t.TempDir(), solidImage(5, tt.height, color.NRGBA{0, 255, 0, 255}))
			res, err := Run(Options{InputPath: in, OutputPath: filepath.Join(dir, "o.png"), Angle: 0, Workers: tt.workers})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if res.Workers != tt.want {
				t.Errorf("workers: got %d, want %d", res.Workers, tt.want)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}
