package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSampleReflection(t *testing.T) {
	img := createInMemoryImage(10, 10, color.NRGBA{255, 0, 0, 200})

	result, err := SampleReflection(img, 5, 5, 90)
	if err != nil {
		t.Fatalf("SampleReflection failed: %v", err)
	}

	if result.Original.Hex != "#FF0000" {
		t.Errorf("original hex: got %s, want #FF0000", result.Original.Hex)
	}
	if result.Reflected.Hex != "#00FFFF" {
		t.Errorf("reflected hex: got %s, want #00FFFF", result.Reflected.Hex)
	}
	if result.Reflected.RGBA.A != 200 {
		t.Errorf("reflected alpha: got %d, want 200", result.Reflected.RGBA.A)
	}
	if result.Reflected.HSV.H != 180 {
		t.Errorf("reflected hue: got %v, want 180", result.Reflected.HSV.H)
	}
	if result.X != 5 || result.Y != 5 || result.Axis != 90 {
		t.Errorf("echoed params: got (%d,%d,%v)", result.X, result.Y, result.Axis)
	}
}

func TestSampleReflection_KnownColors(t *testing.T) {
	tests := []struct {
		name    string
		color   color.NRGBA
		axis    float64
		wantHex string
	}{
		{"orange", color.NRGBA{255, 128, 64, 255}, 0, "#FF4080"},
		{"red about 0", color.NRGBA{255, 0, 0, 255}, 0, "#FF0000"},
		{"green about 0", color.NRGBA{0, 255, 0, 255}, 0, "#0000FF"},
		{"blue about 150", color.NRGBA{0, 0, 255, 255}, 150, "#FFFF00"},
		{"white", color.NRGBA{255, 255, 255, 255}, 45, "#FFFFFF"},
		{"black", color.NRGBA{0, 0, 0, 128}, 45, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := createInMemoryImage(4, 4, tt.color)
			result, err := SampleReflection(img, 1, 1, tt.axis)
			if err != nil {
				t.Fatalf("SampleReflection failed: %v", err)
			}
			if result.Reflected.Hex != tt.wantHex {
				t.Errorf("reflected hex: got %s, want %s", result.Reflected.Hex, tt.wantHex)
			}
		})
	}
}

func TestSampleReflection_OutOfBounds(t *testing.T) {
	img := createInMemoryImage(100, 100, color.NRGBA{255, 0, 0, 255})

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 50},
		{"negative y", 50, -1},
		{"x at width", 100, 50},
		{"y at height", 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SampleReflection(img, tt.x, tt.y, 0); err == nil {
				t.Errorf("expected error for (%d,%d)", tt.x, tt.y)
			}
		})
	}
}

func TestSampleReflection_MatchesExecutor(t *testing.T) {
	img := createNoiseImage(9, 9, 11)
	out, err := ReflectImage(img, 33, 2)
	if err != nil {
		t.Fatalf("ReflectImage failed: %v", err)
	}

	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			s, err := SampleReflection(img, x, y, 33)
			if err != nil {
				t.Fatalf("SampleReflection failed: %v", err)
			}
			got := out.NRGBAAt(x, y)
			want := s.Reflected.RGBA
			if got.R != want.R || got.G != want.G || got.B != want.B || got.A != want.A {
				t.Fatalf("(%d,%d): executor %v, sample %+v", x, y, got, want)
			}
		}
	}
}
