package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBAColor represents a non-premultiplied RGBA color with 8-bit components.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGB  RGBColor  `json:"rgb"`  // RGB components
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSV  HSV       `json:"hsv"`  // HSV representation
}

// ReflectionSample shows what the hue reflection does to a single pixel.
type ReflectionSample struct {
	X         int         `json:"x"`
	Y         int         `json:"y"`
	Axis      float64     `json:"axis"`
	Original  ColorResult `json:"original"`
	Reflected ColorResult `json:"reflected"`
}

// SampleReflection reads the pixel at (x, y) and reports it alongside its
// hue-reflected counterpart.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (0-based, 0 = leftmost pixel).
//   - y: Y coordinate (0-based, 0 = topmost pixel).
//   - axis: Reflection axis in degrees. It is used as given; callers
//     normalize it with NormalizeAxis.
//
// Returns:
//   - *ReflectionSample: Both colors in hex, RGB, RGBA and HSV form.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// The reflected color is computed with ReflectColor, the same function the
// Executor applies to whole images, so the sample matches the image output.
func SampleReflection(img image.Image, x, y int, axis float64) (*ReflectionSample, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	orig := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	refl := ReflectColor(orig, axis)

	return &ReflectionSample{
		X:         x,
		Y:         y,
		Axis:      axis,
		Original:  describeColor(orig),
		Reflected: describeColor(refl),
	}, nil
}

func describeColor(c color.NRGBA) ColorResult {
	return ColorResult{
		Hex:  hexString(c),
		RGB:  RGBColor{R: c.R, G: c.G, B: c.B},
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSV:  RGBToHSV(c.R, c.G, c.B),
	}
}

// hexString formats the color channels as "#RRGGBB", ignoring alpha.
func hexString(c color.NRGBA) string {
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	return strings.ToUpper(cf.Hex())
}
