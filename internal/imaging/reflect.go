package imaging

import (
	"image/color"
	"math"
)

// ReflectHue mirrors a hue angle about the given axis.
//
// The hue is moved into the axis frame, wrapped to a non-negative angle,
// mirrored (360 - angle) and moved back. The result is always in [0,360), so
// callers never see the 360-720 range the raw formula can produce.
//
// Reflection is an involution: ReflectHue(ReflectHue(h, a), a) == h (mod 360).
// Axes a and a+180 describe the same mirror line and give identical results.
func ReflectHue(hue, axis float64) float64 {
	angle := NormalizeDegrees(hue - axis)
	angle = 360 - angle
	return NormalizeDegrees(angle + axis)
}

// NormalizeAxis maps a user supplied reflection angle into [0,180).
//
// Negative angles wrap upward, so -30 becomes 150.
func NormalizeAxis(angle float64) float64 {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return 0
	}
	angle = math.Mod(angle, 180)
	if angle < 0 {
		angle += 180
	}
	if angle >= 180 {
		angle -= 180
	}
	return angle
}

// ReflectHSV reflects the hue of c about axis. Saturation and value pass
// through unchanged.
func ReflectHSV(c HSV, axis float64) HSV {
	return HSV{H: ReflectHue(c.H, axis), S: c.S, V: c.V}
}

// ReflectColor applies the full per-pixel transform: RGB -> HSV, hue
// reflection, HSV -> RGB. Alpha is copied from the input untouched.
func ReflectColor(c color.NRGBA, axis float64) color.NRGBA {
	hsv := ReflectHSV(RGBToHSV(c.R, c.G, c.B), axis)
	r, g, b := HSVToRGB(hsv)
	return color.NRGBA{R: r, G: g, B: b, A: c.A}
}

// HueReflector returns a PixelFunc that reflects every pixel about axis.
func HueReflector(axis float64) PixelFunc {
	return func(c color.NRGBA) color.NRGBA {
		return ReflectColor(c, axis)
	}
}
