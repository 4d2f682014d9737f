package imaging

import "math"

// HSV represents a color in the cylindrical HSV (Hue, Saturation, Value) space.
//
// Components are floating point so that a conversion round trip does not lose
// precision before the final quantization back to 8-bit channels:
//   - H: 0 to <360 degrees (0=red, 120=green, 240=blue)
//   - S: 0-100 percent (0=gray, 100=fully saturated)
//   - V: 0-100 percent (0=black, 100=full brightness)
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// RGBToHSV converts 8-bit RGB components to HSV.
//
// The conversion follows the standard six-sector algorithm:
//  1. Normalize RGB to the 0-1 range
//  2. Find the max and min components; chroma is max - min
//  3. Value is max, saturation is chroma / max
//  4. Hue is derived from the two channels that are not the max
//
// Pure black (max == 0) has zero saturation rather than an undefined ratio.
// Achromatic colors (all channels equal) have hue 0. When several channels
// share the maximum, red wins over green and green wins over blue. The sector
// is chosen by comparing the 8-bit inputs, so no float equality is involved.
func RGBToHSV(r, g, b uint8) HSV {
	maxC := max(r, g, b)
	minC := min(r, g, b)

	rf := float64(r) / 255.0
	gf := float64(g) / 255.0
	bf := float64(b) / 255.0
	hi := float64(maxC) / 255.0
	lo := float64(minC) / 255.0
	chroma := hi - lo

	var s float64
	if maxC > 0 {
		s = chroma / hi * 100
	}

	var hPrime float64
	switch {
	case maxC == minC:
		hPrime = 0
	case r == maxC:
		hPrime = math.Mod((gf-bf)/chroma, 6)
	case g == maxC:
		hPrime = 2 + (bf-rf)/chroma
	default:
		hPrime = 4 + (rf-gf)/chroma
	}

	h := hPrime * 60
	if h < 0 {
		h += 360
	}

	return HSV{H: h, S: s, V: hi * 100}
}

// HSVToRGB converts an HSV color back to 8-bit RGB components.
//
// Hue may lie outside [0,360); it is wrapped before use. Saturation and value
// are clamped to 0-100. Hues at or past 300 degrees are folded to a negative
// sector offset so that the red sector spans [-1,1).
//
// Each channel is rounded to the nearest integer (not truncated), which makes
// RGB -> HSV -> RGB reproduce the original channels for the 8-bit cube.
func HSVToRGB(c HSV) (r, g, b uint8) {
	hue := NormalizeDegrees(c.H)
	s := clamp01(c.S / 100)
	v := clamp01(c.V / 100)

	chroma := s * v
	hi := v
	lo := hi - chroma

	hPrime := hue / 60
	if hue >= 300 {
		hPrime = (hue - 360) / 60
	}

	var rf, gf, bf float64
	switch {
	case hPrime < 1:
		if hPrime < 0 {
			rf, gf, bf = hi, lo, lo-hPrime*chroma
		} else {
			rf, gf, bf = hi, lo+hPrime*chroma, lo
		}
	case hPrime < 3:
		if hPrime < 2 {
			rf, gf, bf = lo-(hPrime-2)*chroma, hi, lo
		} else {
			rf, gf, bf = lo, hi, lo+(hPrime-2)*chroma
		}
	default:
		if hPrime < 4 {
			rf, gf, bf = lo, lo-(hPrime-4)*chroma, hi
		} else {
			rf, gf, bf = lo+(hPrime-4)*chroma, lo, hi
		}
	}

	return to8(rf), to8(gf), to8(bf)
}

// NormalizeDegrees wraps an angle into [0,360). NaN maps to 0.
func NormalizeDegrees(deg float64) float64 {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return 0
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds up to exactly 360
	if deg >= 360 {
		deg -= 360
	}
	return deg
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
