// Package imaging implements the hue reflection transform and the image I/O
// around it.
//
// Every pixel is converted from 8-bit RGB to HSV, its hue is mirrored about a
// caller-supplied axis, and the result is converted back to RGB. Alpha is
// carried through untouched. All operations use a coordinate system where
// (0,0) is at the top-left corner, X increases rightward, and Y increases
// downward.
//
// # Components
//
//   - RGBToHSV / HSVToRGB: six-sector color conversion
//   - ReflectHue / NormalizeAxis: the reflection formula and axis cleanup
//   - Partition: row banding for a bounded number of workers
//   - Executor: lock-free parallel application over disjoint row bands
//   - LoadNRGBA / Save / ImageCache: decoding and encoding collaborators
//
// # Color Representation
//
//   - RGB/RGBA: 8-bit components (0-255), non-premultiplied
//   - HSV: Hue (0-360), Saturation (0-100), Value (0-100), as float64
//
// HSV -> RGB rounds to the nearest 8-bit value, so a round trip reproduces the
// original channels within one unit (exactly, in practice).
//
// # Thread Safety
//
// The conversion and reflection functions are pure and safe for concurrent
// use. ImageCache is safe for concurrent use. Images returned by the cache are
// shared and must not be modified.
//
// # Error Handling
//
// Decode failures wrap ErrDecode, encode failures wrap ErrEncode, and worker
// panics surface as *WorkerError. No operation retries.
package imaging
