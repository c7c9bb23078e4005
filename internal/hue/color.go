package hue

import (
	"fmt"
	"math"
)

// Gamut bounds used by the 12-bit gradient colour encoding, determined
// experimentally by Christian Iversen.
const (
	ScalingMaxX = 0.7347
	ScalingMaxY = 0.8264
)

const maxScaled = 0xFFF

const scaleEpsilon = 1e-9

// ColorXY is a CIE 1931 chromaticity with both coordinates in [0,1].
type ColorXY struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

// ColorXYScaled is a chromaticity quantized to two 12-bit values relative to
// the gamut bounds.
type ColorXYScaled struct {
	X uint16
	Y uint16
}

// Scaled quantizes c to 12 bits per coordinate. Coordinates beyond the gamut
// bound saturate at 0xFFF; negative coordinates and NaN map to 0.
func (c ColorXY) Scaled() ColorXYScaled {
	return ColorXYScaled{
		X: scale12(c.X, ScalingMaxX),
		Y: scale12(c.Y, ScalingMaxY),
	}
}

func scale12(v, bound float64) uint16 {
	r := v / bound
	if !(r > 0) {
		return 0
	}
	if r > 1 {
		r = 1
	}
	// Unscaled values land a few ulps below the integer; without the nudge
	// a decoded stop re-encodes one step lower.
	return uint16(maxScaled*r + scaleEpsilon)
}

// Unscaled converts s back to chromaticity. The result is within one
// quantization step of the value that produced s.
func (s ColorXYScaled) Unscaled() ColorXY {
	return ColorXY{
		X: float64(s.X&maxScaled) / maxScaled * ScalingMaxX,
		Y: float64(s.Y&maxScaled) / maxScaled * ScalingMaxY,
	}
}

// Bytes packs both 12-bit values into 3 bytes, nibble-interleaved.
func (s ColorXYScaled) Bytes() [3]byte {
	return [3]byte{
		byte(s.X & 0x0FF),
		byte((s.X&0xF00)>>8 | (s.Y&0x00F)<<4),
		byte((s.Y & 0xFF0) >> 4),
	}
}

// AppendBytes appends the packed form of s to dst.
func (s ColorXYScaled) AppendBytes(dst []byte) []byte {
	b := s.Bytes()
	return append(dst, b[:]...)
}

// ParseColorXYScaled unpacks the first 3 bytes of data.
func ParseColorXYScaled(data []byte) (ColorXYScaled, error) {
	if len(data) < 3 {
		return ColorXYScaled{}, fmt.Errorf("hue: scaled color: need 3 bytes, have %d: %w", len(data), ErrTruncated)
	}
	return ColorXYScaled{
		X: uint16(data[0]) | uint16(data[1]&0x0F)<<8,
		Y: uint16(data[1]>>4) | uint16(data[2])<<4,
	}, nil
}

// unitToUint16 is the linear 16-bit quantization used by the top-level
// colour field.
func unitToUint16(v float64) uint16 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return math.MaxUint16
	}
	return uint16(v * math.MaxUint16)
}

func uint16ToUnit(v uint16) float64 {
	return float64(v) / math.MaxUint16
}

// toEighths quantizes v to 1/8 units, saturating at the byte range.
func toEighths(v float64) uint8 {
	r := math.Round(v * 8)
	if !(r > 0) {
		return 0
	}
	if r > math.MaxUint8 {
		return math.MaxUint8
	}
	return uint8(r)
}

func fromEighths(b uint8) float64 {
	return float64(b) / 8
}
