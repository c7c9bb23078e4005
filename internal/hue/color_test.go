package hue

import (
	"errors"
	"math"
	"testing"
)

func TestScaledColorBytes(t *testing.T) {
	c := ColorXYScaled{X: 0x123, Y: 0xABC}
	if got := c.Bytes(); got != [3]byte{0x23, 0xC1, 0xAB} {
		t.Errorf("Bytes = %X, want 23C1AB", got)
	}

	parsed, err := ParseColorXYScaled([]byte{0x23, 0xC1, 0xAB})
	if err != nil {
		t.Fatal(err)
	}
	if parsed != c {
		t.Errorf("parsed = %+v, want %+v", parsed, c)
	}

	if _, err := ParseColorXYScaled([]byte{0x23, 0xC1}); !errors.Is(err, ErrTruncated) {
		t.Errorf("err = %v, want ErrTruncated", err)
	}
}

func TestScaledColorPackRoundTrip(t *testing.T) {
	for _, c := range []ColorXYScaled{{0, 0}, {0xFFF, 0xFFF}, {0xFFF, 0}, {0, 0xFFF}, {0x789, 0xDEF}, {0x001, 0x800}} {
		b := c.Bytes()
		got, err := ParseColorXYScaled(b[:])
		if err != nil {
			t.Fatal(err)
		}
		if got != c {
			t.Errorf("%+v -> %X -> %+v", c, b, got)
		}
	}
}

func TestScaledClamps(t *testing.T) {
	tests := []struct {
		in   ColorXY
		want ColorXYScaled
	}{
		{ColorXY{0, 0}, ColorXYScaled{0, 0}},
		{ColorXY{ScalingMaxX, ScalingMaxY}, ColorXYScaled{0xFFF, 0xFFF}},
		{ColorXY{1, 1}, ColorXYScaled{0xFFF, 0xFFF}},
		{ColorXY{5, -5}, ColorXYScaled{0xFFF, 0}},
		{ColorXY{-0.1, 0.9}, ColorXYScaled{0, 0xFFF}},
		{ColorXY{math.NaN(), math.Inf(1)}, ColorXYScaled{0, 0xFFF}},
	}
	for _, tt := range tests {
		if got := tt.in.Scaled(); got != tt.want {
			t.Errorf("%+v.Scaled() = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestScaledMonotonic(t *testing.T) {
	var prev ColorXYScaled
	for i := 0; i <= 1000; i++ {
		v := float64(i) / 1000
		got := ColorXY{X: v, Y: v}.Scaled()
		if got.X < prev.X || got.Y < prev.Y {
			t.Fatalf("not monotonic at %v: %+v after %+v", v, got, prev)
		}
		prev = got
	}
}

func TestUnscaledWithinOneStep(t *testing.T) {
	stepX := ScalingMaxX / maxScaled
	stepY := ScalingMaxY / maxScaled
	for i := 0; i <= 100; i++ {
		c := ColorXY{X: ScalingMaxX * float64(i) / 100, Y: ScalingMaxY * float64(100-i) / 100}
		got := c.Scaled().Unscaled()
		if math.Abs(got.X-c.X) > stepX || math.Abs(got.Y-c.Y) > stepY {
			t.Errorf("%+v -> %+v exceeds one step", c, got)
		}
	}
}

func TestUnscaledKnownValues(t *testing.T) {
	for _, s := range []ColorXYScaled{{0x123, 0xABC}, {0x789, 0xDEF}, {0, 0}, {0xFFF, 0xFFF}} {
		if got := s.Unscaled().Scaled(); got != s {
			t.Errorf("%+v -> %+v", s, got)
		}
	}
	if got := (ColorXYScaled{0xFFF, 0xFFF}).Unscaled(); got.X != ScalingMaxX || got.Y != ScalingMaxY {
		t.Errorf("max = %+v", got)
	}
}

func TestScaledReencodeExact(t *testing.T) {
	for v := uint16(0); v <= maxScaled; v++ {
		for _, s := range []ColorXYScaled{{v, v}, {v, maxScaled - v}} {
			if got := s.Unscaled().Scaled(); got != s {
				t.Fatalf("%+v -> %+v", s, got)
			}
		}
	}
}

func TestUnitReencodeExact(t *testing.T) {
	for v := 0; v <= math.MaxUint16; v++ {
		if got := unitToUint16(uint16ToUnit(uint16(v))); got != uint16(v) {
			t.Fatalf("%#x -> %#x", v, got)
		}
	}
}

func TestUnitQuantization(t *testing.T) {
	tests := []struct {
		in   float64
		want uint16
	}{
		{0, 0},
		{-1, 0},
		{math.NaN(), 0},
		{0.5, 0x7FFF},
		{0.25, 0x3FFF},
		{1, 0xFFFF},
		{1.5, 0xFFFF},
	}
	for _, tt := range tests {
		if got := unitToUint16(tt.in); got != tt.want {
			t.Errorf("unitToUint16(%v) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestEighths(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{float64(0xCC) / 8, 0xCC},
		{1.06, 8},
		{1.07, 9},
		{-3, 0},
		{40, 0xFF},
	}
	for _, tt := range tests {
		if got := toEighths(tt.in); got != tt.want {
			t.Errorf("toEighths(%v) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
	if got := fromEighths(0xDD); got != 27.625 {
		t.Errorf("fromEighths(0xDD) = %v", got)
	}
}
