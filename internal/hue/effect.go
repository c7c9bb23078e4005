package hue

import (
	"fmt"
	"strconv"
	"strings"
)

// Effect is a vendor lighting effect code.
type Effect uint8

const (
	EffectCandle     Effect = 0x01
	EffectFireplace  Effect = 0x02
	EffectPrism      Effect = 0x03
	EffectSunrise    Effect = 0x09
	EffectSparkle    Effect = 0x0A
	EffectOpal       Effect = 0x0B
	EffectGlisten    Effect = 0x0C
	EffectSunset     Effect = 0x0D
	EffectUnderwater Effect = 0x0E
	EffectCosmos     Effect = 0x0F
	EffectSunbeam    Effect = 0x10
	EffectEnchant    Effect = 0x11
)

var effectNames = map[Effect]string{
	EffectCandle:     "candle",
	EffectFireplace:  "fireplace",
	EffectPrism:      "prism",
	EffectSunrise:    "sunrise",
	EffectSparkle:    "sparkle",
	EffectOpal:       "opal",
	EffectGlisten:    "glisten",
	EffectSunset:     "sunset",
	EffectUnderwater: "underwater",
	EffectCosmos:     "cosmos",
	EffectSunbeam:    "sunbeam",
	EffectEnchant:    "enchant",
}

// Effects returns the known effects keyed by name.
func Effects() map[string]Effect {
	m := make(map[string]Effect, len(effectNames))
	for e, name := range effectNames {
		m[name] = e
	}
	return m
}

// String returns the effect name, or its code in hex when unknown.
func (e Effect) String() string {
	if name, ok := effectNames[e]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint8(e))
}

// Known reports whether e is one of the vendor-defined codes.
func (e Effect) Known() bool {
	_, ok := effectNames[e]
	return ok
}

// ParseEffect accepts an effect name or a numeric code (decimal or 0x-hex).
func ParseEffect(s string) (Effect, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for e, name := range effectNames {
		if name == s {
			return e, nil
		}
	}
	v, err := parseCode(s)
	if err != nil {
		return 0, fmt.Errorf("hue: unknown effect %q", s)
	}
	return Effect(v), nil
}

func (e Effect) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Effect) UnmarshalText(text []byte) error {
	v, err := ParseEffect(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// GradientStyle selects how gradient colours are laid out along the light.
type GradientStyle uint8

const (
	GradientLinear    GradientStyle = 0x00
	GradientScattered GradientStyle = 0x02
	GradientMirrored  GradientStyle = 0x04
)

var styleNames = map[GradientStyle]string{
	GradientLinear:    "linear",
	GradientScattered: "scattered",
	GradientMirrored:  "mirrored",
}

// GradientStyles returns the known styles keyed by name.
func GradientStyles() map[string]GradientStyle {
	m := make(map[string]GradientStyle, len(styleNames))
	for s, name := range styleNames {
		m[name] = s
	}
	return m
}

func (s GradientStyle) String() string {
	if name, ok := styleNames[s]; ok {
		return name
	}
	return fmt.Sprintf("0x%02X", uint8(s))
}

// ParseGradientStyle accepts a style name or a numeric code.
func ParseGradientStyle(s string) (GradientStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for st, name := range styleNames {
		if name == s {
			return st, nil
		}
	}
	v, err := parseCode(s)
	if err != nil {
		return 0, fmt.Errorf("hue: unknown gradient style %q", s)
	}
	return GradientStyle(v), nil
}

func (s GradientStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *GradientStyle) UnmarshalText(text []byte) error {
	v, err := ParseGradientStyle(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func parseCode(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
