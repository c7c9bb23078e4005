package hue

import "math"

// Gradient is the colour part of a gradient: a layout style and up to 15
// colour stops.
type Gradient struct {
	Style  GradientStyle `yaml:"style" json:"style"`
	Colors []ColorXY     `yaml:"colors" json:"colors"`
}

// GradientParams positions the gradient along the light, in 1/8 units.
type GradientParams struct {
	Scale  float64 `yaml:"scale" json:"scale"`
	Offset float64 `yaml:"offset" json:"offset"`
}

// Message is a light update. Every field is optional; nil fields are not
// transmitted and are left nil by Decode.
type Message struct {
	Power            *bool           `yaml:"on,omitempty" json:"on,omitempty"`
	Brightness       *uint8          `yaml:"brightness,omitempty" json:"brightness,omitempty"`
	ColorTemperature *uint16         `yaml:"color_temperature,omitempty" json:"color_temperature,omitempty"`
	ColorXY          *ColorXY        `yaml:"color_xy,omitempty" json:"color_xy,omitempty"`
	TransitionTime   *uint16         `yaml:"transition_time,omitempty" json:"transition_time,omitempty"`
	Effect           *Effect         `yaml:"effect,omitempty" json:"effect,omitempty"`
	EffectSpeed      *uint8          `yaml:"effect_speed,omitempty" json:"effect_speed,omitempty"`
	Gradient         *Gradient       `yaml:"gradient,omitempty" json:"gradient,omitempty"`
	GradientParams   *GradientParams `yaml:"gradient_params,omitempty" json:"gradient_params,omitempty"`
}

func Bool(v bool) *bool       { return &v }
func Uint8(v uint8) *uint8    { return &v }
func Uint16(v uint16) *uint16 { return &v }

// SetGradient sets both the gradient colours and its scale/offset, so the
// encoded frame carries the colour block followed by the parameters.
func (m *Message) SetGradient(style GradientStyle, scale, offset float64, colors ...ColorXY) {
	m.Gradient = &Gradient{Style: style, Colors: colors}
	m.GradientParams = &GradientParams{Scale: scale, Offset: offset}
}

// SetEffect sets the effect code.
func (m *Message) SetEffect(e Effect) {
	m.Effect = &e
}

// Flags returns the flag word an encoding of m would carry.
func (m *Message) Flags() Flag {
	var f Flag
	for i := range schema {
		if schema[i].present(m) {
			f |= schema[i].flag
		}
	}
	return f
}

// Empty reports whether no field is set.
func (m *Message) Empty() bool {
	return m.Flags() == 0
}

// Equal reports whether m and o carry the same fields and values.
// Chromaticity and gradient parameters are compared within tol, all other
// fields exactly.
func (m *Message) Equal(o *Message, tol float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !eqPtr(m.Power, o.Power) ||
		!eqPtr(m.Brightness, o.Brightness) ||
		!eqPtr(m.ColorTemperature, o.ColorTemperature) ||
		!eqPtr(m.TransitionTime, o.TransitionTime) ||
		!eqPtr(m.Effect, o.Effect) ||
		!eqPtr(m.EffectSpeed, o.EffectSpeed) {
		return false
	}
	if (m.ColorXY == nil) != (o.ColorXY == nil) {
		return false
	}
	if m.ColorXY != nil && !m.ColorXY.near(*o.ColorXY, tol) {
		return false
	}
	if (m.GradientParams == nil) != (o.GradientParams == nil) {
		return false
	}
	if p, q := m.GradientParams, o.GradientParams; p != nil {
		if math.Abs(p.Scale-q.Scale) > tol || math.Abs(p.Offset-q.Offset) > tol {
			return false
		}
	}
	if (m.Gradient == nil) != (o.Gradient == nil) {
		return false
	}
	if g, h := m.Gradient, o.Gradient; g != nil {
		if g.Style != h.Style || len(g.Colors) != len(h.Colors) {
			return false
		}
		for i := range g.Colors {
			if !g.Colors[i].near(h.Colors[i], tol) {
				return false
			}
		}
	}
	return true
}

func (c ColorXY) near(o ColorXY, tol float64) bool {
	return math.Abs(c.X-o.X) <= tol && math.Abs(c.Y-o.Y) <= tol
}

func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *Message) MarshalBinary() ([]byte, error) {
	return Encode(m)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. On error m is left
// unchanged.
func (m *Message) UnmarshalBinary(data []byte) error {
	d, err := Decode(data)
	if err != nil {
		return err
	}
	*m = *d
	return nil
}
