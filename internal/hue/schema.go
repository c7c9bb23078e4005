package hue

import (
	"encoding/binary"
	"fmt"
	"strings"

	"hue-zigbee-go/internal/zcl"
)

// Flag is the leading bitmask of a frame. Bits 9..15 are unassigned.
type Flag uint16

const (
	FlagPower            Flag = 1 << 0
	FlagBrightness       Flag = 1 << 1
	FlagColorTemperature Flag = 1 << 2
	FlagColorXY          Flag = 1 << 3
	FlagTransitionTime   Flag = 1 << 4
	FlagEffect           Flag = 1 << 5
	FlagGradientParams   Flag = 1 << 6
	FlagEffectSpeed      Flag = 1 << 7
	FlagGradientColors   Flag = 1 << 8
)

// FlagsKnown is the union of all assigned bits.
const FlagsKnown = FlagPower | FlagBrightness | FlagColorTemperature | FlagColorXY |
	FlagTransitionTime | FlagEffect | FlagGradientParams | FlagEffectSpeed | FlagGradientColors

// String lists the set bits by field name in bit order, e.g. "on|brightness".
// Unassigned bits are rendered in hex.
func (f Flag) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for bit := 0; bit < 16; bit++ {
		b := Flag(1) << bit
		if f&b == 0 {
			continue
		}
		if fd := fieldByFlag(b); fd != nil {
			parts = append(parts, fd.name)
		} else {
			parts = append(parts, fmt.Sprintf("0x%04X", uint16(b)))
		}
	}
	return strings.Join(parts, "|")
}

// Names returns the field names of the set, assigned bits in bit order.
func (f Flag) Names() []string {
	var names []string
	for bit := 0; bit < 16; bit++ {
		if fd := fieldByFlag(Flag(1) << bit); fd != nil && f&fd.flag != 0 {
			names = append(names, fd.name)
		}
	}
	return names
}

const gradientHeaderSize = 4

// gradientSize is the value of the gradient size byte for n colours.
func gradientSize(n int) int {
	return gradientHeaderSize + 3*n
}

// maxGradientColors is the largest count the 4-bit count nibble can carry.
const maxGradientColors = 0x0F

// field is one entry of the wire schema. Encoder and decoder walk the same
// table in the same order.
type field struct {
	flag    Flag
	name    string
	zclType uint8
	present func(m *Message) bool
	encode  func(dst []byte, m *Message) ([]byte, error)
	decode  func(r *reader, m *Message) error
}

// schema is in wire order. The gradient colour block (bit 8) precedes the
// effect speed and the gradient parameters (bit 6) come last. This order is
// what Hue devices send and accept, not bit order; do not sort it.
var schema = [...]field{
	{
		flag: FlagPower, name: "on", zclType: zcl.TypeBool,
		present: func(m *Message) bool { return m.Power != nil },
		encode: func(dst []byte, m *Message) ([]byte, error) {
			if *m.Power {
				return append(dst, 1), nil
			}
			return append(dst, 0), nil
		},
		decode: func(r *reader, m *Message) error {
			b, err := r.readByte("on")
			if err != nil {
				return err
			}
			m.Power = Bool(b != 0)
			return nil
		},
	},
	{
		flag: FlagBrightness, name: "brightness", zclType: zcl.TypeUint8,
		present: func(m *Message) bool { return m.Brightness != nil },
		encode: func(dst []byte, m *Message) ([]byte, error) {
			if v := *m.Brightness; v < 1 || v > 254 {
				return dst, fmt.Errorf("hue: brightness %d not in 1..254: %w", v, ErrRange)
			}
			return append(dst, *m.Brightness), nil
		},
		decode: func(r *reader, m *Message) error {
			b, err := r.readByte("brightness")
			if err != nil {
				return err
			}
			m.Brightness = Uint8(b)
			return nil
		},
	},
	{
		flag: FlagColorTemperature, name: "color_temperature", zclType: zcl.TypeUint16,
		present: func(m *Message) bool { return m.ColorTemperature != nil },
		encode: func(dst []byte, m *Message) ([]byte, error) {
			return binary.LittleEndian.AppendUint16(dst, *m.ColorTemperature), nil
		},
		decode: func(r *reader, m *Message) error {
			v, err := r.readUint16("color_temperature")
			if err != nil {
				return err
			}
			m.ColorTemperature = Uint16(v)
			return nil
		},
	},
	{
		flag: FlagColorXY, name: "color_xy", zclType: zcl.TypeUint32,
		present: func(m *Message) bool { return m.ColorXY != nil },
		encode: func(dst []byte, m *Message) ([]byte, error) {
			dst = binary.LittleEndian.AppendUint16(dst, unitToUint16(m.ColorXY.X))
			return binary.LittleEndian.AppendUint16(dst, unitToUint16(m.ColorXY.Y)), nil
		},
		decode: func(r *reader, m *Message) error {
			b, err := r.next(4, "color_xy")
			if err != nil {
				return err
			}
			m.ColorXY = &ColorXY{
				X: uint16ToUnit(binary.LittleEndian.Uint16(b[0:2])),
				Y: uint16ToUnit(binary.LittleEndian.Uint16(b[2:4])),
			}
			return nil
		},
	},
	{
		flag: FlagTransitionTime, name: "transition_time", zclType: zcl.TypeUint16,
		present: func(m *Message) bool { return m.TransitionTime != nil },
		encode: func(dst []byte, m *Message) ([]byte, error) {
			return binary.LittleEndian.AppendUint16(dst, *m.TransitionTime), nil
		},
		decode: func(r *reader, m *Message) error {
			v, err := r.readUint16("transition_time")
			if err != nil {
				return err
			}
			m.TransitionTime = Uint16(v)
			return nil
		},
	},
	{
		flag: FlagEffect, name: "effect", zclType: zcl.TypeEnum8,
		present: func(m *Message) bool { return m.Effect != nil },
		encode: func(dst []byte, m *Message) ([]byte, error) {
			return append(dst, uint8(*m.Effect)), nil
		},
		decode: func(r *reader, m *Message) error {
			b, err := r.readByte("effect")
			if err != nil {
				return err
			}
			m.SetEffect(Effect(b))
			return nil
		},
	},
	{
		flag: FlagGradientColors, name: "gradient", zclType: zcl.TypeOctetStr,
		present: func(m *Message) bool { return m.Gradient != nil },
		encode:  encodeGradient,
		decode:  decodeGradient,
	},
	{
		flag: FlagEffectSpeed, name: "effect_speed", zclType: zcl.TypeUint8,
		present: func(m *Message) bool { return m.EffectSpeed != nil },
		encode: func(dst []byte, m *Message) ([]byte, error) {
			return append(dst, *m.EffectSpeed), nil
		},
		decode: func(r *reader, m *Message) error {
			b, err := r.readByte("effect_speed")
			if err != nil {
				return err
			}
			m.EffectSpeed = Uint8(b)
			return nil
		},
	},
	{
		flag: FlagGradientParams, name: "gradient_params", zclType: zcl.TypeUint16,
		present: func(m *Message) bool { return m.GradientParams != nil },
		encode: func(dst []byte, m *Message) ([]byte, error) {
			return append(dst, toEighths(m.GradientParams.Scale), toEighths(m.GradientParams.Offset)), nil
		},
		decode: func(r *reader, m *Message) error {
			b, err := r.next(2, "gradient_params")
			if err != nil {
				return err
			}
			m.GradientParams = &GradientParams{
				Scale:  fromEighths(b[0]),
				Offset: fromEighths(b[1]),
			}
			return nil
		},
	},
}

func fieldByFlag(f Flag) *field {
	for i := range schema {
		if schema[i].flag == f {
			return &schema[i]
		}
	}
	return nil
}

// encodeGradient writes the colour block: size, count nibble, style, two
// reserved bytes and 3 bytes per colour.
func encodeGradient(dst []byte, m *Message) ([]byte, error) {
	g := m.Gradient
	n := len(g.Colors)
	if n > maxGradientColors {
		return dst, fmt.Errorf("hue: gradient: %d colors, max %d: %w", n, maxGradientColors, ErrRange)
	}
	dst = append(dst, byte(gradientSize(n)), byte(n<<4), byte(g.Style), 0, 0)
	for _, c := range g.Colors {
		dst = c.Scaled().AppendBytes(dst)
	}
	return dst, nil
}

func decodeGradient(r *reader, m *Message) error {
	hdr, err := r.next(2, "gradient")
	if err != nil {
		return err
	}
	size, n := int(hdr[0]), int(hdr[1]>>4)
	if size != gradientSize(n) {
		return fmt.Errorf("hue: gradient: size %d, want %d for %d colors: %w", size, gradientSize(n), n, ErrMalformedGradient)
	}
	// The size byte counts the count byte already consumed.
	body, err := r.next(size-1, "gradient")
	if err != nil {
		return err
	}
	g := &Gradient{Style: GradientStyle(body[0])}
	if n > 0 {
		g.Colors = make([]ColorXY, 0, n)
	}
	for p := body[3:]; len(p) >= 3; p = p[3:] {
		s, err := ParseColorXYScaled(p)
		if err != nil {
			return err
		}
		g.Colors = append(g.Colors, s.Unscaled())
	}
	m.Gradient = g
	return nil
}

// FieldInfo describes one schema entry.
type FieldInfo struct {
	Flag Flag
	Name string
	// Type is the ZCL data type that best describes the field's encoding.
	Type uint8
	// Size is the encoded length in bytes, or -1 when variable.
	Size int
}

// Schema returns the wire schema in emission order.
func Schema() []FieldInfo {
	out := make([]FieldInfo, len(schema))
	for i, f := range schema {
		out[i] = FieldInfo{Flag: f.flag, Name: f.name, Type: f.zclType, Size: zcl.TypeSize(f.zclType)}
	}
	return out
}
