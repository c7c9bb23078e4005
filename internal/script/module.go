package script

import (
	"encoding/hex"
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"

	"hue-zigbee-go/internal/hue"
)

// Register installs the `hue` global table in a Lua state.
//
//	hue.encode(tbl) -> hex string
//	hue.decode(hex) -> tbl
//	hue.flags(hex)  -> { "on", "brightness", ... }
//
// Tables use the same keys as the YAML form of a message.
func Register(L *lua.LState) {
	mod := L.NewTable()

	mod.RawSetString("encode", L.NewFunction(hueEncode))
	mod.RawSetString("decode", L.NewFunction(hueDecode))
	mod.RawSetString("flags", L.NewFunction(hueFlags))

	effects := L.NewTable()
	for name, e := range hue.Effects() {
		effects.RawSetString(name, lua.LNumber(e))
	}
	mod.RawSetString("effects", effects)

	styles := L.NewTable()
	for name, s := range hue.GradientStyles() {
		styles.RawSetString(name, lua.LNumber(s))
	}
	mod.RawSetString("styles", styles)

	mod.RawSetString("cluster_id", lua.LNumber(hue.ClusterID))
	mod.RawSetString("manufacturer_code", lua.LNumber(hue.ManufacturerCode))

	L.SetGlobal("hue", mod)
}

// hue.encode(tbl)
func hueEncode(L *lua.LState) int {
	tbl := L.CheckTable(1)
	m, err := tableToMessage(tbl)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	data, err := hue.Encode(m)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(lua.LString(hex.EncodeToString(data)))
	return 1
}

// hue.decode(hex)
func hueDecode(L *lua.LState) int {
	m, err := hue.DecodeHex(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(messageToTable(L, m))
	return 1
}

// hue.flags(hex)
func hueFlags(L *lua.LState) int {
	data, err := hue.ParseHex(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	flags, err := hue.FrameFlags(data)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	names := L.NewTable()
	for _, n := range flags.Names() {
		names.Append(lua.LString(n))
	}
	L.Push(names)
	return 1
}

func tableToMessage(tbl *lua.LTable) (*hue.Message, error) {
	m := &hue.Message{}

	if v := tbl.RawGetString("on"); v != lua.LNil {
		b, ok := v.(lua.LBool)
		if !ok {
			return nil, fmt.Errorf("on: expected boolean, got %s", v.Type())
		}
		m.Power = hue.Bool(bool(b))
	}
	if v := tbl.RawGetString("brightness"); v != lua.LNil {
		n, err := luaUint(v, math.MaxUint8, "brightness")
		if err != nil {
			return nil, err
		}
		m.Brightness = hue.Uint8(uint8(n))
	}
	if v := tbl.RawGetString("color_temperature"); v != lua.LNil {
		n, err := luaUint(v, math.MaxUint16, "color_temperature")
		if err != nil {
			return nil, err
		}
		m.ColorTemperature = hue.Uint16(uint16(n))
	}
	if v := tbl.RawGetString("color_xy"); v != lua.LNil {
		c, err := luaColor(v, "color_xy")
		if err != nil {
			return nil, err
		}
		m.ColorXY = &c
	}
	if v := tbl.RawGetString("transition_time"); v != lua.LNil {
		n, err := luaUint(v, math.MaxUint16, "transition_time")
		if err != nil {
			return nil, err
		}
		m.TransitionTime = hue.Uint16(uint16(n))
	}
	if v := tbl.RawGetString("effect"); v != lua.LNil {
		var e hue.Effect
		switch ev := v.(type) {
		case lua.LString:
			parsed, err := hue.ParseEffect(string(ev))
			if err != nil {
				return nil, err
			}
			e = parsed
		default:
			n, err := luaUint(v, math.MaxUint8, "effect")
			if err != nil {
				return nil, err
			}
			e = hue.Effect(n)
		}
		m.SetEffect(e)
	}
	if v := tbl.RawGetString("effect_speed"); v != lua.LNil {
		n, err := luaUint(v, math.MaxUint8, "effect_speed")
		if err != nil {
			return nil, err
		}
		m.EffectSpeed = hue.Uint8(uint8(n))
	}
	if v := tbl.RawGetString("gradient"); v != lua.LNil {
		g, err := luaGradient(v)
		if err != nil {
			return nil, err
		}
		m.Gradient = g
	}
	if v := tbl.RawGetString("gradient_params"); v != lua.LNil {
		t, ok := v.(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("gradient_params: expected table, got %s", v.Type())
		}
		scale, err := luaFloat(t.RawGetString("scale"), "gradient_params.scale")
		if err != nil {
			return nil, err
		}
		offset, err := luaFloat(t.RawGetString("offset"), "gradient_params.offset")
		if err != nil {
			return nil, err
		}
		m.GradientParams = &hue.GradientParams{Scale: scale, Offset: offset}
	}
	return m, nil
}

func luaGradient(v lua.LValue) (*hue.Gradient, error) {
	t, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("gradient: expected table, got %s", v.Type())
	}
	g := &hue.Gradient{}
	switch sv := t.RawGetString("style").(type) {
	case *lua.LNilType:
	case lua.LString:
		st, err := hue.ParseGradientStyle(string(sv))
		if err != nil {
			return nil, err
		}
		g.Style = st
	default:
		n, err := luaUint(sv, math.MaxUint8, "gradient.style")
		if err != nil {
			return nil, err
		}
		g.Style = hue.GradientStyle(n)
	}

	if cv := t.RawGetString("colors"); cv != lua.LNil {
		colors, ok := cv.(*lua.LTable)
		if !ok {
			return nil, fmt.Errorf("gradient.colors: expected table, got %s", cv.Type())
		}
		for i := 1; i <= colors.Len(); i++ {
			c, err := luaColor(colors.RawGetInt(i), fmt.Sprintf("gradient.colors[%d]", i))
			if err != nil {
				return nil, err
			}
			g.Colors = append(g.Colors, c)
		}
	}
	return g, nil
}

// luaColor accepts {x=..., y=...} or {x, y}.
func luaColor(v lua.LValue, field string) (hue.ColorXY, error) {
	t, ok := v.(*lua.LTable)
	if !ok {
		return hue.ColorXY{}, fmt.Errorf("%s: expected table, got %s", field, v.Type())
	}
	xv, yv := t.RawGetString("x"), t.RawGetString("y")
	if xv == lua.LNil && yv == lua.LNil {
		xv, yv = t.RawGetInt(1), t.RawGetInt(2)
	}
	x, err := luaFloat(xv, field+".x")
	if err != nil {
		return hue.ColorXY{}, err
	}
	y, err := luaFloat(yv, field+".y")
	if err != nil {
		return hue.ColorXY{}, err
	}
	return hue.ColorXY{X: x, Y: y}, nil
}

func luaFloat(v lua.LValue, field string) (float64, error) {
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%s: expected number, got %s", field, v.Type())
	}
	return float64(n), nil
}

func luaUint(v lua.LValue, max uint64, field string) (uint64, error) {
	f, err := luaFloat(v, field)
	if err != nil {
		return 0, err
	}
	if f < 0 || f > float64(max) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s: %v is not an integer in 0..%d", field, f, max)
	}
	return uint64(f), nil
}

func messageToTable(L *lua.LState, m *hue.Message) *lua.LTable {
	t := L.NewTable()
	if m.Power != nil {
		t.RawSetString("on", lua.LBool(*m.Power))
	}
	if m.Brightness != nil {
		t.RawSetString("brightness", lua.LNumber(*m.Brightness))
	}
	if m.ColorTemperature != nil {
		t.RawSetString("color_temperature", lua.LNumber(*m.ColorTemperature))
	}
	if m.ColorXY != nil {
		t.RawSetString("color_xy", colorTable(L, *m.ColorXY))
	}
	if m.TransitionTime != nil {
		t.RawSetString("transition_time", lua.LNumber(*m.TransitionTime))
	}
	if m.Effect != nil {
		t.RawSetString("effect", lua.LString(m.Effect.String()))
	}
	if m.EffectSpeed != nil {
		t.RawSetString("effect_speed", lua.LNumber(*m.EffectSpeed))
	}
	if m.Gradient != nil {
		g := L.NewTable()
		g.RawSetString("style", lua.LString(m.Gradient.Style.String()))
		colors := L.NewTable()
		for _, c := range m.Gradient.Colors {
			colors.Append(colorTable(L, c))
		}
		g.RawSetString("colors", colors)
		t.RawSetString("gradient", g)
	}
	if m.GradientParams != nil {
		p := L.NewTable()
		p.RawSetString("scale", lua.LNumber(m.GradientParams.Scale))
		p.RawSetString("offset", lua.LNumber(m.GradientParams.Offset))
		t.RawSetString("gradient_params", p)
	}
	return t
}

func colorTable(L *lua.LState, c hue.ColorXY) *lua.LTable {
	t := L.NewTable()
	t.RawSetString("x", lua.LNumber(c.X))
	t.RawSetString("y", lua.LNumber(c.Y))
	return t
}
