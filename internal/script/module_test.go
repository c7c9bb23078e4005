package script

import (
	"strings"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"hue-zigbee-go/internal/hue"
)

func newState(t *testing.T) *lua.LState {
	t.Helper()
	L := lua.NewState()
	t.Cleanup(L.Close)
	Register(L)
	return L
}

func TestEncodeFromLua(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"empty", `return hue.encode({})`, "0000"},
		{"on", `return hue.encode({on = true})`, "010001"},
		{"brightness", `return hue.encode({brightness = 0x7f})`, "02007f"},
		{"effect by name", `return hue.encode({effect = "sunset"})`, "20000d"},
		{"effect by code", `return hue.encode({effect = hue.effects.cosmos})`, "20000f"},
		{"transition", `return hue.encode({on = false, transition_time = 8})`, "1100000800"},
		{
			"gradient",
			`return hue.encode({
				gradient = {style = "scattered", colors = {}},
				gradient_params = {scale = 0xcc / 8, offset = 0xdd / 8},
			})`,
			"400104000200" + "00ccdd",
		},
		{"color xy array form", `return hue.encode({color_xy = {0.5, 0.25}})`, "0800ff7fff3f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L := newState(t)
			if err := L.DoString(tt.code); err != nil {
				t.Fatalf("DoString: %v", err)
			}
			got := L.Get(-1).String()
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeErrorsFromLua(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"brightness range", `hue.encode({brightness = 0})`, "out of range"},
		{"brightness overflow", `hue.encode({brightness = 300})`, "brightness"},
		{"fractional", `hue.encode({transition_time = 1.5})`, "transition_time"},
		{"bad effect", `hue.encode({effect = "disco"})`, "unknown effect"},
		{"bad on", `hue.encode({on = 1})`, "expected boolean"},
		{"bad color", `hue.encode({color_xy = {x = "a", y = 0}})`, "color_xy.x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			L := newState(t)
			err := L.DoString(tt.code)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestDecodeFromLua(t *testing.T) {
	L := newState(t)
	code := `
		local m = hue.decode("ab00012e6f2f40100f7f")
		assert(m.on == true, "on")
		assert(m.brightness == 46, "brightness")
		assert(m.effect == "cosmos", "effect")
		assert(m.effect_speed == 127, "effect_speed")
		assert(m.transition_time == nil, "transition_time")
		assert(math.abs(m.color_xy.x - 0.18529) < 0.0001, "x")
		return hue.encode(m)
	`
	if err := L.DoString(code); err != nil {
		t.Fatal(err)
	}
	if got := L.Get(-1).String(); got != "ab00012e6f2f40100f7f" {
		t.Errorf("re-encoded = %s", got)
	}
}

func TestDecodeGradientFromLua(t *testing.T) {
	L := newState(t)
	code := `
		local m = hue.decode("4001" .. "0a20020000" .. "23c1ab" .. "89f7de" .. "ccdd")
		assert(m.gradient.style == "scattered", "style")
		assert(#m.gradient.colors == 2, "colors")
		assert(m.gradient_params.scale == 0xcc / 8, "scale")
		return hue.encode(m)
	`
	if err := L.DoString(code); err != nil {
		t.Fatal(err)
	}
	if got := L.Get(-1).String(); got != "40010a2002000023c1ab89f7deccdd" {
		t.Errorf("re-encoded = %s", got)
	}
}

func TestDecodeErrorFromLua(t *testing.T) {
	L := newState(t)
	err := L.DoString(`hue.decode("0200")`)
	if err == nil || !strings.Contains(err.Error(), hue.ErrTruncated.Error()) {
		t.Errorf("err = %v, want truncated", err)
	}
}

func TestFlagsFromLua(t *testing.T) {
	L := newState(t)
	if err := L.DoString(`return table.concat(hue.flags("c001"), ",")`); err != nil {
		t.Fatal(err)
	}
	if got := L.Get(-1).String(); got != "gradient_params,effect_speed,gradient" {
		t.Errorf("flags = %s", got)
	}
}

func TestFlagsShortFrameFromLua(t *testing.T) {
	L := newState(t)
	err := L.DoString(`hue.flags("c0")`)
	if err == nil || !strings.Contains(err.Error(), hue.ErrTruncated.Error()) {
		t.Errorf("err = %v, want truncated", err)
	}
}

func TestModuleConstants(t *testing.T) {
	L := newState(t)
	if err := L.DoString(`return hue.cluster_id, hue.manufacturer_code, hue.styles.mirrored`); err != nil {
		t.Fatal(err)
	}
	if got := L.Get(-3); got != lua.LNumber(0xFC03) {
		t.Errorf("cluster_id = %v", got)
	}
	if got := L.Get(-2); got != lua.LNumber(0x100B) {
		t.Errorf("manufacturer_code = %v", got)
	}
	if got := L.Get(-1); got != lua.LNumber(4) {
		t.Errorf("styles.mirrored = %v", got)
	}
}
