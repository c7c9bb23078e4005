package zcl

import (
	"io"
	"log/slog"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry(testLogger())

	r.Register(ClusterDef{
		ID:               0xFC03,
		ManufacturerCode: 0x100B,
		Name:             "Hue Light",
		Attributes: []AttributeDef{
			{ID: 0x0002, Name: "State", Type: TypeOctetStr, Access: AccessRead | AccessReport},
		},
	})

	got := r.Get(0xFC03)
	if got == nil {
		t.Fatal("cluster not found")
	}
	if got.Name != "Hue Light" {
		t.Errorf("name = %q, want %q", got.Name, "Hue Light")
	}
	if !got.ManufacturerSpecific() {
		t.Error("expected manufacturer-specific cluster")
	}
	if len(got.Attributes) != 1 {
		t.Errorf("attrs = %d, want 1", len(got.Attributes))
	}

	// Copies must not alias registry state.
	got.Attributes[0].Name = "changed"
	if again := r.Get(0xFC03); again.Attributes[0].Name != "State" {
		t.Errorf("registry modified through copy: %q", again.Attributes[0].Name)
	}

	if r.Get(0x0006) != nil {
		t.Error("unexpected cluster 0x0006")
	}
}

func TestRegistryMerge(t *testing.T) {
	r := NewRegistry(testLogger())

	r.Register(ClusterDef{
		ID:   0xFC03,
		Name: "Hue Light",
		Commands: []CommandDef{
			{ID: 0x00, Name: "UpdateState", Direction: DirectionToServer},
		},
	})
	r.Register(ClusterDef{
		ID:               0xFC03,
		ManufacturerCode: 0x100B,
		Attributes: []AttributeDef{
			{ID: 0x0002, Name: "State", Type: TypeOctetStr, Access: AccessRead},
		},
		Commands: []CommandDef{
			{ID: 0x00, Name: "Duplicate", Direction: DirectionToServer},
		},
	})

	got := r.Get(0xFC03)
	if got.ManufacturerCode != 0x100B {
		t.Errorf("manufacturer = 0x%04X, want 0x100B", got.ManufacturerCode)
	}
	if attr := got.FindAttribute(0x0002); attr == nil || attr.Name != "State" {
		t.Fatalf("merged attribute = %+v", attr)
	}
	if cmd := got.FindCommand(0x00, DirectionToServer); cmd == nil || cmd.Name != "UpdateState" {
		t.Errorf("command = %+v, want original UpdateState", cmd)
	}
	if len(got.Commands) != 1 {
		t.Errorf("commands = %d, want 1", len(got.Commands))
	}
}

func TestRegistryAllAndByManufacturer(t *testing.T) {
	r := NewRegistry(testLogger())

	r.Register(ClusterDef{ID: 0xFC03, ManufacturerCode: 0x100B, Name: "Hue Light"})
	r.Register(ClusterDef{ID: 0x0300, Name: "Color Control"})
	r.Register(ClusterDef{ID: 0x0006, Name: "On/Off"})

	all := r.All()
	if len(all) != 3 {
		t.Fatalf("got %d clusters, want 3", len(all))
	}
	for i, want := range []uint16{0x0006, 0x0300, 0xFC03} {
		if all[i].ID != want {
			t.Errorf("all[%d] = 0x%04X, want 0x%04X", i, all[i].ID, want)
		}
	}

	hue := r.ByManufacturer(0x100B)
	if len(hue) != 1 || hue[0].ID != 0xFC03 {
		t.Errorf("ByManufacturer = %+v", hue)
	}
	if std := r.ByManufacturer(0); len(std) != 2 {
		t.Errorf("standard clusters = %d, want 2", len(std))
	}
}

func TestAccessString(t *testing.T) {
	a := AttributeDef{Access: AccessRead | AccessReport}
	if got := a.AccessString(); got != "r-p" {
		t.Errorf("AccessString = %q, want r-p", got)
	}
}
