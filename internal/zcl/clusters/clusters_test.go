package clusters

import (
	"testing"

	"hue-zigbee-go/internal/hue"
	"hue-zigbee-go/internal/zcl"
)

func TestHueLightMatchesCodec(t *testing.T) {
	if HueLight.ID != hue.ClusterID || HueLight.ManufacturerCode != hue.ManufacturerCode {
		t.Fatalf("cluster 0x%04X/0x%04X, codec 0x%04X/0x%04X",
			HueLight.ID, HueLight.ManufacturerCode, hue.ClusterID, hue.ManufacturerCode)
	}
	if !HueLight.ManufacturerSpecific() {
		t.Error("Hue cluster should be manufacturer-specific")
	}
	if cmd := HueLight.FindCommand(HueCommandUpdateState, zcl.DirectionToServer); cmd == nil {
		t.Error("UpdateState command missing")
	}
}

func TestEquivalentsResolve(t *testing.T) {
	defs := make(map[uint16]zcl.ClusterDef)
	for _, c := range All() {
		defs[c.ID] = c
	}

	fields := make(map[string]bool)
	for _, f := range hue.Schema() {
		fields[f.Name] = true
	}

	for _, eq := range HueEquivalents {
		if !fields[eq.Field] {
			t.Errorf("%s: not a codec field", eq.Field)
		}
		c, ok := defs[eq.Cluster]
		if !ok {
			t.Errorf("%s: cluster 0x%04X not defined", eq.Field, eq.Cluster)
			continue
		}
		if c.FindAttribute(eq.Attribute) == nil {
			t.Errorf("%s: attribute 0x%04X missing from %s", eq.Field, eq.Attribute, c.Name)
		}
	}
}
