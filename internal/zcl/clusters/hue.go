package clusters

import "hue-zigbee-go/internal/zcl"

// Hue light cluster identifiers.
const (
	HueLightClusterID      uint16 = 0xFC03
	HueManufacturerCode    uint16 = 0x100B
	HueCommandUpdateState  uint8  = 0x00
	HueAttributeLightState uint16 = 0x0002
)

// HueLight is the Signify manufacturer-specific cluster. Both the
// UpdateState command payload and the State attribute use the flag-prefixed
// encoding implemented by package hue.
var HueLight = zcl.ClusterDef{
	ID:               HueLightClusterID,
	ManufacturerCode: HueManufacturerCode,
	Name:             "Hue Light",
	Attributes: []zcl.AttributeDef{
		{ID: HueAttributeLightState, Name: "State", Type: zcl.TypeOctetStr, Access: zcl.AccessRead | zcl.AccessReport},
	},
	Commands: []zcl.CommandDef{
		{ID: HueCommandUpdateState, Name: "UpdateState", Direction: zcl.DirectionToServer},
	},
}

// Equivalent maps a Hue update field to the standard cluster attribute that
// reports the same quantity.
type Equivalent struct {
	Field     string
	Cluster   uint16
	Attribute uint16
}

// HueEquivalents lists the Hue fields that have a standard ZCL counterpart.
// Effects and gradients exist only in the Hue cluster.
var HueEquivalents = []Equivalent{
	{Field: "on", Cluster: 0x0006, Attribute: 0x0000},
	{Field: "brightness", Cluster: 0x0008, Attribute: 0x0000},
	{Field: "color_temperature", Cluster: 0x0300, Attribute: 0x0007},
	{Field: "color_xy", Cluster: 0x0300, Attribute: 0x0003},
	{Field: "transition_time", Cluster: 0x0008, Attribute: 0x0010},
}

// All returns every cluster definition in this package.
func All() []zcl.ClusterDef {
	return []zcl.ClusterDef{OnOff, LevelControl, ColorControl, HueLight}
}
