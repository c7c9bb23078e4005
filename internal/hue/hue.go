// Package hue encodes and decodes the Philips Hue light update payload carried
// in the manufacturer-specific Zigbee cluster 0xFC03.
//
// A frame is a little-endian uint16 flag word followed by the encoding of
// every field whose flag bit is set. Fields appear in a fixed order (see
// Schema), which matches bit order except for the gradient blocks.
//
// The package is pure: Encode and Decode touch no shared state and may be
// called concurrently.
package hue

const (
	// ClusterID is the Hue manufacturer-specific light cluster.
	ClusterID uint16 = 0xFC03
	// ManufacturerCode is the Signify (Philips) Zigbee manufacturer code.
	ManufacturerCode uint16 = 0x100B
)
