package zcl

import "fmt"

// ZCL data type IDs
const (
	TypeNoData     uint8 = 0x00
	TypeBool       uint8 = 0x10
	TypeBitmap8    uint8 = 0x18
	TypeBitmap16   uint8 = 0x19
	TypeUint8      uint8 = 0x20
	TypeUint16     uint8 = 0x21
	TypeUint24     uint8 = 0x22
	TypeUint32     uint8 = 0x23
	TypeInt8       uint8 = 0x28
	TypeInt16      uint8 = 0x29
	TypeEnum8      uint8 = 0x30
	TypeEnum16     uint8 = 0x31
	TypeOctetStr   uint8 = 0x41
	TypeCharStr    uint8 = 0x42
	TypeOctetStr16 uint8 = 0x43
	TypeCharStr16  uint8 = 0x44
	TypeClusterID  uint8 = 0xE8
	TypeAttrID     uint8 = 0xE9
)

type typeInfo struct {
	name string
	size int // -1 for length-prefixed types
}

var types = map[uint8]typeInfo{
	TypeNoData:     {"nodata", 0},
	TypeBool:       {"bool", 1},
	TypeBitmap8:    {"map8", 1},
	TypeBitmap16:   {"map16", 2},
	TypeUint8:      {"uint8", 1},
	TypeUint16:     {"uint16", 2},
	TypeUint24:     {"uint24", 3},
	TypeUint32:     {"uint32", 4},
	TypeInt8:       {"int8", 1},
	TypeInt16:      {"int16", 2},
	TypeEnum8:      {"enum8", 1},
	TypeEnum16:     {"enum16", 2},
	TypeOctetStr:   {"octstr", -1},
	TypeCharStr:    {"string", -1},
	TypeOctetStr16: {"octstr16", -1},
	TypeCharStr16:  {"string16", -1},
	TypeClusterID:  {"clusterId", 2},
	TypeAttrID:     {"attribId", 2},
}

// TypeSize returns the fixed size in bytes of a ZCL type, or -1 for
// variable-length and unknown types.
func TypeSize(typeID uint8) int {
	if ti, ok := types[typeID]; ok {
		return ti.size
	}
	return -1
}

// TypeName returns a human-readable name for a ZCL type.
func TypeName(typeID uint8) string {
	if ti, ok := types[typeID]; ok {
		return ti.name
	}
	return fmt.Sprintf("0x%02X", typeID)
}
