package zcl

import "strings"

// Access flags
const (
	AccessRead   uint8 = 0x01
	AccessWrite  uint8 = 0x02
	AccessReport uint8 = 0x04
)

// AttributeDef defines a ZCL attribute.
type AttributeDef struct {
	ID     uint16 `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Type   uint8  `json:"type" yaml:"type"`
	Access uint8  `json:"access" yaml:"access"` // bitmask: 1=read, 2=write, 4=reportable
}

// AccessString renders the access mask as "rwp" with dashes for missing bits.
func (a *AttributeDef) AccessString() string {
	var b strings.Builder
	for _, f := range []struct {
		bit uint8
		c   byte
	}{{AccessRead, 'r'}, {AccessWrite, 'w'}, {AccessReport, 'p'}} {
		if a.Access&f.bit != 0 {
			b.WriteByte(f.c)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// CommandDirection indicates the direction of a cluster command.
type CommandDirection string

const (
	DirectionToServer CommandDirection = "toServer"
	DirectionToClient CommandDirection = "toClient"
)

// CommandDef defines a cluster-specific command.
type CommandDef struct {
	ID        uint8            `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Direction CommandDirection `json:"direction" yaml:"direction"`
}

// ClusterDef defines a ZCL cluster with its attributes and commands.
// ManufacturerCode is zero for standard clusters.
type ClusterDef struct {
	ID               uint16         `json:"id" yaml:"id"`
	ManufacturerCode uint16         `json:"manufacturer_code,omitempty" yaml:"manufacturer_code,omitempty"`
	Name             string         `json:"name" yaml:"name"`
	Attributes       []AttributeDef `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Commands         []CommandDef   `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// ManufacturerSpecific reports whether the cluster lives in the
// manufacturer-specific range and carries a manufacturer code.
func (c *ClusterDef) ManufacturerSpecific() bool {
	return c.ID >= 0xFC00 && c.ManufacturerCode != 0
}

// FindAttribute looks up an attribute by ID.
func (c *ClusterDef) FindAttribute(id uint16) *AttributeDef {
	for i := range c.Attributes {
		if c.Attributes[i].ID == id {
			return &c.Attributes[i]
		}
	}
	return nil
}

// FindCommand looks up a command by ID and direction.
func (c *ClusterDef) FindCommand(id uint8, dir CommandDirection) *CommandDef {
	for i := range c.Commands {
		if c.Commands[i].ID == id && c.Commands[i].Direction == dir {
			return &c.Commands[i]
		}
	}
	return nil
}

// DeepCopy returns a deep copy of the cluster definition.
func (c *ClusterDef) DeepCopy() *ClusterDef {
	cp := *c
	if c.Attributes != nil {
		cp.Attributes = append([]AttributeDef(nil), c.Attributes...)
	}
	if c.Commands != nil {
		cp.Commands = append([]CommandDef(nil), c.Commands...)
	}
	return &cp
}

// Merge adds attributes and commands from another definition of the same
// cluster. Entries already present are kept.
func (c *ClusterDef) Merge(other *ClusterDef) {
	if c.ManufacturerCode == 0 {
		c.ManufacturerCode = other.ManufacturerCode
	}
	for _, attr := range other.Attributes {
		if c.FindAttribute(attr.ID) == nil {
			c.Attributes = append(c.Attributes, attr)
		}
	}
	for _, cmd := range other.Commands {
		if c.FindCommand(cmd.ID, cmd.Direction) == nil {
			c.Commands = append(c.Commands, cmd)
		}
	}
}
