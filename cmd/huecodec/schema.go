package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hue-zigbee-go/internal/hue"
	"hue-zigbee-go/internal/zcl"
	"hue-zigbee-go/internal/zcl/clusters"
)

func schemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the frame layout and the cluster definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Frame: uint16 flags (little-endian), then fields in this order:")
			fmt.Fprintln(out)
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tBIT\tFIELD\tTYPE\tSIZE\tSTANDARD")
			for i, f := range hue.Schema() {
				size := fmt.Sprint(f.Size)
				if f.Size < 0 {
					size = "4+3n"
				}
				fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
					i, bitIndex(f.Flag), f.Name, zcl.TypeName(f.Type), size, standardFor(a.registry, f.Name))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			for _, c := range a.registry.ByManufacturer(hue.ManufacturerCode) {
				fmt.Fprintln(out)
				fmt.Fprintf(out, "Cluster 0x%04X %s (manufacturer 0x%04X)\n", c.ID, c.Name, c.ManufacturerCode)
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, attr := range c.Attributes {
					fmt.Fprintf(w, "  attribute\t0x%04X\t%s\t%s\t%s\n", attr.ID, attr.Name, zcl.TypeName(attr.Type), attr.AccessString())
				}
				for _, cmdDef := range c.Commands {
					fmt.Fprintf(w, "  command\t0x%02X\t%s\t%s\t\n", cmdDef.ID, cmdDef.Name, cmdDef.Direction)
				}
				if err := w.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func bitIndex(f hue.Flag) int {
	for i := 0; i < 16; i++ {
		if f == hue.Flag(1)<<i {
			return i
		}
	}
	return -1
}

// standardFor names the standard cluster attribute equivalent to a Hue
// field, or "-" when the field is Hue-only.
func standardFor(r *zcl.Registry, field string) string {
	for _, eq := range clusters.HueEquivalents {
		if eq.Field != field {
			continue
		}
		c := r.Get(eq.Cluster)
		if c == nil {
			break
		}
		if attr := c.FindAttribute(eq.Attribute); attr != nil {
			return c.Name + "." + attr.Name
		}
	}
	return "-"
}
