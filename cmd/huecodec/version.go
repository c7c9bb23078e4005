package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"hue-zigbee-go/internal/hue"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return
			}
			fmt.Fprintf(out, "huecodec %s\n", version)
			fmt.Fprintf(out, "  Cluster:      0x%04X\n", hue.ClusterID)
			fmt.Fprintf(out, "  Manufacturer: 0x%04X\n", hue.ManufacturerCode)
			fmt.Fprintf(out, "  Go version:   %s\n", runtime.Version())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")
	return cmd
}
