package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hue-zigbee-go/internal/hue"
)

func encodeCmd(a *app) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a YAML or JSON light update to a frame",
		Long: `Read a light update in YAML or JSON (from a file, or stdin when no file
is given) and print the encoded frame as hex.

Example input:

  on: true
  brightness: 200
  effect: candle
  gradient:
    style: mirrored
    colors: [{x: 0.3, y: 0.3}, {x: 0.6, y: 0.35}]
  gradient_params: {scale: 2, offset: 0}`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) == 1 && args[0] != "-" {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			var m hue.Message
			if err := yaml.Unmarshal(data, &m); err != nil {
				return fmt.Errorf("parse message: %w", err)
			}
			frame, err := hue.Encode(&m)
			if err != nil {
				return err
			}
			a.logger.Debug("encoded", "flags", m.Flags().String(), "len", len(frame))

			if raw {
				_, err = cmd.OutOrStdout().Write(frame)
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(frame))
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "write the frame as raw bytes instead of hex")
	return cmd
}

func decodeCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode a frame to YAML or JSON",
		Long: `Decode a hex frame and print the light update. Spaces and colons in the
hex string are ignored, so "19 00 01 32 51 8f 53 04 00" and multiple
arguments are both accepted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := hue.ParseHex(strings.Join(args, ""))
			if err != nil {
				return err
			}
			m, err := hue.Decode(data)
			if err != nil {
				return err
			}
			flags, err := hue.FrameFlags(data)
			if err != nil {
				return err
			}
			a.logger.Debug("decoded", "flags", flags.String(), "len", len(data))

			out := cmd.OutOrStdout()
			if asJSON || a.cfg.Output.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(m)
			}

			fmt.Fprintf(out, "# flags: 0x%04X %s\n", uint16(flags), flags)
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(m); err != nil {
				return err
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of YAML")
	return cmd
}
