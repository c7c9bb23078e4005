package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hue-zigbee-go/internal/script"
)

func runCmd(a *app) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run <script.lua>",
		Short: "Run a Lua script with the hue module",
		Long: `Run a Lua script in a sandboxed VM. The script can build and inspect
frames through the global hue table:

  local frame = hue.encode({on = true, effect = "sunset"})
  log(frame)
  local m = hue.decode(frame)
  log(m.effect)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("timeout") {
				d, err := a.cfg.scriptTimeout()
				if err != nil {
					return err
				}
				timeout = d
			}

			runner := script.NewRunner(a.logger, timeout)
			res, err := runner.RunFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, line := range res.Logs {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			a.logger.Debug("script finished", "ok", res.OK, "duration", res.Duration)
			if !res.OK {
				return fmt.Errorf("script failed: %s", res.Error)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "script timeout (default from config, 5s)")
	return cmd
}
