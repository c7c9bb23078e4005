package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"hue-zigbee-go/internal/zcl"
	"hue-zigbee-go/internal/zcl/clusters"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

type Config struct {
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Script struct {
		Timeout string `yaml:"timeout"`
	} `yaml:"script"`
	Output struct {
		Format string `yaml:"format"` // "yaml" or "json"
	} `yaml:"output"`
}

func (c *Config) validate() error {
	switch c.Output.Format {
	case "yaml", "json":
	default:
		return fmt.Errorf("output.format must be yaml or json, got %q", c.Output.Format)
	}
	if _, err := c.scriptTimeout(); err != nil {
		return fmt.Errorf("script.timeout: %w", err)
	}
	return nil
}

func (c *Config) scriptTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Script.Timeout)
}

// app is the state shared by all subcommands once the root command has
// loaded the configuration.
type app struct {
	cfg      *Config
	logger   *slog.Logger
	registry *zcl.Registry
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var (
		cfgPath   string
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:   "huecodec",
		Short: "Encode and decode Hue Zigbee light update frames",
		Long: `huecodec converts between the Philips Hue manufacturer-specific light
update payload (cluster 0xFC03, manufacturer 0x100B) and a YAML/JSON
description of the update.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if err := cfg.validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			a.cfg = cfg
			a.logger = newLogger(cfg, cmd.ErrOrStderr())
			a.registry = zcl.NewRegistry(a.logger)
			for _, c := range clusters.All() {
				a.registry.Register(c)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json")

	root.AddCommand(
		encodeCmd(a),
		decodeCmd(a),
		schemaCmd(a),
		runCmd(a),
		versionCmd(),
	)
	return root
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Script.Timeout == "" {
		cfg.Script.Timeout = "5s"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "yaml"
	}
	return &cfg, nil
}

// newLogger writes to w, which is stderr in production so frames printed
// on stdout stay machine-readable.
func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
