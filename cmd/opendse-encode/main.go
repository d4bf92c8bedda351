// Package main implements opendse-encode, the CLI entry point exercising
// the full pipeline: read a specification document, optionally filter it,
// and emit either the round-tripped document or its encoded pseudo-Boolean
// constraint set.
//
// # File Index
//
//   - main.go        - entry point, rootCmd, global flags, logger init
//   - config.go      - YAML configuration (namespace, pretty width, log level)
//   - cmd_roundtrip.go - roundtrip subcommand: read a specification, write it back out
//   - cmd_filter.go    - filter subcommand: filter-by-resources / filter-by-functions
//   - cmd_encode.go    - encode subcommand: constraint generation summary
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string

	logger *zap.Logger
	cfg    *Config
)

var rootCmd = &cobra.Command{
	Use:   "opendse-encode",
	Short: "Encode a design-space-exploration specification into pseudo-Boolean constraints",
	Long: `opendse-encode reads a DSE specification document (architecture,
application, mappings, routings), optionally filters it, and either
round-trips it or hands it to the constraint encoder.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = LoadConfig(configPath)
		} else {
			cfg = DefaultConfig()
		}
		if err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML configuration file")

	rootCmd.AddCommand(roundtripCmd, filterCmd, encodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
