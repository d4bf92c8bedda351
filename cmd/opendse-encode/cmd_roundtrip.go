// File: cmd_roundtrip.go
// Role: "roundtrip" subcommand — reads a specification and writes it back
//       out (spec.md §8 invariant 1), so the output can be compared with
//       the input by hand; the command itself compares nothing.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opendse/opendse/xmlio"
)

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip <input.xml> [output.xml]",
	Short: "Read a specification and write it back out to stdout or a file",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		spec, err := xmlio.Read(in)
		if err != nil {
			return err
		}
		logger.Info("read specification",
			zap.String("id", spec.ID),
			zap.Int("resources", len(spec.Architecture.ResourceIDs())),
			zap.Int("tasks", len(spec.Application.Nodes())),
			zap.Int("mappings", spec.Mappings.Len()),
			zap.Int("routings", spec.Routings.Len()),
		)

		out := os.Stdout
		if len(args) == 2 {
			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return xmlio.Write(out, spec)
	},
}
