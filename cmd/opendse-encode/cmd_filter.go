// File: cmd_filter.go
// Role: "filter" subcommand — filter_by_resources / filter_by_functions
//       (spec.md §4.D, §8 S3).

package main

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/opendse/opendse/ops"
	"github.com/opendse/opendse/xmlio"
)

var errFilterFlagsExclusive = errors.New("filter: exactly one of --resources or --functions must be given")

var (
	filterResources string
	filterFunctions string
)

var filterCmd = &cobra.Command{
	Use:   "filter <input.xml> <output.xml>",
	Short: "Apply filter_by_resources or filter_by_functions to a specification",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if (filterResources == "") == (filterFunctions == "") {
			return errFilterFlagsExclusive
		}

		in, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer in.Close()

		spec, err := xmlio.Read(in)
		if err != nil {
			return err
		}

		keep := toKeepSet(orDefault(filterResources, filterFunctions))
		if filterResources != "" {
			ops.FilterByResources(spec, keep)
			logger.Info("filtered by resources", zap.Int("kept", len(keep)))
		} else {
			ops.FilterByFunctions(spec, keep)
			logger.Info("filtered by functions", zap.Int("kept", len(keep)))
		}

		out, err := os.Create(args[1])
		if err != nil {
			return err
		}
		defer out.Close()
		return xmlio.Write(out, spec)
	},
}

func init() {
	filterCmd.Flags().StringVar(&filterResources, "resources", "", "Comma-separated resource ids to keep (filter_by_resources)")
	filterCmd.Flags().StringVar(&filterFunctions, "functions", "", "Comma-separated application task ids to keep; only the listed tasks survive, an anchor id does not pull in its whole function (filter_by_functions)")
}

func orDefault(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func toKeepSet(csv string) map[string]bool {
	keep := make(map[string]bool)
	for _, id := range strings.Split(csv, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			keep[id] = true
		}
	}
	return keep
}
