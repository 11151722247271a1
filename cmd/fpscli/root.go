package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	input    string
	n        int
	start    int
	logDir   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:   "fpscli",
		Short: "Farthest Point Sampling over a CSV point cloud",
		Long: `fpscli reads a CSV file of points (one row per point, one column per
coordinate) and runs a Farthest Point Sampling algorithm over it, printing
the selected row indices in selection order.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&gf.input, "input", "i", "", "path to a CSV point file (required)")
	root.PersistentFlags().IntVarP(&gf.n, "n", "n", 0, "number of points to sample (required)")
	root.PersistentFlags().IntVar(&gf.start, "start", 0, "index of the starting point")
	root.PersistentFlags().StringVar(&gf.logDir, "log-dir", ".", "directory for rotating CLI logs")
	root.PersistentFlags().StringVar(&gf.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	_ = root.MarkPersistentFlagRequired("input")
	_ = root.MarkPersistentFlagRequired("n")

	root.AddCommand(
		newNaiveCmd(gf),
		newNPDUCmd(gf),
		newNPDUKDTreeCmd(gf),
		newBucketKDTreeCmd(gf),
		newBucketKDLineCmd(gf),
	)
	return root
}

// loadPoints reads gf.input as CSV, logging the outcome via log before
// returning. It does not check n or start; the sampling entry points do.
func loadPoints(gf *globalFlags, log zerolog.Logger) ([][]float32, error) {
	log.Info().Str("input", gf.input).Int("n", gf.n).Int("start", gf.start).Msg("loading point cloud")
	rows, err := readCSV(gf.input)
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		return nil, fmt.Errorf("read %s: %w", gf.input, err)
	}
	log.Info().Int("points", len(rows)).Msg("point cloud loaded")
	return rows, nil
}
