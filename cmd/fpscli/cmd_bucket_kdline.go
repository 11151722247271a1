package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leonardodalinky/fpsample"
	"github.com/leonardodalinky/fpsample/fpsio"
)

func newBucketKDLineCmd(gf *globalFlags) *cobra.Command {
	var height, maxDim int
	cmd := &cobra.Command{
		Use:   "bucket-kdline",
		Short: "Run Bucket-FPS with the flat, fixed-height KD-Line engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(gf.logDir, gf.logLevel)
			rows, err := loadPoints(gf, log)
			if err != nil {
				return err
			}
			m, err := fpsio.NewMatrixFromRows(rows)
			if err != nil {
				return err
			}

			opts := []fpsample.Option{fpsample.WithStart(gf.start)}
			if height > 0 {
				opts = append(opts, fpsample.WithHeight(height))
			}
			if maxDim > 0 {
				opts = append(opts, fpsample.WithMaxDim(maxDim))
			}

			start := time.Now()
			indices, err := fpsample.SampleBucketKDLine(m, gf.n, opts...)
			if err != nil {
				log.Error().Err(err).Msg("sample failed")
				return err
			}
			log.Info().Dur("elapsed", time.Since(start)).Msg("sample complete")
			fmt.Println(indices)
			return nil
		},
	}
	cmd.Flags().IntVar(&height, "height", 1, "KD-Line leaf recursion depth")
	cmd.Flags().IntVar(&maxDim, "max-dim", 0, "override BUCKET_FPS_MAX_DIM (default: package default)")
	return cmd
}
