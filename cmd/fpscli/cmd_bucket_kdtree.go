package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leonardodalinky/fpsample"
	"github.com/leonardodalinky/fpsample/fpsio"
)

func newBucketKDTreeCmd(gf *globalFlags) *cobra.Command {
	var maxDim int
	cmd := &cobra.Command{
		Use:   "bucket-kdtree",
		Short: "Run Bucket-FPS with the hierarchical KD-Tree engine",
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
			if maxDim > 0 {
				opts = append(opts, fpsample.WithMaxDim(maxDim))
			}

			start := time.Now()
			indices, err := fpsample.SampleBucketKDTree(m, gf.n, opts...)
			if err != nil {
				log.Error().Err(err).Msg("sample failed")
				return err
			}
			log.Info().Dur("elapsed", time.Since(start)).Msg("sample complete")
			fmt.Println(indices)
			return nil
		},
	}
	cmd.Flags().IntVar(&maxDim, "max-dim", 0, "override BUCKET_FPS_MAX_DIM (default: package default)")
	return cmd
}
