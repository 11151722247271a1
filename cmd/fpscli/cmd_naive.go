package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leonardodalinky/fpsample"
	"github.com/leonardodalinky/fpsample/fpsio"
)

func newNaiveCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Run the naive, exhaustive FPS driver",
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

			start := time.Now()
			indices, err := fpsample.Sample(m, gf.n, fpsample.WithStart(gf.start))
			if err != nil {
				log.Error().Err(err).Msg("sample failed")
				return err
			}
			log.Info().Dur("elapsed", time.Since(start)).Msg("sample complete")
			fmt.Println(indices)
			return nil
		},
	}
}
