package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/leonardodalinky/fpsample"
	"github.com/leonardodalinky/fpsample/fpsio"
)

func newNPDUCmd(gf *globalFlags) *cobra.Command {
	var window int
	cmd := &cobra.Command{
		Use:   "npdu",
		Short: "Run the index-window NPDU driver (assumes pre-ordered input)",
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
			if window > 0 {
				opts = append(opts, fpsample.WithWindow(window))
			}

			start := time.Now()
			indices, err := fpsample.SampleNPDU(m, gf.n, opts...)
			if err != nil {
				log.Error().Err(err).Msg("sample failed")
				return err
			}
			log.Info().Dur("elapsed", time.Since(start)).Msg("sample complete")
			fmt.Println(indices)
			return nil
		},
	}
	cmd.Flags().IntVar(&window, "window", 0, "index window width k (default: scales with point count)")
	return cmd
}
