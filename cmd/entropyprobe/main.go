// entropyprobe samples the entropy source frame by frame, runs the
// intent-gate convergence analysis on each buffer, and charts the
// z-score series. Useful for sanity-checking the detector against a live
// entropy pool.
package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/lmtlss/scryer/engine"
	"github.com/lmtlss/scryer/entropy"
)

var (
	frames int
	cells  int
)

var rootCmd = &cobra.Command{
	Use:   "entropyprobe",
	Short: "Chart intent-gate convergence over sampled entropy frames",
	RunE: func(cmd *cobra.Command, args []string) error {
		src := entropy.NewSource()
		buf := make([]byte, cells)
		scores := make([]float64, 0, frames)
		opens := 0
		totalHits := 0

		for i := 0; i < frames; i++ {
			if err := src.Fill(buf); err != nil {
				return err
			}
			reading := engine.AnalyzeIntent(buf)
			scores = append(scores, reading.ZScore)
			totalHits += reading.Hits
			if reading.GateOpen {
				opens++
			}
		}

		fmt.Println(asciigraph.Plot(scores,
			asciigraph.Height(10),
			asciigraph.Caption("intent gate z-score per frame")))
		fmt.Printf("frames: %d  cells/frame: %d\n", frames, cells)
		fmt.Printf("mean hits: %.2f  gate open: %d/%d (%.1f%%)\n",
			float64(totalHits)/float64(frames), opens, frames,
			100.0*float64(opens)/float64(frames))
		return nil
	},
}

func main() {
	rootCmd.Flags().IntVar(&frames, "frames", 120, "number of entropy frames to sample")
	rootCmd.Flags().IntVar(&cells, "cells", 80*24, "bytes per frame (grid cells)")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
