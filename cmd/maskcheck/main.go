// maskcheck decodes a binary PBM sigil raster and prints an ASCII
// preview, optionally classifying the thread pixels the renderer would
// trace.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lmtlss/scryer/sigil"
)

var showThreads bool

var rootCmd = &cobra.Command{
	Use:   "maskcheck <file.pbm>",
	Short: "Inspect a verified sigil raster",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		mask := sigil.DecodePBM(data)
		if mask == nil {
			return fmt.Errorf("%s: not a usable P4 raster", args[0])
		}

		fmt.Printf("%s: %dx%d, stride %d, %d payload bytes\n",
			args[0], mask.Width, mask.Height, mask.Stride, len(mask.Bits))

		var b strings.Builder
		for y := 0; y < mask.Height; y++ {
			for x := 0; x < mask.Width; x++ {
				b.WriteByte(cellGlyph(mask, x, y))
			}
			b.WriteByte('\n')
		}
		fmt.Print(b.String())
		return nil
	},
}

// cellGlyph picks the preview character for one mask pixel. In thread
// mode corners render '+', edges '#', interior '.'.
func cellGlyph(mask *sigil.Mask, x, y int) byte {
	if mask.BitAt(x, y) == 0 {
		return ' '
	}
	if !showThreads {
		return '#'
	}
	if mask.IsCorner(x, y) {
		return '+'
	}
	if mask.IsEdge(x, y) {
		return '#'
	}
	return '.'
}

func main() {
	rootCmd.Flags().BoolVar(&showThreads, "threads", false, "classify edge/corner thread pixels")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
