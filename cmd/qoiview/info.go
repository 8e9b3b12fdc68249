package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	qoi "github.com/dolanor/qoiview"
	"github.com/dolanor/qoiview/internal/input"
)

var infoCmd = &cobra.Command{
	Use:   "info [QOI_IMG]",
	Short: "Print the header of a QOI image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := input.Load(args[0])
		if err != nil {
			return err
		}
		h, err := qoi.ParseHeader(data)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		printHeader(cmd.OutOrStdout(), h)
		return nil
	},
}

func printHeader(w io.Writer, h qoi.Header) {
	fmt.Fprintf(w, "width:      %d\n", h.Width)
	fmt.Fprintf(w, "height:     %d\n", h.Height)
	fmt.Fprintf(w, "channels:   %d\n", h.Channels)
	switch h.ColorSpace {
	case qoi.ColorSpaceSRGB:
		fmt.Fprintf(w, "colorspace: srgb (0x00)\n")
	case qoi.ColorSpaceLinear:
		fmt.Fprintf(w, "colorspace: linear (0x01)\n")
	default:
		fmt.Fprintf(w, "colorspace: 0x%02x\n", byte(h.ColorSpace))
	}
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
