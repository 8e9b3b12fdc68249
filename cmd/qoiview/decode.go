package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	qoi "github.com/dolanor/qoiview"
	"github.com/dolanor/qoiview/internal/export"
)

var (
	decodeOutput   string
	decodeFormat   string
	decodeChannels uint8
)

var decodeCmd = &cobra.Command{
	Use:   "decode [QOI_IMG]",
	Short: "Decode a QOI image and save it as PNG, BMP or TIFF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		format := export.FormatFromPath(decodeOutput)
		if decodeFormat != "" {
			f, err := export.ParseFormat(decodeFormat)
			if err != nil {
				return err
			}
			format = f
		}

		out := decodeOutput
		if out == "" {
			out = outputPath(path, format)
		}

		m, err := load(path, qoi.Channels(decodeChannels))
		if err != nil {
			return err
		}

		if err := writeImage(out, m.NRGBA(), format); err != nil {
			return err
		}

		log.Printf("decoded %s (%dx%d) to %s", path, m.Width, m.Height, out)
		return nil
	},
}

// writeImage encodes m into a new file at out. The file is removed if
// encoding fails.
func writeImage(out string, m image.Image, format export.Format) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}

	if err := export.Encode(f, m, format); err != nil {
		f.Close()
		os.Remove(out)
		return fmt.Errorf("%s: %w", out, err)
	}
	return f.Close()
}

// outputPath replaces the extensions of path, including a trailing
// compression suffix, with the one for format.
func outputPath(path string, format export.Format) string {
	base := path
	for _, ext := range []string{".zst", ".gz", ".qoi"} {
		if strings.EqualFold(filepath.Ext(base), ext) {
			base = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	return base + format.Ext()
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "output file (default: input with the format's extension)")
	decodeCmd.Flags().StringVarP(&decodeFormat, "format", "f", "", "output format: png, bmp or tiff (default: from --output, else png)")
	decodeCmd.Flags().Uint8VarP(&decodeChannels, "channels", "c", 0, "decode to 3 or 4 channels (default: as stored)")
	rootCmd.AddCommand(decodeCmd)
}
