// qoiview inspects QOI images and converts them to other formats.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	qoi "github.com/dolanor/qoiview"
	"github.com/dolanor/qoiview/internal/input"
)

var rootCmd = &cobra.Command{
	Use:           "qoiview",
	Short:         "Inspect and convert QOI images",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("qoiview: ")

	if err := rootCmd.Execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// load reads and decodes the QOI file at path.
func load(path string, channels qoi.Channels) (*qoi.Image, error) {
	data, err := input.Load(path)
	if err != nil {
		return nil, err
	}

	m, err := qoi.DecodeBytes(data, channels)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
