package main

import (
	"fmt"

	"github.com/spf13/cobra"

	qoi "github.com/dolanor/qoiview"
)

var chunksLimit int

var chunksCmd = &cobra.Command{
	Use:   "chunks [QOI_IMG]",
	Short: "Print how the decoded pixels split into row chunks for transfer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := load(args[0], qoi.ChannelsRGBA)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		chunks := m.RowChunks(chunksLimit)
		fmt.Fprintf(w, "%dx%d, %d bytes in %d chunk(s)\n", m.Width, m.Height, len(m.Pix), len(chunks))
		for _, c := range chunks {
			fmt.Fprintf(w, "y=%d rows=%d bytes=%d\n", c.OffsetY, c.Rows, len(c.Pix))
		}
		return nil
	},
}

func init() {
	chunksCmd.Flags().IntVarP(&chunksLimit, "limit", "l", qoi.DefaultChunkLimit, "maximum chunk size in bytes")
	rootCmd.AddCommand(chunksCmd)
}
