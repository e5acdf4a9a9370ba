package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tg-mosaic/internal/tiler"
)

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <image>",
		Short: "Show how an image would be tiled without writing files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkSourceFile(args[0]); err != nil {
				return err
			}

			layout, err := tiler.New(tiler.WithLogger(a.logger)).Plan(args[0])
			if err != nil {
				return err
			}

			resized := "unchanged"
			if layout.Resized {
				resized = "resized"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 1, ' ', 0)
			fmt.Fprintf(w, "source:\t%dx%d\n", layout.SourceWidth, layout.SourceHeight)
			fmt.Fprintf(w, "normalized:\t%dx%d (%s)\n", layout.Width, layout.Height, resized)
			fmt.Fprintf(w, "tiles:\t%d\n", layout.Count)
			fmt.Fprintf(w, "last tile:\t%dpx wide\n", layout.LastWidth)
			return w.Flush()
		},
	}
}
