package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/tg-mosaic/internal/config"
	"github.com/ironsheep/tg-mosaic/internal/tiler"
)

func newSplitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <image> [output-dir]",
		Short: "Cut an image into 100x100 tiles",
		Long: `Cut an image into 100x100 PNG tiles written as tile_0.png, tile_1.png, ...

The output directory is taken from the second argument, then --output, then
the "output" config key (default "tiles"). It is created if missing. Existing
tiles with the same names are overwritten; other files are left alone.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			outputDir := a.cfg.Output
			if len(args) == 2 {
				outputDir = args[1]
			}
			return a.runSplit(cmd, source, outputDir)
		},
	}

	cmd.Flags().StringP("output", "o", "", `output directory (default "tiles")`)
	_ = a.v.BindPFlag(config.KeyOutput, cmd.Flags().Lookup("output"))
	return cmd
}

func (a *app) runSplit(cmd *cobra.Command, source, outputDir string) error {
	if err := checkSourceFile(source); err != nil {
		return err
	}

	t := tiler.New(tiler.WithLogger(a.logger))
	res, err := t.Split(source, outputDir)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "created %d tiles in %s\n", res.Count, outputDir)
	return err
}

// checkSourceFile rejects paths that do not name an existing regular file,
// so the user gets a plain "file not found" instead of a decoder error.
func checkSourceFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", path)
		}
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", path)
	}
	return nil
}
