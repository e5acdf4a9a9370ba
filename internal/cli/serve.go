package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/tg-mosaic/internal/server"
	"github.com/ironsheep/tg-mosaic/internal/tiler"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server on stdin/stdout",
		Long: `Run an MCP (Model Context Protocol) server on stdin/stdout exposing the
image_tile and image_tile_plan tools. Logs are written to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server.Version = Version
			srv := server.New(tiler.New(tiler.WithLogger(a.logger)), a.logger)

			a.logger.Debug().Str("version", Version).Msg("serving MCP on stdio")
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
