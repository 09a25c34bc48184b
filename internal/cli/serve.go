package cli

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/ftmap/internal/server"
)

// newServeCmd creates the serve command, which speaks MCP over stdio until
// stdin is closed.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve map rendering tools over MCP on stdin/stdout",
		Long: `Serve exposes map_render, map_preview and map_clash_boxes as MCP tools.
Requests are read from stdin one per line and responses written to stdout;
logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			logger.Info("starting MCP server", "version", version)

			srv := server.New(logger)
			if err := srv.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return err
			}
			logger.Info("stdin closed, shutting down")
			return nil
		},
	}
}
