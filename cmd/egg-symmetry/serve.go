package main

import (
	"github.com/spf13/cobra"

	"github.com/ironsheep/egg-symmetry/internal/logging"
	"github.com/ironsheep/egg-symmetry/internal/server"
	"github.com/ironsheep/egg-symmetry/internal/symmetry"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP tool server on stdin/stdout",
		Long: `Run the MCP tool server. Requests are JSON-RPC 2.0, one per line on stdin;
responses go to stdout and logs to stderr. Configure it in your MCP client.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := symmetry.ParseAlgorithm(a.cfg.Algorithm)
			if err != nil {
				return err
			}
			a.log.Info("starting MCP server",
				logging.String("version", getVersion()),
				logging.String("commit", GitCommit),
			)

			srv := server.New(
				server.WithLogger(a.log),
				server.WithAlgorithm(algo),
				server.WithRendering(a.cfg.CellSize, a.cfg.Palette()),
				server.WithVersion(getVersion()),
			)
			return srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
