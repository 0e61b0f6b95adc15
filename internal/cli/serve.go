package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mcoot/inarow/internal/api"
	"github.com/mcoot/inarow/internal/factory"
)

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			httpCfg := settings.HTTP
			if cmd.Flags().Changed("host") {
				httpCfg.Host = host
			}
			if cmd.Flags().Changed("port") {
				httpCfg.Port = port
			}

			logger := settings.NewLogger(cmd.ErrOrStderr())

			app, err := factory.New(factory.Config{
				Rules:  settings.Rules(),
				Logger: logger,
			})
			if err != nil {
				return err
			}

			router := api.NewRouter(api.RouterConfig{
				Logger:           logger,
				Rules:            app.Rules,
				LineService:      app.LineService,
				EvaluatorService: app.EvaluatorService,
				GameController:   app.GameController,
			})

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			server := api.NewServer(router, api.ServerConfigFrom(httpCfg), logger)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (env: INAROW_HTTP_HOST)")
	cmd.Flags().IntVar(&port, "port", 0, "Listen port (env: INAROW_HTTP_PORT)")

	return cmd
}
