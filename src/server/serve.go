package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/veedubyou/castel-site/src/server/application"
)

func newServeCommand() *cobra.Command {
	var withLocalServices bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the website",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := application.NewApp(appConfig(withLocalServices))

			errChan := make(chan error, 1)
			go func() {
				errChan <- app.Start()
			}()

			select {
			case err := <-errChan:
				return err

			case <-ctx.Done():
				log.Info("Shutting down")
				if err := app.Stop(); err != nil {
					return err
				}

				return context.Cause(ctx)
			}
		},
	}

	cmd.Flags().BoolVar(&withLocalServices, "local-services", false,
		"In development, also use the local cloud storage, RabbitMQ and Redis")

	return cmd
}
