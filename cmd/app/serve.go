package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/logger"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/proto"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/service"
	"github.com/Rogue-Bear-Innovations/bookmarker-api/internal/transport"
)

func appOptions() fx.Option {
	return fx.Options(
		fx.Provide(config.NewConfig),
		logger.Module,
		db.Module,
		service.Module,
		transport.Module,
		proto.Module,
	)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP and GRPC servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := fx.New(appOptions(), fx.WithLogger(logger.FxEvent))
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}
