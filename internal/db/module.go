package db

import (
	"go.uber.org/fx"
)

var (
	Module = fx.Options(
		fx.Provide(
			NewGormClient,
			NewRepository,
		),
		fx.Invoke(
			Migrate,
			closeOnStop,
		),
	)
)
