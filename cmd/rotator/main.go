package main

import (
	"time"

	"go.uber.org/fx"

	"github.com/yurykabanov/rotator/internal/configfx"
	"github.com/yurykabanov/rotator/internal/domainfx"
	"github.com/yurykabanov/rotator/internal/loggerfx"
	"github.com/yurykabanov/rotator/internal/sqlfx"
)

func main() {
	logger := loggerfx.Logger()

	app := fx.New(
		fx.StartTimeout(15*time.Second),
		fx.StopTimeout(15*time.Second),

		fx.Logger(logger),

		loggerfx.Module,
		configfx.Module,
		sqlfx.Module,
		domainfx.Module,
	)

	app.Run()
}
