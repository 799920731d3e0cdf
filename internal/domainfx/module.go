package domainfx

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(RuleLoader),
	fx.Provide(LoadRules),
	fx.Provide(Scanner),
	fx.Provide(AgeResolver),
	fx.Provide(Engine),
	fx.Provide(Executor),
	fx.Provide(Rotator),
	fx.Invoke(RunRotator),
)
