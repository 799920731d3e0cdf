package domainfx

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.uber.org/fx"

	"github.com/yurykabanov/rotator/pkg/domain"
	"github.com/yurykabanov/rotator/pkg/scan"
)

func Scanner() *scan.Scanner {
	return scan.New()
}

func AgeResolver() domain.AgeResolver {
	return domain.NewFileAgeResolver()
}

func Engine(scanner *scan.Scanner, resolver domain.AgeResolver) *domain.Engine {
	return domain.NewEngine(scanner, resolver)
}

func Executor(logger *logrus.Logger) *domain.Executor {
	return domain.NewExecutor(logger)
}

func Rotator(
	logger *logrus.Logger,
	v *viper.Viper,
	rules []domain.Rule,
	engine *domain.Engine,
	executor *domain.Executor,
	outcomes domain.OutcomeRepository,
) *domain.Rotator {
	return domain.NewRotator(logger, rules, v.GetBool(ConfigGlobalDryRun), engine, executor, outcomes)
}

// RunRotator performs a single rotation pass and then asks the app to shut
// down: there is no daemon mode, every invocation is one pass.
func RunRotator(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *logrus.Logger, rotator *domain.Rotator) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				outcomes := rotator.Run(context.Background())

				logger.WithField("total_outcomes", len(outcomes)).Info("Rotation pass finished")

				if err := shutdowner.Shutdown(); err != nil {
					logger.WithError(err).Error("Unable to shut down cleanly")
				}
			}()

			return nil
		},
	})
}
