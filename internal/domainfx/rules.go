package domainfx

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/yurykabanov/rotator/pkg/config"
	"github.com/yurykabanov/rotator/pkg/domain"
)

const (
	ConfigRulesPath    = "config"
	ConfigGlobalDryRun = "dry-run"
)

func RuleLoader(logger *logrus.Logger) *config.Loader {
	return config.NewLoader(logger, nil)
}

func LoadRules(v *viper.Viper, loader *config.Loader) ([]domain.Rule, error) {
	path := v.GetString(ConfigRulesPath)
	if path == "" {
		return nil, errors.New("usage: a rule file or directory must be provided via --config")
	}

	rules, err := loader.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "Unable to load rules")
	}

	return rules, nil
}
