package configfx

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "rotator"
)

func ViperProvider(flagSet *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	err := v.BindPFlags(flagSet)
	if err != nil {
		return nil, err
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("database.dsn", "./rotator.db?parseTime=true")
	v.SetDefault("database.migrations", "file://migrations/")

	return v, nil
}
