package common

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/armadaproject/graphbench/internal/common/logging"
)

// EnvPrefix prefixes environment variables that override configuration keys,
// e.g. GRAPHBENCH_EU_SOCIALSENSOR_DATASET overrides eu.socialsensor.dataset.
const EnvPrefix = "GRAPHBENCH"

// LoadConfig returns a new *viper.Viper holding the configuration named "config" found in defaultPath
// (any format viper supports, including Java .properties), with userSpecifiedConfigs merged over it in order.
// The default file may be absent; user specified files must exist.
func LoadConfig(defaultPath string, userSpecifiedConfigs []string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(defaultPath)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrapf(err, "reading default configuration from %s", defaultPath)
		}
		log.Debugf("no default configuration found in %s", defaultPath)
	} else {
		log.Infof("Read base config from %s", v.ConfigFileUsed())
	}

	for _, path := range userSpecifiedConfigs {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, errors.Wrapf(err, "merging configuration from %s", path)
		}
		log.Infof("Merged config from %s", path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v, nil
}

// ConfigureLogging sets up the standard logrus logger. format is one of "text", "json" or "plain";
// level is any level understood by logrus.ParseLevel.
func ConfigureLogging(format string, level string) error {
	parsedLevel, err := log.ParseLevel(level)
	if err != nil {
		return errors.WithStack(err)
	}

	switch format {
	case "text", "":
		log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "plain":
		log.SetFormatter(&logging.CommandLineFormatter{})
	default:
		return errors.Errorf("unknown log format %q; valid formats are text, json and plain", format)
	}
	log.SetLevel(parsedLevel)
	log.SetOutput(os.Stderr)
	return nil
}
