package api

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-envconfig"
	yaml "gopkg.in/yaml.v2"
)

// ConfigReader reads the api config from file
type ConfigReader interface {
	ReadConfigFromFile(configPath string) (*APIConfig, error)
}

// NewConfigReader returns a new api.ConfigReader
func NewConfigReader() ConfigReader {
	return &configReaderImpl{}
}

type configReaderImpl struct{}

// ReadConfigFromFile is used to read configuration from a file set from a configmap
func (h *configReaderImpl) ReadConfigFromFile(configPath string) (config *APIConfig, err error) {

	log.Info().Msgf("Reading %v file...", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return config, err
		}
		// allow running from environment variables only
		log.Warn().Msgf("Config file %v does not exist, continuing with environment variables only", configPath)
	}

	// unmarshal into structs
	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, err
	}
	if config == nil {
		config = &APIConfig{}
	}

	// override values from envvars
	lookuper := envconfig.PrefixLookuper("DBA_", envconfig.OsLookuper())
	if err = envconfig.ProcessWith(context.Background(), config, lookuper); err != nil {
		return
	}

	// fill in all the defaults for empty values
	config.SetDefaults()

	// validate the config
	err = config.Validate()
	if err != nil {
		return
	}

	log.Info().Msgf("Finished reading %v file successfully", configPath)

	return
}
