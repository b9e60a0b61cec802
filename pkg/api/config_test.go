package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadConfigFromFile(t *testing.T) {

	writeConfigFile := func(t *testing.T, contents string) string {
		path := filepath.Join(t.TempDir(), "config.yaml")
		err := os.WriteFile(path, []byte(contents), 0600)
		assert.Nil(t, err)
		return path
	}

	t.Run("ReturnsConfigFromYaml", func(t *testing.T) {

		path := writeConfigFile(t, `
devops:
  serverBaseURL: https://devops.example.com/DefaultCollection
  token: abc123
badge:
  fontFamily: Verdana
  fontSize: 11
`)

		// act
		config, err := NewConfigReader().ReadConfigFromFile(path)

		assert.Nil(t, err)
		assert.Equal(t, "https://devops.example.com/DefaultCollection", config.DevOps.ServerBaseURL)
		assert.Equal(t, "abc123", config.DevOps.Token)
		assert.Equal(t, "Verdana", config.Badge.FontFamily)
		assert.Equal(t, 11.0, config.Badge.FontSize)
	})

	t.Run("AppliesDefaultsForEmptyValues", func(t *testing.T) {

		path := writeConfigFile(t, `
devops:
  serverBaseURL: https://devops.example.com/DefaultCollection
`)

		// act
		config, err := NewConfigReader().ReadConfigFromFile(path)

		assert.Nil(t, err)
		assert.Equal(t, "Segoe UI", config.Badge.FontFamily)
		assert.Equal(t, 13.0, config.Badge.FontSize)
	})

	t.Run("OverridesValuesFromEnvironment", func(t *testing.T) {

		path := writeConfigFile(t, `
devops:
  serverBaseURL: https://devops.example.com/DefaultCollection
  token: from-file
`)
		t.Setenv("DBA_DEVOPS_TOKEN", "from-env")

		// act
		config, err := NewConfigReader().ReadConfigFromFile(path)

		assert.Nil(t, err)
		assert.Equal(t, "from-env", config.DevOps.Token)
	})

	t.Run("FailsValidationWithoutServerBaseURL", func(t *testing.T) {

		path := writeConfigFile(t, `
badge:
  fontSize: 13
`)

		// act
		_, err := NewConfigReader().ReadConfigFromFile(path)

		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "devops.serverBaseURL")
	})

	t.Run("ToleratesMissingFileWhenEnvironmentIsComplete", func(t *testing.T) {

		t.Setenv("DBA_DEVOPS_SERVER_BASE_URL", "https://devops.example.com/DefaultCollection")

		// act
		config, err := NewConfigReader().ReadConfigFromFile(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

		assert.Nil(t, err)
		assert.Equal(t, "https://devops.example.com/DefaultCollection", config.DevOps.ServerBaseURL)
	})
}
