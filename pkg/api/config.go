package api

import (
	"github.com/pkg/errors"
)

// APIConfig represents the configuration for the entire api application
type APIConfig struct {
	DevOps *DevOpsConfig `yaml:"devops,omitempty"`
	Badge  *BadgeConfig  `yaml:"badge,omitempty"`
}

func (c *APIConfig) SetDefaults() {
	if c.DevOps == nil {
		c.DevOps = &DevOpsConfig{}
	}

	if c.Badge == nil {
		c.Badge = &BadgeConfig{}
	}
	c.Badge.SetDefaults()
}

func (c *APIConfig) Validate() (err error) {
	if c.DevOps.ServerBaseURL == "" {
		return errors.New("configuration item devops.serverBaseURL is required; set it in the config file or via DBA_DEVOPS_SERVER_BASE_URL")
	}
	if c.Badge.FontSize <= 0 {
		return errors.New("configuration item badge.fontSize must be a positive number")
	}

	return nil
}

// DevOpsConfig configures access to the upstream build server
type DevOpsConfig struct {
	// ServerBaseURL is the root url of the build server collection, e.g.
	// https://devops.example.com/DefaultCollection
	ServerBaseURL string `yaml:"serverBaseURL,omitempty" env:"DEVOPS_SERVER_BASE_URL"`
	// Token is a personal access token with read access to builds, test
	// results and agent pools
	Token string `yaml:"token,omitempty" env:"DEVOPS_TOKEN"`
}

// BadgeConfig configures the badge layout engine
type BadgeConfig struct {
	FontFamily string  `yaml:"fontFamily,omitempty" env:"BADGE_FONT_FAMILY"`
	FontSize   float64 `yaml:"fontSize,omitempty" env:"BADGE_FONT_SIZE"`
}

func (c *BadgeConfig) SetDefaults() {
	if c.FontFamily == "" {
		c.FontFamily = "Segoe UI"
	}
	if c.FontSize == 0 {
		c.FontSize = 13
	}
}
