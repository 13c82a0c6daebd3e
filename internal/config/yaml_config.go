package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the plans.yaml file.
// Plan shapes and admin lists change more often than code ships, so
// they live in YAML rather than env vars.
type YAMLConfig struct {
	Plans         PlansConfig `yaml:"plans"`
	AdminEmails   []string    `yaml:"admin_emails"`
	ExampleTopics []string    `yaml:"example_topics"`
}

// PlansConfig defines the per-plan keyword counts.
type PlansConfig struct {
	Free PlanConfig `yaml:"free"`
	Pro  PlanConfig `yaml:"pro"`
}

// PlanConfig defines one plan.
type PlanConfig struct {
	KeywordCount int    `yaml:"keyword_count"`
	PriceLabel   string `yaml:"price_label,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "plans.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "plans.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FreeKeywordCount returns the free-plan keyword count, defaulting to 30.
func (c *YAMLConfig) FreeKeywordCount() int {
	if c == nil || c.Plans.Free.KeywordCount <= 0 {
		return 30
	}
	return c.Plans.Free.KeywordCount
}

// ProKeywordCount returns the pro-plan keyword count, defaulting to 50.
func (c *YAMLConfig) ProKeywordCount() int {
	if c == nil || c.Plans.Pro.KeywordCount <= 0 {
		return 50
	}
	return c.Plans.Pro.KeywordCount
}

// Admins returns the configured admin email list.
func (c *YAMLConfig) Admins() []string {
	if c == nil {
		return nil
	}
	return c.AdminEmails
}

// Topics returns the example topics shown on the generate page.
func (c *YAMLConfig) Topics() []string {
	if c == nil {
		return nil
	}
	return c.ExampleTopics
}
