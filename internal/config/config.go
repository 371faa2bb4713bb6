package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"

	"github.com/rweekly/imagepub/internal/domain"
)

type Config struct {
	ImageRepo      string `mapstructure:"image_repo"`
	BaseURL        string `mapstructure:"base_url"`
	DraftURL       string `mapstructure:"draft_url"`
	DefaultWidth   string `mapstructure:"default_width"`
	Push           bool   `mapstructure:"push"`
	NonInteractive bool   `mapstructure:"non_interactive"`
	Remote         string `mapstructure:"remote"`
	AuthorName     string `mapstructure:"author_name"`
	AuthorEmail    string `mapstructure:"author_email"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		BaseURL:      "https://raw.githubusercontent.com/rweekly/image/master",
		DraftURL:     "https://raw.githubusercontent.com/rweekly/rweekly.org/gh-pages/draft.md",
		DefaultWidth: "600",
		Push:         true,
		Remote:       "origin",
		AuthorName:   "imagepub",
		AuthorEmail:  "imagepub@users.noreply.github.com",
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validateHTTPURL("base_url", c.BaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("draft_url", c.DraftURL); err != nil {
		return err
	}
	if _, err := domain.NormalizeWidth(c.DefaultWidth); err != nil {
		return fmt.Errorf("invalid default_width: %w", err)
	}
	if c.Remote == "" {
		return fmt.Errorf("remote cannot be empty")
	}
	if c.AuthorName == "" || c.AuthorEmail == "" {
		return fmt.Errorf("author_name and author_email cannot be empty")
	}
	return nil
}

func validateHTTPURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid %s: scheme must be http or https", key)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid %s: missing host", key)
	}
	return nil
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".imagepub")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	// Configure environment variables
	viper.SetEnvPrefix("IMAGEPUB")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Explicitly bind environment variables
	bindings := map[string][]string{
		"image_repo":      {"IMAGEPUB_IMAGE_REPO"},
		"base_url":        {"IMAGEPUB_BASE_URL"},
		"draft_url":       {"IMAGEPUB_DRAFT_URL"},
		"default_width":   {"IMAGEPUB_DEFAULT_WIDTH"},
		"push":            {"IMAGEPUB_PUSH"},
		"non_interactive": {"IMAGEPUB_NON_INTERACTIVE"},
		"remote":          {"IMAGEPUB_REMOTE"},
		"author_name":     {"IMAGEPUB_AUTHOR_NAME"},
		"author_email":    {"IMAGEPUB_AUTHOR_EMAIL"},
	}
	for key, envs := range bindings {
		args := append([]string{key}, envs...)
		if err := viper.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind %s env: %w", key, err)
		}
	}
	// Set defaults
	defaults := DefaultConfig()
	viper.SetDefault("base_url", defaults.BaseURL)
	viper.SetDefault("draft_url", defaults.DraftURL)
	viper.SetDefault("default_width", defaults.DefaultWidth)
	viper.SetDefault("push", defaults.Push)
	viper.SetDefault("non_interactive", defaults.NonInteractive)
	viper.SetDefault("remote", defaults.Remote)
	viper.SetDefault("author_name", defaults.AuthorName)
	viper.SetDefault("author_email", defaults.AuthorEmail)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}
