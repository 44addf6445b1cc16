package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/drafts/internal/draft"
)

// Log formats.
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Drafts DraftsConfig      `yaml:"drafts"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	return c.Drafts.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel  slog.Level `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	if c.LogFormat == "" {
		c.LogFormat = LogFormatJSON
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogFormat, validation.In(LogFormatJSON, LogFormatText)),
	)
}

// DraftsConfig controls where drafts are created.
//
// Readme decides what happens to an existing README.md:
//   - "keep" (default): leave it untouched.
//   - "truncate": replace it with an empty file.
type DraftsConfig struct {
	Dir    string `yaml:"dir"`
	Readme string `yaml:"readme"`
}

// Validate validates the drafts configuration.
func (c *DraftsConfig) Validate() error {
	if c.Readme == "" {
		c.Readme = draft.ReadmeKeep
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.Readme, validation.Required, validation.In(draft.ReadmeKeep, draft.ReadmeTruncate)),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel:  slog.LevelWarn,
			LogFormat: LogFormatJSON,
		},
		Drafts: DraftsConfig{
			Dir:    "drafts",
			Readme: draft.ReadmeKeep,
		},
	}
}
