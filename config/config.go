package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smhanov/tutor"
)

// Config describes a demo run: logging plus the sessions to play.
type Config struct {
	Logging  LoggingConfig `yaml:"logging"`
	Sessions []Session     `yaml:"sessions"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Session is one learner and the lessons asked in order.
type Session struct {
	Profile  Profile  `yaml:"profile"`
	Strategy string   `yaml:"strategy"`
	Lessons  []Lesson `yaml:"lessons"`
}

// Profile mirrors tutor.UserProfile.
type Profile struct {
	Age            int    `yaml:"age"`
	EducationLevel string `yaml:"education_level"`
}

// Lesson is a topic with its optional context values.
type Lesson struct {
	Topic   string         `yaml:"topic"`
	Context map[string]any `yaml:"context"`
	// Switch replaces the agent's strategy before this lesson.
	Switch string `yaml:"switch"`
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Load reads a session file from path. Environment variables in the form
// ${VAR_NAME} are expanded before parsing.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse parses, defaults and validates YAML content.
func Parse(data []byte) (*Config, error) {
	expanded := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in demonstration: one learner per age band, then
// a middle school learner whose strategy is switched to the child one.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Sessions: []Session{
			{Profile: Profile{Age: 7}, Lessons: []Lesson{{Topic: "adição", Context: map[string]any{"a": 2, "b": 3}}}},
			{Profile: Profile{Age: 12}, Lessons: []Lesson{{Topic: "fração"}}},
			{Profile: Profile{Age: 17}, Lessons: []Lesson{{Topic: "equação"}}},
			{
				Profile: Profile{Age: 12},
				Lessons: []Lesson{
					{Topic: "multiplicação", Context: map[string]any{"a": 3, "b": 4}},
					{Topic: "multiplicação", Context: map[string]any{"a": 3, "b": 4}, Switch: tutor.StrategyChild},
				},
			},
		},
	}
}

// expandEnvVars replaces ${VAR_NAME} with the variable's value, or with an
// empty string when it is unset.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
}

// Validate returns the first problem found, if any.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q must be text or json", c.Logging.Format)
	}

	for i, s := range c.Sessions {
		if s.Profile.Age < 0 {
			return fmt.Errorf("sessions[%d].profile.age must not be negative", i)
		}
		if s.Strategy != "" {
			if _, err := tutor.NewStrategy(s.Strategy); err != nil {
				return fmt.Errorf("sessions[%d].strategy: %w", i, err)
			}
		}
		for j, l := range s.Lessons {
			if strings.TrimSpace(l.Topic) == "" {
				return fmt.Errorf("sessions[%d].lessons[%d].topic is required", i, j)
			}
			if l.Switch != "" {
				if _, err := tutor.NewStrategy(l.Switch); err != nil {
					return fmt.Errorf("sessions[%d].lessons[%d].switch: %w", i, j, err)
				}
			}
		}
	}
	return nil
}

// SlogLevel returns the configured level; invalid values map to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging.level %q must be debug, info, warn or error", s)
	}
}

// UserProfile converts the session profile.
func (p Profile) UserProfile() tutor.UserProfile {
	return tutor.UserProfile{Age: p.Age, EducationLevel: p.EducationLevel}
}

// TeachingContext converts the lesson context.
func (l Lesson) TeachingContext() tutor.Context {
	return tutor.Context(l.Context)
}

// NewLogger builds a slog logger writing to w per the logging config.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.Logging.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
