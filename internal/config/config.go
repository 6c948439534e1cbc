package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint   = "http://localhost:8080/romannumeral"
	DefaultQueryParam = "query"
	DefaultTimeout    = 10 * time.Second
	DefaultTheme      = "auto"
	DefaultListen     = ":8080"
)

// Environment variables consulted by Load, after the config file.
const (
	EnvEndpoint   = "NUMERAL_ENDPOINT"
	EnvQueryParam = "NUMERAL_QUERY_PARAM"
	EnvTimeout    = "NUMERAL_TIMEOUT"
	EnvTheme      = "NUMERAL_THEME"
	EnvLogFile    = "NUMERAL_LOG_FILE"
	EnvListen     = "NUMERAL_LISTEN"
)

// Config holds every runtime option of the numeral binary.
type Config struct {
	Endpoint   string        `yaml:"endpoint" validate:"required,url"`
	QueryParam string        `yaml:"queryParam" validate:"required"`
	Timeout    time.Duration `yaml:"timeout" validate:"gt=0"`
	Theme      string        `yaml:"theme" validate:"oneof=auto light dark"`
	LogFile    string        `yaml:"logFile"`
	Listen     string        `yaml:"listen" validate:"required"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Endpoint:   DefaultEndpoint,
		QueryParam: DefaultQueryParam,
		Timeout:    DefaultTimeout,
		Theme:      DefaultTheme,
		Listen:     DefaultListen,
	}
}

// Load layers the YAML file at path (optional; "" skips it) and then the
// environment over the defaults. The result is not validated; callers apply
// flag overrides first and then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	c.overlay(file)
	return nil
}

func (c *Config) mergeEnv() error {
	env := Config{
		Endpoint:   os.Getenv(EnvEndpoint),
		QueryParam: os.Getenv(EnvQueryParam),
		Theme:      os.Getenv(EnvTheme),
		LogFile:    os.Getenv(EnvLogFile),
		Listen:     os.Getenv(EnvListen),
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimeout, err)
		}
		env.Timeout = d
	}
	c.overlay(env)
	return nil
}

// overlay copies every non-zero field of o onto c.
func (c *Config) overlay(o Config) {
	if o.Endpoint != "" {
		c.Endpoint = o.Endpoint
	}
	if o.QueryParam != "" {
		c.QueryParam = o.QueryParam
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.Theme != "" {
		c.Theme = strings.ToLower(o.Theme)
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	if o.Listen != "" {
		c.Listen = o.Listen
	}
}

var validate = validator.New()

// Validate checks c against its struct tags and reports every offending
// field in one error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (got %v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
