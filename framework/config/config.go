package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment values cannot be parsed.
var ErrParsingConfig = errors.New("config: failed to parse environment")

// Config is the central typed configuration struct.
type Config struct {
	App      AppConfig
	Auth     AuthConfig
	Log      LogConfig
	View     ViewConfig
	Dispatch DispatchConfig
}

type AppConfig struct {
	Name  string `env:"APP_NAME" envDefault:"Xmf"`
	Env   string `env:"APP_ENV" envDefault:"local"` // local | production | testing
	Debug bool   `env:"APP_DEBUG" envDefault:"true"`
	URL   string `env:"APP_URL" envDefault:"http://localhost"`
	Port  string `env:"APP_PORT" envDefault:"8000"`
}

// AuthConfig lists API tokens as token=privilege|privilege pairs.
//
//	APP_TOKENS="abc123=shop:checkout,readonly="
type AuthConfig struct {
	Tokens map[string]string `env:"APP_TOKENS" envSeparator:"," envKeyValSeparator:"="`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`  // debug | info | warn | error
	Format string `env:"LOG_FORMAT" envDefault:"text"` // text | json
}

type ViewConfig struct {
	Dir string `env:"VIEW_DIR" envDefault:"./views"`
	Ext string `env:"VIEW_EXT" envDefault:".html"`
}

// DispatchConfig controls the action controller.
type DispatchConfig struct {
	DefaultUnit   string `env:"DISPATCH_DEFAULT_UNIT" envDefault:"default"`
	DefaultAction string `env:"DISPATCH_DEFAULT_ACTION" envDefault:"Index"`
	SecureUnit    string `env:"DISPATCH_SECURE_UNIT" envDefault:"default"`
	SecureAction  string `env:"DISPATCH_SECURE_ACTION" envDefault:"Login"`
	MaxForwards   int    `env:"DISPATCH_MAX_FORWARDS" envDefault:"8"`
	RulesDir      string `env:"DISPATCH_RULES_DIR" envDefault:"./rules"`
}

// Load reads .env (if present) and populates a Config from environment variables.
// Variables already set in the process environment win over file values.
//
//	cfg, err := config.Load()
//	cfg, err := config.Load(".env", ".env.local")
func Load(envFiles ...string) (*Config, error) {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Join(ErrParsingConfig, err)
	}
	if cfg.Dispatch.MaxForwards < 1 {
		return nil, fmt.Errorf("%w: DISPATCH_MAX_FORWARDS must be positive, got %d",
			ErrParsingConfig, cfg.Dispatch.MaxForwards)
	}
	return cfg, nil
}

// MustLoad is like Load but panics on error.
func MustLoad(envFiles ...string) *Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(err)
	}
	return cfg
}

func (c *Config) IsProduction() bool { return c.App.Env == "production" }
func (c *Config) IsTesting() bool    { return c.App.Env == "testing" }
