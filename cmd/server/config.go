package main

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

// serverConfig is read from the environment; flags override it
type serverConfig struct {
	Port      int    `env:"POKEDEX_PORT"       envDefault:"50051"`
	LogLevel  string `env:"POKEDEX_LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"POKEDEX_LOG_FORMAT" envDefault:"text"`

	PokeAPIBaseURL string        `env:"POKEDEX_POKEAPI_BASE_URL" envDefault:"https://pokeapi.co/api/v2/"`
	HTTPTimeout    time.Duration `env:"POKEDEX_HTTP_TIMEOUT"     envDefault:"30s"`
	MaxConcurrency int           `env:"POKEDEX_MAX_CONCURRENCY"`
	MaxChainDepth  int           `env:"POKEDEX_MAX_CHAIN_DEPTH"`
	RegionsFile    string        `env:"POKEDEX_REGIONS_FILE"`

	RedisURL      string        `env:"POKEDEX_REDIS_URL"`
	SessionTTL    time.Duration `env:"POKEDEX_SESSION_TTL"       envDefault:"30m"`
	MaxNavDepth   int           `env:"POKEDEX_MAX_NAV_DEPTH"`
	ShutdownGrace time.Duration `env:"POKEDEX_SHUTDOWN_GRACE"    envDefault:"30s"`

	OTelEndpoint    string  `env:"POKEDEX_OTEL_ENDPOINT"`
	OTelSampleRatio float64 `env:"POKEDEX_OTEL_SAMPLE_RATIO"`
}

// loadConfig parses the environment then applies any flags the user set
func loadConfig(cmd *cobra.Command) (*serverConfig, error) {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment").
			WithFailure(errors.FailureConfig)
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port = grpcPort
	}
	if flags.Changed("redis") {
		cfg.RedisURL = redisURL
	}
	if flags.Changed("regions-file") {
		cfg.RegionsFile = regionsFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges the components do not check themselves
func (c *serverConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Port < 1 || c.Port > 65535 {
		vb.Field("Port", "must be between 1 and 65535")
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Field("LogLevel", err.Error())
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		vb.Field("LogFormat", "must be text or json")
	}
	if c.SessionTTL <= 0 {
		vb.Field("SessionTTL", "must be positive")
	}
	if err := vb.Build(); err != nil {
		return errors.Wrap(err, "invalid server config").WithFailure(errors.FailureConfig)
	}
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}

// newLogger builds the process logger from the config
func newLogger(w io.Writer, cfg *serverConfig) *slog.Logger {
	level, _ := parseLevel(cfg.LogLevel) // validated in loadConfig

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
