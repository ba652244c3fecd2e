package config

import (
	stderrors "errors"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vytor/santree/internal/errors"
	"github.com/vytor/santree/internal/render"
	"github.com/vytor/santree/internal/tree"
)

type Config struct {
	LogLevel      string
	TreeLinking   string
	TreePolicy    string
	RootLabel     string
	TurnNumbers   bool
	OutputFormat  string
	MaxInputBytes int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// A missing .env is normal; the environment alone is enough.
	_ = godotenv.Load()

	return Config{
		LogLevel:      envOr("LOG_LEVEL", "INFO"),
		TreeLinking:   envOr("TREE_LINKING", "bfs"),
		TreePolicy:    envOr("TREE_POLICY", "fail-fast"),
		RootLabel:     envOr("ROOT_LABEL", tree.DefaultRootLabel),
		TurnNumbers:   envBoolOr("TURN_NUMBERS", true),
		OutputFormat:  envOr("OUTPUT_FORMAT", string(render.FormatText)),
		MaxInputBytes: envIntOr("MAX_INPUT_BYTES", 64*1024),
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errs = append(errs, errors.NewValidationError("LOG_LEVEL", "must be one of DEBUG, INFO, WARN, ERROR"))
	}
	if _, err := tree.ParseLinking(c.TreeLinking); err != nil {
		errs = append(errs, errors.NewValidationError("TREE_LINKING", "must be one of bfs, chain, spine"))
	}
	if _, err := tree.ParsePolicy(c.TreePolicy); err != nil {
		errs = append(errs, errors.NewValidationError("TREE_POLICY", "must be fail-fast or best-effort"))
	}
	if strings.TrimSpace(c.RootLabel) == "" {
		errs = append(errs, errors.NewValidationError("ROOT_LABEL", "cannot be empty"))
	}
	if _, err := render.ParseFormat(c.OutputFormat); err != nil {
		errs = append(errs, errors.NewValidationError("OUTPUT_FORMAT", "must be text or yaml"))
	}
	if c.MaxInputBytes <= 0 {
		errs = append(errs, errors.NewValidationError("MAX_INPUT_BYTES", "must be positive"))
	}

	return stderrors.Join(errs...)
}

// Linking returns the configured tree linking, falling back to breadth-first.
func (c Config) Linking() tree.Linking {
	l, _ := tree.ParseLinking(c.TreeLinking)
	return l
}

// Policy returns the configured invalid-move policy, falling back to fail-fast.
func (c Config) Policy() tree.Policy {
	p, _ := tree.ParsePolicy(c.TreePolicy)
	return p
}

// Format returns the configured output format, falling back to text.
func (c Config) Format() render.Format {
	f, _ := render.ParseFormat(c.OutputFormat)
	return f
}

// BuilderOptions returns the tree options this config describes.
func (c Config) BuilderOptions() []tree.Option {
	return []tree.Option{
		tree.WithLinking(c.Linking()),
		tree.WithPolicy(c.Policy()),
		tree.WithRootLabel(c.RootLabel),
		tree.WithTurnNumbers(c.TurnNumbers),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
