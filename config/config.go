// File: config.go
// Role: The Config struct, its defaults → file → env → validate layering,
//       and Build, which turns a validated Config into a policy and sink.

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/netknit/netknit/core"
	"github.com/netknit/netknit/lexicon"
	"github.com/netknit/netknit/record"
	"github.com/netknit/netknit/selection"
)

// Policy names accepted by Config.Policy.
const (
	PolicyExhaustive = "exhaustive"
	PolicyStochastic = "stochastic"
)

var (
	// ErrUnknownPolicy is returned when Config.Policy names neither
	// built-in policy.
	ErrUnknownPolicy = errors.New("config: unknown policy")

	// ErrInvalidConfig is returned by Validate for impossible values.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is one search run's configuration. Build it through Load (or start
// from Default and fill fields), then hand it to Build.
type Config struct {
	// Policy selects the strategy: "exhaustive" or "stochastic".
	Policy string `yaml:"policy"`

	// Seed fixes the stochastic policy's random stream.
	Seed uint64 `yaml:"seed"`

	// WeightKey names the section attribute holding selection weights;
	// empty means uniform draws.
	WeightKey string `yaml:"weight_key"`

	// Solutions is an optional SQLite path for persisted solutions; empty
	// records in memory.
	Solutions string `yaml:"solutions"`

	// Limits is the tunables block handed to the policy.
	Limits selection.Limits `yaml:"limits"`
}

// Default returns the canonical configuration: exhaustive policy, seed 1,
// no weight key, in-memory recording, DefaultLimits.
func Default() Config {
	return Config{
		Policy: PolicyExhaustive,
		Seed:   1,
		Limits: selection.DefaultLimits(),
	}
}

// Load layers a run configuration: Default, then the YAML file at path (a
// missing file is fine, an empty path skips the file layer), then NETKNIT_*
// environment variables, then Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile merges the YAML document at path into cfg. Unknown fields fail
// loudly; a file that does not exist leaves cfg untouched.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return nil
}

// loadEnv overrides cfg from NETKNIT_* variables. Values that fail to parse
// are skipped; Validate runs after layering either way.
func loadEnv(cfg *Config) {
	if v := os.Getenv("NETKNIT_POLICY"); v != "" {
		cfg.Policy = v
	}
	if v := os.Getenv("NETKNIT_SEED"); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = u
		}
	}
	if v := os.Getenv("NETKNIT_WEIGHT_KEY"); v != "" {
		cfg.WeightKey = v
	}
	if v := os.Getenv("NETKNIT_SOLUTIONS"); v != "" {
		cfg.Solutions = v
	}
	if v := os.Getenv("NETKNIT_MAX_SOLUTIONS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxSolutions = i
		}
	}
	if v := os.Getenv("NETKNIT_ALLOW_SELF"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Limits.AllowSelfConnections = b
		}
	}
	if v := os.Getenv("NETKNIT_MAX_PAIR_LINKS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxPairLinks = i
		}
	}
	if v := os.Getenv("NETKNIT_MAX_NETWORK_SIZE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxNetworkSize = i
		}
	}
	if v := os.Getenv("NETKNIT_MAX_DEPTH"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Limits.MaxDepth = i
		}
	}
}

// Validate rejects unknown policy names and negative limits.
func (c Config) Validate() error {
	switch c.Policy {
	case PolicyExhaustive, PolicyStochastic:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPolicy, c.Policy)
	}
	switch {
	case c.Limits.MaxSolutions < 0:
		return fmt.Errorf("%w: max_solutions %d", ErrInvalidConfig, c.Limits.MaxSolutions)
	case c.Limits.MaxPairLinks < 0:
		return fmt.Errorf("%w: max_pair_links %d", ErrInvalidConfig, c.Limits.MaxPairLinks)
	case c.Limits.MaxNetworkSize < 0:
		return fmt.Errorf("%w: max_network_size %d", ErrInvalidConfig, c.Limits.MaxNetworkSize)
	case c.Limits.MaxDepth < 0:
		return fmt.Errorf("%w: max_depth %d", ErrInvalidConfig, c.Limits.MaxDepth)
	}
	return nil
}

// Build assembles a ready policy and its sink from a validated Config: a
// record.Store when Solutions names a path, a record.Memory otherwise. The
// caller owns the sink; close it when it is a Store.
func Build(cfg Config, space *core.Space, lex *lexicon.Lexicon) (selection.Policy, record.Sink, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	// 1. Pick the sink.
	var sink record.Sink
	if cfg.Solutions != "" {
		st, err := record.OpenStore(cfg.Solutions)
		if err != nil {
			return nil, nil, err
		}
		sink = st
	} else {
		sink = record.NewMemory()
	}

	// 2. Assemble the policy around it.
	switch cfg.Policy {
	case PolicyExhaustive:
		pol, err := selection.NewExhaustive(space, lex,
			selection.WithLimits(cfg.Limits),
			selection.WithSink(sink))
		if err != nil {
			return nil, nil, err
		}
		return pol, sink, nil
	case PolicyStochastic:
		pol, err := selection.NewStochastic(space, lex,
			selection.WithLimits(cfg.Limits),
			selection.WithSink(sink),
			selection.WithSeed(cfg.Seed),
			selection.WithWeightKey(cfg.WeightKey))
		if err != nil {
			return nil, nil, err
		}
		return pol, sink, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, cfg.Policy)
}
