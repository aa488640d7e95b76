package neurnet

import (
	"fmt"
	"strings"

	"golang.org/x/exp/rand"
	"gopkg.in/ini.v1"
)

// Config stores the configuration parameters for building and training a network.
type Config struct {
	Network NetworkConfig
	Trainer TrainerConfig
}

// NetworkConfig holds the topology of the seed network.
type NetworkConfig struct {
	NumInputs   int   `ini:"num_inputs"`
	NumOutputs  int   `ini:"num_outputs"`
	HiddenSizes []int `ini:"hidden_sizes" delim:" "` // Space-separated list, may be empty
}

// TrainerConfig holds parameters of the mutate-and-select loop.
type TrainerConfig struct {
	MutationEffect     float64 `ini:"mutation_effect"`     // Default: 0.5
	NeuronMutateProb   float64 `ini:"neuron_mutate_prob"`  // Default: 0.25
	ScoreThreshold     float64 `ini:"score_threshold"`     // Default: 0.001
	MaxIterations      int     `ini:"max_iterations"`      // 0 means no limit
	Seed               int64   `ini:"seed"`                // Seed for the random source
	CheckpointInterval int     `ini:"checkpoint_interval"` // Accepted replacements between checkpoints, 0 disables
}

// DefaultTrainerConfig returns the settings of the original f(x) = 0.5x run.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		MutationEffect:   0.5,
		NeuronMutateProb: DefaultNeuronMutateProb,
		ScoreThreshold:   0.001,
		Seed:             1,
	}
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return parseConfig(cfg)
}

// parseConfig maps the sections of a loaded INI file, applies defaults and validates.
func parseConfig(cfg *ini.File) (*Config, error) {
	config := &Config{Trainer: DefaultTrainerConfig()}

	// Inline comments are kept by the loader; strip them before the typed
	// keys are parsed.
	for _, section := range cfg.Sections() {
		for _, key := range section.Keys() {
			key.SetValue(cleanIniString(key.Value()))
		}
	}

	if err := cfg.Section("Network").MapTo(&config.Network); err != nil {
		return nil, fmt.Errorf("failed to map [Network] section: %w", err)
	}
	if err := cfg.Section("Trainer").MapTo(&config.Trainer); err != nil {
		return nil, fmt.Errorf("failed to map [Trainer] section: %w", err)
	}

	// An empty hidden_sizes value means no hidden layers.
	if key, err := cfg.Section("Network").GetKey("hidden_sizes"); err == nil && key.Value() == "" {
		config.Network.HiddenSizes = nil
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Network.NumInputs <= 0 {
		return fmt.Errorf("config error: num_inputs must be positive")
	}
	if c.Network.NumOutputs <= 0 {
		return fmt.Errorf("config error: num_outputs must be positive")
	}
	for i, size := range c.Network.HiddenSizes {
		if size <= 0 {
			return fmt.Errorf("config error: hidden_sizes[%d] must be positive, got %d", i, size)
		}
	}
	if c.Trainer.MutationEffect < 0 || c.Trainer.MutationEffect > 1 {
		return fmt.Errorf("config error: mutation_effect must be between 0 and 1")
	}
	if c.Trainer.NeuronMutateProb < 0 || c.Trainer.NeuronMutateProb > 1 {
		return fmt.Errorf("config error: neuron_mutate_prob must be between 0 and 1")
	}
	if c.Trainer.ScoreThreshold < 0 {
		return fmt.Errorf("config error: score_threshold cannot be negative")
	}
	if c.Trainer.MaxIterations < 0 {
		return fmt.Errorf("config error: max_iterations cannot be negative")
	}
	if c.Trainer.CheckpointInterval < 0 {
		return fmt.Errorf("config error: checkpoint_interval cannot be negative")
	}
	return nil
}

// Build creates a freshly randomized network with the configured topology.
func (nc *NetworkConfig) Build(src rand.Source) (*Network, error) {
	return New(src, nc.NumInputs, nc.NumOutputs, nc.HiddenSizes...)
}

// NewSource returns the random source seeded from the trainer configuration.
func (tc *TrainerConfig) NewSource() rand.Source {
	return rand.NewSource(uint64(tc.Seed))
}

// cleanIniString removes inline comments and trims whitespace from a string read from INI.
func cleanIniString(s string) string {
	if idx := strings.IndexAny(s, "#;"); idx != -1 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
