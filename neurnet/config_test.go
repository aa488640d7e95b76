package neurnet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

const halveConfig = `
[Network]
num_inputs   = 3
num_outputs  = 3
hidden_sizes = 2 2 2

[Trainer]
mutation_effect     = 0.5
neuron_mutate_prob  = 0.25
score_threshold     = 0.001
max_iterations      = 0   ; 0 = unlimited
seed                = 1
checkpoint_interval = 25
`

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, halveConfig))
	require.NoError(t, err)

	assert.Equal(t, NetworkConfig{NumInputs: 3, NumOutputs: 3, HiddenSizes: []int{2, 2, 2}}, config.Network)
	assert.Equal(t, TrainerConfig{
		MutationEffect:     0.5,
		NeuronMutateProb:   0.25,
		ScoreThreshold:     0.001,
		MaxIterations:      0,
		Seed:               1,
		CheckpointInterval: 25,
	}, config.Trainer)
}

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `
[Network]
num_inputs  = 1
num_outputs = 2
`))
	require.NoError(t, err)

	assert.Empty(t, config.Network.HiddenSizes)
	assert.Equal(t, DefaultTrainerConfig(), config.Trainer)
}

func TestLoadConfigEmptyHiddenSizes(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `
[Network]
num_inputs   = 2
num_outputs  = 2
hidden_sizes =
`))
	require.NoError(t, err)
	assert.Empty(t, config.Network.HiddenSizes)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"missing inputs", "[Network]\nnum_outputs = 1\n"},
		{"zero outputs", "[Network]\nnum_inputs = 1\nnum_outputs = 0\n"},
		{"zero hidden", "[Network]\nnum_inputs = 1\nnum_outputs = 1\nhidden_sizes = 2 0\n"},
		{"effect too large", "[Network]\nnum_inputs = 1\nnum_outputs = 1\n[Trainer]\nmutation_effect = 1.5\n"},
		{"negative probability", "[Network]\nnum_inputs = 1\nnum_outputs = 1\n[Trainer]\nneuron_mutate_prob = -0.1\n"},
		{"negative threshold", "[Network]\nnum_inputs = 1\nnum_outputs = 1\n[Trainer]\nscore_threshold = -1\n"},
		{"negative iterations", "[Network]\nnum_inputs = 1\nnum_outputs = 1\n[Trainer]\nmax_iterations = -5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestNetworkConfigBuild(t *testing.T) {
	nc := NetworkConfig{NumInputs: 3, NumOutputs: 3, HiddenSizes: []int{2, 2, 2}}
	tc := DefaultTrainerConfig()

	net, err := nc.Build(tc.NewSource())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 2, 2, 3}, net.Sizes())

	again, err := nc.Build(tc.NewSource())
	require.NoError(t, err)
	assert.Equal(t, net.Snapshot(), again.Snapshot())
}
