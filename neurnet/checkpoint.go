package neurnet

import (
	"compress/gzip"
	"encoding/gob"
	"fmt"
	"os"

	"golang.org/x/exp/rand"
)

// TrainerSaveData holds the parts of a Trainer needed to resume a run.
// The Config is not saved; it is reloaded from the original file.
// The random source state is not saved either, so a resumed run draws a
// different sequence than an uninterrupted one.
type TrainerSaveData struct {
	RunID      string
	Iterations int
	Accepted   int
	BestScore  float64
	History    []Improvement
	Best       Snapshot
}

// SaveNetwork writes a gzip-compressed snapshot of net to filePath.
func SaveNetwork(net *Network, filePath string) error {
	return writeGob(filePath, net.Snapshot())
}

// LoadNetwork reads a network written by SaveNetwork.
func LoadNetwork(filePath string) (*Network, error) {
	var s Snapshot
	if err := readGob(filePath, &s); err != nil {
		return nil, err
	}
	net, err := FromSnapshot(s)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild network from '%s': %w", filePath, err)
	}
	return net, nil
}

// SaveCheckpoint saves the current state of the Trainer to a file.
func (t *Trainer) SaveCheckpoint(filePath string) error {
	saveData := TrainerSaveData{
		RunID:      t.RunID,
		Iterations: t.Iterations,
		Accepted:   t.Accepted,
		BestScore:  t.BestScore,
		History:    t.History,
		Best:       t.Best.Snapshot(),
	}
	return writeGob(filePath, saveData)
}

// LoadCheckpoint restores a Trainer from a checkpoint file. It requires the
// original configuration file to rebuild the TrainerConfig.
func LoadCheckpoint(checkpointPath, configPath string, score ScoreFunc, src rand.Source) (*Trainer, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config '%s' for checkpoint: %w", configPath, err)
	}

	var saveData TrainerSaveData
	if err := readGob(checkpointPath, &saveData); err != nil {
		return nil, err
	}

	best, err := FromSnapshot(saveData.Best)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild best network from checkpoint: %w", err)
	}
	if best.InputSize() != config.Network.NumInputs || best.OutputSize() != config.Network.NumOutputs {
		return nil, fmt.Errorf("checkpoint topology %v does not match config (%d inputs, %d outputs)",
			best.Sizes(), config.Network.NumInputs, config.Network.NumOutputs)
	}

	t, err := NewTrainer(&config.Trainer, best, score, src)
	if err != nil {
		return nil, err
	}
	t.RunID = saveData.RunID
	t.Iterations = saveData.Iterations
	t.Accepted = saveData.Accepted
	t.BestScore = saveData.BestScore
	t.History = saveData.History
	return t, nil
}

// writeGob gob-encodes v into a gzip-compressed file.
func writeGob(filePath string, v any) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzWriter := gzip.NewWriter(file)
	if err := gob.NewEncoder(gzWriter).Encode(v); err != nil {
		gzWriter.Close()
		return fmt.Errorf("failed to encode '%s': %w", filePath, err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush '%s': %w", filePath, err)
	}
	return file.Close()
}

// readGob decodes a gzip-compressed gob file into v.
func readGob(filePath string, v any) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	gzReader, err := gzip.NewReader(file)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader for '%s': %w", filePath, err)
	}
	defer gzReader.Close()

	if err := gob.NewDecoder(gzReader).Decode(v); err != nil {
		return fmt.Errorf("failed to decode '%s': %w", filePath, err)
	}
	return nil
}
