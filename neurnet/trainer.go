package neurnet

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// ErrNotConverged is returned by Run when MaxIterations is reached before the
// best score drops to the threshold.
var ErrNotConverged = errors.New("training did not converge")

// Improvement records one accepted replacement of the focus network.
type Improvement struct {
	Iteration int
	Score     float64
}

// Trainer runs a (1+1) random search: it clones the focus network, mutates the
// clone, scores it and keeps it only when the score strictly improves.
type Trainer struct {
	Config     *TrainerConfig
	Best       *Network // Focus network, the best candidate found so far
	BestScore  float64  // +Inf until the first candidate is accepted
	Iterations int      // Candidates evaluated
	Accepted   int      // Candidates that replaced the focus network
	History    []Improvement
	RunID      string

	// OnImprove is called after every accepted replacement.
	OnImprove func(t *Trainer)
	// Logger receives one progress line per accepted replacement. Nil disables logging.
	Logger *log.Logger

	score ScoreFunc
	src   rand.Source
}

// NewTrainer creates a Trainer around a seed network.
func NewTrainer(config *TrainerConfig, seed *Network, score ScoreFunc, src rand.Source) (*Trainer, error) {
	if config == nil {
		return nil, fmt.Errorf("trainer config is nil")
	}
	if seed == nil {
		return nil, fmt.Errorf("seed network is nil")
	}
	if score == nil {
		return nil, fmt.Errorf("score function is nil")
	}
	if src == nil {
		return nil, fmt.Errorf("random source is nil")
	}
	return &Trainer{
		Config:    config,
		Best:      seed,
		BestScore: math.Inf(1),
		RunID:     uuid.NewString(),
		score:     score,
		src:       src,
	}, nil
}

// Converged reports whether the best score has reached the threshold.
func (t *Trainer) Converged() bool {
	return t.BestScore <= t.Config.ScoreThreshold
}

// Step evaluates one mutated clone of the focus network and returns whether it
// replaced the focus network. A converged trainer does nothing.
func (t *Trainer) Step() (bool, error) {
	if t.Converged() {
		return false, nil
	}

	candidate := t.Best.Clone()
	candidate.MutateWithProb(t.src, t.Config.MutationEffect, t.Config.NeuronMutateProb)
	t.Iterations++

	score, err := t.score(candidate)
	if err != nil {
		return false, fmt.Errorf("scoring candidate %d failed: %w", t.Iterations, err)
	}

	// NaN never compares less, so a NaN score is never accepted.
	if !(score < t.BestScore) {
		return false, nil
	}

	t.Best = candidate
	t.BestScore = score
	t.Accepted++
	t.History = append(t.History, Improvement{Iteration: t.Iterations, Score: score})

	if t.Logger != nil {
		t.Logger.Printf("%d. Inaccuracy: %.3f", t.Iterations, math.Floor(score*1000)/1000)
	}
	if t.OnImprove != nil {
		t.OnImprove(t)
	}
	return true, nil
}

// Run steps until the trainer converges. With a positive MaxIterations it gives
// up after that many candidates and returns the best network with ErrNotConverged.
func (t *Trainer) Run() (*Network, error) {
	for !t.Converged() {
		if t.Config.MaxIterations > 0 && t.Iterations >= t.Config.MaxIterations {
			return t.Best, fmt.Errorf("%w after %d iterations (best score %.6f)", ErrNotConverged, t.Iterations, t.BestScore)
		}
		if _, err := t.Step(); err != nil {
			return t.Best, err
		}
	}
	return t.Best, nil
}
