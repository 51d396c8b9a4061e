package cubelet

import (
	"math/rand/v2"

	"go.uber.org/zap"
)

// DefaultScrambleLength is the number of quarter turns in a scramble.
const DefaultScrambleLength = 20

// Option configures a Sequencer.
type Option func(*config)

type config struct {
	scrambleLength int
	rng            *rand.Rand
	logger         *zap.Logger
	initial        State
}

func defaultConfig() *config {
	return &config{
		scrambleLength: DefaultScrambleLength,
		rng:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:         zap.NewNop(),
		initial:        InitialState(),
	}
}

// WithScrambleLength sets how many moves a scramble issues.
// Values below 1 keep the default of 20.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.scrambleLength = n
		}
	}
}

// WithRand sets the random source used to draw scramble moves.
// Use a seeded source for reproducible scrambles.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed is shorthand for WithRand with a PCG source seeded by seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLogger sets the logger for scramble lifecycle events.
// The default logger discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithInitialState starts the sequencer from s instead of the solved
// puzzle. Reset always returns to the solved puzzle.
func WithInitialState(s State) Option {
	return func(c *config) {
		c.initial = s
	}
}
