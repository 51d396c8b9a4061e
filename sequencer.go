package cubelet

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Status is the sequencer's state machine position.
type Status int

const (
	StatusIdle Status = iota
	StatusScrambling
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusScrambling:
		return "scrambling"
	default:
		return "unknown"
	}
}

// Sequencer owns the current State and drives scrambles one move per
// Tick. It never schedules anything itself: the host calls Tick once per
// frame (or in a loop, in tests).
//
// A Sequencer is not safe for concurrent use. All calls, including the
// callbacks it fires, happen on the caller's goroutine.
type Sequencer struct {
	cfg *config

	state     State
	status    Status
	remaining int
	run       []Move // moves issued by the active or most recent scramble
	gen       int    // bumped by Scramble, Cancel and Reset

	onMove     func(Move)
	onComplete func([]Move)
	onCancel   func([]Move)
}

// NewSequencer creates an idle sequencer holding the solved puzzle.
// It panics if WithInitialState supplied a corrupted state.
func NewSequencer(opts ...Option) *Sequencer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := Validate(cfg.initial); err != nil {
		panic(err)
	}

	return &Sequencer{
		cfg:   cfg,
		state: cfg.initial,
	}
}

// OnMove sets a callback fired after every move the sequencer applies,
// scramble or manual.
func (q *Sequencer) OnMove(cb func(Move)) {
	q.onMove = cb
}

// OnComplete sets a callback fired exactly once per scramble, on the tick
// that applies its last move. It receives the moves issued.
func (q *Sequencer) OnComplete(cb func(moves []Move)) {
	q.onComplete = cb
}

// OnCancel sets a callback fired when Cancel or Reset stops a scramble
// early. It receives the moves issued before the stop.
func (q *Sequencer) OnCancel(cb func(moves []Move)) {
	q.onCancel = cb
}

// State returns the current puzzle state.
func (q *Sequencer) State() State {
	return q.state
}

// Status returns the state machine position.
func (q *Sequencer) Status() Status {
	return q.status
}

// IsScrambling returns true while a scramble has moves left to issue.
func (q *Sequencer) IsScrambling() bool {
	return q.status == StatusScrambling
}

// MovesRemaining returns how many scramble moves are still to come.
func (q *Sequencer) MovesRemaining() int {
	return q.remaining
}

// ScrambleLength returns the configured number of moves per scramble.
func (q *Sequencer) ScrambleLength() int {
	return q.cfg.scrambleLength
}

// LastScramble returns the moves issued by the active or most recent
// scramble.
func (q *Sequencer) LastScramble() []Move {
	out := make([]Move, len(q.run))
	copy(out, q.run)
	return out
}

// Scramble starts a scramble. It returns false, and changes nothing, if a
// scramble is already running.
func (q *Sequencer) Scramble() bool {
	if q.status == StatusScrambling {
		return false
	}

	q.gen++
	q.status = StatusScrambling
	q.remaining = q.cfg.scrambleLength
	q.run = make([]Move, 0, q.cfg.scrambleLength)

	q.cfg.logger.Debug("scramble started", zap.Int("moves", q.remaining))
	return true
}

// Tick advances an active scramble by one move and returns it. When idle
// it does nothing and returns false.
func (q *Sequencer) Tick() (Move, bool) {
	if q.status != StatusScrambling {
		return Move{}, false
	}

	gen := q.gen
	m := q.randomMove()
	q.state = q.mustApply(m)
	q.run = append(q.run, m)
	q.remaining--

	if q.onMove != nil {
		q.onMove(m)
	}
	if q.gen != gen {
		// Cancelled or reset from inside the move callback.
		return m, true
	}

	if q.remaining == 0 {
		q.status = StatusIdle
		q.cfg.logger.Debug("scramble complete",
			zap.Int("moves", len(q.run)),
			zap.String("sequence", FormatMoves(q.run)))
		if q.onComplete != nil {
			q.onComplete(q.LastScramble())
		}
	}

	return m, true
}

// Cancel stops an active scramble where it is. The current state is kept.
// It returns false if no scramble was running.
func (q *Sequencer) Cancel() bool {
	if q.status != StatusScrambling {
		return false
	}

	q.gen++
	q.status = StatusIdle
	issued := len(q.run)
	q.cfg.logger.Debug("scramble cancelled",
		zap.Int("issued", issued),
		zap.Int("remaining", q.remaining))
	q.remaining = 0

	if q.onCancel != nil {
		q.onCancel(q.LastScramble())
	}
	return true
}

// Reset cancels any active scramble and restores the solved puzzle.
func (q *Sequencer) Reset() {
	q.Cancel()
	q.gen++
	q.state = InitialState()
	q.cfg.logger.Debug("reset to solved")
}

// Apply applies a single move outside of a scramble, for hosts that
// mirror user or hardware turns. It fails with ErrScrambling while a
// scramble is active.
func (q *Sequencer) Apply(m Move) error {
	if q.status == StatusScrambling {
		return fmt.Errorf("apply %v: %w", m, ErrScrambling)
	}

	next, err := ApplyMove(q.state, m)
	if err != nil {
		if errors.Is(err, ErrInvalidState) {
			panic(err)
		}
		return err
	}
	q.state = next

	if q.onMove != nil {
		q.onMove(m)
	}
	return nil
}

func (q *Sequencer) randomMove() Move {
	r := q.cfg.rng
	m := Move{
		Axis:  Axis(r.IntN(3)),
		Layer: 1,
		Sense: Clockwise,
	}
	if r.IntN(2) == 0 {
		m.Layer = -1
	}
	if r.IntN(2) == 0 {
		m.Sense = CounterClockwise
	}
	return m
}

// mustApply applies a generated move. The sequencer only ever holds
// states produced by ApplyMove, so any error here is a bug.
func (q *Sequencer) mustApply(m Move) State {
	next, err := ApplyMove(q.state, m)
	if err != nil {
		panic(err)
	}
	return next
}
