// Package recorder logs the scrambles a sequencer runs to the history
// store.
package recorder

import (
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/storage"
)

// Recorder owns a sequencer's completion and cancel callbacks and writes
// one ScrambleRun per scramble that starts.
type Recorder struct {
	seq    *cubelet.Sequencer
	repo   *storage.ScrambleRepository
	source string
	logger *zap.Logger
	now    func() time.Time

	started time.Time
	lastID  string
	err     error

	onSaved func(*storage.ScrambleRun)
}

// New attaches a recorder to seq. A nil repo disables persistence but
// keeps the callbacks working.
func New(seq *cubelet.Sequencer, repo *storage.ScrambleRepository, source string, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Recorder{
		seq:    seq,
		repo:   repo,
		source: source,
		logger: logger,
		now:    time.Now,
	}
	seq.OnComplete(func(moves []cubelet.Move) { r.save(moves, storage.OutcomeComplete) })
	seq.OnCancel(func(moves []cubelet.Move) { r.save(moves, storage.OutcomeCancelled) })
	return r
}

// OnSaved sets a callback fired after each run is written.
func (r *Recorder) OnSaved(cb func(*storage.ScrambleRun)) {
	r.onSaved = cb
}

// Scramble starts a scramble on the sequencer and notes its start time.
func (r *Recorder) Scramble() bool {
	if !r.seq.Scramble() {
		return false
	}
	r.started = r.now()
	return true
}

// LastID returns the ID of the most recently saved run.
func (r *Recorder) LastID() string {
	return r.lastID
}

// Err returns the most recent write error, if any.
func (r *Recorder) Err() error {
	return r.err
}

func (r *Recorder) save(moves []cubelet.Move, outcome string) {
	ended := r.now()
	started := r.started
	if started.IsZero() {
		started = ended
	}
	r.started = time.Time{}

	run := &storage.ScrambleRun{
		StartedAt: started,
		EndedAt:   ended,
		Planned:   r.seq.ScrambleLength(),
		Moves:     moves,
		Outcome:   outcome,
		Source:    r.source,
	}

	if r.repo != nil {
		id, err := r.repo.Create(run)
		if err != nil {
			r.err = err
			r.logger.Error("failed to save scramble", zap.Error(err))
			return
		}
		r.lastID = id
		r.logger.Info("scramble saved",
			zap.String("id", id),
			zap.String("outcome", outcome),
			zap.Int("moves", len(moves)))
	}

	if r.onSaved != nil {
		r.onSaved(run)
	}
}
