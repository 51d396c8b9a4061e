package recorder

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/storage"
)

func newRepo(t *testing.T) *storage.ScrambleRepository {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())
	return storage.NewScrambleRepository(db)
}

func fakeClock() func() time.Time {
	t := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestCompletedScrambleIsSaved(t *testing.T) {
	repo := newRepo(t)
	seq := cubelet.NewSequencer(cubelet.WithSeed(7), cubelet.WithScrambleLength(5))
	rec := New(seq, repo, "test", zaptest.NewLogger(t))
	rec.now = fakeClock()

	require.True(t, rec.Scramble())
	for seq.IsScrambling() {
		seq.Tick()
	}

	require.NoError(t, rec.Err())
	run, err := repo.Get(rec.LastID())
	require.NoError(t, err)
	assert.Equal(t, storage.OutcomeComplete, run.Outcome)
	assert.Equal(t, seq.LastScramble(), run.Moves)
	assert.Equal(t, 5, run.Planned)
	assert.Equal(t, "test", run.Source)
	assert.Equal(t, time.Second, run.Duration())
}

func TestResetSavesCancelledRun(t *testing.T) {
	repo := newRepo(t)
	seq := cubelet.NewSequencer(cubelet.WithSeed(7))
	rec := New(seq, repo, "test", nil)

	var saved []*storage.ScrambleRun
	rec.OnSaved(func(r *storage.ScrambleRun) { saved = append(saved, r) })

	rec.Scramble()
	seq.Tick()
	seq.Tick()
	seq.Reset()

	require.Len(t, saved, 1)
	assert.Equal(t, storage.OutcomeCancelled, saved[0].Outcome)
	assert.Equal(t, 2, saved[0].Issued())
	assert.True(t, seq.State().IsSolved())

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestScrambleWhileRunningIsIgnored(t *testing.T) {
	seq := cubelet.NewSequencer()
	rec := New(seq, nil, "test", nil)

	assert.True(t, rec.Scramble())
	assert.False(t, rec.Scramble())
}

func TestNilRepoStillNotifies(t *testing.T) {
	seq := cubelet.NewSequencer(cubelet.WithScrambleLength(1))
	rec := New(seq, nil, "test", nil)

	called := 0
	rec.OnSaved(func(*storage.ScrambleRun) { called++ })

	rec.Scramble()
	seq.Tick()

	assert.Equal(t, 1, called)
	assert.Empty(t, rec.LastID())
}
