package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubelet"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "cubelet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.MigrateUp())
	return db
}

func TestMigrateUpIdempotent(t *testing.T) {
	db := openTestDB(t)

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, db.MigrateUp())
	v, err = db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestCurrentVersionEmpty(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer db.Close()

	v, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestCreateAndGet(t *testing.T) {
	repo := NewScrambleRepository(openTestDB(t))

	moves := cubelet.MustParseMoves("X+ Y-' Z+ X-")
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	run := &ScrambleRun{
		StartedAt: start,
		EndedAt:   start.Add(480 * time.Millisecond),
		Planned:   4,
		Moves:     moves,
		Outcome:   OutcomeComplete,
		Source:    "play",
	}

	id, err := repo.Create(run)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, run.ScrambleID)

	got, err := repo.Get(id)
	require.NoError(t, err)
	assert.Equal(t, moves, got.Moves)
	assert.Equal(t, 4, got.Issued())
	assert.Equal(t, "X+ Y-' Z+ X-", got.Sequence())
	assert.Equal(t, OutcomeComplete, got.Outcome)
	assert.Equal(t, "play", got.Source)
	assert.True(t, start.Equal(got.StartedAt))
	assert.Equal(t, 480*time.Millisecond, got.Duration())
}

func TestGetMissing(t *testing.T) {
	repo := NewScrambleRepository(openTestDB(t))

	_, err := repo.Get("does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateRejectsUnknownOutcome(t *testing.T) {
	repo := NewScrambleRepository(openTestDB(t))

	_, err := repo.Create(&ScrambleRun{Outcome: "abandoned"})
	assert.Error(t, err)

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestListNewestFirst(t *testing.T) {
	repo := NewScrambleRepository(openTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(&ScrambleRun{
			StartedAt: base.Add(time.Duration(i) * time.Minute),
			EndedAt:   base.Add(time.Duration(i)*time.Minute + time.Second),
			Planned:   20,
			Moves:     cubelet.MustParseMoves("Z+")[:i%2],
			Outcome:   OutcomeCancelled,
		})
		require.NoError(t, err)
	}

	n, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	runs, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
	assert.Equal(t, 0, runs[0].Issued())
	assert.Equal(t, 1, runs[1].Issued())

	all, err := repo.List(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteCascadesMoves(t *testing.T) {
	db := openTestDB(t)
	repo := NewScrambleRepository(db)

	id, err := repo.Create(&ScrambleRun{
		Planned: 2,
		Moves:   cubelet.MustParseMoves("X+ X+"),
		Outcome: OutcomeComplete,
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(id))
	assert.ErrorIs(t, repo.Delete(id), ErrNotFound)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM scramble_moves").Scan(&count))
	assert.Zero(t, count)
}
