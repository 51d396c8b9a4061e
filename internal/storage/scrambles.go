package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubelet"
)

// Outcome values for a scramble run.
const (
	OutcomeComplete  = "complete"
	OutcomeCancelled = "cancelled"
)

// ScrambleRun is one logged scramble.
type ScrambleRun struct {
	ScrambleID string
	StartedAt  time.Time
	EndedAt    time.Time
	Planned    int
	Moves      []cubelet.Move
	Outcome    string
	Source     string
}

// Issued returns the number of moves actually applied.
func (r *ScrambleRun) Issued() int {
	return len(r.Moves)
}

// Duration returns the wall time the run took.
func (r *ScrambleRun) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Sequence returns the run's moves in axis notation.
func (r *ScrambleRun) Sequence() string {
	return cubelet.FormatMoves(r.Moves)
}

// ScrambleRepository handles scramble run persistence.
type ScrambleRepository struct {
	db *DB
}

// NewScrambleRepository creates a new scramble repository.
func NewScrambleRepository(db *DB) *ScrambleRepository {
	return &ScrambleRepository{db: db}
}

// Create inserts a run with its moves and returns the assigned ID.
func (r *ScrambleRepository) Create(run *ScrambleRun) (string, error) {
	switch run.Outcome {
	case OutcomeComplete, OutcomeCancelled:
	default:
		return "", fmt.Errorf("invalid outcome %q", run.Outcome)
	}

	id := uuid.New().String()
	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO scrambles (scramble_id, started_at, ended_at, planned_moves, issued_moves, outcome, sequence, source)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, id,
			run.StartedAt.Format(time.RFC3339Nano),
			run.EndedAt.Format(time.RFC3339Nano),
			run.Planned, len(run.Moves), run.Outcome, run.Sequence(), run.Source)
		if err != nil {
			return fmt.Errorf("failed to create scramble: %w", err)
		}

		stmt, err := tx.Prepare(`
			INSERT INTO scramble_moves (scramble_id, seq, axis, layer, sense)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare move insert: %w", err)
		}
		defer stmt.Close()

		for i, m := range run.Moves {
			if _, err := stmt.Exec(id, i, m.Axis.String(), m.Layer, int(m.Sense)); err != nil {
				return fmt.Errorf("failed to insert move %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	run.ScrambleID = id
	return id, nil
}

// Get retrieves a run by ID, including its moves.
func (r *ScrambleRepository) Get(id string) (*ScrambleRun, error) {
	row := r.db.QueryRow(`
		SELECT scramble_id, started_at, ended_at, planned_moves, outcome, source
		FROM scrambles WHERE scramble_id = ?
	`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scramble: %w", err)
	}

	moves, err := r.moves(id)
	if err != nil {
		return nil, err
	}
	run.Moves = moves
	return run, nil
}

// List returns the most recent runs, newest first. A limit of 0 returns
// all runs.
func (r *ScrambleRepository) List(limit int) ([]ScrambleRun, error) {
	query := `
		SELECT scramble_id, started_at, ended_at, planned_moves, outcome, source
		FROM scrambles ORDER BY started_at DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scrambles: %w", err)
	}
	defer rows.Close()

	var runs []ScrambleRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scramble: %w", err)
		}
		runs = append(runs, *run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		moves, err := r.moves(runs[i].ScrambleID)
		if err != nil {
			return nil, err
		}
		runs[i].Moves = moves
	}
	return runs, nil
}

// Count returns the number of logged runs.
func (r *ScrambleRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM scrambles").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count scrambles: %w", err)
	}
	return count, nil
}

// Delete removes a run and its moves.
func (r *ScrambleRepository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM scrambles WHERE scramble_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete scramble: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ScrambleRepository) moves(id string) ([]cubelet.Move, error) {
	rows, err := r.db.Query(`
		SELECT axis, layer, sense FROM scramble_moves
		WHERE scramble_id = ? ORDER BY seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []cubelet.Move
	for rows.Next() {
		var axis string
		var layer, sense int
		if err := rows.Scan(&axis, &layer, &sense); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		m, err := decodeMove(axis, layer, sense)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

func decodeMove(axis string, layer, sense int) (cubelet.Move, error) {
	var a cubelet.Axis
	switch axis {
	case "X":
		a = cubelet.AxisX
	case "Y":
		a = cubelet.AxisY
	case "Z":
		a = cubelet.AxisZ
	default:
		return cubelet.Move{}, fmt.Errorf("stored move has axis %q", axis)
	}
	m := cubelet.Move{Axis: a, Layer: layer, Sense: cubelet.Sense(sense)}
	if err := m.Validate(); err != nil {
		return cubelet.Move{}, fmt.Errorf("stored move: %w", err)
	}
	return m, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(s rowScanner) (*ScrambleRun, error) {
	var run ScrambleRun
	var startedAt, endedAt string
	if err := s.Scan(&run.ScrambleID, &startedAt, &endedAt, &run.Planned, &run.Outcome, &run.Source); err != nil {
		return nil, err
	}
	run.StartedAt, _ = time.Parse(time.RFC3339Nano, startedAt)
	run.EndedAt, _ = time.Parse(time.RFC3339Nano, endedAt)
	return &run, nil
}
