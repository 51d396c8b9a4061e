package cubelet

import (
	"fmt"
	"strings"
)

// Sense is the rotational direction of a quarter turn. Clockwise carries
// +Y toward +Z on the X axis, +X toward +Z on the Y axis, and +X toward +Y
// on the Z axis.
type Sense int

const (
	Clockwise        Sense = 1
	CounterClockwise Sense = -1
)

func (s Sense) String() string {
	switch s {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// IsValid reports whether s is Clockwise or CounterClockwise.
func (s Sense) IsValid() bool {
	return s == Clockwise || s == CounterClockwise
}

// Move is one quarter turn of an outer layer.
type Move struct {
	Axis  Axis  // Rotation axis
	Layer int   // Which outer layer turns: -1 or +1 on Axis
	Sense Sense // Direction of the quarter turn
}

// Validate returns an error wrapping ErrInvalidMove if any field is out of
// its domain.
func (m Move) Validate() error {
	if !m.Axis.IsValid() {
		return fmt.Errorf("%w: axis %d", ErrInvalidMove, int(m.Axis))
	}
	if m.Layer != -1 && m.Layer != 1 {
		return fmt.Errorf("%w: layer %d", ErrInvalidMove, m.Layer)
	}
	if !m.Sense.IsValid() {
		return fmt.Errorf("%w: sense %d", ErrInvalidMove, int(m.Sense))
	}
	return nil
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	m.Sense = -m.Sense
	return m
}

// Notation returns the axis notation for the move: the axis letter, the
// layer sign, and a trailing ' for counter-clockwise.
// Examples: X+, X+', Y-, Z-'
func (m Move) Notation() string {
	layer := "+"
	if m.Layer < 0 {
		layer = "-"
	}
	suffix := ""
	if m.Sense == CounterClockwise {
		suffix = "'"
	}
	return m.Axis.String() + layer + suffix
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses axis notation into a Move.
// Accepted forms: X+, x+1, Y-', Z-1' (a backtick is accepted for ').
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	var m Move
	switch s[0] {
	case 'X', 'x':
		m.Axis = AxisX
	case 'Y', 'y':
		m.Axis = AxisY
	case 'Z', 'z':
		m.Axis = AxisZ
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	switch s[1] {
	case '+':
		m.Layer = 1
	case '-':
		m.Layer = -1
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	rest := strings.TrimPrefix(s[2:], "1")
	switch rest {
	case "":
		m.Sense = Clockwise
	case "'", "`":
		m.Sense = CounterClockwise
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return m, nil
}

// ParseMoves parses a space-separated sequence of axis moves.
// Example: "X+ Y+ X+' Y+'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// MustParseMoves is like ParseMoves but panics on malformed input.
func MustParseMoves(s string) []Move {
	moves, err := ParseMoves(s)
	if err != nil {
		panic(err)
	}
	return moves
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// AllMoves returns the 12 legal quarter turns.
func AllMoves() []Move {
	moves := make([]Move, 0, 12)
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		for _, layer := range []int{1, -1} {
			for _, sense := range []Sense{Clockwise, CounterClockwise} {
				moves = append(moves, Move{Axis: a, Layer: layer, Sense: sense})
			}
		}
	}
	return moves
}
