// Package notation translates standard face notation (R, U', F2, ...) to
// and from the canonical axis moves of the cubelet package.
//
// Reference frame: +X is the right face (R), +Y the top (U), +Z the front
// (F). Face turns are clockwise as seen looking at that face. In axis
// terms that makes U and L clockwise and R, F, D and B counter-clockwise:
//
//	R = X+'   L = X-   U = Y+   D = Y-'   F = Z+'   B = Z-
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/cubelet"
)

// ErrInvalidNotation is returned for tokens that are neither face nor
// axis notation.
var ErrInvalidNotation = errors.New("notation: invalid move")

// Face represents a cube face in standard notation.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
)

// Faces lists the six faces.
var Faces = []Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
	Turn180 Turn = 2  // Half turn
)

// FaceMove is a move in standard face notation.
type FaceMove struct {
	Face Face
	Turn Turn
}

// faceLayer maps each face to its axis and layer, and to the axis sense
// that a clockwise face turn corresponds to.
var faceLayer = map[Face]struct {
	axis  cubelet.Axis
	layer int
	cw    cubelet.Sense
}{
	FaceR: {cubelet.AxisX, 1, cubelet.CounterClockwise},
	FaceL: {cubelet.AxisX, -1, cubelet.Clockwise},
	FaceU: {cubelet.AxisY, 1, cubelet.Clockwise},
	FaceD: {cubelet.AxisY, -1, cubelet.CounterClockwise},
	FaceF: {cubelet.AxisZ, 1, cubelet.CounterClockwise},
	FaceB: {cubelet.AxisZ, -1, cubelet.Clockwise},
}

// Notation returns the standard notation string for this move.
// Examples: R, R', R2
func (fm FaceMove) Notation() string {
	suffix := ""
	switch fm.Turn {
	case TurnCCW:
		suffix = "'"
	case Turn180:
		suffix = "2"
	}
	return string(fm.Face) + suffix
}

func (fm FaceMove) String() string {
	return fm.Notation()
}

// Moves expands the face move into canonical quarter turns. A half turn
// becomes two identical quarter turns.
func (fm FaceMove) Moves() ([]cubelet.Move, error) {
	fl, ok := faceLayer[fm.Face]
	if !ok {
		return nil, fmt.Errorf("%w: face %q", ErrInvalidNotation, string(fm.Face))
	}

	m := cubelet.Move{Axis: fl.axis, Layer: fl.layer, Sense: fl.cw}
	switch fm.Turn {
	case TurnCW:
		return []cubelet.Move{m}, nil
	case TurnCCW:
		return []cubelet.Move{m.Inverse()}, nil
	case Turn180:
		return []cubelet.Move{m, m}, nil
	default:
		return nil, fmt.Errorf("%w: turn %d", ErrInvalidNotation, int(fm.Turn))
	}
}

// FromMove converts a canonical quarter turn to face notation.
func FromMove(m cubelet.Move) (FaceMove, error) {
	if err := m.Validate(); err != nil {
		return FaceMove{}, err
	}
	for _, f := range Faces {
		fl := faceLayer[f]
		if fl.axis != m.Axis || fl.layer != m.Layer {
			continue
		}
		turn := TurnCW
		if m.Sense != fl.cw {
			turn = TurnCCW
		}
		return FaceMove{Face: f, Turn: turn}, nil
	}
	return FaceMove{}, fmt.Errorf("%w: %v", ErrInvalidNotation, m)
}

// ParseFaceMove parses a standard notation token.
// Examples: R, R', R2, u, F`
func ParseFaceMove(s string) (FaceMove, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return FaceMove{}, fmt.Errorf("%w: empty", ErrInvalidNotation)
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'L', 'l':
		face = FaceL
	case 'U', 'u':
		face = FaceU
	case 'D', 'd':
		face = FaceD
	case 'F', 'f':
		face = FaceF
	case 'B', 'b':
		face = FaceB
	default:
		return FaceMove{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := TurnCW
	switch s[1:] {
	case "":
	case "'", "`":
		turn = TurnCCW
	case "2", "2'", "2`":
		turn = Turn180
	default:
		return FaceMove{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	return FaceMove{Face: face, Turn: turn}, nil
}

// Parse parses a space-separated sequence in which each token is either
// standard face notation (R U R' U2) or cubelet axis notation (X+ Y-').
func Parse(s string) ([]cubelet.Move, error) {
	var moves []cubelet.Move
	for _, tok := range strings.Fields(s) {
		if isAxisToken(tok) {
			m, err := cubelet.ParseMove(tok)
			if err != nil {
				return nil, err
			}
			moves = append(moves, m)
			continue
		}

		fm, err := ParseFaceMove(tok)
		if err != nil {
			return nil, err
		}
		expanded, err := fm.Moves()
		if err != nil {
			return nil, err
		}
		moves = append(moves, expanded...)
	}
	return moves, nil
}

func isAxisToken(tok string) bool {
	switch tok[0] {
	case 'X', 'x', 'Y', 'y', 'Z', 'z':
		return true
	}
	return false
}

// Format renders canonical moves in face notation, folding two identical
// adjacent quarter turns into a half turn.
func Format(moves []cubelet.Move) string {
	parts := make([]string, 0, len(moves))
	for i := 0; i < len(moves); i++ {
		fm, err := FromMove(moves[i])
		if err != nil {
			parts = append(parts, "?")
			continue
		}
		if i+1 < len(moves) && moves[i+1] == moves[i] {
			fm.Turn = Turn180
			i++
		}
		parts = append(parts, fm.Notation())
	}
	return strings.Join(parts, " ")
}
