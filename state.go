package cubelet

import "strings"

// PieceCount is the number of movable pieces in the puzzle.
const PieceCount = 26

// State is an immutable snapshot of the whole puzzle: 26 pieces, one per
// non-zero position. States are values; moves produce new States and
// never modify an existing one, so a State can be shared freely with a
// renderer.
//
// Piece slots keep their order across moves, so slot i always holds the
// same physical piece. Two States are == only when their slot order also
// matches; use Equal to compare the arrangement alone.
type State struct {
	pieces [PieceCount]Piece
}

// InitialState returns the solved puzzle. Every call returns an equal
// value.
func InitialState() State {
	var s State
	i := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				pos := Position{x, y, z}
				if pos == (Position{}) {
					continue
				}
				s.pieces[i] = Piece{Position: pos, Colors: solvedColors(pos)}
				i++
			}
		}
	}
	return s
}

// NewState builds a State from exactly 26 pieces and validates it.
func NewState(pieces []Piece) (State, error) {
	var s State
	if len(pieces) != PieceCount {
		return s, invalidState("want %d pieces, got %d", PieceCount, len(pieces))
	}
	copy(s.pieces[:], pieces)
	if err := Validate(s); err != nil {
		return State{}, err
	}
	return s, nil
}

// Pieces returns a copy of the pieces in slot order.
func (s State) Pieces() []Piece {
	out := make([]Piece, PieceCount)
	copy(out, s.pieces[:])
	return out
}

// Piece returns the piece in slot i.
func (s State) Piece(i int) Piece {
	return s.pieces[i]
}

// At returns the piece currently at pos.
func (s State) At(pos Position) (Piece, bool) {
	for _, p := range s.pieces {
		if p.Position == pos {
			return p, true
		}
	}
	return Piece{}, false
}

// IsSolved returns true if every piece shows its side colors in place.
func (s State) IsSolved() bool {
	for _, p := range s.pieces {
		if p.Colors != solvedColors(p.Position) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o place the same colors at the same
// positions, regardless of slot order.
func (s State) Equal(o State) bool {
	var byPos [27]FaceColors
	var seen [27]bool
	for _, p := range o.pieces {
		if !p.Position.IsValid() {
			return false
		}
		byPos[p.Position.index()] = p.Colors
		seen[p.Position.index()] = true
	}
	for _, p := range s.pieces {
		if !p.Position.IsValid() || !seen[p.Position.index()] {
			return false
		}
		if byPos[p.Position.index()] != p.Colors {
			return false
		}
	}
	return true
}

// Facelets returns the nine stickers of the side facing d, as seen from
// outside the puzzle, in row-major order:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The top and bottom sides are viewed with the front side toward the
// bottom and top of the grid respectively; the four vertical sides are
// viewed upright.
func (s State) Facelets(d Direction) [9]Color {
	var byPos [27]FaceColors
	for _, p := range s.pieces {
		if p.Position.IsValid() {
			byPos[p.Position.index()] = p.Colors
		}
	}

	var out [9]Color
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			pos := faceletPosition(d, row, col)
			out[row*3+col] = byPos[pos.index()][d]
		}
	}
	return out
}

// faceletPosition maps a sticker cell on side d to the piece behind it.
func faceletPosition(d Direction, row, col int) Position {
	switch d {
	case PosY:
		return Position{col - 1, 1, row - 1}
	case NegY:
		return Position{col - 1, -1, 1 - row}
	case PosZ:
		return Position{col - 1, 1 - row, 1}
	case NegZ:
		return Position{1 - col, 1 - row, -1}
	case PosX:
		return Position{1, 1 - row, 1 - col}
	default: // NegX
		return Position{-1, 1 - row, col - 1}
	}
}

// String returns the unfolded net of the puzzle:
//
//	      U
//	  L   F   R   B
//	      D
//
// with U = top (+Y), F = front (+Z) and R = right (+X).
func (s State) String() string {
	var b strings.Builder

	writeRow := func(cells [9]Color, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(cells[row*3+col].String())
			b.WriteByte(' ')
		}
	}

	up := s.Facelets(PosY)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(up, row)
		b.WriteByte('\n')
	}

	sides := [4][9]Color{s.Facelets(NegX), s.Facelets(PosZ), s.Facelets(PosX), s.Facelets(NegZ)}
	for row := 0; row < 3; row++ {
		for _, side := range sides {
			writeRow(side, row)
		}
		b.WriteByte('\n')
	}

	down := s.Facelets(NegY)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		writeRow(down, row)
		b.WriteByte('\n')
	}

	return b.String()
}
