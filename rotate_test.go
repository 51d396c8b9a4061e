package cubelet

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	xPlusCW  = Move{Axis: AxisX, Layer: 1, Sense: Clockwise}
	yPlusCW  = Move{Axis: AxisY, Layer: 1, Sense: Clockwise}
	zPlusCW  = Move{Axis: AxisZ, Layer: 1, Sense: Clockwise}
	xPlusCCW = xPlusCW.Inverse()
	yPlusCCW = yPlusCW.Inverse()
)

// scrambledState returns a fixed, thoroughly mixed state.
func scrambledState(t *testing.T) State {
	t.Helper()
	moves, err := ParseMoves("X+ Y- Z+' X-' Y+ Z- X+ Z+ Y-' X- Z-' Y+ X+' Z+ Y-")
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	return MustApply(InitialState(), moves...)
}

func TestRotatePositionTable(t *testing.T) {
	// One point per case, checked against the written-out mappings.
	tests := []struct {
		axis  Axis
		sense Sense
		in    Position
		want  Position
	}{
		// X cw (y,z) -> (-z,y)
		{AxisX, Clockwise, Position{1, 1, 0}, Position{1, 0, 1}},
		{AxisX, Clockwise, Position{-1, 0, 1}, Position{-1, -1, 0}},
		// X ccw (y,z) -> (z,-y)
		{AxisX, CounterClockwise, Position{1, 1, 0}, Position{1, 0, -1}},
		{AxisX, CounterClockwise, Position{1, 1, 1}, Position{1, 1, -1}},
		// Y cw (x,z) -> (-z,x)
		{AxisY, Clockwise, Position{0, 1, 1}, Position{-1, 1, 0}},
		{AxisY, Clockwise, Position{1, -1, 0}, Position{0, -1, 1}},
		// Y ccw (x,z) -> (z,-x)
		{AxisY, CounterClockwise, Position{0, 1, 1}, Position{1, 1, 0}},
		// Z cw (x,y) -> (-y,x)
		{AxisZ, Clockwise, Position{0, 1, 1}, Position{-1, 0, 1}},
		{AxisZ, Clockwise, Position{1, 1, -1}, Position{-1, 1, -1}},
		// Z ccw (x,y) -> (y,-x)
		{AxisZ, CounterClockwise, Position{0, 1, 1}, Position{1, 0, 1}},
	}

	for _, tt := range tests {
		got := rotatePosition(tt.in, tt.axis, tt.sense)
		if got != tt.want {
			t.Errorf("%v %v %v: got %v, want %v", tt.axis, tt.sense, tt.in, got, tt.want)
		}
	}
}

func TestFaceCycles(t *testing.T) {
	want := map[Axis][2][4]Direction{
		AxisX: {{PosY, PosZ, NegY, NegZ}, {PosY, NegZ, NegY, PosZ}},
		AxisY: {{PosX, PosZ, NegX, NegZ}, {PosX, NegZ, NegX, PosZ}},
		AxisZ: {{PosX, PosY, NegX, NegY}, {PosX, NegY, NegX, PosY}},
	}
	for a, cycles := range want {
		if diff := cmp.Diff(cycles, faceCycles[a]); diff != "" {
			t.Errorf("Face cycles for %v mismatch (-want +got):\n%s", a, diff)
		}
	}
}

func TestCycleFacesPermutation(t *testing.T) {
	// from[d] is the face whose color ends up on face d.
	tests := []struct {
		axis  Axis
		sense Sense
		from  [6]Direction
	}{
		{AxisX, Clockwise, [6]Direction{PosX, NegX, NegZ, PosZ, PosY, NegY}},
		{AxisX, CounterClockwise, [6]Direction{PosX, NegX, PosZ, NegZ, NegY, PosY}},
		{AxisY, Clockwise, [6]Direction{NegZ, PosZ, PosY, NegY, PosX, NegX}},
		{AxisY, CounterClockwise, [6]Direction{PosZ, NegZ, PosY, NegY, NegX, PosX}},
		{AxisZ, Clockwise, [6]Direction{NegY, PosY, PosX, NegX, PosZ, NegZ}},
		{AxisZ, CounterClockwise, [6]Direction{PosY, NegY, NegX, PosX, PosZ, NegZ}},
	}

	// Give every face a distinct label so the permutation is visible.
	labels := FaceColors{Red, Orange, Yellow, White, Green, Blue}
	for _, tt := range tests {
		got := cycleFaces(labels, tt.axis, tt.sense)
		for _, d := range Directions {
			if got[d] != labels[tt.from[d]] {
				t.Errorf("%v %v: face %v shows %s, want %s (from %v)",
					tt.axis, tt.sense, d, got[d].Name(), labels[tt.from[d]].Name(), tt.from[d])
			}
		}
	}
}

func TestXPlusClockwiseMovesTopRightEdgeToFront(t *testing.T) {
	s := InitialState()
	slot := slotOf(s, Position{1, 1, 0})

	next, err := ApplyMove(s, xPlusCW)
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}

	p := next.Piece(slot)
	if want := (Position{1, 0, 1}); p.Position != want {
		t.Errorf("Edge moved to %v, want %v", p.Position, want)
	}

	// +X keeps red and -X stays interior; yellow travels from +Y to +Z.
	want := FaceColors{Red, Interior, Interior, Interior, Yellow, Interior}
	if p.Colors != want {
		t.Errorf("Edge colors: got %v, want %v", p.Colors, want)
	}
}

func TestXPlusClockwiseFacelets(t *testing.T) {
	// Turning the right layer clockwise drops the top column to the front.
	s := MustApply(InitialState(), xPlusCW)

	columns := []struct {
		side Direction
		col  int
		want Color
	}{
		{PosZ, 2, Yellow}, // top -> front
		{NegY, 2, Green},  // front -> bottom
		{NegZ, 0, White},  // bottom -> back (back is viewed mirrored)
		{PosY, 2, Blue},   // back -> top
	}
	for _, c := range columns {
		cells := s.Facelets(c.side)
		for row := 0; row < 3; row++ {
			if got := cells[row*3+c.col]; got != c.want {
				t.Errorf("Side %v row %d col %d: got %s, want %s", c.side, row, c.col, got.Name(), c.want.Name())
			}
		}
	}
	for i, c := range s.Facelets(PosX) {
		if c != Red {
			t.Errorf("Right side sticker %d: got %s, want red", i, c.Name())
		}
	}
	if s.IsSolved() {
		t.Error("Cube should not be solved after one move")
		t.Log(s.String())
	}
}

func TestYAndZClockwiseFacelets(t *testing.T) {
	// Top layer clockwise: front stickers move to the left side.
	s := MustApply(InitialState(), yPlusCW)
	for col := 0; col < 3; col++ {
		if got := s.Facelets(NegX)[col]; got != Green {
			t.Errorf("Left side top row col %d: got %s, want green", col, got.Name())
		}
	}

	// Front layer clockwise: top stickers move to the left side.
	s = MustApply(InitialState(), zPlusCW)
	for row := 0; row < 3; row++ {
		if got := s.Facelets(NegX)[row*3+2]; got != Yellow {
			t.Errorf("Left side row %d col 2: got %s, want yellow", row, got.Name())
		}
	}
}

func TestInverseLaw(t *testing.T) {
	for _, start := range []State{InitialState(), scrambledState(t)} {
		for _, m := range AllMoves() {
			got := MustApply(start, m, m.Inverse())
			if got != start {
				t.Errorf("%v then %v should restore the state", m, m.Inverse())
				t.Log(got.String())
			}
		}
	}
}

func TestFourCycleLaw(t *testing.T) {
	for _, start := range []State{InitialState(), scrambledState(t)} {
		for _, m := range AllMoves() {
			got := MustApply(start, m, m, m, m)
			if diff := cmp.Diff(start.Pieces(), got.Pieces()); diff != "" {
				t.Errorf("%v x 4 should be the identity (-want +got):\n%s", m, diff)
			}
		}
	}
}

func TestSexyMove6TimesReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity, with R = X+ ccw and U = Y+ cw
	s := InitialState()
	for i := 0; i < 6; i++ {
		s = MustApply(s, xPlusCCW, yPlusCW, xPlusCW, yPlusCCW)
	}
	if !s.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(s.String())
	}
}

func TestOnlyTurningLayerChanges(t *testing.T) {
	start := scrambledState(t)
	for _, m := range AllMoves() {
		next := MustApply(start, m)
		for i := 0; i < PieceCount; i++ {
			before, after := start.Piece(i), next.Piece(i)
			inLayer := before.Position[m.Axis] == m.Layer
			if !inLayer && before != after {
				t.Errorf("%v changed piece outside the layer: %v -> %v", m, before, after)
			}
			if inLayer && after.Position[m.Axis] != m.Layer {
				t.Errorf("%v moved piece out of its layer: %v -> %v", m, before, after)
			}
		}
	}
}

func TestAxisFacesFixedAndColorsPermuted(t *testing.T) {
	start := scrambledState(t)
	for _, m := range AllMoves() {
		next := MustApply(start, m)
		plus, minus := directionOf(m.Axis, 1), directionOf(m.Axis, -1)
		for i := 0; i < PieceCount; i++ {
			before, after := start.Piece(i), next.Piece(i)
			if before.Position[m.Axis] != m.Layer {
				continue
			}
			if after.Colors[plus] != before.Colors[plus] || after.Colors[minus] != before.Colors[minus] {
				t.Errorf("%v changed an axis face of %v: %v -> %v", m, before.Position, before.Colors, after.Colors)
			}
			if !sameColors(before.Colors, after.Colors) {
				t.Errorf("%v changed the colors of %v: %v -> %v", m, before.Position, before.Colors, after.Colors)
			}
		}
	}
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	all := AllMoves()
	original := InitialState()

	s := original
	for i := 0; i < 500; i++ {
		m := all[r.IntN(len(all))]
		next, err := ApplyMove(s, m)
		if err != nil {
			t.Fatalf("Move %d (%v): %v", i, m, err)
		}
		s = next
	}

	if err := Validate(s); err != nil {
		t.Fatalf("State after 500 moves is invalid: %v", err)
	}

	seen := make(map[Position]bool)
	for i, p := range s.Pieces() {
		if seen[p.Position] {
			t.Errorf("Duplicate position %v", p.Position)
		}
		seen[p.Position] = true
		if !sameColors(original.Piece(i).Colors, p.Colors) {
			t.Errorf("Slot %d colors %v are not a permutation of %v", i, p.Colors, original.Piece(i).Colors)
		}
	}
	if len(seen) != PieceCount {
		t.Errorf("Expected %d distinct positions, got %d", PieceCount, len(seen))
	}
}

func TestApplyMoveRejectsInvalidMoves(t *testing.T) {
	s := InitialState()
	bad := []Move{
		{Axis: Axis(3), Layer: 1, Sense: Clockwise},
		{Axis: Axis(-1), Layer: 1, Sense: Clockwise},
		{Axis: AxisX, Layer: 0, Sense: Clockwise},
		{Axis: AxisY, Layer: 2, Sense: Clockwise},
		{Axis: AxisZ, Layer: -1, Sense: Sense(0)},
		{Axis: AxisZ, Layer: -1, Sense: Sense(2)},
	}
	for _, m := range bad {
		got, err := ApplyMove(s, m)
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("%+v: expected ErrInvalidMove, got %v", m, err)
		}
		if got != s {
			t.Errorf("%+v: state changed on error", m)
		}
	}
}

func TestApplyMoveRejectsInvalidState(t *testing.T) {
	s := InitialState()
	s.pieces[3].Position = s.pieces[4].Position

	got, err := ApplyMove(s, xPlusCW)
	if !errors.Is(err, ErrInvalidState) {
		t.Errorf("Expected ErrInvalidState, got %v", err)
	}
	if got != s {
		t.Error("State changed on error")
	}
}

func TestApplyMovesIsAtomic(t *testing.T) {
	s := InitialState()
	moves := []Move{xPlusCW, yPlusCW, {Axis: AxisZ, Layer: 0, Sense: Clockwise}}

	got, err := ApplyMoves(s, moves)
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("Expected ErrInvalidMove, got %v", err)
	}
	if got != s {
		t.Error("No move should be applied when one is invalid")
	}
}

func TestMustApplyPanicsOnInvalidMove(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustApply should panic on an invalid move")
		}
	}()
	MustApply(InitialState(), Move{Axis: AxisX, Layer: 0, Sense: Clockwise})
}

func sameColors(a, b FaceColors) bool {
	as, bs := a[:], b[:]
	as, bs = slices.Clone(as), slices.Clone(bs)
	slices.Sort(as)
	slices.Sort(bs)
	return slices.Equal(as, bs)
}
