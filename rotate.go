package cubelet

import "fmt"

// planeAxes holds, for each rotation axis, the two axes (p,q) spanning
// the turning plane. A clockwise turn carries +p toward +q.
var planeAxes = [3][2]Axis{
	AxisX: {AxisY, AxisZ},
	AxisY: {AxisX, AxisZ},
	AxisZ: {AxisX, AxisY},
}

// faceCycles[axis][sense] lists the four faces in the turning plane in
// the order a color travels: the color on cycle[i] moves to cycle[i+1].
// It is built from rotatePosition so faces and positions can never
// disagree about the sense of a turn.
var faceCycles [3][2][4]Direction

func init() {
	for _, a := range []Axis{AxisX, AxisY, AxisZ} {
		for _, s := range []Sense{Clockwise, CounterClockwise} {
			d := directionOf(planeAxes[a][0], 1)
			for i := 0; i < 4; i++ {
				faceCycles[a][senseIndex(s)][i] = d
				d = vectorDirection(rotatePosition(d.Vector(), a, s))
			}
		}
	}
}

func senseIndex(s Sense) int {
	if s == Clockwise {
		return 0
	}
	return 1
}

// vectorDirection returns the direction of a unit vector.
func vectorDirection(v Position) Direction {
	for a := AxisX; a <= AxisZ; a++ {
		if v[a] != 0 {
			return directionOf(a, v[a])
		}
	}
	panic(fmt.Sprintf("cubelet: %v is not a unit vector", v))
}

// rotatePosition turns p a quarter turn about axis a. With (p,q) the plane
// axes of a, clockwise maps (p,q) to (-q,p) and counter-clockwise maps
// (p,q) to (q,-p):
//
//	X  cw (y,z) -> (-z,y)   ccw (y,z) -> (z,-y)
//	Y  cw (x,z) -> (-z,x)   ccw (x,z) -> (z,-x)
//	Z  cw (x,y) -> (-y,x)   ccw (x,y) -> (y,-x)
func rotatePosition(p Position, a Axis, s Sense) Position {
	pa, qa := planeAxes[a][0], planeAxes[a][1]
	out := p
	if s == Clockwise {
		out[pa], out[qa] = -p[qa], p[pa]
	} else {
		out[pa], out[qa] = p[qa], -p[pa]
	}
	return out
}

// cycleFaces moves each color in the turning plane one step along the
// face cycle. Faces on the rotation axis keep their colors.
func cycleFaces(fc FaceColors, a Axis, s Sense) FaceColors {
	cycle := faceCycles[a][senseIndex(s)]
	out := fc
	for i := 0; i < 4; i++ {
		out[cycle[(i+1)%4]] = fc[cycle[i]]
	}
	return out
}

// ApplyMove returns the state after turning one outer layer a quarter
// turn. Only pieces whose coordinate on m.Axis equals m.Layer change.
//
// An out-of-domain move returns an error wrapping ErrInvalidMove; a state
// that breaks the puzzle invariants returns one wrapping ErrInvalidState.
// In both cases s is returned unchanged.
func ApplyMove(s State, m Move) (State, error) {
	if err := m.Validate(); err != nil {
		return s, err
	}
	if err := Validate(s); err != nil {
		return s, err
	}
	return turn(s, m), nil
}

// turn applies a validated move to a validated state.
func turn(s State, m Move) State {
	next := s
	for i, p := range s.pieces {
		if p.Position[m.Axis] != m.Layer {
			continue
		}
		next.pieces[i] = Piece{
			Position: rotatePosition(p.Position, m.Axis, m.Sense),
			Colors:   cycleFaces(p.Colors, m.Axis, m.Sense),
		}
	}
	return next
}

// ApplyMoves applies moves in order. If any move is invalid nothing is
// applied and s is returned with the error.
func ApplyMoves(s State, moves []Move) (State, error) {
	for i, m := range moves {
		if err := m.Validate(); err != nil {
			return s, fmt.Errorf("move %d: %w", i, err)
		}
	}
	if err := Validate(s); err != nil {
		return s, err
	}

	next := s
	for _, m := range moves {
		next = turn(next, m)
	}
	return next, nil
}

// MustApply is like ApplyMoves but panics on error. It is meant for
// constant move sequences and tests.
func MustApply(s State, moves ...Move) State {
	next, err := ApplyMoves(s, moves)
	if err != nil {
		panic(err)
	}
	return next
}
