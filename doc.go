// Package cubelet models a 3x3x3 twisty puzzle as 26 movable pieces and
// provides quarter turns of its six outer layers.
//
// # Features
//
//   - Piece-level cube state (position plus six face colors per piece)
//   - Pure layer rotation: ApplyMove returns a new State and never mutates
//   - Tick-driven scramble/reset sequencer for animation hosts
//   - Invariant checking for corrupted states
//
// # Quick Start
//
//	s := cubelet.InitialState()
//
//	next, err := cubelet.ApplyMove(s, cubelet.Move{
//	    Axis:  cubelet.AxisX,
//	    Layer: 1,
//	    Sense: cubelet.Clockwise,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(next)
//
// # Sign Convention
//
// A clockwise quarter turn maps the coordinates in the turning plane as
// follows; counter-clockwise is the inverse:
//
//	X  (y,z) -> (-z,y)
//	Y  (x,z) -> (-z,x)
//	Z  (x,y) -> (-y,x)
//
// A clockwise turn of the +X layer carries the piece at (1,1,0) to
// (1,0,1). In standard face notation that is R'; U is Y+ clockwise and
// F is Z+ counter-clockwise.
//
// # Scrambling
//
// The Sequencer owns the current state and is advanced by its host, one
// Tick per frame:
//
//	seq := cubelet.NewSequencer()
//	seq.OnComplete(func(moves []cubelet.Move) {
//	    fmt.Println("scrambled:", cubelet.FormatMoves(moves))
//	})
//	seq.Scramble()
//	for seq.IsScrambling() {
//	    seq.Tick()
//	}
package cubelet
