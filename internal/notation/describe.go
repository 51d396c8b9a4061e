package notation

import "github.com/SeamusWaldron/cubelet"

// Describe returns a plain-language description of a quarter turn from the
// solver's point of view (top toward the ceiling, front toward the solver).
//
//	R  -> "right up"        R' -> "right down"
//	L  -> "left down"       L' -> "left up"
//	U  -> "top left"        U' -> "top right"
//	D  -> "bottom right"    D' -> "bottom left"
//	F  -> "front clockwise" F' -> "front anti-clockwise"
//	B  -> "back clockwise"  B' -> "back anti-clockwise"
//
// "top left" means the front stickers of the top layer travel to the left.
func Describe(m cubelet.Move) string {
	fm, err := FromMove(m)
	if err != nil {
		return "invalid move"
	}
	cw := fm.Turn == TurnCW

	switch fm.Face {
	case FaceR:
		return pick(cw, "right up", "right down")
	case FaceL:
		return pick(cw, "left down", "left up")
	case FaceU:
		return pick(cw, "top left", "top right")
	case FaceD:
		return pick(cw, "bottom right", "bottom left")
	case FaceF:
		return pick(cw, "front clockwise", "front anti-clockwise")
	default:
		return pick(cw, "back clockwise", "back anti-clockwise")
	}
}

func pick(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
