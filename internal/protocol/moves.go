package protocol

import (
	"fmt"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/notation"
)

// colorFace maps each center color to the face of the model that carries
// the same color when solved, so a turn of the red face on the device
// turns the red face of the model.
var colorFace = map[Color]notation.Face{
	ColorRed:    notation.FaceR,
	ColorOrange: notation.FaceL,
	ColorYellow: notation.FaceU,
	ColorWhite:  notation.FaceD,
	ColorGreen:  notation.FaceF,
	ColorBlue:   notation.FaceB,
}

// FaceMove returns the named-face turn for a rotation.
func (r Rotation) FaceMove() (notation.FaceMove, error) {
	face, ok := colorFace[r.Color]
	if !ok {
		return notation.FaceMove{}, fmt.Errorf("no face for color %s", r.Color)
	}
	turn := notation.TurnCCW
	if r.Clockwise {
		turn = notation.TurnCW
	}
	return notation.FaceMove{Face: face, Turn: turn}, nil
}

// Move returns the model move for a rotation.
func (r Rotation) Move() (cubelet.Move, error) {
	fm, err := r.FaceMove()
	if err != nil {
		return cubelet.Move{}, err
	}
	moves, err := fm.Moves()
	if err != nil {
		return cubelet.Move{}, err
	}
	return moves[0], nil
}

// RotationMoves decodes a rotation message into model moves.
func RotationMoves(msg *Message) ([]cubelet.Move, error) {
	if msg.Type != MsgTypeRotation {
		return nil, fmt.Errorf("not a rotation message: %s", MessageTypeName(msg.Type))
	}
	rotations, err := DecodeRotation(msg.Payload)
	if err != nil {
		return nil, err
	}

	moves := make([]cubelet.Move, 0, len(rotations))
	for _, r := range rotations {
		m, err := r.Move()
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
