package protocol

import "fmt"

// Rotation is a single face turn reported by the cube.
type Rotation struct {
	Code      byte  // Raw face and direction code, 0x00-0x0B
	Center    byte  // Orientation of the turned face's center cap
	Clockwise bool  // Seen facing the turned face
	Color     Color // Center color of the turned face
}

// Color is the center color the cube reports for a face.
type Color byte

// Face colors in GoCube code order.
const (
	ColorBlue Color = iota
	ColorGreen
	ColorWhite
	ColorYellow
	ColorRed
	ColorOrange
)

func (c Color) String() string {
	switch c {
	case ColorBlue:
		return "blue"
	case ColorGreen:
		return "green"
	case ColorWhite:
		return "white"
	case ColorYellow:
		return "yellow"
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	default:
		return fmt.Sprintf("Color(%d)", byte(c))
	}
}

// DecodeRotation decodes a rotation payload made of
// [code][center] byte pairs. Even codes are clockwise, odd codes
// counter-clockwise, and code/2 is the face color.
func DecodeRotation(payload []byte) ([]Rotation, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("rotation payload must have even length, got %d", len(payload))
	}

	rotations := make([]Rotation, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		color := Color(code / 2)
		if color > ColorOrange {
			return nil, fmt.Errorf("unknown face code 0x%02X", code)
		}
		rotations = append(rotations, Rotation{
			Code:      code,
			Center:    payload[i+1],
			Clockwise: code%2 == 0,
			Color:     color,
		})
	}
	return rotations, nil
}

// DecodeBattery decodes a battery payload into a 0-100 level.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, fmt.Errorf("battery payload too short")
	}
	return int(payload[0]), nil
}

// DecodeCubeType decodes a cube type payload: "standard" or "edge".
func DecodeCubeType(payload []byte) (string, error) {
	if len(payload) < 1 {
		return "", fmt.Errorf("cube type payload too short")
	}
	if payload[0] == 0x01 {
		return "edge", nil
	}
	return "standard", nil
}
