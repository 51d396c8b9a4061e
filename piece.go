package cubelet

import "fmt"

// Axis identifies one of the three rotation axes.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// IsValid reports whether a is X, Y or Z.
func (a Axis) IsValid() bool {
	return a >= AxisX && a <= AxisZ
}

// Direction is one of the six outward face directions. The numeric values
// are the canonical face order used by FaceColors.
type Direction int

const (
	PosX Direction = 0 // Right
	NegX Direction = 1 // Left
	PosY Direction = 2 // Top
	NegY Direction = 3 // Bottom
	PosZ Direction = 4 // Front
	NegZ Direction = 5 // Back
)

// Directions lists all six directions in canonical order.
var Directions = [6]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}

// directionOf returns the direction along axis a with the given sign.
func directionOf(a Axis, sign int) Direction {
	if sign > 0 {
		return Direction(2 * int(a))
	}
	return Direction(2*int(a) + 1)
}

// Axis returns the axis the direction lies on.
func (d Direction) Axis() Axis {
	return Axis(int(d) / 2)
}

// Sign returns +1 for the positive directions and -1 for the negative ones.
func (d Direction) Sign() int {
	if int(d)%2 == 0 {
		return 1
	}
	return -1
}

// Opposite returns the direction pointing the other way on the same axis.
func (d Direction) Opposite() Direction {
	return directionOf(d.Axis(), -d.Sign())
}

// Vector returns the unit vector of the direction.
func (d Direction) Vector() Position {
	var p Position
	p[d.Axis()] = d.Sign()
	return p
}

// Color returns the canonical color of the side the direction points at.
func (d Direction) Color() Color {
	return sideColors[d]
}

func (d Direction) String() string {
	if d < PosX || d > NegZ {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	sign := "+"
	if d.Sign() < 0 {
		sign = "-"
	}
	return sign + d.Axis().String()
}

// Position is a piece location in the 3x3x3 grid. Each component is -1, 0
// or 1; the origin is the hidden core and is never a piece position.
type Position [3]int

// IsValid reports whether p is one of the 26 piece positions.
func (p Position) IsValid() bool {
	for _, v := range p {
		if v < -1 || v > 1 {
			return false
		}
	}
	return p != Position{}
}

// index maps a valid position to 0..26 (13 is the origin).
func (p Position) index() int {
	return (p[0]+1)*9 + (p[1]+1)*3 + (p[2] + 1)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p[0], p[1], p[2])
}

// FaceColors holds the color of each face of a piece, indexed by Direction.
type FaceColors [6]Color

// Face returns the color on face d.
func (f FaceColors) Face(d Direction) Color {
	return f[d]
}

// Visible returns the number of non-interior faces.
func (f FaceColors) Visible() int {
	n := 0
	for _, c := range f {
		if c != Interior {
			n++
		}
	}
	return n
}

// Piece is one of the 26 movable cubelets.
type Piece struct {
	Position Position
	Colors   FaceColors
}

func (p Piece) String() string {
	s := p.Position.String() + " "
	for _, c := range p.Colors {
		s += c.String()
	}
	return s
}

// solvedColors returns the face colors a piece at pos shows when solved.
func solvedColors(pos Position) FaceColors {
	var fc FaceColors
	for _, d := range Directions {
		if pos[d.Axis()] == d.Sign() {
			fc[d] = d.Color()
		}
	}
	return fc
}
