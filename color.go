package cubelet

// Color represents the color shown on one face of a piece.
type Color byte

const (
	Interior Color = 0 // Neutral face inside the puzzle
	Red      Color = 1 // Right side (+X) when solved
	Orange   Color = 2 // Left side (-X) when solved
	Yellow   Color = 3 // Top side (+Y) when solved
	White    Color = 4 // Bottom side (-Y) when solved
	Green    Color = 5 // Front side (+Z) when solved
	Blue     Color = 6 // Back side (-Z) when solved
)

// sideColors holds the canonical color of each side, indexed by Direction.
var sideColors = [6]Color{Red, Orange, Yellow, White, Green, Blue}

// String returns a one-letter code for the color.
func (c Color) String() string {
	switch c {
	case Interior:
		return "."
	case Red:
		return "R"
	case Orange:
		return "O"
	case Yellow:
		return "Y"
	case White:
		return "W"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case Interior:
		return "black"
	case Red:
		return "red"
	case Orange:
		return "orange"
	case Yellow:
		return "yellow"
	case White:
		return "white"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// IsCanonical reports whether c is one of the six side colors.
func (c Color) IsCanonical() bool {
	return c >= Red && c <= Blue
}
