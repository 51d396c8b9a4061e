// Package render draws cube states for terminals.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubelet"
)

// stickerColors maps puzzle colors to terminal colors.
var stickerColors = map[cubelet.Color]lipgloss.Color{
	cubelet.Red:      lipgloss.Color("196"),
	cubelet.Orange:   lipgloss.Color("208"),
	cubelet.Yellow:   lipgloss.Color("226"),
	cubelet.White:    lipgloss.Color("255"),
	cubelet.Green:    lipgloss.Color("34"),
	cubelet.Blue:     lipgloss.Color("27"),
	cubelet.Interior: lipgloss.Color("0"),
}

var stickerStyles = func() map[cubelet.Color]lipgloss.Style {
	styles := make(map[cubelet.Color]lipgloss.Style, len(stickerColors))
	for c, tc := range stickerColors {
		styles[c] = lipgloss.NewStyle().Background(tc).Foreground(lipgloss.Color("0"))
	}
	return styles
}()

// Sticker renders one sticker. Plain stickers are the color letter plus a
// space; styled stickers are a colored block of the same width.
func Sticker(c cubelet.Color, plain bool) string {
	if plain {
		return c.String() + " "
	}
	return stickerStyles[c].Render(c.String() + " ")
}

// Net renders the unfolded net of s:
//
//	      U
//	  L   F   R   B
//	      D
func Net(s cubelet.State, plain bool) string {
	var b strings.Builder
	pad := strings.Repeat(" ", 6)

	writeRow := func(cells [9]cubelet.Color, row int) {
		for col := 0; col < 3; col++ {
			b.WriteString(Sticker(cells[row*3+col], plain))
		}
	}

	up := s.Facelets(cubelet.PosY)
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		writeRow(up, row)
		b.WriteByte('\n')
	}

	sides := []cubelet.Direction{cubelet.NegX, cubelet.PosZ, cubelet.PosX, cubelet.NegZ}
	for row := 0; row < 3; row++ {
		for _, d := range sides {
			writeRow(s.Facelets(d), row)
		}
		b.WriteByte('\n')
	}

	down := s.Facelets(cubelet.NegY)
	for row := 0; row < 3; row++ {
		b.WriteString(pad)
		writeRow(down, row)
		b.WriteByte('\n')
	}

	return b.String()
}

// Summary returns a one-line description of the puzzle.
func Summary(s cubelet.State) string {
	if s.IsSolved() {
		return "solved"
	}
	wrong := 0
	for _, d := range cubelet.Directions {
		for _, c := range s.Facelets(d) {
			if c != d.Color() {
				wrong++
			}
		}
	}
	return fmt.Sprintf("scrambled (%d of 54 stickers out of place)", wrong)
}
