package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubelet"
)

func TestPlainNetMatchesStateString(t *testing.T) {
	s := cubelet.MustApply(cubelet.InitialState(),
		cubelet.Move{Axis: cubelet.AxisX, Layer: 1, Sense: cubelet.Clockwise},
		cubelet.Move{Axis: cubelet.AxisY, Layer: -1, Sense: cubelet.CounterClockwise},
	)
	assert.Equal(t, s.String(), Net(s, true))
}

func TestStyledNetHasSameShape(t *testing.T) {
	s := cubelet.InitialState()
	plain := strings.Split(Net(s, true), "\n")
	styled := strings.Split(Net(s, false), "\n")
	require.Len(t, styled, len(plain))
}

func TestSummary(t *testing.T) {
	s := cubelet.InitialState()
	assert.Equal(t, "solved", Summary(s))

	// A quarter turn of one layer displaces 12 side stickers.
	s = cubelet.MustApply(s, cubelet.Move{Axis: cubelet.AxisZ, Layer: 1, Sense: cubelet.Clockwise})
	assert.Equal(t, "scrambled (12 of 54 stickers out of place)", Summary(s))
}
