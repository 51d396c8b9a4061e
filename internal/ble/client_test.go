package ble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/SeamusWaldron/cubelet"
	"github.com/SeamusWaldron/cubelet/internal/protocol"
)

func TestNotificationDeliversMoves(t *testing.T) {
	c := newClient(nil, zaptest.NewLogger(t))

	var got []cubelet.Move
	var types []byte
	c.OnMoves(func(m []cubelet.Move) { got = append(got, m...) })
	c.OnMessage(func(m *protocol.Message) { types = append(types, m.Type) })

	c.handleNotification(protocol.BuildFrame(protocol.MsgTypeRotation, []byte{0x08, 0x00, 0x09, 0x00}))

	require.Len(t, got, 2)
	assert.Equal(t, "X+' X+", cubelet.FormatMoves(got))
	assert.Equal(t, []byte{protocol.MsgTypeRotation}, types)
}

func TestNotificationTracksBattery(t *testing.T) {
	c := newClient(nil, zaptest.NewLogger(t))
	assert.Equal(t, -1, c.Battery())

	c.handleNotification(protocol.BuildFrame(protocol.MsgTypeBattery, []byte{64}))
	assert.Equal(t, 64, c.Battery())
}

func TestNotificationDropsCorruptFrames(t *testing.T) {
	c := newClient(nil, zaptest.NewLogger(t))
	called := false
	c.OnMoves(func([]cubelet.Move) { called = true })

	frame := protocol.BuildFrame(protocol.MsgTypeRotation, []byte{0x08, 0x00})
	frame[3] ^= 0xFF
	c.handleNotification(frame)

	assert.False(t, called)
}

func TestSendCommandRequiresConnection(t *testing.T) {
	c := newClient(nil, nil)
	assert.ErrorIs(t, c.SendCommand(protocol.CmdRequestBattery), ErrNotConnected)
	assert.NoError(t, c.Disconnect())
}
