// Package protocol implements framing and decoding for the GoCube smart
// cube BLE protocol, and maps its face rotations onto cubelet moves.
package protocol

import (
	"errors"
	"fmt"
)

// GoCube BLE service and characteristic UUIDs (Nordic UART).
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // Notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // Write
)

// Message types sent by the cube.
const (
	MsgTypeRotation    byte = 0x01
	MsgTypeState       byte = 0x02
	MsgTypeOrientation byte = 0x03
	MsgTypeBattery     byte = 0x05
	MsgTypeCubeType    byte = 0x08
)

// Commands written to the RX characteristic.
const (
	CmdRequestBattery     byte = 0x32
	CmdRequestState       byte = 0x33
	CmdResetSolved        byte = 0x35
	CmdDisableOrientation byte = 0x37
	CmdFlashBacklight     byte = 0x41
	CmdRequestCubeType    byte = 0x56
)

const (
	framePrefix  byte = 0x2A // '*'
	frameSuffix1 byte = 0x0D // CR
	frameSuffix2 byte = 0x0A // LF
)

var (
	ErrInvalidPrefix   = errors.New("protocol: invalid message prefix")
	ErrInvalidSuffix   = errors.New("protocol: invalid message suffix")
	ErrInvalidChecksum = errors.New("protocol: invalid checksum")
	ErrMessageTooShort = errors.New("protocol: message too short")
	ErrInvalidLength   = errors.New("protocol: invalid message length")
)

// Message is one decoded notification frame.
type Message struct {
	Type    byte
	Payload []byte
}

// ParseMessage decodes a raw notification.
//
// Frame layout: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A].
// length counts every byte after itself. The checksum is the byte sum of
// everything before it.
func ParseMessage(data []byte) (*Message, error) {
	if len(data) < 6 {
		return nil, ErrMessageTooShort
	}
	if data[0] != framePrefix {
		return nil, ErrInvalidPrefix
	}

	total := 2 + int(data[1])
	if len(data) < total {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInvalidLength, total, len(data))
	}

	checksumIdx := total - 3
	if checksumIdx < 3 {
		return nil, ErrMessageTooShort
	}
	if data[checksumIdx+1] != frameSuffix1 || data[checksumIdx+2] != frameSuffix2 {
		return nil, ErrInvalidSuffix
	}

	var sum byte
	for _, b := range data[:checksumIdx] {
		sum += b
	}
	if sum != data[checksumIdx] {
		return nil, fmt.Errorf("%w: frame has 0x%02X, computed 0x%02X", ErrInvalidChecksum, data[checksumIdx], sum)
	}

	payload := make([]byte, checksumIdx-3)
	copy(payload, data[3:checksumIdx])
	return &Message{Type: data[2], Payload: payload}, nil
}

// BuildFrame frames a message of the given type and payload.
func BuildFrame(msgType byte, payload []byte) []byte {
	frame := make([]byte, 0, len(payload)+6)
	frame = append(frame, framePrefix, byte(len(payload)+4), msgType)
	frame = append(frame, payload...)

	var sum byte
	for _, b := range frame {
		sum += b
	}
	return append(frame, sum, frameSuffix1, frameSuffix2)
}

// BuildCommand creates the write frame for a payload-less command:
// [0x2A] [0x01] [cmd] [checksum] [0x0D] [0x0A].
func BuildCommand(cmd byte) []byte {
	length := byte(0x01)
	return []byte{framePrefix, length, cmd, framePrefix + length + cmd, frameSuffix1, frameSuffix2}
}

// MessageTypeName returns a readable name for a message type.
func MessageTypeName(msgType byte) string {
	switch msgType {
	case MsgTypeRotation:
		return "rotation"
	case MsgTypeState:
		return "state"
	case MsgTypeOrientation:
		return "orientation"
	case MsgTypeBattery:
		return "battery"
	case MsgTypeCubeType:
		return "cube_type"
	default:
		return fmt.Sprintf("unknown_0x%02X", msgType)
	}
}
