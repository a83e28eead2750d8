package proto

import "encoding/binary"

// PointerAction is the edge reported by MsgPointer.
type PointerAction uint8

const (
	PointerDown PointerAction = iota + 1
	PointerUp
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return "unknown"
	}
}

// PointerPayload encodes a MsgPointer payload.
//
// Layout (little-endian):
//   - u8: action
//   - i16: x
//   - i16: y
func PointerPayload(action PointerAction, x, y int16) []byte {
	buf := make([]byte, 5)
	buf[0] = byte(action)
	binary.LittleEndian.PutUint16(buf[1:3], uint16(x))
	binary.LittleEndian.PutUint16(buf[3:5], uint16(y))
	return buf
}

func DecodePointerPayload(b []byte) (action PointerAction, x, y int16, ok bool) {
	if len(b) != 5 {
		return 0, 0, 0, false
	}
	action = PointerAction(b[0])
	if action != PointerDown && action != PointerUp {
		return 0, 0, 0, false
	}
	x = int16(binary.LittleEndian.Uint16(b[1:3]))
	y = int16(binary.LittleEndian.Uint16(b[3:5]))
	return action, x, y, true
}
