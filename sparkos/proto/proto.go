package proto

// Kind identifies the message type carried in kernel.Message.Kind.
type Kind uint16

const (
	// MsgPointer carries one pointer press or release in framebuffer pixels.
	MsgPointer Kind = iota + 1
	// MsgPress carries one button label, bypassing hit-testing.
	MsgPress
	// MsgDisplay reports the calculator state after a change.
	MsgDisplay
)

func (k Kind) String() string {
	switch k {
	case MsgPointer:
		return "pointer"
	case MsgPress:
		return "press"
	case MsgDisplay:
		return "display"
	default:
		return "unknown"
	}
}
