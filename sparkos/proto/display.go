package proto

// DisplayFlags annotate a MsgDisplay payload.
type DisplayFlags uint8

const (
	DisplayFailed DisplayFlags = 1 << iota
	DisplayAwaiting
	DisplayTruncated
)

// displayHeaderBytes is flags + operator.
const displayHeaderBytes = 2

// MaxDisplayBytes is the longest display text carried in one message.
const MaxDisplayBytes = 128 - displayHeaderBytes

// DisplayPayload encodes a MsgDisplay payload.
//
// Payload format:
//
//	b[0]   : DisplayFlags
//	b[1]   : pending operator byte (0 = none)
//	b[2:]  : display text, cut to MaxDisplayBytes (DisplayTruncated set)
func DisplayPayload(flags DisplayFlags, op byte, text string) []byte {
	if len(text) > MaxDisplayBytes {
		text = text[:MaxDisplayBytes]
		flags |= DisplayTruncated
	}
	b := make([]byte, displayHeaderBytes, displayHeaderBytes+len(text))
	b[0] = byte(flags)
	b[1] = op
	return append(b, text...)
}

func DecodeDisplayPayload(b []byte) (flags DisplayFlags, op byte, text string, ok bool) {
	if len(b) < displayHeaderBytes {
		return 0, 0, "", false
	}
	return DisplayFlags(b[0]), b[1], string(b[displayHeaderBytes:]), true
}
