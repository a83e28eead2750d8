package proto

// MaxLabelBytes bounds a MsgPress label.
const MaxLabelBytes = 16

// PressPayload encodes a MsgPress payload: the label as UTF-8 bytes.
// It returns nil for empty or oversized labels.
func PressPayload(label string) []byte {
	if label == "" || len(label) > MaxLabelBytes {
		return nil
	}
	return []byte(label)
}

func DecodePressPayload(b []byte) (label string, ok bool) {
	if len(b) == 0 || len(b) > MaxLabelBytes {
		return "", false
	}
	return string(b), true
}
