package calc

// Button labels, exactly as drawn.
const (
	LabelDecimal    = "."
	LabelAdd        = "+"
	LabelSub        = "-"
	LabelMul        = "*"
	LabelDiv        = "/"
	LabelMod        = "%"
	LabelEquals     = "="
	LabelSquare     = "x^2"
	LabelReciprocal = "1/x"
	LabelClear      = "Clear"
)

// KeyKind classifies a label.
type KeyKind uint8

const (
	KeyUnknown KeyKind = iota
	KeyDigit
	KeyOperator
	KeyEquals
	KeySquare
	KeyReciprocal
	KeyClear
)

func (k KeyKind) String() string {
	switch k {
	case KeyDigit:
		return "digit"
	case KeyOperator:
		return "operator"
	case KeyEquals:
		return "equals"
	case KeySquare:
		return "square"
	case KeyReciprocal:
		return "reciprocal"
	case KeyClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Classify maps a label to its kind. Digits include the decimal point.
func Classify(label string) KeyKind {
	switch label {
	case LabelEquals:
		return KeyEquals
	case LabelSquare:
		return KeySquare
	case LabelReciprocal:
		return KeyReciprocal
	case LabelClear:
		return KeyClear
	}
	if len(label) != 1 {
		return KeyUnknown
	}
	c := label[0]
	switch {
	case c >= '0' && c <= '9', c == '.':
		return KeyDigit
	case parseOperator(c) != OpNone:
		return KeyOperator
	}
	return KeyUnknown
}

func parseOperator(c byte) Operator {
	switch op := Operator(c); op {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		return op
	}
	return OpNone
}

// Labels lists the 20 buttons in grid order, four per row.
var Labels = [...]string{
	"7", "8", "9", LabelDiv,
	"4", "5", "6", LabelMul,
	"1", "2", "3", LabelSub,
	"0", LabelDecimal, LabelEquals, LabelAdd,
	LabelMod, LabelSquare, LabelReciprocal, LabelClear,
}
