// Package calc is the calculator's display state machine.
//
// State is a value; Apply maps one key label to the next State and never
// mutates its input. Controller wraps a State for callers that want a
// single mutable instance, such as the calculator task.
package calc

// DisplayError is the only error the user ever sees.
const DisplayError = "Error"

// Operator is a pending binary operator.
type Operator byte

const (
	OpNone Operator = 0
	OpAdd  Operator = '+'
	OpSub  Operator = '-'
	OpMul  Operator = '*'
	OpDiv  Operator = '/'
	OpMod  Operator = '%'
)

func (o Operator) String() string {
	if o == OpNone {
		return "none"
	}
	return string(rune(o))
}

// State is the whole calculator.
type State struct {
	// Display is shown verbatim: typed digits, a rendered number, "" or "Error".
	Display string
	// Op is the operator waiting for its second operand.
	Op Operator
	// First is the left operand captured when Op was pressed.
	First float64
	// Awaiting makes the next digit replace Display instead of appending.
	Awaiting bool
}

// Initial is the state at start-up and after Clear.
func Initial() State {
	return State{Awaiting: true}
}

// Failed reports whether the display shows DisplayError.
func (s State) Failed() bool { return s.Display == DisplayError }

func (s State) fail() State {
	s.Display = DisplayError
	s.Awaiting = true
	return s
}
