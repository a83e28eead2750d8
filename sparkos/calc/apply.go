package calc

import "sparkcalc/internal/errors"

// Apply returns the state that follows pressing label in s.
// Unknown labels return s unchanged.
func Apply(s State, label string) State {
	next, _ := Step(s, label)
	return next
}

// Step is Apply plus the cause when the result is DisplayError.
// The error is informational; the returned State is always valid.
func Step(s State, label string) (State, error) {
	switch Classify(label) {
	case KeyDigit:
		return enter(s, label), nil
	case KeyOperator:
		return capture(s, parseOperator(label[0]))
	case KeyEquals:
		return equals(s)
	case KeySquare:
		return square(s)
	case KeyReciprocal:
		return reciprocal(s)
	case KeyClear:
		return Initial(), nil
	}
	return s, nil
}

func enter(s State, label string) State {
	if s.Awaiting {
		s.Display = ""
		s.Awaiting = false
	}
	s.Display += label
	return s
}

func capture(s State, op Operator) (State, error) {
	v, err := ParseOperand(s.Display)
	if err != nil {
		return s.fail(), errors.Wrapf(err, "operator %s", op)
	}
	s.First = v
	s.Op = op
	s.Awaiting = true
	return s, nil
}

func equals(s State) (State, error) {
	b, err := ParseOperand(s.Display)
	if err != nil {
		return s.fail(), errors.Wrap(err, "equals")
	}
	r, err := Evaluate(s.Op, s.First, b)
	if err != nil {
		return s.fail(), err
	}
	return show(s, r), nil
}

func square(s State) (State, error) {
	v, err := ParseOperand(s.Display)
	if err != nil {
		return s.fail(), errors.Wrap(err, LabelSquare)
	}
	return show(s, v*v), nil
}

func reciprocal(s State) (State, error) {
	v, err := ParseOperand(s.Display)
	if err != nil {
		return s.fail(), errors.Wrap(err, LabelReciprocal)
	}
	if v == 0 {
		return s.fail(), errors.Wrap(ErrDivideByZero, LabelReciprocal)
	}
	return show(s, 1/v), nil
}

func show(s State, v float64) State {
	s.Display = FormatNumber(v)
	s.Awaiting = true
	return s
}
