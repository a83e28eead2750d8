package calc

import (
	"math"
	"strconv"

	"sparkcalc/internal/errors"
)

var (
	// ErrNotANumber marks display text that does not parse as float64.
	ErrNotANumber = errors.New("display is not a number")
	// ErrDivideByZero is returned for "/" and "1/x" with a zero divisor.
	ErrDivideByZero = errors.New("division by zero")
)

// ParseOperand is the single text-to-number boundary. Literals beyond the
// float64 range parse to their signed infinity.
func ParseOperand(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil && errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	if err != nil {
		return 0, errors.Mark(errors.Wrapf(err, "parse %q", text), ErrNotANumber)
	}
	return v, nil
}

// FormatNumber renders v with the fewest digits that parse back to v.
// Plain notation is used for 1e-6 <= |v| < 1e21, exponent notation outside.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'e', -1, 64)
}

// Evaluate applies op to (a, b). With no pending operator the result is 0.
// Modulo follows math.Mod: the sign of a, and NaN for b == 0.
func Evaluate(op Operator, a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpMul:
		return a * b, nil
	case OpDiv:
		if b == 0 {
			return 0, errors.Wrapf(ErrDivideByZero, "%s / %s", FormatNumber(a), FormatNumber(b))
		}
		return a / b, nil
	case OpMod:
		return math.Mod(a, b), nil
	}
	return 0, nil
}
