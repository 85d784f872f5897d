package tutor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Operands outside these bounds are rejected so arithmetic and formatting
// stay cheap: at most maxOperandDigits significant digits and an exponent
// within ±maxOperandExponent.
const (
	maxOperandDigits   = 1000
	maxOperandExponent = 1000
)

// Context keys holding the numeric operands.
const (
	OperandA = "a"
	OperandB = "b"
)

var (
	// ErrMissingOperand means an operand key is absent or nil.
	ErrMissingOperand = errors.New("missing operand")
	// ErrInvalidContext means a context value could not be used as a number.
	ErrInvalidContext = errors.New("invalid context")
)

// InvalidContextError reports a context value that is not numeric.
type InvalidContextError struct {
	Key   string
	Value any
}

func (e *InvalidContextError) Error() string {
	return fmt.Sprintf("invalid context: %q is not numeric (%T %v)", e.Key, e.Value, e.Value)
}

func (e *InvalidContextError) Is(target error) bool {
	return target == ErrInvalidContext
}

// Operands extracts the "a" and "b" values from ctx as decimals.
//
// Integers, floats, decimal.Decimal and json.Number are accepted as is.
// Strings are accepted when they parse as a decimal number. Anything else,
// including NaN, infinities and values with more than 1000 digits or an
// exponent beyond ±1000, yields an *InvalidContextError.
func Operands(ctx Context) (a, b decimal.Decimal, err error) {
	if a, err = operand(ctx, OperandA); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if b, err = operand(ctx, OperandB); err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return a, b, nil
}

func operand(ctx Context, key string) (decimal.Decimal, error) {
	if !ctx.Has(key) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMissingOperand, key)
	}
	v := ctx[key]
	d, ok := toDecimal(v)
	if !ok || !withinBounds(d) {
		return decimal.Zero, &InvalidContextError{Key: key, Value: v}
	}
	return d, nil
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return fromUint(uint64(n)), true
	case uint8:
		return decimal.NewFromInt(int64(n)), true
	case uint16:
		return decimal.NewFromInt(int64(n)), true
	case uint32:
		return decimal.NewFromInt(int64(n)), true
	case uint64:
		return fromUint(n), true
	case float32:
		if d, ok := fromFloat(float64(n)); !ok {
			return d, false
		}
		return decimal.NewFromFloat32(n), true
	case float64:
		return fromFloat(n)
	case decimal.Decimal:
		return n, true
	case json.Number:
		return fromString(n.String())
	case string:
		return fromString(n)
	default:
		return decimal.Zero, false
	}
}

func withinBounds(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > maxOperandExponent || exp < -maxOperandExponent {
		return false
	}
	return d.NumDigits() <= maxOperandDigits
}

func fromUint(u uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(u), 0)
}

func fromFloat(f float64) (decimal.Decimal, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(f), true
}

func fromString(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
