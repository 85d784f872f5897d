package tutor

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildStrategy(t *testing.T) {
	s := ChildStrategy{}

	resp := s.Teach("Adição", Context{"a": 2, "b": 3})
	assert.Equal(t, "Vamos somar com objetos: se você tem 2 maçãs e ganha 3 maçã(s), agora tem 5 maçãs. 😊", resp)

	assert.Contains(t, s.Teach("  SOMAR ", Context{"a": 0, "b": 0}), "agora tem 0 maçãs")
	assert.Equal(t, childAdditionGeneric, s.Teach("soma", Context{"a": 1}))
	assert.Equal(t, childAdditionGeneric, s.Teach("soma", Context{"a": 1, "b": nil}))
	assert.Equal(t, childAdditionGeneric, s.Teach("soma", Context{"a": 1, "b": "x"}))
	assert.Equal(t, childGeneric("multiplicação"), s.Teach("multiplicação", Context{"a": 3, "b": 4}))
}

func TestMiddleSchoolStrategy(t *testing.T) {
	s := MiddleSchoolStrategy{}

	assert.Contains(t, s.Teach("Frações", nil), "partes de um todo")
	assert.Equal(t, "3 × 4 = 12. Multiplicação é somar 3 repetidas 4 vezes.",
		s.Teach("multiplicação", Context{"a": 3, "b": 4}))
	assert.Equal(t, middleSchoolGeneric("multiplicar"), s.Teach("multiplicar", Context{"b": 4}))
	assert.Equal(t, middleSchoolGeneric("adição"), s.Teach("adição", Context{"a": 1, "b": 2}))
}

func TestHighSchoolStrategy(t *testing.T) {
	s := HighSchoolStrategy{}

	assert.Contains(t, s.Teach("equação do 1º grau", nil), "ax + b = 0")
	assert.Contains(t, s.Teach("EQUAÇÕES", nil), "x = -b/a")
	assert.Contains(t, s.Teach("derivadas", nil), "taxa de variação instantânea")
	assert.Equal(t, highSchoolGeneric("multiplicação"), s.Teach("multiplicação", Context{"a": 2, "b": 5}))
}

func TestStrategiesNeverEmpty(t *testing.T) {
	strategies := []Strategy{ChildStrategy{}, MiddleSchoolStrategy{}, HighSchoolStrategy{}}
	topics := []string{"", "adição", "fração", "equação", "derivada", "multiplicação", "história"}
	contexts := []Context{nil, {}, {"a": 1, "b": 2}, {"a": true, "b": []int{1}}}

	for _, s := range strategies {
		for _, topic := range topics {
			for _, ctx := range contexts {
				assert.NotEmpty(t, s.Teach(topic, ctx), "%s/%q/%v", s.Name(), topic, ctx)
			}
		}
	}
}

func TestStrategyNamesAndLookup(t *testing.T) {
	assert.Equal(t, []string{StrategyChild, StrategyHighSchool, StrategyMiddleSchool}, StrategyNames())

	for _, name := range StrategyNames() {
		s, err := NewStrategy(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err := NewStrategy("kindergarten")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}

func TestOperands(t *testing.T) {
	tests := []struct {
		name  string
		a, b  any
		wantA string
		wantB string
	}{
		{"ints", 2, 3, "2", "3"},
		{"int64 and uint8", int64(-7), uint8(9), "-7", "9"},
		{"uint64", uint64(18446744073709551615), uint(1), "18446744073709551615", "1"},
		{"floats", 0.1, float32(0.25), "0.1", "0.25"},
		{"decimal", decimal.RequireFromString("1.50"), 2, "1.5", "2"},
		{"numeric strings", " 4 ", "2.5", "4", "2.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, err := Operands(Context{"a": tt.a, "b": tt.b})
			require.NoError(t, err)
			assert.Equal(t, tt.wantA, a.String())
			assert.Equal(t, tt.wantB, b.String())
		})
	}
}

func TestOperandsDecimalArithmetic(t *testing.T) {
	s := ChildStrategy{}
	assert.Contains(t, s.Teach("soma", Context{"a": 0.1, "b": 0.2}), "agora tem 0.3 maçãs")
}

func TestOperandsErrors(t *testing.T) {
	_, _, err := Operands(nil)
	assert.ErrorIs(t, err, ErrMissingOperand)

	_, _, err = Operands(Context{"a": 1})
	assert.ErrorIs(t, err, ErrMissingOperand)

	_, _, err = Operands(Context{"a": 1, "b": "dois"})
	require.ErrorIs(t, err, ErrInvalidContext)
	var invalid *InvalidContextError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "b", invalid.Key)
	assert.Equal(t, "dois", invalid.Value)

	for _, bad := range []any{true, []int{1}, struct{}{}, math.NaN(), math.Inf(-1), float32(math.Inf(1))} {
		_, _, err = Operands(Context{"a": bad, "b": 1})
		assert.ErrorIs(t, err, ErrInvalidContext, "%T", bad)
	}
}

func TestOperandsBounds(t *testing.T) {
	accepted := []any{"1e1000", "1e-1000", strings.Repeat("9", 1000), 1e300}
	for _, v := range accepted {
		_, _, err := Operands(Context{"a": v, "b": 1})
		assert.NoError(t, err, "%v", v)
	}

	rejected := []any{
		"1e-2000000000",
		"1e20000000",
		"1e1001",
		"1e-1001",
		strings.Repeat("9", 1001),
		json.Number("1e99999"),
		decimal.New(1, 5000),
	}
	for _, v := range rejected {
		_, _, err := Operands(Context{"a": v, "b": 1})
		assert.ErrorIs(t, err, ErrInvalidContext, "%v", v)
	}
}

func TestArithmeticStrategiesExtremeExponent(t *testing.T) {
	extreme := []Context{
		{"a": "1e-2000000000", "b": "1e-2000000000"},
		{"a": "1e20000000", "b": 1},
		{"a": 1, "b": decimal.New(7, -3000)},
	}
	for _, ctx := range extreme {
		assert.Equal(t, childAdditionGeneric, ChildStrategy{}.Teach("adição", ctx))
		assert.Equal(t, middleSchoolGeneric("multiplicação"), MiddleSchoolStrategy{}.Teach("multiplicação", ctx))

		_, err := MiddleSchoolStrategy{}.TeachChecked("multiplicação", ctx)
		assert.ErrorIs(t, err, ErrInvalidContext)
	}

	resp := MiddleSchoolStrategy{}.Teach("multiplicação", Context{"a": "1e1000", "b": "1e-1000"})
	assert.Contains(t, resp, "= 1.")
}

func TestTeachCheckedReportsFallback(t *testing.T) {
	text, err := ChildStrategy{}.TeachChecked("soma", Context{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, ChildStrategy{}.Teach("soma", Context{"a": 1, "b": 2}), text)

	_, err = ChildStrategy{}.TeachChecked("soma", Context{"a": 1})
	assert.ErrorIs(t, err, ErrMissingOperand)

	_, err = ChildStrategy{}.TeachChecked("história", Context{"a": "x"})
	assert.NoError(t, err)

	_, err = MiddleSchoolStrategy{}.TeachChecked("fração", Context{"a": "x"})
	assert.NoError(t, err)
}
