package calculator

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"precisecalc/internal/domain"
	"precisecalc/internal/history"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertDecimal сравнивает численно: 1.0 == 1.
func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func newCalculator() *Calculator {
	return New(history.NewShared())
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   domain.Operator
		a, b string
		want string
	}{
		{name: "2 + 3", op: domain.OpAdd, a: "2", b: "3", want: "5"},
		{name: "-1 + 1", op: domain.OpAdd, a: "-1", b: "1", want: "0"},
		{name: "0 + 0", op: domain.OpAdd, a: "0", b: "0", want: "0"},
		{name: "-2.5 + 3.5", op: domain.OpAdd, a: "-2.5", b: "3.5", want: "1.0"},
		{name: "0.1 + 0.2 без ошибки float", op: domain.OpAdd, a: "0.1", b: "0.2", want: "0.3"},
		{name: "5 - 3", op: domain.OpSub, a: "5", b: "3", want: "2"},
		{name: "0 - 5", op: domain.OpSub, a: "0", b: "5", want: "-5"},
		{name: "7.5 - 2.5", op: domain.OpSub, a: "7.5", b: "2.5", want: "5.0"},
		{name: "-3 - -3", op: domain.OpSub, a: "-3", b: "-3", want: "0"},
		{name: "4 * 3", op: domain.OpMul, a: "4", b: "3", want: "12"},
		{name: "-2 * 3", op: domain.OpMul, a: "-2", b: "3", want: "-6"},
		{name: "0 * 5", op: domain.OpMul, a: "0", b: "5", want: "0"},
		{name: "-2 * -2", op: domain.OpMul, a: "-2", b: "-2", want: "4"},
		{name: "10 / 2", op: domain.OpDiv, a: "10", b: "2", want: "5"},
		{name: "9 / 3", op: domain.OpDiv, a: "9", b: "3", want: "3"},
		{name: "5 / 0.5", op: domain.OpDiv, a: "5", b: "0.5", want: "10"},
		{name: "-6 / 2", op: domain.OpDiv, a: "-6", b: "2", want: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalculator()
			got, err := c.Apply(tt.op, d(tt.a), d(tt.b))
			require.NoError(t, err)
			assertDecimal(t, tt.want, got)

			last, err := c.LastInstanceCalculation()
			require.NoError(t, err)
			assert.Equal(t, tt.a+" "+string(tt.op)+" "+tt.b, last.Description)
			assert.True(t, last.Result.Equal(got))
		})
	}
}

func TestDivide_Precision(t *testing.T) {
	c := newCalculator()

	got, err := c.Divide(d("1"), d("3"))
	require.NoError(t, err)
	assert.Equal(t, "0."+strings.Repeat("3", 28), got.String())

	got, err = c.Divide(d("2"), d("3"))
	require.NoError(t, err)
	assert.Equal(t, "0."+strings.Repeat("6", 27)+"7", got.String())

	// маленькое частное тоже получает 28 значащих цифр
	got, err = c.Divide(d("1"), d("3000000"))
	require.NoError(t, err)
	assert.Equal(t, "0.000000"+strings.Repeat("3", 28), got.String())

	// большое частное - без потери целой части
	got, err = c.Divide(d("1e40"), d("4"))
	require.NoError(t, err)
	assertDecimal(t, "2500000000000000000000000000000000000000", got)
}

func TestDivide_ResultIsNormalized(t *testing.T) {
	c := newCalculator()

	q, err := c.Divide(d("10"), d("2"))
	require.NoError(t, err)
	assert.Equal(t, "5", domain.FormatOperand(q))

	// частное как операнд следующей операции выводится без хвостовых нулей
	c.Add(q, d("1"))
	last, err := c.LastInstanceCalculation()
	require.NoError(t, err)
	assert.Equal(t, "5 + 1", last.Description)
}

func TestDivide_ByZero(t *testing.T) {
	c := newCalculator()

	_, err := c.Divide(d("10"), d("0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
	assert.Equal(t, domain.KindDivisionByZero, domain.KindOf(err))
	assert.Equal(t, "Cannot divide by zero.", err.Error())

	// делитель 0.00 - тоже ноль
	_, err = c.Divide(d("1"), d("0.00"))
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)

	// ни одна история не изменилась
	_, err = c.LastSharedCalculation()
	assert.ErrorIs(t, err, domain.ErrEmptyHistory)
	_, err = c.LastInstanceCalculation()
	assert.ErrorIs(t, err, domain.ErrEmptyHistory)
}

func TestDivide_OperandOutOfRange(t *testing.T) {
	c := newCalculator()

	_, err := c.Divide(d("1e2000000"), d("3"))
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)

	_, err = c.Divide(d("1"), d("1e-2000000"))
	assert.ErrorIs(t, err, domain.ErrInvalidOperand)

	assert.Empty(t, c.InstanceHistory())
	assert.Equal(t, 0, c.SharedHistory().Len())

	// граничные операнды делятся
	got, err := c.Divide(d("1e9999"), d("1e-9999"))
	require.NoError(t, err)
	assertDecimal(t, "1e19998", got)
}

func TestApply_UnknownOperation(t *testing.T) {
	c := newCalculator()
	_, err := c.Apply(domain.Operator("%"), d("1"), d("2"))
	assert.ErrorIs(t, err, domain.ErrUnknownOperation)
	assert.Empty(t, c.InstanceHistory())
}

func TestSharedHistory(t *testing.T) {
	c := newCalculator()

	c.Add(d("2"), d("3"))
	c.Subtract(d("5"), d("2"))

	last, err := c.LastSharedCalculation()
	require.NoError(t, err)
	assert.True(t, last.Equal(domain.Entry{Description: "5 - 2", Result: d("3")}))
}

func TestSharedHistory_AcrossInstances(t *testing.T) {
	shared := history.NewShared()
	calc1 := New(shared)
	calc1.Add(d("2"), d("2"))

	calc2 := New(shared)
	calc2.Add(d("3"), d("3"))

	for _, c := range []*Calculator{calc1, calc2} {
		last, err := c.LastSharedCalculation()
		require.NoError(t, err)
		assert.True(t, last.Equal(domain.Entry{Description: "3 + 3", Result: d("6")}))
	}

	// история экземпляров изолирована
	last1, err := calc1.LastInstanceCalculation()
	require.NoError(t, err)
	assert.Equal(t, "2 + 2", last1.Description)

	calc2.ResetInstanceHistory()
	last1, err = calc1.LastInstanceCalculation()
	require.NoError(t, err)
	assert.Equal(t, "2 + 2", last1.Description)
}

func TestResetSharedHistory(t *testing.T) {
	c := newCalculator()
	c.Add(d("1"), d("2"))

	c.ResetSharedHistory()

	_, err := c.LastSharedCalculation()
	require.Error(t, err)
	assert.Equal(t, "No calculations in history.", err.Error())

	// история экземпляра при этом сохраняется
	last, err := c.LastInstanceCalculation()
	require.NoError(t, err)
	assert.Equal(t, "1 + 2", last.Description)
}

func TestInstanceHistory(t *testing.T) {
	c := newCalculator()
	c.Add(d("2"), d("3"))
	c.Subtract(d("5"), d("2"))

	last, err := c.LastInstanceCalculation()
	require.NoError(t, err)
	assert.True(t, last.Equal(domain.Entry{Description: "5 - 2", Result: d("3")}))
	assert.Len(t, c.InstanceHistory(), 2)
}

func TestResetInstanceHistory(t *testing.T) {
	c := newCalculator()
	c.Add(d("1"), d("2"))

	c.ResetInstanceHistory()

	_, err := c.LastInstanceCalculation()
	require.Error(t, err)
	assert.Equal(t, "No calculations in instance history.", err.Error())
	assert.ErrorIs(t, err, domain.ErrEmptyHistory)

	// общая история при этом сохраняется
	_, err = c.LastSharedCalculation()
	assert.NoError(t, err)
}

func TestFreshInstance_EmptyHistory(t *testing.T) {
	_, err := newCalculator().LastInstanceCalculation()
	require.Error(t, err)
	assert.Equal(t, "No calculations in instance history.", err.Error())
}

func TestCreateInstance(t *testing.T) {
	c := newCalculator()
	c.Add(d("7"), d("7"))

	other := c.CreateInstance()
	assertDecimal(t, "2", other.Add(d("1"), d("1")))

	assert.Same(t, c.SharedHistory(), other.SharedHistory())
	assert.Len(t, other.InstanceHistory(), 1, "новый экземпляр начинается с пустой истории")
	assert.Equal(t, 2, c.SharedHistory().Len())
}

func TestHistoryEntriesMatch(t *testing.T) {
	c := newCalculator()
	c.Multiply(d("2.00"), d("3"))

	shared, err := c.LastSharedCalculation()
	require.NoError(t, err)
	own, err := c.LastInstanceCalculation()
	require.NoError(t, err)

	assert.Equal(t, "2.00 * 3", shared.Description, "операнд выводится как задан")
	assert.True(t, shared.Equal(own))
}

func TestNewWithPrecision(t *testing.T) {
	c := NewWithPrecision(nil, 40)
	got, err := c.Divide(d("1"), d("3"))
	require.NoError(t, err)
	assert.Equal(t, "0."+strings.Repeat("3", 40), got.String())

	// ниже минимума точность не опускается
	c = NewWithPrecision(nil, 5)
	got, err = c.Divide(d("1"), d("3"))
	require.NoError(t, err)
	assert.Equal(t, "0."+strings.Repeat("3", 28), got.String())
}
