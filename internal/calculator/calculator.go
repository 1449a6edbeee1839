// Package calculator - ядро: четыре арифметические операции над десятичными числами
// произвольной точности с записью каждой успешной операции в общую историю и в историю экземпляра.
package calculator

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"precisecalc/internal/domain"
	"precisecalc/internal/history"
)

// DefaultPrecision - минимальное число значащих цифр частного.
const DefaultPrecision = 28

// Calculator - экземпляр калькулятора. Общая история передаётся снаружи, собственная создаётся пустой.
// Собственная история не синхронизирована: один экземпляр - один владелец.
type Calculator struct {
	shared    *history.Shared
	own       history.Log
	precision int
}

// New создаёт независимый экземпляр с пустой собственной историей. Общую историю не трогает.
func New(shared *history.Shared) *Calculator {
	return NewWithPrecision(shared, DefaultPrecision)
}

// NewWithPrecision - как New, но с заданной точностью деления (не ниже DefaultPrecision).
func NewWithPrecision(shared *history.Shared, precision int) *Calculator {
	if shared == nil {
		shared = history.NewShared()
	}
	if precision < DefaultPrecision {
		precision = DefaultPrecision
	}
	return &Calculator{shared: shared, precision: precision}
}

// CreateInstance возвращает новый экземпляр, подключённый к той же общей истории.
func (c *Calculator) CreateInstance() *Calculator {
	return NewWithPrecision(c.shared, c.precision)
}

// Add возвращает a + b.
func (c *Calculator) Add(a, b decimal.Decimal) decimal.Decimal {
	result := a.Add(b)
	c.record(domain.NewEntry(a, domain.OpAdd, b, result))
	return result
}

// Subtract возвращает a - b.
func (c *Calculator) Subtract(a, b decimal.Decimal) decimal.Decimal {
	result := a.Sub(b)
	c.record(domain.NewEntry(a, domain.OpSub, b, result))
	return result
}

// Multiply возвращает a * b.
func (c *Calculator) Multiply(a, b decimal.Decimal) decimal.Decimal {
	result := a.Mul(b)
	c.record(domain.NewEntry(a, domain.OpMul, b, result))
	return result
}

// Divide возвращает a / b. При b == 0 - domain.ErrDivisionByZero, история не меняется.
// Операнды вне границ domain.CheckOperand отклоняются с domain.ErrInvalidOperand.
func (c *Calculator) Divide(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Decimal{}, domain.ErrDivisionByZero
	}
	if err := domain.CheckOperand(a); err != nil {
		return decimal.Decimal{}, err
	}
	if err := domain.CheckOperand(b); err != nil {
		return decimal.Decimal{}, err
	}
	result := quotient(a, b, c.precision)
	c.record(domain.NewEntry(a, domain.OpDiv, b, result))
	return result, nil
}

// Apply выполняет операцию по оператору.
func (c *Calculator) Apply(op domain.Operator, a, b decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case domain.OpAdd:
		return c.Add(a, b), nil
	case domain.OpSub:
		return c.Subtract(a, b), nil
	case domain.OpMul:
		return c.Multiply(a, b), nil
	case domain.OpDiv:
		return c.Divide(a, b)
	default:
		return decimal.Decimal{}, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, op)
	}
}

// LastSharedCalculation - последняя запись общей истории (по всем экземплярам).
func (c *Calculator) LastSharedCalculation() (domain.Entry, error) {
	e, ok := c.shared.Last()
	if !ok {
		return domain.Entry{}, domain.ErrEmptyHistory
	}
	return e, nil
}

// ResetSharedHistory очищает общую историю для всех экземпляров.
func (c *Calculator) ResetSharedHistory() {
	c.shared.Reset()
}

// LastInstanceCalculation - последняя запись истории этого экземпляра.
func (c *Calculator) LastInstanceCalculation() (domain.Entry, error) {
	e, ok := c.own.Last()
	if !ok {
		return domain.Entry{}, domain.ErrEmptyInstanceHistory
	}
	return e, nil
}

// ResetInstanceHistory очищает только историю этого экземпляра.
func (c *Calculator) ResetInstanceHistory() {
	c.own.Reset()
}

// InstanceHistory - копия истории экземпляра.
func (c *Calculator) InstanceHistory() []domain.Entry {
	return c.own.Entries()
}

// SharedHistory - общая история, к которой подключён экземпляр.
func (c *Calculator) SharedHistory() *history.Shared {
	return c.shared
}

// record пишет запись сначала в общую историю, затем в собственную.
func (c *Calculator) record(e domain.Entry) {
	c.shared.Append(e)
	c.own.Append(e)
}

// quotient делит с не менее чем precision значащими цифрами и убирает хвостовые нули.
func quotient(a, b decimal.Decimal, precision int) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	// позиция старшей цифры частного не ниже adj(a) - adj(b) - 1
	places := precision - adjusted(a) + adjusted(b)
	if places < 0 {
		places = 0
	}
	if places > math.MaxInt32 {
		places = math.MaxInt32
	}
	return normalize(a.DivRound(b, int32(places)))
}

// adjusted - показатель степени старшей значащей цифры.
func adjusted(d decimal.Decimal) int {
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	return digits + int(d.Exponent()) - 1
}

// normalize убирает хвостовые нули дробной части: 5.000 -> 5.
func normalize(d decimal.Decimal) decimal.Decimal {
	coef := d.Coefficient()
	exp := d.Exponent()
	if coef.Sign() == 0 {
		return decimal.Zero
	}
	ten := big.NewInt(10)
	q, r := new(big.Int), new(big.Int)
	for exp < 0 {
		q.QuoRem(coef, ten, r)
		if r.Sign() != 0 {
			break
		}
		coef = new(big.Int).Set(q)
		exp++
	}
	return decimal.NewFromBigInt(coef, exp)
}
