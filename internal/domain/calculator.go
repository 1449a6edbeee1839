package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrUnknownOperation возвращается, когда операция не поддерживается.
var ErrUnknownOperation = errors.New("unknown operation")

// ErrInvalidOperand - операнд не является десятичным числом.
var ErrInvalidOperand = errors.New("invalid operand")

// ErrSessionNotFound - сессии калькулятора с таким id нет.
var ErrSessionNotFound = errors.New("session not found")

// ErrDisabled - компонент (журнал, статистика) выключен в конфиге.
var ErrDisabled = errors.New("component disabled")

// Operator - символ арифметической операции.
type Operator string

// Константы арифметических операций.
const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
)

// ParseOperator принимает символ (+ - * /) или имя операции (add, sub, mul, div и полные формы).
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "add":
		return OpAdd, nil
	case "-", "sub", "subtract":
		return OpSub, nil
	case "*", "mul", "multiply":
		return OpMul, nil
	case "/", "div", "divide":
		return OpDiv, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownOperation, s)
}

// Границы операнда: не больше MaxDigits значащих цифр, показатель старшей цифры
// (и показатель нуля) в пределах [-MaxExponent, MaxExponent].
const (
	MaxDigits   = 1000
	MaxExponent = 9999
)

// maxOperandLen - длина текста операнда с запасом на знак, точку и экспоненту.
const maxOperandLen = MaxDigits + 16

// ParseDecimal разбирает текст операнда, сохраняя его масштаб ("2.00" остаётся с двумя знаками).
// Операнды вне границ CheckOperand отклоняются с ErrInvalidOperand.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if len(s) > maxOperandLen {
		return decimal.Decimal{}, fmt.Errorf("%w: operand longer than %d characters", ErrInvalidOperand, maxOperandLen)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidOperand, s)
	}
	if err := CheckOperand(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// CheckOperand проверяет, что число цифр и порядок операнда в допустимых границах.
func CheckOperand(d decimal.Decimal) error {
	if d.IsZero() {
		if exp := int(d.Exponent()); exp > MaxExponent || exp < -MaxExponent {
			return fmt.Errorf("%w: exponent %d out of range", ErrInvalidOperand, exp)
		}
		return nil
	}
	digits := len(new(big.Int).Abs(d.Coefficient()).String())
	if digits > MaxDigits {
		return fmt.Errorf("%w: %d digits, max %d", ErrInvalidOperand, digits, MaxDigits)
	}
	if adj := digits + int(d.Exponent()) - 1; adj > MaxExponent || adj < -MaxExponent {
		return fmt.Errorf("%w: exponent %d out of range", ErrInvalidOperand, adj)
	}
	return nil
}

// FormatOperand возвращает текст операнда в том виде, в каком он был задан:
// хвостовые нули дробной части сохраняются, положительная экспонента разворачивается в целое.
// Научная запись и знак нуля не сохраняются: "1E+3" -> "1000", "1e-3" -> "0.001", "-0" -> "0".
func FormatOperand(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// Entry - запись истории: описание операции и её результат. Значение неизменяемо.
type Entry struct {
	Description string
	Result      decimal.Decimal
}

// NewEntry собирает запись вида "a op b".
func NewEntry(a decimal.Decimal, op Operator, b decimal.Decimal, result decimal.Decimal) Entry {
	return Entry{
		Description: FormatOperand(a) + " " + string(op) + " " + FormatOperand(b),
		Result:      result,
	}
}

// Equal сравнивает записи по описанию и численному значению результата.
func (e Entry) Equal(other Entry) bool {
	return e.Description == other.Description && e.Result.Equal(other.Result)
}

// String - "5 - 2 = 3".
func (e Entry) String() string {
	return e.Description + " = " + e.Result.String()
}

// Operation - запись об одной операции калькулятора для журнала, брокера и аналитики.
type Operation struct {
	ID          int             `json:"id,omitempty"`
	SessionID   string          `json:"session_id,omitempty"`
	Number1     decimal.Decimal `json:"number1"`
	Number2     decimal.Decimal `json:"number2"`
	Operation   Operator        `json:"operation"`
	Description string          `json:"description"`
	Result      decimal.Decimal `json:"result"`
	Timestamp   time.Time       `json:"timestamp"`
}

// MarshalJSON пишет числа через FormatOperand, масштаб сохраняется ("2.50" остаётся "2.50").
func (o Operation) MarshalJSON() ([]byte, error) {
	type plain Operation
	return json.Marshal(struct {
		plain
		Number1 string `json:"number1"`
		Number2 string `json:"number2"`
		Result  string `json:"result"`
	}{
		plain:   plain(o),
		Number1: FormatOperand(o.Number1),
		Number2: FormatOperand(o.Number2),
		Result:  FormatOperand(o.Result),
	})
}
