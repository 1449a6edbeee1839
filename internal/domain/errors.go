package domain

import "errors"

// Kind - вид ошибки калькулятора. Вызывающий код ветвится по виду, а не по тексту.
type Kind int

const (
	KindUnknown Kind = iota
	KindDivisionByZero
	KindEmptyHistory
)

func (k Kind) String() string {
	switch k {
	case KindDivisionByZero:
		return "division_by_zero"
	case KindEmptyHistory:
		return "empty_history"
	default:
		return "unknown"
	}
}

// Error - ошибка калькулятора с видом и человекочитаемым сообщением.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is сравнивает ошибки по виду: errors.Is(err, ErrEmptyHistory) верно и для истории экземпляра.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrDivisionByZero       = &Error{Kind: KindDivisionByZero, Message: "Cannot divide by zero."}
	ErrEmptyHistory         = &Error{Kind: KindEmptyHistory, Message: "No calculations in history."}
	ErrEmptyInstanceHistory = &Error{Kind: KindEmptyHistory, Message: "No calculations in instance history."}
)

// KindOf возвращает вид ошибки калькулятора или KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
