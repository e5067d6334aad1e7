package domain

import "fmt"

// ParseError описывает ошибку разбора поля при создании записи.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MalformedBlockError описывает блок импорта, который не удалось
// преобразовать в запись: неизвестный тег или недостаточно полей.
type MalformedBlockError struct {
	Reason string
}

func (e *MalformedBlockError) Error() string {
	return fmt.Sprintf("malformed block: %s", e.Reason)
}
