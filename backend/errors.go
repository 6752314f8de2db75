package backend

import "fmt"

// Error is a failure reported by the managed backend. Message carries the
// backend's literal error text, including the condition tokens (slot_full,
// already_booked, ...) that booking procedures embed in it.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UndefinedColumnCode is the backend's SQLSTATE for a write that names a
// column the deployed schema does not have.
const UndefinedColumnCode = "42703"

// IsUndefinedColumn reports whether err is a backend rejection caused by an
// unknown column.
func IsUndefinedColumn(err error) bool {
	be, ok := err.(*Error)
	return ok && be.Code == UndefinedColumnCode
}
