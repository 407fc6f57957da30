package contact

import "fmt"

// ServerError wraps a store failure. Its detail is logged, never returned to callers.
type ServerError struct {
	Op  string
	Err error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("cannot %s: %v", e.Op, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func serverError(op string, err error) error {
	return &ServerError{Op: op, Err: err}
}
