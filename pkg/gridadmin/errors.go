package gridadmin

import (
	"fmt"

	"github.com/pkg/errors"
)

// DeclinedError describes a command the server accepted at the transport
// level but reported as not carried out.
type DeclinedError struct {
	Method string
	Key    string
	Value  interface{}
}

func NewDeclinedError(method, key string, value interface{}) error {
	return &DeclinedError{
		Method: method,
		Key:    key,
		Value:  value,
	}
}

func (e *DeclinedError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s declined: result has no %q flag", e.Method, e.Key)
	}
	return fmt.Sprintf("%s declined: %s=%v", e.Method, e.Key, e.Value)
}

func IsDeclinedError(err error) bool {
	var de *DeclinedError
	return errors.As(err, &de)
}

// CountdownError is returned when a warning broadcast fails. The
// disruptive command that would follow is not attempted.
type CountdownError struct {
	Remaining int
	Err       error
}

func NewCountdownError(remaining int, err error) error {
	return &CountdownError{
		Remaining: remaining,
		Err:       err,
	}
}

func (e *CountdownError) Error() string {
	return fmt.Sprintf("countdown aborted at %d sec remaining: %s", e.Remaining, e.Err)
}

func (e *CountdownError) Unwrap() error {
	return e.Err
}

func IsCountdownError(err error) bool {
	var ce *CountdownError
	return errors.As(err, &ce)
}
