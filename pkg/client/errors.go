package client

import (
	"fmt"
	"net"

	"github.com/pkg/errors"
)

// TransportError is returned when a remote call could not be completed:
// connection failure, timeout, non-2xx status, malformed XML or an RPC
// fault.
type TransportError struct {
	Op  string
	URL string
	Err error
}

func NewTransportError(op, url string, err error) error {
	return &TransportError{
		Op:  op,
		URL: url,
		Err: err,
	}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s %s: %s", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the call failed because its deadline expired.
func (e *TransportError) Timeout() bool {
	var ne net.Error
	return errors.As(e.Err, &ne) && ne.Timeout()
}

func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// ParseError is returned when a well-formed status document carries a
// value that cannot be interpreted.
type ParseError struct {
	Element   string
	Attribute string
	Value     string
	Reason    string
}

func NewParseError(element, attribute, value, reason string) error {
	return &ParseError{
		Element:   element,
		Attribute: attribute,
		Value:     value,
		Reason:    reason,
	}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: <%s %s=%q>: %s", e.Element, e.Attribute, e.Value, e.Reason)
}

func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
