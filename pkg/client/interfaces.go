package client

import "github.com/beevik/etree"

// Params is the single struct parameter sent with a remote admin command.
type Params map[string]interface{}

// CommandResult is the struct returned by a remote admin command.
type CommandResult map[string]interface{}

// Flag returns the string value stored under key. Values of any other
// type are reported as absent.
func (r CommandResult) Flag(key string) (string, bool) {
	v, ok := r[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Interface is implemented by the remote administration transport
type Interface interface {
	// FetchXML issues a GET against the status endpoint and returns the
	// root element of the returned document.
	FetchXML(path string) (*etree.Element, error)

	// InvokeCommand calls an admin RPC method with params as its only
	// argument.
	InvokeCommand(method string, params Params) (CommandResult, error)
}
