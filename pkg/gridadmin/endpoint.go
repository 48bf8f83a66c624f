package gridadmin

import (
	"strings"
	"time"

	"github.com/nsyszr/gridadmin/config"
)

// DefaultTimeout bounds every single remote call.
const DefaultTimeout = 30 * time.Second

// Endpoint identifies the admin surface of one grid server. It is
// immutable once created.
type Endpoint struct {
	baseURL  string
	password string
	timeout  time.Duration
}

// EndpointOption configures an Endpoint at construction time
type EndpointOption func(*Endpoint)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) EndpointOption {
	return func(e *Endpoint) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// NewEndpoint creates an Endpoint for server. The password may be empty
// for read-only use.
func NewEndpoint(server, password string, opts ...EndpointOption) (*Endpoint, error) {
	if strings.TrimSpace(server) == "" {
		return nil, config.NewConfigError("server")
	}

	e := &Endpoint{
		baseURL:  normalizeBaseURL(server),
		password: password,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// normalizeBaseURL makes sure the URL ends with exactly one slash.
func normalizeBaseURL(server string) string {
	return strings.TrimRight(strings.TrimSpace(server), "/") + "/"
}

func (e *Endpoint) BaseURL() string        { return e.baseURL }
func (e *Endpoint) Password() string       { return e.password }
func (e *Endpoint) Timeout() time.Duration { return e.timeout }
