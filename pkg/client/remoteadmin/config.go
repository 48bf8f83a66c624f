package remoteadmin

import (
	"strings"
	"time"
)

// Config holds the connection settings of the remote admin client
type Config struct {
	baseURL string
	timeout time.Duration
}

// NewConfig creates a client config. timeout bounds every single call.
func NewConfig(baseURL string, timeout time.Duration) *Config {
	return &Config{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/",
		timeout: timeout,
	}
}

// url joins path onto the base URL without doubling the separator.
func (c *Config) url(path string) string {
	return c.baseURL + strings.TrimLeft(path, "/")
}
