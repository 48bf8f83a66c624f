package gridadmin

import (
	"testing"
	"time"

	"github.com/nsyszr/gridadmin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEndpointNormalizesBaseURL(t *testing.T) {
	for _, server := range []string{
		"http://grid.example",
		"http://grid.example/",
		"http://grid.example//",
		" http://grid.example ",
	} {
		e, err := NewEndpoint(server, "")
		require.NoError(t, err)
		assert.Equal(t, "http://grid.example/", e.BaseURL(), server)
	}
}

func TestEndpointPassword(t *testing.T) {
	e, err := NewEndpoint("http://grid.example:9000", "secret")
	require.NoError(t, err)
	assert.Equal(t, "secret", e.Password())
}

func TestNewEndpointTimeout(t *testing.T) {
	e, err := NewEndpoint("http://grid.example", "")
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, e.Timeout())

	e, err = NewEndpoint("http://grid.example", "", WithTimeout(time.Second))
	require.NoError(t, err)
	assert.Equal(t, time.Second, e.Timeout())
}

func TestNewEndpointRequiresServer(t *testing.T) {
	_, err := NewEndpoint("  ", "secret")
	require.Error(t, err)
	assert.True(t, config.IsConfigError(err))
}
