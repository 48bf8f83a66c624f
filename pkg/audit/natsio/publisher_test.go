package natsio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubject(t *testing.T) {
	assert.Equal(t, "gridadmin.audit.shutdown", Subject("gridadmin.audit", "shutdown"))
	assert.Equal(t, "ops.grid.>", Subject("ops.grid", ">"))
}

func TestNewFailsWithoutServer(t *testing.T) {
	_, err := New(NewConfig("nats://127.0.0.1:1", "gridadmin.audit"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to nats")
}
