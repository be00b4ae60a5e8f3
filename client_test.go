package pkgview

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkgview/pkgview/registry"
)

func TestNewClientDefaults(t *testing.T) {
	t.Parallel()

	c, err := NewClient()
	require.NoError(t, err)

	assert.NotNil(t, c.registry)
	assert.NotNil(t, c.github)
	assert.Nil(t, c.packuments)
	assert.Nil(t, c.tarballs)
	assert.NotNil(t, c.log())
}

func TestNewClientWithCaching(t *testing.T) {
	t.Parallel()

	c, err := NewClient(WithCaching(time.Minute))
	require.NoError(t, err)

	assert.NotNil(t, c.packuments)
	assert.NotNil(t, c.tarballs)
}

func TestNewClientWithRegistryClient(t *testing.T) {
	t.Parallel()

	reg := registry.New(registry.WithRegistryURL("http://localhost:1"))
	c, err := NewClient(WithRegistryClient(reg))
	require.NoError(t, err)

	assert.Same(t, reg, c.registry)
}

func TestNewClientWithLogger(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewClient(WithLogger(logger))
	require.NoError(t, err)

	assert.Same(t, logger, c.log())
}
