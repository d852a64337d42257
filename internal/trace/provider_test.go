package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_DisabledWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	p, err := NewProvider(context.Background(), Config{})
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.TracerProvider())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_EnabledWithEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Endpoint: "http://localhost:4318"})
	require.NoError(t, err)
	assert.True(t, p.Enabled())
	// Nothing was recorded, so shutdown does not need the collector.
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNewProvider_InsecureSchemelessEndpoint(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Endpoint: "collector:4318", Insecure: true})
	require.NoError(t, err)
	assert.True(t, p.Enabled())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNilProviderIsSafe(t *testing.T) {
	var p *Provider
	assert.False(t, p.Enabled())
	assert.NotNil(t, p.TracerProvider())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestTrimScheme(t *testing.T) {
	tests := map[string]string{
		"http://localhost:4318":  "localhost:4318",
		"https://collector:4318/": "collector:4318",
		"collector:4318":         "collector:4318",
	}
	for in, want := range tests {
		if got := trimScheme(in); got != want {
			t.Errorf("trimScheme(%q) = %q, want %q", in, got, want)
		}
	}
}
