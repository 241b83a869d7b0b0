package tracing_test

import (
	"context"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/config"
	"github.com/aaravmahajanofficial/templatehub/internal/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup(t *testing.T) {
	t.Run("Without exporter", func(t *testing.T) {
		// Arrange
		cfg := &config.Otel{ServiceName: "templatehub-test", SamplerRatio: 1}

		// Act
		shutdown, err := tracing.Setup(t.Context(), cfg)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, shutdown)

		_, span := otel.Tracer("test").Start(t.Context(), "op")
		assert.True(t, span.SpanContext().IsSampled())
		span.End()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, shutdown(ctx))
	})

	t.Run("With exporter endpoint", func(t *testing.T) {
		cfg := &config.Otel{ServiceName: "templatehub-test", ExporterEndpoint: "http://127.0.0.1:4318/v1/traces", SamplerRatio: 0}

		shutdown, err := tracing.Setup(t.Context(), cfg)
		require.NoError(t, err)

		_, span := otel.Tracer("test").Start(t.Context(), "op")
		assert.False(t, span.SpanContext().IsSampled())
		span.End()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = shutdown(ctx)
	})
}
