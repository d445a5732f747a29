package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/antoniocesar16/addon-api-mkauth/pkg/logger"
)

func TestHandler_AddsContextAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	l := slog.New(&logger.Handler{Handler: slog.NewJSONHandler(&buf, nil)}).With("component", "test")

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithRoute(ctx, "PUT /api/v1/titulos/{ref}/receber")

	l.InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, "PUT /api/v1/titulos/{ref}/receber", record["api_route"])
	require.Equal(t, "test", record["component"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.New("loud")
	require.Error(t, err)
}
