package context_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	return line
}

func TestBindRequest(t *testing.T) {
	c := newEchoContext()
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	deliverycontext.BindRequest(c, "req-1", logger)

	assert.Equal(t, "req-1", deliverycontext.GetRequestID(c))
	assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	assert.Same(t, logger, deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil))
}

func TestGetRequestID_GeneratesWhenUnbound(t *testing.T) {
	id := deliverycontext.GetRequestID(newEchoContext())

	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestSetActor_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	c := newEchoContext()
	actor := entity.Actor{ID: uuid.New(), TenantID: uuid.New(), Name: "Sato"}
	deliverycontext.BindRequest(c, "req-2", slog.New(slog.NewJSONHandler(&buf, nil)).With(slog.String("request_id", "req-2")))

	deliverycontext.SetActor(c, actor, nil)

	got, ok := deliverycontext.GetActor(c)
	require.True(t, ok)
	assert.Equal(t, actor, got)

	fromCtx, ok := deliverycontext.ActorFromContext(c.Request().Context())
	require.True(t, ok)
	assert.Equal(t, actor, fromCtx)

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("merged")
	line := lastLogLine(t, &buf)
	assert.Equal(t, "req-2", line["request_id"])
	assert.Equal(t, actor.TenantID.String(), line["tenant_id"])
	assert.Equal(t, actor.ID.String(), line["actor_id"])
}

func TestGetLoggerOrDefault_TagsFallbackWithActor(t *testing.T) {
	var buf bytes.Buffer
	fallback := slog.New(slog.NewJSONHandler(&buf, nil))
	actor := entity.Actor{TenantID: uuid.New()}

	ctx := deliverycontext.WithActor(context.Background(), actor)
	deliverycontext.GetLoggerOrDefault(ctx, fallback).Info("listed")

	line := lastLogLine(t, &buf)
	assert.Equal(t, actor.TenantID.String(), line["tenant_id"])
	assert.NotContains(t, line, "actor_id")

	assert.Same(t, fallback, deliverycontext.GetLoggerOrDefault(context.Background(), fallback))
}
