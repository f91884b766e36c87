// Package context carries the request id, the request-scoped logger and the
// acting operator from the echo layer down to the use cases and the gorm logger.
package context

import (
	"context"
	"log/slog"

	"crm/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyActor     ContextKey = "actor"

	// HeaderXRequestID is read from the request and echoed on the response.
	HeaderXRequestID = echo.HeaderXRequestID
)

// BindRequest stores the request id on the echo context and the request id and
// logger on the request context.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)

	ctx := WithRequestID(c.Request().Context(), requestID)
	ctx = WithLogger(ctx, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestID returns the id bound to the request.
// Requests that never passed the request id middleware get a fresh one.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		return id
	}

	return uuid.New().String()
}

// GetRequestIDFromContext returns the request id of ctx, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger of ctx. Without one it
// returns fallback, tagged with the actor when ctx carries one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	if actor, ok := ActorFromContext(ctx); ok && fallback != nil {
		return fallback.With(actorAttrs(actor)...)
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetActor stores the authenticated actor on the echo context and on the
// request context, and tags the request logger with its ids.
func SetActor(c echo.Context, actor entity.Actor, fallback *slog.Logger) {
	c.Set(string(KeyActor), actor)

	ctx := c.Request().Context()
	logger := GetLoggerOrDefault(ctx, fallback).With(actorAttrs(actor)...)
	ctx = WithActor(ctx, actor)
	ctx = WithLogger(ctx, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetActor returns the actor set by the auth middleware.
func GetActor(c echo.Context) (entity.Actor, bool) {
	actor, ok := c.Get(string(KeyActor)).(entity.Actor)

	return actor, ok
}

// WithActor returns a new context with the actor.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, KeyActor, actor)
}

// ActorFromContext returns the actor of ctx.
func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	actor, ok := ctx.Value(KeyActor).(entity.Actor)

	return actor, ok
}

func actorAttrs(actor entity.Actor) []any {
	attrs := []any{slog.String("tenant_id", actor.TenantID.String())}
	if actor.ID != uuid.Nil {
		attrs = append(attrs, slog.String("actor_id", actor.ID.String()))
	}

	return attrs
}
