package observability

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	correlationIDCtxKey contextKey = "correlation_id"
	actorIDCtxKey       contextKey = "actor_id"
)

// Attribute keys shared between logs and structured results.
const (
	CorrelationIDKey = "correlation_id"
	ActorIDKey       = "actor_id"
	OperationKey     = "operation"
	DurationKey      = "duration_ms"
)

// WithCorrelationID stores a correlation ID in the context, minting one when
// id is empty.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, correlationIDCtxKey, id)
}

// CorrelationIDFromContext extracts the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDCtxKey).(string); ok {
		return id
	}
	return ""
}

// WithActorID stores the acting user's ID in the context for log enrichment.
func WithActorID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, actorIDCtxKey, id)
}

// ActorIDFromContext extracts the actor ID, or "".
func ActorIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(actorIDCtxKey).(string); ok {
		return id
	}
	return ""
}
