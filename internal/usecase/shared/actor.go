package shared

import "context"

type actorKey struct{}

// WithActor attaches the staff id recorded on history entries.
func WithActor(ctx context.Context, staffID string) context.Context {
	return context.WithValue(ctx, actorKey{}, staffID)
}

func ActorFrom(ctx context.Context) string {
	if v, ok := ctx.Value(actorKey{}).(string); ok {
		return v
	}
	return ""
}
