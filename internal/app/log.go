package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/bindery/internal/ctxutil"
)

// logFor tags logger with the actor carried in ctx, if any.
func logFor(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if actor := ctxutil.ActorFromContext(ctx); actor != "" {
		return logger.With(zap.String("actor", actor))
	}
	return logger
}
