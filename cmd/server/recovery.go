package main

import (
	"log/slog"

	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-pantheon/internal/errors"
)

// recoverPanic reports panics as internal errors. Broken favor invariants are
// logged at error level with their message so the caller bug can be traced.
func recoverPanic(logger *slog.Logger) grpc_recovery.RecoveryHandlerFunc {
	return func(p any) error {
		err := errors.Recovered(p)
		if errors.IsInvariant(p) {
			logger.Error("favor invariant violated", "error", err)
		} else {
			logger.Error("panic in handler", "panic", p)
		}
		return errors.ToGRPCError(errors.Wrap(err, "internal error"))
	}
}
