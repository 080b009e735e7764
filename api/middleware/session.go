package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/pawmart/storefront-backend/api/responses"
	"github.com/pawmart/storefront-backend/internal/session"
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
	"github.com/pawmart/storefront-backend/pkg/logger"
)

const sessionIDHeader = "X-Session-Id"

// Session resolves the X-Session-Id header against the registry and injects
// the session into the request context. Routes behind it always see a live
// session.
func Session(manager *session.Manager, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw := strings.TrimSpace(r.Header.Get(sessionIDHeader))
			if raw == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session id header is required"))
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid session id"))
				return
			}

			sess, ok := manager.Get(id)
			if !ok {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "session not found"))
				return
			}

			ctx = WithSession(ctx, sess)
			if logg != nil {
				ctx = logg.WithSessionID(ctx, id.String())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
