package controllers

import (
	"net/http"

	"github.com/pawmart/storefront-backend/api/middleware"
	"github.com/pawmart/storefront-backend/api/responses"
	"github.com/pawmart/storefront-backend/api/validators"
	"github.com/pawmart/storefront-backend/internal/session"
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
	"github.com/pawmart/storefront-backend/pkg/logger"
)

type createSessionPayload struct {
	SeedDemo *bool `json:"seed_demo"`
}

// SessionCreate registers a new storefront session and returns its id. The
// demo profile seed defaults to the configured value.
func SessionCreate(manager *session.Manager, seedDefault bool, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		seed := seedDefault
		if r.ContentLength > 0 {
			var payload createSessionPayload
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
			if payload.SeedDemo != nil {
				seed = *payload.SeedDemo
			}
		}

		sess := manager.Create(seed)
		if logg != nil {
			logg.Info(logg.WithSessionID(ctx, sess.ID.String()), "session created")
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{
			"session_id": sess.ID.String(),
		})
	}
}

// SessionDelete drops the session resolved by the session middleware.
func SessionDelete(manager *session.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}
		removed := manager.Delete(sess.ID)
		responses.WriteSuccess(w, map[string]bool{"removed": removed})
	}
}
