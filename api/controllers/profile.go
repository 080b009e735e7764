package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pawmart/storefront-backend/api/middleware"
	"github.com/pawmart/storefront-backend/api/responses"
	"github.com/pawmart/storefront-backend/api/validators"
	"github.com/pawmart/storefront-backend/internal/session"
	"github.com/pawmart/storefront-backend/internal/users"
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
	"github.com/pawmart/storefront-backend/pkg/logger"
	"github.com/pawmart/storefront-backend/pkg/metrics"
)

type addressPayload struct {
	Name      string `json:"name" validate:"required"`
	Street    string `json:"street" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	ZipCode   string `json:"zip_code" validate:"required"`
	Country   string `json:"country" validate:"required"`
	IsDefault bool   `json:"is_default"`
}

type profileResponse struct {
	Applied bool        `json:"applied"`
	Profile users.State `json:"profile"`
}

// ProfileGet returns the session's user slice.
func ProfileGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}
		responses.WriteSuccess(w, profileSnapshot(sess))
	}
}

// ProfileUpdate shallow-merges the patch into the active user. Without an
// active user the patch is ignored (applied=false).
func ProfileUpdate(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var patch users.UserUpdate
		if err := validators.DecodeJSONBody(r, &patch); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Profile.UpdateUser(patch)
		})
		m.ObserveAction("user", "update_user", applied)
		responses.WriteSuccess(w, profileResponse{Applied: applied, Profile: profileSnapshot(sess).Profile})
	}
}

// ProfileLogout tears down the whole profile slice: user, addresses, orders.
func ProfileLogout(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Profile.Logout()
		})
		m.ObserveAction("user", "logout", applied)
		responses.WriteSuccess(w, profileResponse{Applied: applied, Profile: profileSnapshot(sess).Profile})
	}
}

// AddressList returns the session's addresses.
func AddressList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}
		responses.WriteSuccess(w, profileSnapshot(sess).Profile.Addresses)
	}
}

// AddressCreate appends a new address. Claiming the default slot clears the
// flag everywhere else.
func AddressCreate(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var payload addressPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		address := payload.toAddress(uuid.NewString())
		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Profile.AddAddress(address)
		})
		m.ObserveAction("user", "add_address", applied)
		responses.WriteSuccessStatus(w, http.StatusCreated, address)
	}
}

// AddressUpdate replaces the address with the path id; absent ids are a
// silent no-op.
func AddressUpdate(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "addressId"))
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "address id is required"))
			return
		}

		var payload addressPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		address := payload.toAddress(id)
		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Profile.UpdateAddress(address)
		})
		m.ObserveAction("user", "update_address", applied)
		responses.WriteSuccess(w, profileResponse{Applied: applied, Profile: profileSnapshot(sess).Profile})
	}
}

// AddressDelete removes the address; absent ids stay a silent no-op.
func AddressDelete(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "addressId"))
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "address id is required"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Profile.RemoveAddress(id)
		})
		m.ObserveAction("user", "remove_address", applied)
		responses.WriteSuccess(w, profileResponse{Applied: applied, Profile: profileSnapshot(sess).Profile})
	}
}

// AddressSetDefault marks the address as the one default.
func AddressSetDefault(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		id := strings.TrimSpace(chi.URLParam(r, "addressId"))
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "address id is required"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Profile.SetDefaultAddress(id)
		})
		m.ObserveAction("user", "set_default_address", applied)
		responses.WriteSuccess(w, profileResponse{Applied: applied, Profile: profileSnapshot(sess).Profile})
	}
}

// OrdersList returns the session's orders, newest first.
func OrdersList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}
		responses.WriteSuccess(w, profileSnapshot(sess).Profile.Orders)
	}
}

func (p addressPayload) toAddress(id string) users.Address {
	return users.Address{
		ID:        id,
		Name:      p.Name,
		Street:    p.Street,
		City:      p.City,
		State:     p.State,
		ZipCode:   p.ZipCode,
		Country:   p.Country,
		IsDefault: p.IsDefault,
	}
}

func profileSnapshot(sess *session.Session) profileResponse {
	var snapshot users.State
	sess.Read(func(st *session.State) {
		snapshot = st.Profile.Snapshot()
	})
	return profileResponse{Applied: true, Profile: snapshot}
}
