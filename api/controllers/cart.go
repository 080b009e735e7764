package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pawmart/storefront-backend/api/middleware"
	"github.com/pawmart/storefront-backend/api/responses"
	"github.com/pawmart/storefront-backend/api/validators"
	"github.com/pawmart/storefront-backend/internal/cart"
	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/internal/session"
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
	"github.com/pawmart/storefront-backend/pkg/logger"
	"github.com/pawmart/storefront-backend/pkg/metrics"
)

type addCartItemPayload struct {
	ProductID     string `json:"product_id" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	SelectedSize  string `json:"selected_size" validate:"required"`
	SelectedColor string `json:"selected_color" validate:"required"`
}

type updateCartItemPayload struct {
	Quantity *int `json:"quantity" validate:"required,min=0"`
}

type setCartOpenPayload struct {
	Open *bool `json:"open" validate:"required"`
}

type cartResponse struct {
	Applied bool       `json:"applied"`
	Cart    cart.State `json:"cart"`
}

// CartGet returns the session's cart slice.
func CartGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}
		responses.WriteSuccess(w, cartSnapshot(sess))
	}
}

// CartAddItem adds a product line. The same product, size and color merges
// into the existing line instead of appending a second one. Quantity
// positivity is enforced here, not in the reducer.
func CartAddItem(source *catalog.Catalog, m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var payload addCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		product, ok := source.FindByID(payload.ProductID)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Cart.AddItem(product, payload.Quantity, payload.SelectedSize, payload.SelectedColor)
		})
		m.ObserveAction("cart", "add_to_cart", applied)
		responses.WriteSuccess(w, cartResponse{Applied: applied, Cart: cartSnapshot(sess).Cart})
	}
}

// CartUpdateItem sets a line's quantity. A zero quantity is translated into
// a removal here so stored lines always keep quantity >= 1.
func CartUpdateItem(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		lineID := strings.TrimSpace(chi.URLParam(r, "lineId"))
		if lineID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id is required"))
			return
		}

		var payload updateCartItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		var applied bool
		if *payload.Quantity == 0 {
			applied = sess.Dispatch(func(st *session.State) bool {
				return st.Cart.RemoveItem(lineID)
			})
			m.ObserveAction("cart", "remove_from_cart", applied)
		} else {
			applied = sess.Dispatch(func(st *session.State) bool {
				return st.Cart.UpdateQuantity(lineID, *payload.Quantity)
			})
			m.ObserveAction("cart", "update_quantity", applied)
		}
		responses.WriteSuccess(w, cartResponse{Applied: applied, Cart: cartSnapshot(sess).Cart})
	}
}

// CartRemoveItem deletes a line; a missing line id stays a silent no-op and
// surfaces only as applied=false.
func CartRemoveItem(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		lineID := strings.TrimSpace(chi.URLParam(r, "lineId"))
		if lineID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id is required"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Cart.RemoveItem(lineID)
		})
		m.ObserveAction("cart", "remove_from_cart", applied)
		responses.WriteSuccess(w, cartResponse{Applied: applied, Cart: cartSnapshot(sess).Cart})
	}
}

// CartClear empties the cart.
func CartClear(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Cart.Clear()
		})
		m.ObserveAction("cart", "clear_cart", applied)
		responses.WriteSuccess(w, cartResponse{Applied: applied, Cart: cartSnapshot(sess).Cart})
	}
}

// CartToggle flips the cart's visibility flag.
func CartToggle(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Cart.Toggle()
		})
		m.ObserveAction("cart", "toggle_cart", applied)
		responses.WriteSuccess(w, cartResponse{Applied: applied, Cart: cartSnapshot(sess).Cart})
	}
}

// CartSetOpen sets the cart's visibility flag.
func CartSetOpen(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var payload setCartOpenPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Cart.SetOpen(*payload.Open)
		})
		m.ObserveAction("cart", "set_cart_open", applied)
		responses.WriteSuccess(w, cartResponse{Applied: applied, Cart: cartSnapshot(sess).Cart})
	}
}

func cartSnapshot(sess *session.Session) cartResponse {
	var snapshot cart.State
	sess.Read(func(st *session.State) {
		snapshot = st.Cart.Snapshot()
	})
	return cartResponse{Applied: true, Cart: snapshot}
}
