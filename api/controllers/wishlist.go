package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pawmart/storefront-backend/api/middleware"
	"github.com/pawmart/storefront-backend/api/responses"
	"github.com/pawmart/storefront-backend/api/validators"
	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/internal/session"
	"github.com/pawmart/storefront-backend/internal/wishlist"
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
	"github.com/pawmart/storefront-backend/pkg/logger"
	"github.com/pawmart/storefront-backend/pkg/metrics"
)

type addWishlistItemPayload struct {
	ProductID string `json:"product_id" validate:"required"`
}

type wishlistResponse struct {
	Applied  bool           `json:"applied"`
	Wishlist wishlist.State `json:"wishlist"`
}

// WishlistGet returns the session's wishlist.
func WishlistGet(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}
		responses.WriteSuccess(w, wishlistSnapshot(sess))
	}
}

// WishlistAddItem adds the product to the wishlist. A duplicate add is
// silently ignored and surfaces as applied=false; toggle semantics belong to
// the caller.
func WishlistAddItem(source *catalog.Catalog, m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var payload addWishlistItemPayload
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
			return st.Wishlist.Add(product)
		})
		m.ObserveAction("wishlist", "add_to_wishlist", applied)
		responses.WriteSuccess(w, wishlistResponse{Applied: applied, Wishlist: wishlistSnapshot(sess).Wishlist})
	}
}

// WishlistRemoveItem drops the product; absent ids stay a silent no-op.
func WishlistRemoveItem(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		productID := strings.TrimSpace(chi.URLParam(r, "productId"))
		if productID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Wishlist.Remove(productID)
		})
		m.ObserveAction("wishlist", "remove_from_wishlist", applied)
		responses.WriteSuccess(w, wishlistResponse{Applied: applied, Wishlist: wishlistSnapshot(sess).Wishlist})
	}
}

// WishlistClear empties the wishlist.
func WishlistClear(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Wishlist.Clear()
		})
		m.ObserveAction("wishlist", "clear_wishlist", applied)
		responses.WriteSuccess(w, wishlistResponse{Applied: applied, Wishlist: wishlistSnapshot(sess).Wishlist})
	}
}

func wishlistSnapshot(sess *session.Session) wishlistResponse {
	var snapshot wishlist.State
	sess.Read(func(st *session.State) {
		snapshot = st.Wishlist.Snapshot()
	})
	return wishlistResponse{Applied: true, Wishlist: snapshot}
}
