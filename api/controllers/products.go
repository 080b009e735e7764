package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/pawmart/storefront-backend/api/middleware"
	"github.com/pawmart/storefront-backend/api/responses"
	"github.com/pawmart/storefront-backend/api/validators"
	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/internal/products"
	"github.com/pawmart/storefront-backend/internal/session"
	"github.com/pawmart/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
	"github.com/pawmart/storefront-backend/pkg/logger"
	"github.com/pawmart/storefront-backend/pkg/metrics"
)

type setCategoryPayload struct {
	Category string `json:"category" validate:"required"`
}

type setSearchPayload struct {
	Query string `json:"query"`
}

type sortPayload struct {
	Key string `json:"key" validate:"required"`
}

type petTypePayload struct {
	PetType string `json:"pet_type" validate:"required"`
}

type productsViewResponse struct {
	SelectedCategory string            `json:"selected_category"`
	SearchQuery      string            `json:"search_query"`
	Loading          bool              `json:"loading"`
	Products         []catalog.Product `json:"products"`
}

// ProductsList returns the session's current filtered catalog view.
func ProductsList(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}
		responses.WriteSuccess(w, viewSnapshot(sess))
	}
}

// ProductGet returns one product from the immutable catalog.
func ProductGet(source *catalog.Catalog, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := strings.TrimSpace(chi.URLParam(r, "productId"))
		if id == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}
		product, ok := source.FindByID(id)
		if !ok {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// ProductsFeatured returns the catalog's featured products.
func ProductsFeatured(source *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, source.Featured())
	}
}

// ProductsTrending returns the catalog's trending products.
func ProductsTrending(source *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, source.Trending())
	}
}

// ProductsCategories returns the category tags, led by the All sentinel.
func ProductsCategories(source *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, source.Categories())
	}
}

// ProductsSetCategory selects a category. This replaces the view and drops
// any prior search narrowing; an unknown category simply yields an empty
// view, matching the storefront.
func ProductsSetCategory(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var payload setCategoryPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Products.SetCategory(payload.Category)
		})
		m.ObserveAction("products", "set_selected_category", applied)
		responses.WriteSuccess(w, viewSnapshot(sess))
	}
}

// ProductsSearch sets the search query, intersecting with the selected
// category when one is active.
func ProductsSearch(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var payload setSearchPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Products.SetSearch(payload.Query)
		})
		m.ObserveAction("products", "set_search_query", applied)
		responses.WriteSuccess(w, viewSnapshot(sess))
	}
}

// ProductsSort applies a comparator to the current filtered view in place.
func ProductsSort(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var payload sortPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		key, err := enums.ParseSortKey(payload.Key)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort key"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Products.Sort(key)
		})
		m.ObserveAction("products", "sort_products", applied)
		responses.WriteSuccess(w, viewSnapshot(sess))
	}
}

// ProductsPetType narrows the view to one kind of pet.
func ProductsPetType(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var payload petTypePayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		petType, err := enums.ParsePetType(payload.PetType)
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid pet type"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Products.FilterByPetType(petType)
		})
		m.ObserveAction("products", "filter_by_pet_type", applied)
		responses.WriteSuccess(w, viewSnapshot(sess))
	}
}

// ProductsClearFilters resets category and query and restores the full view.
func ProductsClearFilters(m *metrics.StoreMetrics, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		applied := sess.Dispatch(func(st *session.State) bool {
			return st.Products.ClearFilters()
		})
		m.ObserveAction("products", "clear_filters", applied)
		responses.WriteSuccess(w, viewSnapshot(sess))
	}
}

func viewSnapshot(sess *session.Session) productsViewResponse {
	var snapshot products.State
	sess.Read(func(st *session.State) {
		snapshot = st.Products.Snapshot()
	})
	return productsViewResponse{
		SelectedCategory: snapshot.SelectedCategory,
		SearchQuery:      snapshot.SearchQuery,
		Loading:          snapshot.Loading,
		Products:         snapshot.Filtered,
	}
}
