package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pawmart/storefront-backend/api/controllers"
	"github.com/pawmart/storefront-backend/api/middleware"
	"github.com/pawmart/storefront-backend/internal/catalog"
	"github.com/pawmart/storefront-backend/internal/checkout"
	"github.com/pawmart/storefront-backend/internal/session"
	"github.com/pawmart/storefront-backend/pkg/config"
	"github.com/pawmart/storefront-backend/pkg/logger"
	"github.com/pawmart/storefront-backend/pkg/metrics"
)

// RouterParams carries everything the HTTP surface depends on.
type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	Catalog  *catalog.Catalog
	Manager  *session.Manager
	Checkout checkout.Service
	Metrics  *metrics.StoreMetrics
	Registry *prometheus.Registry
}

// NewRouter wires the full API. Every route under /api/v1 except session
// creation runs behind the session middleware.
func NewRouter(params RouterParams) http.Handler {
	logg := params.Logger
	m := params.Metrics

	r := chi.NewRouter()

	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	r.Use(middleware.CORS())

	r.Get("/health/live", controllers.HealthLive(params.Config))
	r.Get("/health/ready", controllers.HealthReady(params.Config))
	if params.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", controllers.SessionCreate(params.Manager, params.Config.Session.SeedDemo, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(params.Manager, logg))

			r.Delete("/sessions", controllers.SessionDelete(params.Manager, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.ProductsList(logg))
				r.Get("/featured", controllers.ProductsFeatured(params.Catalog))
				r.Get("/trending", controllers.ProductsTrending(params.Catalog))
				r.Get("/categories", controllers.ProductsCategories(params.Catalog))
				r.Post("/category", controllers.ProductsSetCategory(m, logg))
				r.Post("/search", controllers.ProductsSearch(m, logg))
				r.Post("/sort", controllers.ProductsSort(m, logg))
				r.Post("/pet-type", controllers.ProductsPetType(m, logg))
				r.Delete("/filters", controllers.ProductsClearFilters(m, logg))
				r.Get("/{productId}", controllers.ProductGet(params.Catalog, logg))
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartGet(logg))
				r.Delete("/", controllers.CartClear(m, logg))
				r.Post("/items", controllers.CartAddItem(params.Catalog, m, logg))
				r.Patch("/items/{lineId}", controllers.CartUpdateItem(m, logg))
				r.Delete("/items/{lineId}", controllers.CartRemoveItem(m, logg))
				r.Post("/toggle", controllers.CartToggle(m, logg))
				r.Put("/open", controllers.CartSetOpen(m, logg))
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", controllers.WishlistGet(logg))
				r.Delete("/", controllers.WishlistClear(m, logg))
				r.Post("/items", controllers.WishlistAddItem(params.Catalog, m, logg))
				r.Delete("/items/{productId}", controllers.WishlistRemoveItem(m, logg))
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", controllers.ProfileGet(logg))
				r.Patch("/", controllers.ProfileUpdate(m, logg))
				r.Post("/logout", controllers.ProfileLogout(m, logg))
				r.Get("/orders", controllers.OrdersList(logg))

				r.Route("/addresses", func(r chi.Router) {
					r.Get("/", controllers.AddressList(logg))
					r.Post("/", controllers.AddressCreate(m, logg))
					r.Put("/{addressId}", controllers.AddressUpdate(m, logg))
					r.Delete("/{addressId}", controllers.AddressDelete(m, logg))
					r.Post("/{addressId}/default", controllers.AddressSetDefault(m, logg))
				})
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/quote", controllers.CheckoutQuote(params.Checkout, logg))
				r.Post("/place-order", controllers.CheckoutPlaceOrder(params.Checkout, logg))
			})
		})
	})

	return r
}
