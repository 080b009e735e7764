package controllers

import (
	"net/http"

	"github.com/pawmart/storefront-backend/api/middleware"
	"github.com/pawmart/storefront-backend/api/responses"
	"github.com/pawmart/storefront-backend/api/validators"
	"github.com/pawmart/storefront-backend/internal/checkout"
	"github.com/pawmart/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
	"github.com/pawmart/storefront-backend/pkg/logger"
)

type placeOrderPayload struct {
	AddressID     string `json:"address_id"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=card cod"`
}

// CheckoutQuote prices the session's current cart without placing an order.
func CheckoutQuote(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		quote, err := svc.Quote(ctx, sess)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// CheckoutPlaceOrder turns the cart into an order against the selected (or
// default) shipping address and empties the cart.
func CheckoutPlaceOrder(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := middleware.SessionFromContext(ctx)
		if sess == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session missing from context"))
			return
		}

		var payload placeOrderPayload
		if r.ContentLength > 0 {
			if err := validators.DecodeJSONBody(r, &payload); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}

		order, err := svc.PlaceOrder(ctx, sess, checkout.PlaceOrderInput{
			AddressID:     payload.AddressID,
			PaymentMethod: enums.PaymentMethod(payload.PaymentMethod),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
