package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/pawmart/storefront-backend/internal/cart"
	"github.com/pawmart/storefront-backend/internal/session"
	"github.com/pawmart/storefront-backend/internal/users"
	"github.com/pawmart/storefront-backend/pkg/config"
	"github.com/pawmart/storefront-backend/pkg/enums"
	pkgerrors "github.com/pawmart/storefront-backend/pkg/errors"
	"github.com/pawmart/storefront-backend/pkg/logger"
	"github.com/pawmart/storefront-backend/pkg/metrics"
	"github.com/shopspring/decimal"
)

// Quote is the pricing breakdown on top of the cart subtotal. The pricing
// policy (shipping threshold, tax rate) belongs here, not in the cart slice.
type Quote struct {
	Subtotal     decimal.Decimal `json:"subtotal"`
	ShippingFee  decimal.Decimal `json:"shipping_fee"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	ItemCount    int             `json:"item_count"`
	FreeShipping bool            `json:"free_shipping"`
}

// PlaceOrderInput selects the shipping address and payment method for an
// order. An empty AddressID falls back to the session's default address.
type PlaceOrderInput struct {
	AddressID     string
	PaymentMethod enums.PaymentMethod
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Config  config.CheckoutConfig
	Logger  *logger.Logger
	Metrics *metrics.StoreMetrics

	// Now and Delay exist for tests; nil means the real clock.
	Now   func() time.Time
	Delay func(time.Duration)
}

// Service orchestrates checkout across the cart and profile slices. The
// store itself has no inter-slice transactions, so creating the order and
// emptying the cart are this caller's responsibility.
type Service interface {
	Quote(ctx context.Context, sess *session.Session) (Quote, error)
	PlaceOrder(ctx context.Context, sess *session.Session, input PlaceOrderInput) (users.Order, error)
}

type service struct {
	cfg     config.CheckoutConfig
	logg    *logger.Logger
	metrics *metrics.StoreMetrics
	now     func() time.Time
	delay   func(time.Duration)
}

// NewService builds a checkout service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if err := params.Config.Validate(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid checkout config")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	delay := params.Delay
	if delay == nil {
		delay = time.Sleep
	}
	return &service{
		cfg:     params.Config,
		logg:    params.Logger,
		metrics: params.Metrics,
		now:     now,
		delay:   delay,
	}, nil
}

// Quote prices the session's current cart.
func (s *service) Quote(ctx context.Context, sess *session.Session) (Quote, error) {
	if sess == nil {
		return Quote{}, pkgerrors.New(pkgerrors.CodeValidation, "session is required")
	}
	var snapshot cart.State
	sess.Read(func(st *session.State) {
		snapshot = st.Cart.Snapshot()
	})
	return s.quoteFor(snapshot), nil
}

// PlaceOrder validates the cart and address, waits the artificial
// placing-order delay, then appends the order and clears the cart. The delay
// deliberately ignores context cancellation: an interrupted caller still
// gets the dispatch, matching the storefront's unguarded timer.
func (s *service) PlaceOrder(ctx context.Context, sess *session.Session, input PlaceOrderInput) (users.Order, error) {
	if sess == nil {
		return users.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "session is required")
	}
	start := s.now()

	var (
		cartSnapshot cart.State
		address      users.Address
		haveAddress  bool
	)
	sess.Read(func(st *session.State) {
		cartSnapshot = st.Cart.Snapshot()
		if input.AddressID != "" {
			address, haveAddress = st.Profile.FindAddress(input.AddressID)
		} else {
			address, haveAddress = st.Profile.DefaultAddress()
		}
	})

	if !haveAddress || len(cartSnapshot.Items) == 0 {
		return users.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "select an address and add items to cart")
	}
	if input.PaymentMethod != "" && !input.PaymentMethod.IsValid() {
		return users.Order{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment method")
	}

	quote := s.quoteFor(cartSnapshot)

	s.delay(s.cfg.PlaceOrderDelay)

	placedAt := s.now()
	order := users.Order{
		ID:              fmt.Sprintf("PET-%d", placedAt.UnixMilli()),
		Date:            placedAt.Format("2006-01-02"),
		Status:          enums.OrderStatusProcessing,
		Items:           orderItems(cartSnapshot.Items),
		Total:           quote.Total,
		ShippingAddress: address,
		PaymentMethod:   input.PaymentMethod,
	}

	sess.Dispatch(func(st *session.State) bool {
		st.Profile.AddOrder(order)
		st.Cart.Clear()
		return true
	})

	s.metrics.IncOrders()
	s.metrics.ObserveCheckout(placedAt.Sub(start))
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"order_id": order.ID,
			"total":    order.Total,
		})
		s.logg.Info(ctx, "order placed")
	}
	return order, nil
}

func (s *service) quoteFor(snapshot cart.State) Quote {
	subtotal := snapshot.Total
	fee := s.cfg.ShippingFee
	free := subtotal.GreaterThan(s.cfg.FreeShippingOver)
	if free {
		fee = decimal.Zero
	}
	tax := subtotal.Mul(s.cfg.TaxRate)
	return Quote{
		Subtotal:     subtotal,
		ShippingFee:  fee,
		Tax:          tax,
		Total:        subtotal.Add(fee).Add(tax),
		ItemCount:    snapshot.ItemCount,
		FreeShipping: free,
	}
}

func orderItems(items []cart.Item) []users.OrderItem {
	out := make([]users.OrderItem, 0, len(items))
	for _, item := range items {
		image := ""
		if len(item.Product.Images) > 0 {
			image = item.Product.Images[0]
		}
		out = append(out, users.OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			Price:       item.Product.Price,
			Image:       image,
		})
	}
	return out
}
