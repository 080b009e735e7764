package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

const (
	EnvPrefix = "pawmart"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Session  SessionConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Checkout.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PAWMART_APP_ENV" default:"dev"`
	Port         string `envconfig:"PAWMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PAWMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PAWMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// SessionConfig controls the in-memory session registry. Sessions live only
// for the lifetime of the process; the TTL reclaims abandoned ones.
type SessionConfig struct {
	IdleTTL       time.Duration `envconfig:"PAWMART_SESSION_IDLE_TTL" default:"24h"`
	SweepInterval time.Duration `envconfig:"PAWMART_SESSION_SWEEP_INTERVAL" default:"5m"`
	SeedDemo      bool          `envconfig:"PAWMART_SESSION_SEED_DEMO" default:"true"`
}

// CheckoutConfig holds the pricing policy applied on top of the cart
// subtotal. The store itself owns only subtotal and item count.
type CheckoutConfig struct {
	FreeShippingOver decimal.Decimal `envconfig:"PAWMART_CHECKOUT_FREE_SHIPPING_OVER" default:"50"`
	ShippingFee      decimal.Decimal `envconfig:"PAWMART_CHECKOUT_SHIPPING_FEE" default:"8.99"`
	TaxRate          decimal.Decimal `envconfig:"PAWMART_CHECKOUT_TAX_RATE" default:"0.08"`
	PlaceOrderDelay  time.Duration   `envconfig:"PAWMART_CHECKOUT_PLACE_ORDER_DELAY" default:"1200ms"`
}

func (c CheckoutConfig) Validate() error {
	if c.FreeShippingOver.IsNegative() {
		return fmt.Errorf("free shipping threshold must not be negative")
	}
	if c.ShippingFee.IsNegative() {
		return fmt.Errorf("shipping fee must not be negative")
	}
	if c.TaxRate.IsNegative() {
		return fmt.Errorf("tax rate must not be negative")
	}
	if c.PlaceOrderDelay < 0 {
		return fmt.Errorf("place order delay must not be negative")
	}
	return nil
}
