package config

import "time"

// StoreSettings holds the pricing parameters used by quotes and checkout
type StoreSettings struct {
	TaxRate                    float64 `mapstructure:"tax_rate" validate:"min=0,max=1"`
	ShippingCents              int64   `mapstructure:"shipping_cents" validate:"min=0"`
	FreeShippingThresholdCents int64   `mapstructure:"free_shipping_threshold_cents" validate:"min=0"`
}

// GameSettings holds the tunables of the mining game and the stock market simulation
type GameSettings struct {
	MarketTick          time.Duration `mapstructure:"market_tick" validate:"min=100ms"`
	OfflineCap          time.Duration `mapstructure:"offline_cap" validate:"min=1m"`
	Seed                uint64        `mapstructure:"seed"`
	MaxClicksPerRequest int           `mapstructure:"max_clicks_per_request" validate:"min=1,max=1000"`
}
