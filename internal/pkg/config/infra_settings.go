package config

// Payment provider constants
const (
	HousePaymentProvider = "house"
	OmisePaymentProvider = "omise"
)

// RedisSettings holds the connection settings for the session revocation cache.
// When disabled an in-process store is used instead.
type RedisSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
}

// BrokerSettings holds the RabbitMQ settings used to publish domain events
type BrokerSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	URL      string `mapstructure:"url" validate:"required_if=Enabled true"`
	Exchange string `mapstructure:"exchange" validate:"required_if=Enabled true"`
}

// PaymentSettings selects the gateway used at checkout
type PaymentSettings struct {
	Provider  string `mapstructure:"provider" validate:"required,oneof=house omise"`
	PublicKey string `mapstructure:"public_key" validate:"required_if=Provider omise"`
	SecretKey string `mapstructure:"secret_key" validate:"required_if=Provider omise"`
	Currency  string `mapstructure:"currency" validate:"required,len=3"`
}

// TracingSettings configures the OTLP/HTTP trace exporter
type TracingSettings struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint" validate:"required_if=Enabled true"`
	ServiceName string `mapstructure:"service_name"`
}
