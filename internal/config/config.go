package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port   string `mapstructure:"PORT"`
	AppEnv string `mapstructure:"APP_ENV"`

	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`
	DynamoDBAutoCreate bool   `mapstructure:"DYNAMODB_AUTO_CREATE"`

	FreightRoutesTable string `mapstructure:"FREIGHT_ROUTES_TABLE"`
	FreightsTable      string `mapstructure:"FREIGHTS_TABLE"`
	CarriersTable      string `mapstructure:"CARRIERS_TABLE"`
	AuditLogsTable     string `mapstructure:"AUDIT_LOGS_TABLE"`
	SettingsTable      string `mapstructure:"SETTINGS_TABLE"`

	JWTSecret string `mapstructure:"JWT_SECRET"`
	JWTIssuer string `mapstructure:"JWT_ISSUER"`

	MercadoPagoAccessToken     string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock         string `mapstructure:"PAYMENT_GATEWAY_MOCK"`
	CheckoutSuccessURL         string `mapstructure:"CHECKOUT_SUCCESS_URL"`
	CheckoutFailureURL         string `mapstructure:"CHECKOUT_FAILURE_URL"`
	CheckoutPendingURL         string `mapstructure:"CHECKOUT_PENDING_URL"`
	MercadoPagoNotificationURL string `mapstructure:"MERCADOPAGO_NOTIFICATION_URL"`

	TaxIDBaseURL      string        `mapstructure:"TAXID_BASE_URL"`
	TaxIDAllowedCNAEs string        `mapstructure:"TAXID_ALLOWED_CNAES"`
	TaxIDMock         string        `mapstructure:"TAXID_MOCK"`
	TaxIDTimeout      time.Duration `mapstructure:"TAXID_TIMEOUT"`
	TaxIDCacheTTL     time.Duration `mapstructure:"TAXID_CACHE_TTL"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required outside development")

// Load reads configuration from the environment. A .env file, when present,
// is loaded earlier by godotenv in main.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.JWTSecret == "" && !cfg.IsDevelopment() {
		return nil, ErrMissingJWTSecret
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_ENV", "production")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("DYNAMODB_AUTO_CREATE", false)

	v.SetDefault("FREIGHT_ROUTES_TABLE", "rotaclick_freight_routes")
	v.SetDefault("FREIGHTS_TABLE", "rotaclick_freights")
	v.SetDefault("CARRIERS_TABLE", "rotaclick_carriers")
	v.SetDefault("AUDIT_LOGS_TABLE", "rotaclick_audit_logs")
	v.SetDefault("SETTINGS_TABLE", "rotaclick_platform_settings")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_ISSUER", "")

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", "")
	v.SetDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/checkout/sucesso")
	v.SetDefault("CHECKOUT_FAILURE_URL", "http://localhost:3000/checkout/falha")
	v.SetDefault("CHECKOUT_PENDING_URL", "http://localhost:3000/checkout/pendente")
	v.SetDefault("MERCADOPAGO_NOTIFICATION_URL", "")

	v.SetDefault("TAXID_BASE_URL", "https://brasilapi.com.br/api/cnpj/v1")
	// Road freight (municipal, intercity, interstate, international), moving
	// and freight intermediation.
	v.SetDefault("TAXID_ALLOWED_CNAES", "4930201,4930202,4930203,4930204,5250804")
	v.SetDefault("TAXID_MOCK", "")
	v.SetDefault("TAXID_TIMEOUT", "10s")
	v.SetDefault("TAXID_CACHE_TTL", "24h")

	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.AppEnv, "development")
}

func (c *Config) PaymentMockEnabled() bool {
	return flagEnabled(c.PaymentGatewayMock)
}

func (c *Config) TaxIDMockEnabled() bool {
	return flagEnabled(c.TaxIDMock)
}

// AllowedCNAEs splits TAXID_ALLOWED_CNAES on commas.
func (c *Config) AllowedCNAEs() []string {
	var out []string
	for _, p := range strings.Split(c.TaxIDAllowedCNAEs, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func flagEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	default:
		return false
	}
}
