package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Keys of the platform_settings key-value table.
const (
	SettingDefaultMarginPercent = "default_margin_percent"
	SettingFallbackPricePerKg   = "fallback_price_per_kg"
	SettingFallbackMinPrice     = "fallback_min_price"
	SettingFallbackDeadlineDays = "fallback_deadline_days"
	SettingBrandName            = "brand_name"
	SettingBrandLogoURL         = "brand_logo_url"
	SettingBrandPrimaryColor    = "brand_primary_color"
	SettingBrandSupportEmail    = "brand_support_email"
)

// PlatformSetting is one stored key-value row.
type PlatformSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
}

// Branding is the public subset of the settings.
type Branding struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url,omitempty"`
	PrimaryColor string `json:"primary_color,omitempty"`
	SupportEmail string `json:"support_email,omitempty"`
}

// PlatformSettings is the typed view of all settings rows.
type PlatformSettings struct {
	DefaultMarginPercent decimal.Decimal `json:"default_margin_percent"`
	FallbackPricePerKg   decimal.Decimal `json:"fallback_price_per_kg"`
	FallbackMinPrice     decimal.Decimal `json:"fallback_min_price"`
	FallbackDeadlineDays int             `json:"fallback_deadline_days"`
	Branding             Branding        `json:"branding"`
}
