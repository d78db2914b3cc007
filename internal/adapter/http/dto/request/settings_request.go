package request

import (
	"rotaclick/internal/usecase"

	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest is a partial update: absent fields keep their value.
type UpdateSettingsRequest struct {
	DefaultMarginPercent *decimal.Decimal `json:"default_margin_percent"`
	FallbackPricePerKg   *decimal.Decimal `json:"fallback_price_per_kg"`
	FallbackMinPrice     *decimal.Decimal `json:"fallback_min_price"`
	FallbackDeadlineDays *int             `json:"fallback_deadline_days" binding:"omitempty,gte=1"`
	BrandName            *string          `json:"brand_name"`
	BrandLogoURL         *string          `json:"brand_logo_url"`
	BrandPrimaryColor    *string          `json:"brand_primary_color"`
	BrandSupportEmail    *string          `json:"brand_support_email"`
}

func (r UpdateSettingsRequest) ToInput() usecase.UpdateSettingsInput {
	return usecase.UpdateSettingsInput{
		DefaultMarginPercent: r.DefaultMarginPercent,
		FallbackPricePerKg:   r.FallbackPricePerKg,
		FallbackMinPrice:     r.FallbackMinPrice,
		FallbackDeadlineDays: r.FallbackDeadlineDays,
		BrandName:            r.BrandName,
		BrandLogoURL:         r.BrandLogoURL,
		BrandPrimaryColor:    r.BrandPrimaryColor,
		BrandSupportEmail:    r.BrandSupportEmail,
	}
}
