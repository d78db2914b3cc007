package usecase

import (
	"context"
	"errors"
	"net/mail"
	"net/url"
	"regexp"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/domain/pricing"
	"rotaclick/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidSettings     = errors.New("invalid settings")
	ErrInvalidBrandColor   = errors.New("brand primary color must be #RRGGBB")
	ErrInvalidBrandLogoURL = errors.New("brand logo url must be http(s)")
	ErrInvalidSupportEmail = errors.New("invalid support email")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// DefaultPlatformSettings apply for any key never written.
func DefaultPlatformSettings() entities.PlatformSettings {
	return entities.PlatformSettings{
		DefaultMarginPercent: decimal.NewFromInt(15),
		FallbackPricePerKg:   decimal.RequireFromString("3.50"),
		FallbackMinPrice:     decimal.RequireFromString("80.00"),
		FallbackDeadlineDays: 7,
		Branding: entities.Branding{
			Name:         "RotaClick",
			PrimaryColor: "#0B5FFF",
		},
	}
}

// UpdateSettingsInput carries only the fields being changed.
type UpdateSettingsInput struct {
	DefaultMarginPercent *decimal.Decimal
	FallbackPricePerKg   *decimal.Decimal
	FallbackMinPrice     *decimal.Decimal
	FallbackDeadlineDays *int
	BrandName            *string
	BrandLogoURL         *string
	BrandPrimaryColor    *string
	BrandSupportEmail    *string
}

type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.PlatformSettings, error)
	Branding(ctx context.Context) (entities.Branding, error)
	Update(ctx context.Context, actor entities.Actor, in UpdateSettingsInput) (entities.PlatformSettings, error)
}

type SettingsUseCase struct {
	repo   interfaces.IPlatformSettingsRepository
	audit  *auditTrail
	logger *zap.Logger
	now    func() time.Time
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.IPlatformSettingsRepository, auditRepo interfaces.IAuditLogRepository, logger *zap.Logger) *SettingsUseCase {
	return &SettingsUseCase{
		repo:   repo,
		audit:  newAuditTrail(auditRepo, logger),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.PlatformSettings, error) {
	return loadPlatformSettings(ctx, u.repo, u.logger)
}

func (u *SettingsUseCase) Branding(ctx context.Context) (entities.Branding, error) {
	s, err := u.Get(ctx)
	if err != nil {
		return entities.Branding{}, err
	}
	return s.Branding, nil
}

func (u *SettingsUseCase) Update(ctx context.Context, actor entities.Actor, in UpdateSettingsInput) (entities.PlatformSettings, error) {
	if !actor.IsAdmin() {
		return entities.PlatformSettings{}, ErrForbidden
	}

	var rows []entities.PlatformSetting
	now := u.now()
	put := func(key, value string) {
		rows = append(rows, entities.PlatformSetting{Key: key, Value: value, UpdatedAt: now, UpdatedBy: actor.UserID})
	}

	if in.DefaultMarginPercent != nil {
		if err := pricing.ValidateMargin(*in.DefaultMarginPercent); err != nil {
			return entities.PlatformSettings{}, err
		}
		put(entities.SettingDefaultMarginPercent, in.DefaultMarginPercent.String())
	}
	if in.FallbackPricePerKg != nil {
		if !in.FallbackPricePerKg.IsPositive() {
			return entities.PlatformSettings{}, ErrInvalidSettings
		}
		put(entities.SettingFallbackPricePerKg, pricing.RoundRate(*in.FallbackPricePerKg).String())
	}
	if in.FallbackMinPrice != nil {
		if in.FallbackMinPrice.IsNegative() {
			return entities.PlatformSettings{}, ErrInvalidSettings
		}
		put(entities.SettingFallbackMinPrice, pricing.RoundMoney(*in.FallbackMinPrice).String())
	}
	if in.FallbackDeadlineDays != nil {
		if *in.FallbackDeadlineDays <= 0 {
			return entities.PlatformSettings{}, ErrInvalidSettings
		}
		put(entities.SettingFallbackDeadlineDays, strconv.Itoa(*in.FallbackDeadlineDays))
	}
	if in.BrandName != nil {
		name := strings.TrimSpace(*in.BrandName)
		if name == "" {
			return entities.PlatformSettings{}, ErrInvalidSettings
		}
		put(entities.SettingBrandName, name)
	}
	if in.BrandLogoURL != nil {
		logo := strings.TrimSpace(*in.BrandLogoURL)
		if logo != "" {
			parsed, err := url.Parse(logo)
			if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
				return entities.PlatformSettings{}, ErrInvalidBrandLogoURL
			}
		}
		put(entities.SettingBrandLogoURL, logo)
	}
	if in.BrandPrimaryColor != nil {
		color := strings.TrimSpace(*in.BrandPrimaryColor)
		if !hexColor.MatchString(color) {
			return entities.PlatformSettings{}, ErrInvalidBrandColor
		}
		put(entities.SettingBrandPrimaryColor, strings.ToUpper(color))
	}
	if in.BrandSupportEmail != nil {
		email := strings.TrimSpace(*in.BrandSupportEmail)
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				return entities.PlatformSettings{}, ErrInvalidSupportEmail
			}
		}
		put(entities.SettingBrandSupportEmail, email)
	}

	if len(rows) == 0 {
		return u.Get(ctx)
	}
	if err := u.repo.PutMany(ctx, rows); err != nil {
		return entities.PlatformSettings{}, err
	}

	details := make(map[string]string, len(rows))
	for _, r := range rows {
		details[r.Key] = r.Value
	}
	u.audit.record(ctx, actor, entities.AuditActionSettingsUpdated, "settings", "platform", details)
	u.logger.Info("[settings][usecase] updated", zap.String("by", actor.UserID), zap.Int("keys", len(rows)))

	return u.Get(ctx)
}

// loadPlatformSettings overlays stored rows on the defaults. Unparseable
// values keep the default and are logged.
func loadPlatformSettings(ctx context.Context, repo interfaces.IPlatformSettingsRepository, logger *zap.Logger) (entities.PlatformSettings, error) {
	s := DefaultPlatformSettings()
	rows, err := repo.GetAll(ctx)
	if err != nil {
		return entities.PlatformSettings{}, err
	}
	for _, r := range rows {
		switch r.Key {
		case entities.SettingDefaultMarginPercent:
			setDecimal(&s.DefaultMarginPercent, r, logger)
		case entities.SettingFallbackPricePerKg:
			setDecimal(&s.FallbackPricePerKg, r, logger)
		case entities.SettingFallbackMinPrice:
			setDecimal(&s.FallbackMinPrice, r, logger)
		case entities.SettingFallbackDeadlineDays:
			if n, err := strconv.Atoi(r.Value); err == nil && n > 0 {
				s.FallbackDeadlineDays = n
			} else {
				logger.Warn("[settings][usecase] ignoring bad value", zap.String("key", r.Key), zap.String("value", r.Value))
			}
		case entities.SettingBrandName:
			s.Branding.Name = r.Value
		case entities.SettingBrandLogoURL:
			s.Branding.LogoURL = r.Value
		case entities.SettingBrandPrimaryColor:
			s.Branding.PrimaryColor = r.Value
		case entities.SettingBrandSupportEmail:
			s.Branding.SupportEmail = r.Value
		}
	}
	return s, nil
}

func setDecimal(dst *decimal.Decimal, r entities.PlatformSetting, logger *zap.Logger) {
	v, err := decimal.NewFromString(r.Value)
	if err != nil {
		logger.Warn("[settings][usecase] ignoring bad value", zap.String("key", r.Key), zap.String("value", r.Value))
		return
	}
	*dst = v
}
