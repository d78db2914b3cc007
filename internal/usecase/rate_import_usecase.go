package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/domain/pricing"
	"rotaclick/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCarrierNotApproved = errors.New("carrier not approved")
	ErrEmptyRateSheet     = errors.New("rate sheet has no rows")
)

var rateImportRows = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rotaclick_rate_import_rows_total",
		Help: "Rate sheet rows processed by bulk import, by outcome",
	},
	[]string{"outcome"},
)

// routeNamespace seeds the deterministic route IDs used by import, so
// re-importing the same origin/destination for a carrier updates in place.
var routeNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://rotaclick.com.br/freight-routes"))

// RouteKey is the stable ID of a carrier route for the given ranges.
func RouteKey(carrierID string, origin, dest entities.ZipRange) string {
	name := carrierID + "|" + pricing.ZipRangeKey(origin) + "|" + pricing.ZipRangeKey(dest)
	return uuid.NewSHA1(routeNamespace, []byte(name)).String()
}

type ImportCommand struct {
	CarrierID     string
	MarginPercent *decimal.Decimal
	Rows          []entities.RateSheetRow
}

type IRateImportUseCase interface {
	Import(ctx context.Context, actor entities.Actor, cmd ImportCommand) (entities.BatchResult, error)
	ImportSpreadsheet(ctx context.Context, actor entities.Actor, carrierID string, margin *decimal.Decimal, filename string, r io.Reader) (entities.BatchResult, error)
}

type RateImportUseCase struct {
	routes   interfaces.IFreightRouteRepository
	carriers interfaces.ICarrierRepository
	settings interfaces.IPlatformSettingsRepository
	reader   interfaces.IRateSheetReader
	audit    *auditTrail
	logger   *zap.Logger
	now      func() time.Time
}

var _ IRateImportUseCase = (*RateImportUseCase)(nil)

func NewRateImportUseCase(
	routes interfaces.IFreightRouteRepository,
	carriers interfaces.ICarrierRepository,
	settings interfaces.IPlatformSettingsRepository,
	reader interfaces.IRateSheetReader,
	auditRepo interfaces.IAuditLogRepository,
	logger *zap.Logger,
) *RateImportUseCase {
	return &RateImportUseCase{
		routes:   routes,
		carriers: carriers,
		settings: settings,
		reader:   reader,
		audit:    newAuditTrail(auditRepo, logger),
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *RateImportUseCase) ImportSpreadsheet(ctx context.Context, actor entities.Actor, carrierID string, margin *decimal.Decimal, filename string, r io.Reader) (entities.BatchResult, error) {
	if !actor.IsAdmin() {
		return entities.BatchResult{}, ErrForbidden
	}
	rows, err := u.reader.Read(filename, r)
	if err != nil {
		return entities.BatchResult{}, err
	}
	return u.Import(ctx, actor, ImportCommand{CarrierID: carrierID, MarginPercent: margin, Rows: rows})
}

// Import upserts one route per valid row. Invalid rows are collected in
// Failed and never abort the batch.
func (u *RateImportUseCase) Import(ctx context.Context, actor entities.Actor, cmd ImportCommand) (entities.BatchResult, error) {
	if !actor.IsAdmin() {
		return entities.BatchResult{}, ErrForbidden
	}
	carrierID := strings.TrimSpace(cmd.CarrierID)
	if carrierID == "" {
		return entities.BatchResult{}, ErrInvalidRouteCarrier
	}
	if len(cmd.Rows) == 0 {
		return entities.BatchResult{}, ErrEmptyRateSheet
	}
	carrier, err := u.carriers.GetByID(ctx, carrierID)
	if err != nil {
		return entities.BatchResult{}, err
	}
	if carrier.ID == "" {
		return entities.BatchResult{}, ErrCarrierNotFound
	}
	if !carrier.IsApproved() {
		return entities.BatchResult{}, ErrCarrierNotApproved
	}

	var margin decimal.Decimal
	if cmd.MarginPercent != nil {
		margin = *cmd.MarginPercent
	} else {
		settings, err := loadPlatformSettings(ctx, u.settings, u.logger)
		if err != nil {
			return entities.BatchResult{}, err
		}
		margin = settings.DefaultMarginPercent
	}
	if err := pricing.ValidateMargin(margin); err != nil {
		return entities.BatchResult{}, err
	}

	result := entities.BatchResult{Succeeded: []entities.FreightRoute{}, Failed: []entities.RowError{}}
	for _, row := range cmd.Rows {
		route, err := routeFromRow(carrierID, margin, row)
		if err != nil {
			result.Failed = append(result.Failed, entities.RowError{Line: row.Line, Reason: err.Error()})
			rateImportRows.WithLabelValues("failed").Inc()
			continue
		}
		saved, err := u.routes.Upsert(ctx, route)
		if err != nil {
			u.logger.Error("[import][usecase] upsert failed", zap.Int("line", row.Line), zap.Error(err))
			result.Failed = append(result.Failed, entities.RowError{Line: row.Line, Reason: "failed to save route"})
			rateImportRows.WithLabelValues("failed").Inc()
			continue
		}
		result.Succeeded = append(result.Succeeded, saved)
		rateImportRows.WithLabelValues("imported").Inc()
	}

	u.audit.record(ctx, actor, entities.AuditActionRatesImported, "carrier", carrierID, map[string]string{
		"rows":           strconv.Itoa(len(cmd.Rows)),
		"imported":       strconv.Itoa(len(result.Succeeded)),
		"failed":         strconv.Itoa(len(result.Failed)),
		"margin_percent": margin.String(),
	})
	u.logger.Info("[import][usecase] rate sheet processed",
		zap.String("carrier_id", carrierID),
		zap.Int("rows", len(cmd.Rows)),
		zap.Int("imported", len(result.Succeeded)),
		zap.Int("failed", len(result.Failed)))
	return result, nil
}

func routeFromRow(carrierID string, margin decimal.Decimal, row entities.RateSheetRow) (entities.FreightRoute, error) {
	origin, err := pricing.ParseZipRange(row.Origin, row.OriginEnd)
	if err != nil {
		return entities.FreightRoute{}, fmt.Errorf("origin: %w", err)
	}
	dest, err := pricing.ParseZipRange(row.Destination, row.DestinationEnd)
	if err != nil {
		return entities.FreightRoute{}, fmt.Errorf("destination: %w", err)
	}
	costPerKg, err := parseLocalizedDecimal(row.CostPerKg)
	if err != nil {
		return entities.FreightRoute{}, fmt.Errorf("cost per kg: %w", err)
	}
	minPrice := decimal.Zero
	if strings.TrimSpace(row.MinPrice) != "" {
		minPrice, err = parseLocalizedDecimal(row.MinPrice)
		if err != nil {
			return entities.FreightRoute{}, fmt.Errorf("minimum price: %w", err)
		}
	}
	deadline := 1
	if s := strings.TrimSpace(row.DeadlineDays); s != "" {
		deadline, err = strconv.Atoi(s)
		if err != nil || deadline <= 0 {
			return entities.FreightRoute{}, ErrInvalidDeadline
		}
	}

	rate, err := pricing.ApplyMargin(costPerKg, minPrice, margin)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	return entities.FreightRoute{
		ID:                  RouteKey(carrierID, origin, dest),
		CarrierID:           carrierID,
		Origin:              origin,
		Destination:         dest,
		CostPricePerKg:      rate.CostPricePerKg,
		CostMinPrice:        rate.CostMinPrice,
		MarginPercent:       rate.MarginPercent,
		PublishedPricePerKg: rate.PublishedPricePerKg,
		PublishedMinPrice:   rate.PublishedMinPrice,
		DeadlineDays:        deadline,
		Status:              entities.RouteStatusAtiva,
	}, nil
}

var errInvalidNumber = errors.New("invalid number")

// parseLocalizedDecimal accepts "1234.56", the pt-BR "1.234,56" and the
// en-US "1,234.56", with an optional "R$" prefix. When both separators appear
// the last one is the decimal point; a lone comma is read as pt-BR decimal.
func parseLocalizedDecimal(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSpace(strings.TrimPrefix(s, "R$"))
	if s == "" {
		return decimal.Decimal{}, errInvalidNumber
	}

	point, group := ".", ","
	if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
		point, group = ",", "."
	}
	whole, frac := s, ""
	switch strings.Count(s, point) {
	case 0:
	case 1:
		i := strings.LastIndex(s, point)
		whole, frac = s[:i], s[i+1:]
	default:
		// "1.234.567": every separator groups thousands.
		group = point
	}
	if strings.ContainsAny(frac, ".,") {
		return decimal.Decimal{}, errInvalidNumber
	}
	whole, ok := ungroup(whole, group)
	if !ok {
		return decimal.Decimal{}, errInvalidNumber
	}
	if frac != "" {
		whole += "." + frac
	}
	v, err := decimal.NewFromString(whole)
	if err != nil {
		return decimal.Decimal{}, errInvalidNumber
	}
	return v, nil
}

// ungroup strips thousands separators, rejecting groups that are not three
// digits wide.
func ungroup(s, sep string) (string, bool) {
	if !strings.Contains(s, sep) {
		return s, !strings.ContainsAny(s, ".,")
	}
	parts := strings.Split(s, sep)
	if parts[0] == "" {
		return "", false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 || strings.Trim(p, "0123456789") != "" {
			return "", false
		}
	}
	return strings.Join(parts, ""), true
}
