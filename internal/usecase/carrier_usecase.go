package usecase

import (
	"context"
	"errors"
	"net/mail"
	"rotaclick/internal/domain/cnpj"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCNPJ             = errors.New("invalid cnpj")
	ErrInvalidCarrierEmail     = errors.New("invalid email")
	ErrCarrierAlreadyExists    = errors.New("carrier already registered")
	ErrCompanyInactive         = errors.New("company registration is not active")
	ErrCNAENotAllowed          = errors.New("company activity (cnae) is not freight transport")
	ErrTaxIDUnavailable        = errors.New("tax id service unavailable")
	ErrInvalidPaymentTerm      = errors.New("payment term must be 7, 21 or 28 days")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
	ErrInvalidApprovalStatus   = errors.New("invalid approval status")
)

type RegisterCarrierInput struct {
	CNPJ      string
	Email     string
	Phone     string
	TradeName string
}

type ICarrierUseCase interface {
	Register(ctx context.Context, actor entities.Actor, in RegisterCarrierInput) (entities.Carrier, error)
	Approve(ctx context.Context, actor entities.Actor, carrierID string, paymentTermDays int) (entities.Carrier, error)
	Reject(ctx context.Context, actor entities.Actor, carrierID, reason string) (entities.Carrier, error)
	GetByID(ctx context.Context, actor entities.Actor, carrierID string) (entities.Carrier, error)
	GetMine(ctx context.Context, actor entities.Actor) (entities.Carrier, error)
	ListByStatus(ctx context.Context, actor entities.Actor, status entities.ApprovalStatus) ([]entities.Carrier, error)
}

type CarrierUseCase struct {
	repo         interfaces.ICarrierRepository
	taxID        interfaces.ITaxIDValidator
	allowedCNAEs map[string]bool
	audit        *auditTrail
	logger       *zap.Logger
	now          func() time.Time
}

var _ ICarrierUseCase = (*CarrierUseCase)(nil)

// NewCarrierUseCase accepts CNAE codes with or without punctuation
// ("4930-2/02" or "4930202").
func NewCarrierUseCase(repo interfaces.ICarrierRepository, taxID interfaces.ITaxIDValidator, allowedCNAEs []string, auditRepo interfaces.IAuditLogRepository, logger *zap.Logger) *CarrierUseCase {
	allowed := make(map[string]bool, len(allowedCNAEs))
	for _, c := range allowedCNAEs {
		if n := normalizeCNAE(c); n != "" {
			allowed[n] = true
		}
	}
	return &CarrierUseCase{
		repo:         repo,
		taxID:        taxID,
		allowedCNAEs: allowed,
		audit:        newAuditTrail(auditRepo, logger),
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Register onboards the caller's company. The CNPJ must pass the check
// digits, be active in the federal registry and carry a transport CNAE.
func (u *CarrierUseCase) Register(ctx context.Context, actor entities.Actor, in RegisterCarrierInput) (entities.Carrier, error) {
	if strings.TrimSpace(actor.UserID) == "" {
		return entities.Carrier{}, ErrForbidden
	}
	doc, err := cnpj.Normalize(in.CNPJ)
	if err != nil {
		return entities.Carrier{}, ErrInvalidCNPJ
	}
	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return entities.Carrier{}, ErrInvalidCarrierEmail
	}

	owned, err := u.repo.GetByOwnerUserID(ctx, actor.UserID)
	if err != nil {
		return entities.Carrier{}, err
	}
	if owned.ID != "" {
		return entities.Carrier{}, ErrCarrierAlreadyExists
	}
	existing, err := u.repo.GetByCNPJ(ctx, doc)
	if err != nil {
		return entities.Carrier{}, err
	}
	if existing.ID != "" {
		return entities.Carrier{}, ErrCarrierAlreadyExists
	}

	record, err := u.taxID.Lookup(ctx, doc)
	if err != nil {
		if errors.Is(err, interfaces.ErrTaxIDNotFound) {
			return entities.Carrier{}, ErrInvalidCNPJ
		}
		u.logger.Error("[carrier][usecase] tax id lookup failed", zap.String("cnpj", doc), zap.Error(err))
		return entities.Carrier{}, ErrTaxIDUnavailable
	}
	if !record.Active {
		return entities.Carrier{}, ErrCompanyInactive
	}
	cnae, ok := u.transportCNAE(record)
	if !ok {
		u.logger.Info("[carrier][usecase] cnae not allowed", zap.String("cnpj", doc), zap.String("main_cnae", record.MainCNAE))
		return entities.Carrier{}, ErrCNAENotAllowed
	}

	tradeName := strings.TrimSpace(in.TradeName)
	if tradeName == "" {
		tradeName = record.TradeName
	}
	now := u.now()
	carrier := entities.Carrier{
		ID:             uuid.NewString(),
		OwnerUserID:    actor.UserID,
		CNPJ:           doc,
		CompanyName:    record.CompanyName,
		TradeName:      tradeName,
		Email:          email,
		Phone:          strings.TrimSpace(in.Phone),
		Address:        formatAddress(record),
		CNAE:           cnae,
		ApprovalStatus: entities.ApprovalStatusPendente,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, carrier)
	if err != nil {
		return entities.Carrier{}, err
	}
	if created.ID == "" {
		return entities.Carrier{}, ErrCarrierAlreadyExists
	}

	u.audit.record(ctx, actor, entities.AuditActionCarrierRegistered, "carrier", created.ID, map[string]string{
		"cnpj": doc,
		"cnae": cnae,
	})
	u.logger.Info("[carrier][usecase] registered", zap.String("carrier_id", created.ID), zap.String("cnpj", doc))
	return created, nil
}

// Approve fixes the carrier's payment term. Approving again is how the term
// is changed; freights already paid keep the term they were paid under.
func (u *CarrierUseCase) Approve(ctx context.Context, actor entities.Actor, carrierID string, paymentTermDays int) (entities.Carrier, error) {
	if !actor.IsAdmin() {
		return entities.Carrier{}, ErrForbidden
	}
	if !entities.IsAllowedPaymentTerm(paymentTermDays) {
		return entities.Carrier{}, ErrInvalidPaymentTerm
	}
	c, err := u.find(ctx, carrierID)
	if err != nil {
		return entities.Carrier{}, err
	}

	now := u.now()
	c.ApprovalStatus = entities.ApprovalStatusAprovado
	c.PaymentTermDays = paymentTermDays
	c.RejectionReason = ""
	c.ApprovedAt = &now
	c.ApprovedBy = actor.UserID

	updated, err := u.repo.UpdateApproval(ctx, c)
	if err != nil {
		return entities.Carrier{}, err
	}
	if updated.ID == "" {
		return entities.Carrier{}, ErrCarrierNotFound
	}
	u.audit.record(ctx, actor, entities.AuditActionCarrierApproved, "carrier", updated.ID, map[string]string{
		"payment_term_days": strconv.Itoa(paymentTermDays),
	})
	u.logger.Info("[carrier][usecase] approved", zap.String("carrier_id", updated.ID), zap.Int("term_days", paymentTermDays))
	return updated, nil
}

func (u *CarrierUseCase) Reject(ctx context.Context, actor entities.Actor, carrierID, reason string) (entities.Carrier, error) {
	if !actor.IsAdmin() {
		return entities.Carrier{}, ErrForbidden
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Carrier{}, ErrRejectionReasonRequired
	}
	c, err := u.find(ctx, carrierID)
	if err != nil {
		return entities.Carrier{}, err
	}

	c.ApprovalStatus = entities.ApprovalStatusRejeitado
	c.RejectionReason = reason
	c.ApprovedAt = nil
	c.ApprovedBy = ""

	updated, err := u.repo.UpdateApproval(ctx, c)
	if err != nil {
		return entities.Carrier{}, err
	}
	if updated.ID == "" {
		return entities.Carrier{}, ErrCarrierNotFound
	}
	u.audit.record(ctx, actor, entities.AuditActionCarrierRejected, "carrier", updated.ID, map[string]string{"reason": reason})
	u.logger.Info("[carrier][usecase] rejected", zap.String("carrier_id", updated.ID))
	return updated, nil
}

func (u *CarrierUseCase) GetByID(ctx context.Context, actor entities.Actor, carrierID string) (entities.Carrier, error) {
	c, err := u.find(ctx, carrierID)
	if err != nil {
		return entities.Carrier{}, err
	}
	if !actor.CanManageCarrier(c.ID) && c.OwnerUserID != actor.UserID {
		return entities.Carrier{}, ErrForbidden
	}
	return c, nil
}

// GetMine returns the carrier owned by the calling user.
func (u *CarrierUseCase) GetMine(ctx context.Context, actor entities.Actor) (entities.Carrier, error) {
	if strings.TrimSpace(actor.UserID) == "" {
		return entities.Carrier{}, ErrForbidden
	}
	c, err := u.repo.GetByOwnerUserID(ctx, actor.UserID)
	if err != nil {
		return entities.Carrier{}, err
	}
	if c.ID == "" {
		return entities.Carrier{}, ErrCarrierNotFound
	}
	return c, nil
}

func (u *CarrierUseCase) ListByStatus(ctx context.Context, actor entities.Actor, status entities.ApprovalStatus) ([]entities.Carrier, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	switch status {
	case entities.ApprovalStatusPendente, entities.ApprovalStatusAprovado, entities.ApprovalStatusRejeitado:
	default:
		return nil, ErrInvalidApprovalStatus
	}
	return u.repo.ListByStatus(ctx, status)
}

func (u *CarrierUseCase) find(ctx context.Context, carrierID string) (entities.Carrier, error) {
	carrierID = strings.TrimSpace(carrierID)
	if carrierID == "" {
		return entities.Carrier{}, ErrCarrierNotFound
	}
	c, err := u.repo.GetByID(ctx, carrierID)
	if err != nil {
		return entities.Carrier{}, err
	}
	if c.ID == "" {
		return entities.Carrier{}, ErrCarrierNotFound
	}
	return c, nil
}

// transportCNAE returns the first allowed activity code, main CNAE first.
func (u *CarrierUseCase) transportCNAE(r entities.TaxIDRecord) (string, bool) {
	for _, c := range append([]string{r.MainCNAE}, r.SecondaryCNAEs...) {
		n := normalizeCNAE(c)
		if u.allowedCNAEs[n] {
			return n, true
		}
	}
	return "", false
}

func normalizeCNAE(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func formatAddress(r entities.TaxIDRecord) string {
	var parts []string
	for _, p := range []string{r.Address, r.City, r.State, r.Zip} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
