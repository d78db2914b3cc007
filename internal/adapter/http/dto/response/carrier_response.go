package response

import (
	"time"

	"rotaclick/internal/domain/cnpj"
	"rotaclick/internal/domain/entities"
)

type CarrierResponse struct {
	ID              string     `json:"id"`
	CNPJ            string     `json:"cnpj"`
	CompanyName     string     `json:"company_name"`
	TradeName       string     `json:"trade_name,omitempty"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone,omitempty"`
	Address         string     `json:"address,omitempty"`
	CNAE            string     `json:"cnae,omitempty"`
	ApprovalStatus  string     `json:"approval_status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	PaymentTermDays int        `json:"payment_term_days,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromCarrier(c entities.Carrier) CarrierResponse {
	return CarrierResponse{
		ID:              c.ID,
		CNPJ:            cnpj.Format(c.CNPJ),
		CompanyName:     c.CompanyName,
		TradeName:       c.TradeName,
		Email:           c.Email,
		Phone:           c.Phone,
		Address:         c.Address,
		CNAE:            c.CNAE,
		ApprovalStatus:  string(c.ApprovalStatus),
		RejectionReason: c.RejectionReason,
		PaymentTermDays: c.PaymentTermDays,
		ApprovedAt:      c.ApprovedAt,
		CreatedAt:       c.CreatedAt,
	}
}

func FromCarriers(list []entities.Carrier) []CarrierResponse {
	out := make([]CarrierResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCarrier(c))
	}
	return out
}
