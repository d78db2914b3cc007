package request

import (
	"strings"

	"rotaclick/internal/usecase"
)

type RegisterCarrierRequest struct {
	CNPJ      string `json:"cnpj" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	TradeName string `json:"trade_name"`
}

func (r RegisterCarrierRequest) ToInput() usecase.RegisterCarrierInput {
	return usecase.RegisterCarrierInput{
		CNPJ:      strings.TrimSpace(r.CNPJ),
		Email:     strings.TrimSpace(r.Email),
		Phone:     strings.TrimSpace(r.Phone),
		TradeName: strings.TrimSpace(r.TradeName),
	}
}

type ApproveCarrierRequest struct {
	PaymentTermDays int `json:"payment_term_days" binding:"required,oneof=7 21 28"`
}

type RejectCarrierRequest struct {
	Reason string `json:"reason" binding:"required"`
}
