package entities

import "time"

type ApprovalStatus string

const (
	ApprovalStatusPendente  ApprovalStatus = "pendente"
	ApprovalStatusAprovado  ApprovalStatus = "aprovado"
	ApprovalStatusRejeitado ApprovalStatus = "rejeitado"
)

// Payout terms offered to carriers, in days after the customer payment.
var AllowedPaymentTermDays = []int{7, 21, 28}

func IsAllowedPaymentTerm(days int) bool {
	for _, d := range AllowedPaymentTermDays {
		if d == days {
			return true
		}
	}
	return false
}

// Carrier (transportadora) registered on the platform.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (cnpj-index): cnpj
//   - GSI2 (owner_user_id-index): owner_user_id
//   - GSI3 (approval_status-index): approval_status
//
// PaymentTermDays is chosen by the administrator at approval and applies to
// every freight paid afterwards.
type Carrier struct {
	ID              string         `json:"id"`
	OwnerUserID     string         `json:"owner_user_id"`
	CNPJ            string         `json:"cnpj"`
	CompanyName     string         `json:"company_name"`
	TradeName       string         `json:"trade_name,omitempty"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone,omitempty"`
	Address         string         `json:"address,omitempty"`
	CNAE            string         `json:"cnae,omitempty"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	PaymentTermDays int            `json:"payment_term_days,omitempty"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty"`
	ApprovedBy      string         `json:"approved_by,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (c Carrier) IsApproved() bool {
	return c.ApprovalStatus == ApprovalStatusAprovado
}

// TaxIDRecord is what the external CNPJ registry reports about a company.
type TaxIDRecord struct {
	CNPJ           string   `json:"cnpj"`
	CompanyName    string   `json:"company_name"`
	TradeName      string   `json:"trade_name"`
	Active         bool     `json:"active"`
	MainCNAE       string   `json:"main_cnae"`
	SecondaryCNAEs []string `json:"secondary_cnaes"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	Zip            string   `json:"zip"`
}
