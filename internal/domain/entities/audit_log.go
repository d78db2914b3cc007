package entities

import "time"

// Audit actions recorded by the use cases.
const (
	AuditActionCarrierRegistered = "carrier.registered"
	AuditActionCarrierApproved   = "carrier.approved"
	AuditActionCarrierRejected   = "carrier.rejected"
	AuditActionRouteCreated      = "route.created"
	AuditActionRouteUpdated      = "route.updated"
	AuditActionRouteActivated    = "route.activated"
	AuditActionRouteDeactivated  = "route.deactivated"
	AuditActionRatesImported     = "rates.imported"
	AuditActionFreightPaid       = "freight.paid"
	AuditActionRepassePaid       = "repasse.paid"
	AuditActionSettingsUpdated   = "settings.updated"
)

// AuditLog records who changed what.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (log_month-created_at-index): log_month (YYYY-MM), created_at
type AuditLog struct {
	ID         string            `json:"id"`
	ActorID    string            `json:"actor_id"`
	ActorRole  string            `json:"actor_role"`
	Action     string            `json:"action"`
	EntityType string            `json:"entity_type"`
	EntityID   string            `json:"entity_id"`
	Details    map[string]string `json:"details,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Actor identifies the authenticated caller of a mutating operation.
type Actor struct {
	UserID    string
	Role      string
	CarrierID string
}

const (
	RoleAdmin    = "admin"
	RoleCarrier  = "carrier"
	RoleCustomer = "customer"
)

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanManageCarrier reports whether the actor may change data owned by the
// given carrier: administrators always, carrier users only their own.
func (a Actor) CanManageCarrier(carrierID string) bool {
	if a.IsAdmin() {
		return true
	}
	return a.Role == RoleCarrier && a.CarrierID != "" && a.CarrierID == carrierID
}
