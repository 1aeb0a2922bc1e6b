package models

import "time"

// Client lifecycle statuses.
const (
	ClientStatusPending  = "pending"
	ClientStatusActive   = "active"
	ClientStatusInactive = "inactive"
)

// Client is a registered tenant organization in the central registry.
// SchemaName is the derived name of the per-tenant schema; it is the only
// linkage between the registry and the tenant's storage.
type Client struct {
	ID              int       `json:"id"`
	ResponsibleName string    `json:"responsibleName"`
	OrgName         string    `json:"orgName"`
	Email           string    `json:"email"`
	TaxID           string    `json:"taxId"`
	Address         string    `json:"address"`
	SchemaName      string    `json:"schemaName"`
	AccessKey       string    `json:"accessKey"` // bcrypt hash
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`

	// Best-effort enrichment attached by the listing: the tenant user's
	// hashed secret and the plaintext verification code. Nil when the
	// cross-schema lookup failed for this client.
	Secret           *string `json:"secret"`
	VerificationCode *string `json:"verificationCode"`
}

// RegisterClientRequest is the body of POST /api/clientes.
type RegisterClientRequest struct {
	ResponsibleName string `json:"responsibleName"`
	OrgName         string `json:"orgName"`
	Email           string `json:"email"`
	TaxID           string `json:"taxId"`
	Address         string `json:"address"`
}

// UpdateClientRequest is the body of PUT /api/editClient/{id}. Nil fields
// keep their stored values (merge semantics).
type UpdateClientRequest struct {
	ResponsibleName *string `json:"responsibleName"`
	OrgName         *string `json:"orgName"`
	Email           *string `json:"email"`
	TaxID           *string `json:"taxId"`
	Address         *string `json:"address"`
	AccessKey       *string `json:"accessKey"`
	Secret          *string `json:"secret"`
	Status          *string `json:"status"`
}

// Empty reports whether no field was supplied at all.
func (r *UpdateClientRequest) Empty() bool {
	return r.ResponsibleName == nil && r.OrgName == nil && r.Email == nil &&
		r.TaxID == nil && r.Address == nil && r.AccessKey == nil &&
		r.Secret == nil && r.Status == nil
}
