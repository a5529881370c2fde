package domain

import "time"

type AgreementStatus string

const (
	AgreementPending  AgreementStatus = "pending"
	AgreementAccepted AgreementStatus = "accepted"
	AgreementRejected AgreementStatus = "rejected"
)

// Agreement is a booking request between a client and a photographer.
// Status moves pending -> accepted or pending -> rejected, never again
// after that. Contact details are set together with the accept transition;
// contract/payment/review fields are writable only while accepted.
type Agreement struct {
	ID               int64           `json:"id"`
	PhotographerID   int64           `json:"photographer_id" validate:"required"`
	ClientID         int64           `json:"client_id" validate:"required"`
	Note             string          `json:"note,omitempty" gorm:"type:text"`
	Status           AgreementStatus `json:"status"`
	ContactDetails   string          `json:"contact_details,omitempty"`
	ContractDone     bool            `json:"contract_done"`
	ContractDuration string          `json:"contract_duration,omitempty"`
	PaymentDone      bool            `json:"payment_done"`
	Review           string          `json:"review" gorm:"type:text"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Terminal reports whether the status admits no further transition.
func (s AgreementStatus) Terminal() bool {
	return s == AgreementAccepted || s == AgreementRejected
}

// CanTransition validates a status change. Only the two accept/reject
// edges out of pending exist; everything else is illegal.
func (s AgreementStatus) CanTransition(to AgreementStatus) bool {
	return s == AgreementPending && to.Terminal()
}

// IsParty reports whether the given user is one of the two agreement
// parties.
func (a *Agreement) IsParty(userID int64) bool {
	return a.ClientID == userID || a.PhotographerID == userID
}
