package agreement

import "photobook/internal/domain"

type CreateAgreementRequest struct {
	PhotographerID int64  `json:"photographer_id" binding:"required"`
	Note           string `json:"note"`
}

type AcceptRequest struct {
	ContactDetails string `json:"contact_details" binding:"required"`
}

type ContractRequest struct {
	ContractDone     *bool  `json:"contract_done" binding:"required"`
	ContractDuration string `json:"contract_duration"`
}

type PaymentRequest struct {
	PaymentDone *bool `json:"payment_done" binding:"required"`
}

type ReviewRequest struct {
	Review string `json:"review" binding:"required"`
}

// PhotographerAgreementView is an agreement as the photographer sees it,
// with the requesting client's contact info resolved.
type PhotographerAgreementView struct {
	domain.Agreement
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
}

// ClientAgreementView is an agreement as the client sees it, with the
// photographer's contact info resolved.
type ClientAgreementView struct {
	domain.Agreement
	PhotographerName  string `json:"photographer_name"`
	PhotographerEmail string `json:"photographer_email"`
}
