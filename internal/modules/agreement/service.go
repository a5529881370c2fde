package agreement

import (
	"context"
	"errors"
	"strings"

	"photobook/internal/domain"
	"photobook/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	agreements AgreementRepository
	users      UserGate
}

func NewService(agreements AgreementRepository, users UserGate) *Service {
	return &Service{agreements: agreements, users: users}
}

// Create opens a pending agreement from the calling client towards an
// existing, approved photographer.
func (s *Service) Create(ctx context.Context, caller *domain.User, req CreateAgreementRequest) (*domain.Agreement, error) {
	if caller.Role != domain.RoleClient {
		return nil, ErrForbidden
	}
	if req.PhotographerID == caller.ID {
		return nil, ErrValidation
	}

	photographer, err := s.users.GetByID(ctx, req.PhotographerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if photographer.Role != domain.RolePhotographer ||
		photographer.VerificationStatus != domain.VerificationApproved {
		return nil, ErrValidation
	}

	a := &domain.Agreement{
		PhotographerID: req.PhotographerID,
		ClientID:       caller.ID,
		Note:           strings.TrimSpace(req.Note),
		Status:         domain.AgreementPending,
	}
	if err := s.agreements.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Accept moves a pending agreement to accepted and records the contact
// details the photographer shares with the client. Only the addressed
// photographer may call it, and only while the agreement is pending.
func (s *Service) Accept(ctx context.Context, callerID, agreementID int64, contactDetails string) (*domain.Agreement, error) {
	return s.transition(ctx, callerID, agreementID, domain.AgreementAccepted, contactDetails)
}

// Reject moves a pending agreement to rejected. Same guards as Accept.
func (s *Service) Reject(ctx context.Context, callerID, agreementID int64) (*domain.Agreement, error) {
	return s.transition(ctx, callerID, agreementID, domain.AgreementRejected, "")
}

func (s *Service) transition(ctx context.Context, callerID, agreementID int64, to domain.AgreementStatus, contactDetails string) (*domain.Agreement, error) {
	a, err := s.getAgreement(ctx, agreementID)
	if err != nil {
		return nil, err
	}
	if a.PhotographerID != callerID {
		return nil, ErrForbidden
	}
	if !a.Status.CanTransition(to) {
		return nil, ErrInvalidTransition
	}

	// The repository re-checks the pending state inside the UPDATE, so a
	// concurrent accept/reject pair produces exactly one winner.
	ok, err := s.agreements.Transition(ctx, agreementID, to, contactDetails)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	a.Status = to
	if to == domain.AgreementAccepted {
		a.ContactDetails = contactDetails
	}
	return a, nil
}

// SetContract overwrites the contract flag and duration. Either party may
// call it once the agreement is accepted.
func (s *Service) SetContract(ctx context.Context, callerID, agreementID int64, done bool, duration string) (*domain.Agreement, error) {
	a, err := s.getAgreement(ctx, agreementID)
	if err != nil {
		return nil, err
	}
	if !a.IsParty(callerID) {
		return nil, ErrForbidden
	}

	if err := s.updateAccepted(ctx, a, map[string]any{
		"contract_done":     done,
		"contract_duration": duration,
	}); err != nil {
		return nil, err
	}
	a.ContractDone = done
	a.ContractDuration = duration
	return a, nil
}

// SetPayment overwrites the payment flag. Either party may call it once
// the agreement is accepted; re-setting the same value is a no-op.
func (s *Service) SetPayment(ctx context.Context, callerID, agreementID int64, paid bool) (*domain.Agreement, error) {
	a, err := s.getAgreement(ctx, agreementID)
	if err != nil {
		return nil, err
	}
	if !a.IsParty(callerID) {
		return nil, ErrForbidden
	}

	if err := s.updateAccepted(ctx, a, map[string]any{"payment_done": paid}); err != nil {
		return nil, err
	}
	a.PaymentDone = paid
	return a, nil
}

// SetReview records the client's review text. Only the agreement's client
// may call it, and only while the agreement is accepted. Payment is not a
// precondition; see DESIGN.md.
func (s *Service) SetReview(ctx context.Context, callerID, agreementID int64, review string) (*domain.Agreement, error) {
	a, err := s.getAgreement(ctx, agreementID)
	if err != nil {
		return nil, err
	}
	if a.ClientID != callerID {
		return nil, ErrForbidden
	}

	if err := s.updateAccepted(ctx, a, map[string]any{"review": review}); err != nil {
		return nil, err
	}
	a.Review = review
	return a, nil
}

// ListForPhotographer returns every agreement addressed to the caller,
// all statuses included, with client contact info resolved.
func (s *Service) ListForPhotographer(ctx context.Context, photographerID int64) ([]repository.AgreementWithCounterpart, error) {
	return s.agreements.ListByPhotographer(ctx, photographerID)
}

// ListForClient returns every agreement the caller created, all statuses
// included, with photographer contact info resolved.
func (s *Service) ListForClient(ctx context.Context, clientID int64) ([]repository.AgreementWithCounterpart, error) {
	return s.agreements.ListByClient(ctx, clientID)
}

func (s *Service) getAgreement(ctx context.Context, id int64) (*domain.Agreement, error) {
	a, err := s.agreements.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) updateAccepted(ctx context.Context, a *domain.Agreement, fields map[string]any) error {
	if a.Status != domain.AgreementAccepted {
		return ErrNotAccepted
	}
	ok, err := s.agreements.UpdateFieldsIfAccepted(ctx, a.ID, fields)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotAccepted
	}
	return nil
}
