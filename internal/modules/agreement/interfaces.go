package agreement

import (
	"context"

	"photobook/internal/domain"
	"photobook/internal/repository"
)

// AgreementRepository is the persistence contract the agreement service
// relies on. Every mutation touches exactly one row; Transition and
// UpdateFieldsIfAccepted carry their state guard in the statement itself.
type AgreementRepository interface {
	Create(ctx context.Context, a *domain.Agreement) error
	GetByID(ctx context.Context, id int64) (*domain.Agreement, error)
	Transition(ctx context.Context, id int64, to domain.AgreementStatus, contactDetails string) (bool, error)
	UpdateFieldsIfAccepted(ctx context.Context, id int64, fields map[string]any) (bool, error)
	ListByPhotographer(ctx context.Context, photographerID int64) ([]repository.AgreementWithCounterpart, error)
	ListByClient(ctx context.Context, clientID int64) ([]repository.AgreementWithCounterpart, error)
}

// UserGate is the slice of the user store needed to validate the
// photographer an agreement is addressed to.
type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
