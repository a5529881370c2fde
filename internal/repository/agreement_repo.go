package repository

import (
	"context"
	"time"

	"photobook/internal/domain"

	"gorm.io/gorm"
)

type AgreementRepository struct {
	db *gorm.DB
}

func NewAgreementRepository(db *gorm.DB) *AgreementRepository {
	return &AgreementRepository{db: db}
}

// AgreementWithCounterpart is an agreement joined with the other party's
// name and email: the client's for photographer listings, the
// photographer's for client listings.
type AgreementWithCounterpart struct {
	Agreement        domain.Agreement `json:"agreement"`
	CounterpartName  string           `json:"counterpart_name"`
	CounterpartEmail string           `json:"counterpart_email"`
}

type agreementCounterpartRow struct {
	domain.Agreement `gorm:"embedded"`
	CounterpartName  string `gorm:"column:counterpart_name"`
	CounterpartEmail string `gorm:"column:counterpart_email"`
}

func (r *AgreementRepository) Create(ctx context.Context, a *domain.Agreement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AgreementRepository) GetByID(ctx context.Context, id int64) (*domain.Agreement, error) {
	var a domain.Agreement
	tx := r.db.WithContext(ctx).First(&a, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &a, nil
}

// Transition moves a pending agreement into a terminal status in one
// conditional statement. The WHERE clause carries the state guard, so two
// racing accept/reject calls resolve to exactly one winner: the loser
// matches zero rows and gets false back.
func (r *AgreementRepository) Transition(ctx context.Context, id int64, to domain.AgreementStatus, contactDetails string) (bool, error) {
	updates := map[string]any{
		"status":     string(to),
		"updated_at": time.Now(),
	}
	if to == domain.AgreementAccepted {
		updates["contact_details"] = contactDetails
	}

	tx := r.db.WithContext(ctx).
		Model(&domain.Agreement{}).
		Where("id = ? AND status = ?", id, string(domain.AgreementPending)).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// UpdateFieldsIfAccepted overwrites the given columns provided the
// agreement is still in the accepted state. Returns false when the state
// guard matched nothing.
func (r *AgreementRepository) UpdateFieldsIfAccepted(ctx context.Context, id int64, fields map[string]any) (bool, error) {
	updates := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	tx := r.db.WithContext(ctx).
		Model(&domain.Agreement{}).
		Where("id = ? AND status = ?", id, string(domain.AgreementAccepted)).
		Updates(updates)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// ListByPhotographer returns all agreements addressed to the photographer,
// every status included, with the client's contact info resolved.
func (r *AgreementRepository) ListByPhotographer(ctx context.Context, photographerID int64) ([]AgreementWithCounterpart, error) {
	return r.listWithCounterpart(ctx, "photographer_id", "client_id", photographerID)
}

// ListByClient returns all agreements created by the client, every status
// included, with the photographer's contact info resolved.
func (r *AgreementRepository) ListByClient(ctx context.Context, clientID int64) ([]AgreementWithCounterpart, error) {
	return r.listWithCounterpart(ctx, "client_id", "photographer_id", clientID)
}

func (r *AgreementRepository) listWithCounterpart(ctx context.Context, ownCol, otherCol string, userID int64) ([]AgreementWithCounterpart, error) {
	var rows []agreementCounterpartRow
	tx := r.db.WithContext(ctx).
		Table("agreements").
		Select("agreements.*, u.name AS counterpart_name, u.email AS counterpart_email").
		Joins("JOIN users u ON u.id = agreements."+otherCol).
		Where("agreements."+ownCol+" = ?", userID).
		Order("agreements.created_at DESC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]AgreementWithCounterpart, 0, len(rows))
	for _, row := range rows {
		out = append(out, AgreementWithCounterpart{
			Agreement:        row.Agreement,
			CounterpartName:  row.CounterpartName,
			CounterpartEmail: row.CounterpartEmail,
		})
	}
	return out, nil
}
