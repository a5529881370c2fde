package repository

import (
	"context"
	"encoding/json"

	"photobook/internal/domain"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// ProfileWithOwner is a profile joined with its owning user's public
// contact fields, for listing endpoints.
type ProfileWithOwner struct {
	Profile    domain.Profile `json:"profile"`
	OwnerName  string         `json:"owner_name"`
	OwnerEmail string         `json:"owner_email"`
}

// profileOwnerRow is the flat scan target for the profiles/users join.
type profileOwnerRow struct {
	ID              int64   `gorm:"column:id"`
	UserID          int64   `gorm:"column:user_id"`
	Portfolio       string  `gorm:"column:portfolio"`
	Pricing         string  `gorm:"column:pricing"`
	Specializations string  `gorm:"column:specializations"`
	Location        string  `gorm:"column:location"`
	ExperienceYears int     `gorm:"column:experience_years"`
	Bio             string  `gorm:"column:bio"`
	Rating          float64 `gorm:"column:rating"`
	OwnerName       string  `gorm:"column:owner_name"`
	OwnerEmail      string  `gorm:"column:owner_email"`
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	var p domain.Profile
	tx := r.db.WithContext(ctx).First(&p, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	var p domain.Profile
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &p, nil
}

// ListByOwnerStatus returns photographer profiles whose owning user has
// the given verification status, joined with the owner's name and email.
func (r *ProfileRepository) ListByOwnerStatus(ctx context.Context, status domain.VerificationStatus) ([]ProfileWithOwner, error) {
	var rows []profileOwnerRow
	tx := r.db.WithContext(ctx).
		Table("profiles").
		Select("profiles.*, u.name AS owner_name, u.email AS owner_email").
		Joins("JOIN users u ON u.id = profiles.user_id").
		Where("u.role = ? AND u.verification_status = ?", string(domain.RolePhotographer), string(status)).
		Order("profiles.created_at DESC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]ProfileWithOwner, 0, len(rows))
	for _, row := range rows {
		p := domain.Profile{
			ID:              row.ID,
			UserID:          row.UserID,
			Location:        row.Location,
			ExperienceYears: row.ExperienceYears,
			Bio:             row.Bio,
			Rating:          row.Rating,
		}
		// JSON columns come back raw on a manual Scan.
		_ = json.Unmarshal([]byte(row.Portfolio), &p.Portfolio)
		_ = json.Unmarshal([]byte(row.Pricing), &p.Pricing)
		_ = json.Unmarshal([]byte(row.Specializations), &p.Specializations)

		out = append(out, ProfileWithOwner{
			Profile:    p,
			OwnerName:  row.OwnerName,
			OwnerEmail: row.OwnerEmail,
		})
	}
	return out, nil
}

// DB exposes the underlying handle for multi-record transactions.
func (r *ProfileRepository) DB() *gorm.DB { return r.db }
