package admin

import (
	"context"
	"errors"
	"log"

	"photobook/internal/domain"
	jwtsvc "photobook/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	admins   AdminRepository
	users    UserRepository
	profiles ProfileRepository
	jwt      jwtService
}

func NewService(admins AdminRepository, users UserRepository, profiles ProfileRepository, jwt jwtService) *Service {
	return &Service{
		admins:   admins,
		users:    users,
		profiles: profiles,
		jwt:      jwt,
	}
}

// EnsureDefaultAdmin seeds the configured back-office account if it does
// not exist yet. Runs once at process start; calling it again is a no-op.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, email, password string) error {
	exists, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		log.Println("Admin already exists")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.admins.Create(ctx, &domain.Admin{
		Email:        email,
		PasswordHash: string(hash),
	}); err != nil {
		return err
	}

	log.Println("Admin created:", email)
	return nil
}

// Login checks back-office credentials and issues an admin-scoped token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(admin.ID, jwtsvc.RoleAdmin)
}

// PendingProfiles lists the profiles of photographers still waiting for
// approval, with the owner's name and email resolved.
func (s *Service) PendingProfiles(ctx context.Context) ([]PendingProfileView, error) {
	rows, err := s.profiles.ListByOwnerStatus(ctx, domain.VerificationPending)
	if err != nil {
		return nil, err
	}

	out := make([]PendingProfileView, 0, len(rows))
	for _, row := range rows {
		out = append(out, PendingProfileView{
			Profile:    row.Profile,
			OwnerName:  row.OwnerName,
			OwnerEmail: row.OwnerEmail,
		})
	}
	return out, nil
}

// ApproveProfile flips the profile owner's verification status to
// approved.
func (s *Service) ApproveProfile(ctx context.Context, profileID int64) error {
	return s.setOwnerStatus(ctx, profileID, domain.VerificationApproved)
}

// RejectProfile flips the profile owner's verification status to
// rejected.
func (s *Service) RejectProfile(ctx context.Context, profileID int64) error {
	return s.setOwnerStatus(ctx, profileID, domain.VerificationRejected)
}

func (s *Service) setOwnerStatus(ctx context.Context, profileID int64, status domain.VerificationStatus) error {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.users.UpdateVerificationStatus(ctx, profile.UserID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
