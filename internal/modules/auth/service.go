package auth

import (
	"context"
	"errors"
	"strings"

	"photobook/internal/domain"
	validate "photobook/internal/pkg/validator"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for registration and login.
type Service struct {
	users UserRepositoryInterface
	jwt   jwtService
}

func NewService(users UserRepositoryInterface, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates a user account. A photographer additionally gets a
// profile row, created in the same transaction so a failed profile write
// never leaves an orphaned account behind.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	if errs := validate.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	if err := s.validateEmailUnique(ctx, req.Email); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:               strings.TrimSpace(req.Name),
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:       hashedPassword,
		Role:               req.Role,
		VerificationStatus: domain.InitialVerificationStatus(req.Role),
	}

	if req.Role != domain.RolePhotographer {
		if err := s.users.Create(ctx, user); err != nil {
			if isUniqueViolation(err) {
				return nil, ErrEmailAlreadyExists
			}
			return nil, err
		}
		user.PasswordHash = ""
		return user, nil
	}

	tx := s.users.DB().WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(user).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	portfolio := req.Portfolio
	if portfolio == nil {
		portfolio = []string{}
	}
	specializations := req.Specializations
	if specializations == nil {
		specializations = []string{}
	}

	profile := &domain.Profile{
		UserID:          user.ID,
		Portfolio:       portfolio,
		Pricing:         req.Pricing,
		Specializations: specializations,
		Location:        strings.TrimSpace(req.Location),
		ExperienceYears: req.ExperienceYears,
		Bio:             req.Bio,
	}

	if err := tx.Create(profile).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Login checks credentials and issues an access token. Photographers who
// have not been approved yet cannot log in.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if user.Role == domain.RolePhotographer && user.VerificationStatus != domain.VerificationApproved {
		return nil, "", ErrVerificationPending
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

func (s *Service) GetCurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) validateEmailUnique(ctx context.Context, email string) error {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return ErrEmailAlreadyExists
	}
	return nil
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// isUniqueViolation covers both backends: pgconn error code 23505 on
// Postgres, and the constraint message SQLite produces.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
