package profile

import (
	"context"

	"photobook/internal/domain"
	"photobook/internal/repository"
)

type ProfileRepository interface {
	ListByOwnerStatus(ctx context.Context, status domain.VerificationStatus) ([]repository.ProfileWithOwner, error)
}

// PortfolioChecker reports whether a stored portfolio path still resolves
// to a file on disk. Listings drop paths that do not.
type PortfolioChecker interface {
	Exists(relPath string) bool
}
