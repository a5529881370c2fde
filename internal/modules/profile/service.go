package profile

import (
	"context"

	"photobook/internal/domain"
)

type Service struct {
	profiles  ProfileRepository
	portfolio PortfolioChecker
}

func NewService(profiles ProfileRepository, portfolio PortfolioChecker) *Service {
	return &Service{profiles: profiles, portfolio: portfolio}
}

// ListApproved returns the profiles of approved photographers. Portfolio
// entries whose file has gone missing are filtered out rather than served
// as dead links.
func (s *Service) ListApproved(ctx context.Context) ([]ProfileView, error) {
	rows, err := s.profiles.ListByOwnerStatus(ctx, domain.VerificationApproved)
	if err != nil {
		return nil, err
	}

	out := make([]ProfileView, 0, len(rows))
	for _, row := range rows {
		p := row.Profile
		if s.portfolio != nil {
			kept := make([]string, 0, len(p.Portfolio))
			for _, path := range p.Portfolio {
				if s.portfolio.Exists(path) {
					kept = append(kept, path)
				}
			}
			p.Portfolio = kept
		}
		out = append(out, ProfileView{
			Profile:    p,
			OwnerName:  row.OwnerName,
			OwnerEmail: row.OwnerEmail,
		})
	}
	return out, nil
}
