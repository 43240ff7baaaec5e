package service

import (
	"context"
	"strings"
	"sync"

	"rentacar-crm/internal/domain"
	"rentacar-crm/internal/logger"
	"rentacar-crm/internal/repository"
)

type companyService struct {
	api repository.CompanyAPI

	mu        sync.Mutex
	companies []domain.RentalCompany
	loaded    bool
}

func NewCompanyService(api repository.CompanyAPI) CompanyService {
	return &companyService{api: api}
}

// ListCompanies returns the company registry, fetching it on first use and
// serving the cached copy afterwards. The registry is read-shared by every
// booking form.
func (s *companyService) ListCompanies(ctx context.Context) ([]domain.RentalCompany, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}
	out := make([]domain.RentalCompany, len(s.companies))
	copy(out, s.companies)
	return out, nil
}

// EnsureCompany makes sure a company with the given name exists, creating it
// when the registry has never seen it. This is phase one of a two-phase save:
// if the booking save that follows fails, the company is NOT rolled back.
func (s *companyService) EnsureCompany(ctx context.Context, name string) (*domain.RentalCompany, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, domain.NewValidationError("name", "rental company name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loadLocked(ctx); err != nil {
		return nil, err
	}

	for i := range s.companies {
		if strings.EqualFold(s.companies[i].Name, trimmed) {
			return &s.companies[i], nil
		}
	}

	created, err := s.api.CreateCompany(ctx, trimmed)
	if err != nil {
		return nil, err
	}
	s.companies = append(s.companies, *created)
	logger.Info("Rental company created", "name", created.Name, "company_id", created.ID)
	return created, nil
}

func (s *companyService) loadLocked(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	companies, err := s.api.ListCompanies(ctx)
	if err != nil {
		return err
	}
	s.companies = companies
	s.loaded = true
	return nil
}
