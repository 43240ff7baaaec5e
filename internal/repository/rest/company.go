package rest

import (
	"context"
	"net/http"

	"rentacar-crm/internal/domain"
)

type companiesEnvelope struct {
	Success bool                   `json:"success"`
	Data    []domain.RentalCompany `json:"data"`
}

type companyEnvelope struct {
	Success bool                  `json:"success"`
	Data    *domain.RentalCompany `json:"data"`
}

type companyRequest struct {
	Name string `json:"name"`
}

// ListCompanies fetches the rental company registry.
func (c *Client) ListCompanies(ctx context.Context) ([]domain.RentalCompany, error) {
	var env companiesEnvelope
	if err := c.do(ctx, http.MethodGet, "/rental-companies", nil, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// CreateCompany registers a new rental company by name.
func (c *Client) CreateCompany(ctx context.Context, name string) (*domain.RentalCompany, error) {
	var env companyEnvelope
	if err := c.do(ctx, http.MethodPost, "/rental-companies", &companyRequest{Name: name}, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}
