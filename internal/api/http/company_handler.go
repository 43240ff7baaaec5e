package http

import (
	"net/http"

	"rentacar-crm/internal/service"
)

// CompanyHandler exposes the rental company registry.
type CompanyHandler struct {
	companySvc service.CompanyService
}

func NewCompanyHandler(companySvc service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc}
}

type ensureCompanyRequest struct {
	Name string `json:"name"`
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.companySvc.ListCompanies(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": companies})
}

// Ensure creates the named company when the registry has never seen it. This
// is an explicit step of the save flow: a company created here is not rolled
// back if the booking save that follows fails.
func (h *CompanyHandler) Ensure(w http.ResponseWriter, r *http.Request) {
	var req ensureCompanyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	company, err := h.companySvc.EnsureCompany(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": company})
}
