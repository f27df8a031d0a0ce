package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/core"
)

// listCompanies handles GET /companies.
// Query: minEmployees?, maxEmployees?, name?
func (h *Handler) listCompanies(w http.ResponseWriter, r *http.Request) {
	var filter core.CompanyFilter
	var ok bool
	if filter.MinEmployees, ok = queryInt(w, r, "minEmployees"); !ok {
		return
	}
	if filter.MaxEmployees, ok = queryInt(w, r, "maxEmployees"); !ok {
		return
	}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}

	companies, err := h.companies.FindAll(r.Context(), filter)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if companies == nil {
		companies = []core.Company{}
	}

	type response struct {
		Companies []core.Company `json:"companies"`
	}
	writeJSON(w, http.StatusOK, response{Companies: companies})
}

// getCompany handles GET /companies/{handle}.
func (h *Handler) getCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.companies.Get(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Company *core.Company `json:"company"`
	}
	writeJSON(w, http.StatusOK, response{Company: company})
}

// createCompany handles POST /companies (admin).
// Body: { handle, name, description?, numEmployees?, logoUrl? }
func (h *Handler) createCompany(w http.ResponseWriter, r *http.Request) {
	var input core.CompanyInput
	if !decodeJSON(w, r, &input) {
		return
	}

	var missing []string
	if input.Handle == "" {
		missing = append(missing, "handle is required")
	}
	if input.Name == "" {
		missing = append(missing, "name is required")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, missing)
		return
	}

	company, err := h.companies.Create(r.Context(), input)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Company *core.Company `json:"company"`
	}
	writeJSON(w, http.StatusCreated, response{Company: company})
}

// updateCompany handles PATCH /companies/{handle} (admin).
// Body: any subset of { name, description, numEmployees, logoUrl }
func (h *Handler) updateCompany(w http.ResponseWriter, r *http.Request) {
	var patch core.CompanyUpdate
	if !decodeJSON(w, r, &patch) {
		return
	}

	company, err := h.companies.Update(r.Context(), chi.URLParam(r, "handle"), patch)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Company *core.Company `json:"company"`
	}
	writeJSON(w, http.StatusOK, response{Company: company})
}

// deleteCompany handles DELETE /companies/{handle} (admin).
func (h *Handler) deleteCompany(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "handle")
	if err := h.companies.Remove(r.Context(), handle); err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Deleted string `json:"deleted"`
	}
	writeJSON(w, http.StatusOK, response{Deleted: handle})
}
