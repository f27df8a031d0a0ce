package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/auth"
	"jobboard/internal/core"
)

// Handler wires the chi router over the company, job, and user services.
type Handler struct {
	companies core.CompanyService
	jobs      core.JobService
	users     core.UserService
	tokens    *auth.TokenService
	router    chi.Router
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(companies core.CompanyService, jobs core.JobService, users core.UserService, tokens *auth.TokenService, allowedOrigins string) http.Handler {
	h := &Handler{
		companies: companies,
		jobs:      jobs,
		users:     users,
		tokens:    tokens,
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB; every payload here is small JSON

	// ── Health (public) ───────────────────────────────────────────────────────
	r.Get("/health", h.health)

	// ── Auth (public) ─────────────────────────────────────────────────────────
	r.Post("/auth/token", h.login)
	r.Post("/auth/register", h.register)

	// ── Public reads ──────────────────────────────────────────────────────────
	r.Get("/companies", h.listCompanies)
	r.Get("/companies/{handle}", h.getCompany)
	r.Get("/jobs", h.listJobs)
	r.Get("/jobs/{id}", h.getJob)

	// ── Admin-only mutations ──────────────────────────────────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth, h.RequireAdmin)
		r.Post("/companies", h.createCompany)
		r.Patch("/companies/{handle}", h.updateCompany)
		r.Delete("/companies/{handle}", h.deleteCompany)
		r.Post("/jobs", h.createJob)
		r.Patch("/jobs/{id}", h.updateJob)
		r.Delete("/jobs/{id}", h.deleteJob)
		r.Get("/users", h.listUsers)
		r.Post("/users", h.createUser)
	})

	// ── Per-user routes (the user themselves, or an admin) ────────────────────
	r.Group(func(r chi.Router) {
		r.Use(h.RequireAuth, h.RequireAdminOrSelf("username"))
		r.Get("/users/{username}", h.getUser)
		r.Patch("/users/{username}", h.updateUser)
		r.Delete("/users/{username}", h.deleteUser)
		r.Post("/users/{username}/jobs/{id}", h.applyToJob)
	})

	h.router = r
	return r
}

// health reports service liveness.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, http.StatusOK, response{Status: "ok"})
}

// decodeJSON decodes the request body into v and returns false + writes an appropriate
// error response on failure. Returns HTTP 413 when the body exceeds the size limit set
// by RequestBodyLimit middleware; HTTP 400 for all other decode errors.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// queryInt parses an optional integer query parameter. Writes a 400 and
// returns ok=false when the value is present but not an integer.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be an integer")
		return nil, false
	}
	return &n, true
}

// jobIDParam parses the {id} URL parameter. Writes a 400 and returns
// ok=false when it is not an integer.
func jobIDParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "job id must be an integer")
		return 0, false
	}
	return id, true
}
