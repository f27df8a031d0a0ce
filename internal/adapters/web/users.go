package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/core"
)

// listUsers handles GET /users (admin).
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	if users == nil {
		users = []core.User{}
	}

	type response struct {
		Users []core.User `json:"users"`
	}
	writeJSON(w, http.StatusOK, response{Users: users})
}

// createUser handles POST /users (admin). Unlike public registration this
// path accepts isAdmin, so admins can mint other admins.
// Body: { username, password, firstName, lastName, email, isAdmin? }
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var input core.RegisterInput
	if !decodeJSON(w, r, &input) {
		return
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"username", input.Username},
		{"password", input.Password},
		{"firstName", input.FirstName},
		{"lastName", input.LastName},
		{"email", input.Email},
	} {
		if f.value == "" {
			missing = append(missing, f.name+" is required")
		}
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, missing)
		return
	}

	user, err := h.users.Register(r.Context(), input)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	signed, err := h.tokens.Generate(user.Username, user.IsAdmin)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		User  *core.User `json:"user"`
		Token string     `json:"token"`
	}
	writeJSON(w, http.StatusCreated, response{User: user, Token: signed})
}

// getUser handles GET /users/{username} (admin or self).
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		User *core.User `json:"user"`
	}
	writeJSON(w, http.StatusOK, response{User: user})
}

// updateUser handles PATCH /users/{username} (admin or self).
// Body: any subset of { firstName, lastName, email, password, isAdmin }
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var patch core.UserUpdate
	if !decodeJSON(w, r, &patch) {
		return
	}

	// Only admins may grant or revoke admin status; a user editing their
	// own profile cannot escalate.
	if patch.IsAdmin != nil {
		claims := claimsFromContext(r.Context())
		if claims == nil || !claims.IsAdmin {
			writeError(w, http.StatusUnauthorized, "Unauthorized: cannot change admin status")
			return
		}
	}

	user, err := h.users.Update(r.Context(), chi.URLParam(r, "username"), patch)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		User *core.User `json:"user"`
	}
	writeJSON(w, http.StatusOK, response{User: user})
}

// deleteUser handles DELETE /users/{username} (admin or self).
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := h.users.Remove(r.Context(), username); err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Deleted string `json:"deleted"`
	}
	writeJSON(w, http.StatusOK, response{Deleted: username})
}

// applyToJob handles POST /users/{username}/jobs/{id} (admin or self).
// Body: { status? }, optional; the status defaults to applied.
func (h *Handler) applyToJob(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	id, ok := jobIDParam(w, r)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	// Best-effort decode; an absent or empty body means the default status.
	_ = json.NewDecoder(r.Body).Decode(&body)

	if err := h.users.ApplyToJob(r.Context(), username, id, core.ApplicationStatus(body.Status)); err != nil {
		writeAppError(w, r, err)
		return
	}

	type response struct {
		Applied int `json:"applied"`
	}
	writeJSON(w, http.StatusCreated, response{Applied: id})
}
