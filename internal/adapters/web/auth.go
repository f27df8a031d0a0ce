package web

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"jobboard/internal/auth"
	"jobboard/internal/core"
)

type authClaimsKey struct{}

// claimsFromContext returns the verified token claims stored in ctx, or nil.
func claimsFromContext(ctx context.Context) *auth.Claims {
	v, _ := ctx.Value(authClaimsKey{}).(*auth.Claims)
	return v
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// RequireAuth is chi middleware that validates the bearer token and injects
// its claims into the request context. Returns 401 if the token is absent
// or invalid.
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := h.tokens.Validate(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), authClaimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin allows only admin tokens through. Runs after RequireAuth.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromContext(r.Context())
		if claims == nil || !claims.IsAdmin {
			writeError(w, http.StatusUnauthorized, "Admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdminOrSelf allows admins and the user named by the URL parameter.
// Runs after RequireAuth.
func (h *Handler) RequireAdminOrSelf(param string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := claimsFromContext(r.Context())
			if claims == nil || (!claims.IsAdmin && claims.Username != chi.URLParam(r, param)) {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// login handles POST /auth/token.
// Body: { username, password }
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	var missing []string
	if req.Username == "" {
		missing = append(missing, "username is required")
	}
	if req.Password == "" {
		missing = append(missing, "password is required")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, missing)
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	h.writeToken(w, r, http.StatusOK, user)
}

// register handles POST /auth/register. Public registration never grants
// admin; POST /users (admin only) is the path that can.
// Body: { username, password, firstName, lastName, email }
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username  string `json:"username"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"username", req.Username},
		{"password", req.Password},
		{"firstName", req.FirstName},
		{"lastName", req.LastName},
		{"email", req.Email},
	} {
		if f.value == "" {
			missing = append(missing, f.name+" is required")
		}
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, missing)
		return
	}

	user, err := h.users.Register(r.Context(), core.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}

	h.writeToken(w, r, http.StatusCreated, user)
}

// writeToken signs a token for user and writes the { token } response.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, status int, user *core.User) {
	signed, err := h.tokens.Generate(user.Username, user.IsAdmin)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, status, tokenResponse{Token: signed})
}
