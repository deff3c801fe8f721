package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hangerline/hangerline-backend-go/internal/domain/auth"
	"github.com/hangerline/hangerline-backend-go/internal/handler/http/response"
	"github.com/hangerline/hangerline-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a valid access token. Run after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		_, _, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		if _, ok := jwt.ClaimsFromContext(r.Context()); !ok {
			response.Unauthorized(w, auth.ErrInvalidToken.Error())
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}

// StaffOnly lets through staff users only. Run after AuthRequired.
func StaffOnly(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		claims, ok := jwt.ClaimsFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, auth.ErrInvalidToken.Error())
			return
		}
		if !claims.IsStaff {
			response.HandleError(w, auth.ErrStaffRequired)
			return
		}

		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
