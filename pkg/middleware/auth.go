package middleware

import (
	"net/http"
	"strings"

	"github.com/alekscortez/ff-reservations-sub000/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Claims carried by the staff/public bearer token. Identity resolution is an
// external collaborator; this middleware only extracts the actor label and
// privilege flag the core consumes.
type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

// Auth middleware untuk validasi bearer JWT
func Auth(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims := &Claims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			if claims.Subject == "" {
				utils.ResponseUnauthorized(w, "Token missing subject")
				return
			}

			ctx := utils.SetActorContext(r.Context(), claims.Subject, claims.Admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin middleware requires the privilege flag on top of Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !utils.IsAdminFromContext(r.Context()) {
				actor, _ := utils.GetActorFromContext(r.Context())
				logger.Warn("Admin access denied", zap.String("actor", actor))
				utils.ResponseForbidden(w, "Admin privileges required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
