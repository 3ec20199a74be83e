package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/helper"
	"github.com/hidayahapriliansyah/server-kulineran-yuk-sub002/models"
)

type contextKey string

const identityKey contextKey = "identity"

// Authentication requires a valid Bearer token for the given role and stores
// the resolved CallerIdentity in the request context.
func Authentication(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, appErr := identityFromHeader(r)
			if appErr != nil {
				writeUnauthenticated(w, appErr.Message)
				return
			}
			if identity.Role != role {
				writeUnauthenticated(w, "token role is not allowed for this resource")
				return
			}
			next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
		})
	}
}

// OptionalAuthentication resolves a CallerIdentity when a valid Bearer token
// is present and lets the request through anonymously otherwise.
func OptionalAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, appErr := identityFromHeader(r)
		if appErr == nil {
			r = r.WithContext(withIdentity(r.Context(), identity))
		}
		next.ServeHTTP(w, r)
	})
}

// IdentityFromRequest retrieves the caller identity stored by the middleware.
func IdentityFromRequest(r *http.Request) (*models.CallerIdentity, bool) {
	identity, ok := r.Context().Value(identityKey).(*models.CallerIdentity)
	return identity, ok
}

func withIdentity(ctx context.Context, identity *models.CallerIdentity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func identityFromHeader(r *http.Request) (*models.CallerIdentity, *helper.AppError) {
	clientToken := r.Header.Get("Authorization")
	if clientToken == "" {
		return nil, helper.NewUnauthenticated("no Authorization header provided")
	}

	tokenParts := strings.Split(clientToken, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, helper.NewUnauthenticated("invalid Authorization format")
	}

	claims, appErr := helper.ValidateToken(tokenParts[1])
	if appErr != nil {
		return nil, appErr
	}

	id, err := primitive.ObjectIDFromHex(claims.Uid)
	if err != nil {
		return nil, helper.NewUnauthenticated("token subject is not a valid id")
	}

	return &models.CallerIdentity{ID: id, Role: claims.Role}, nil
}

func writeUnauthenticated(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success": false, "message": "` + message + `"}`))
}
