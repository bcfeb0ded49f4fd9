package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/identity"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// tokenResolver resolves a bearer token to the owning user.
type tokenResolver interface {
	Authenticate(ctx context.Context, token string) (*identity.User, error)
}

// AuthMiddleware verifies the Authorization header on every request. When a
// valid token is present, the caller's identity is stored request-scoped.
// Operations declaring the "bearer" security requirement are rejected with
// 401 when no identity could be established. A rejected token only strips
// the identity; any other resolver failure means the lookup itself broke
// and surfaces as 500.
func AuthMiddleware(api huma.API, resolver tokenResolver) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if token, ok := bearerToken(ctx.Header("Authorization")); ok {
			caller, err := resolver.Authenticate(ctx.Context(), token)
			switch {
			case err == nil:
				ctx = huma.WithContext(ctx, identity.WithUser(ctx.Context(), caller))
			case !isAuthError(err):
				huma.WriteErr(api, ctx, http.StatusInternalServerError, "Internal server error")
				return
			}
		}

		if requiresBearer(ctx.Operation()) && identity.FromContext(ctx.Context()) == nil {
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "User not authenticated")
			return
		}

		next(ctx)
	}
}

func isAuthError(err error) bool {
	var authErr *service.AuthError
	return errors.As(err, &authErr)
}

func bearerToken(header string) (string, bool) {
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return "", false
	}
	return token, true
}

func requiresBearer(op *huma.Operation) bool {
	if op == nil {
		return false
	}
	for _, scheme := range op.Security {
		if _, ok := scheme["bearer"]; ok {
			return true
		}
	}
	return false
}
