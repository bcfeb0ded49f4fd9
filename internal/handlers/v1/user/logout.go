package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/apierror"
	"github.com/carson-networks/finance-tracker/internal/identity"
)

// LogoutInput is the Huma input for logout.
type LogoutInput struct{}

// LogoutResponse is the success body for logout.
type LogoutResponse struct {
	Status  bool   `json:"status" doc:"Outcome flag"`
	Message string `json:"message" doc:"Human readable outcome"`
}

// LogoutOutput is the Huma output for logout.
type LogoutOutput struct {
	Body LogoutResponse
}

// sessionRevoker is the interface for revoking a user's tokens.
type sessionRevoker interface {
	Logout(ctx context.Context, userID int64) error
}

// LogoutHandler handles POST /users/logout.
type LogoutHandler struct {
	AuthService sessionRevoker
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(svc sessionRevoker) *LogoutHandler {
	return &LogoutHandler{AuthService: svc}
}

// Register registers the logout endpoint with the Huma API.
func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "logout-user",
		Method:      http.MethodPost,
		Path:        "/users/logout",
		Summary:     "Logout",
		Description: "Revokes every token belonging to the authenticated user.",
		Tags:        []string{"Users"},
		Security:    []map[string][]string{{"bearer": {}}},
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, _ *LogoutInput) (*LogoutOutput, error) {
	caller := identity.FromContext(ctx)
	if caller == nil {
		return nil, apierror.Unauthenticated("User not authenticated")
	}

	if err := h.AuthService.Logout(ctx, caller.ID); err != nil {
		return nil, mapError(err)
	}

	return &LogoutOutput{
		Body: LogoutResponse{
			Status:  true,
			Message: "Logout successful",
		},
	}, nil
}
