package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// GetUserInput is the Huma input for fetching one user.
type GetUserInput struct {
	ID int64 `path:"id" doc:"User ID"`
}

// GetUserOutput is the Huma output for fetching one user: the bare record.
type GetUserOutput struct {
	Body User
}

// userGetter is the interface for fetching a user by ID.
type userGetter interface {
	Get(ctx context.Context, id int64) (*service.User, error)
}

// GetUserHandler handles GET /users/{id}.
type GetUserHandler struct {
	UserService userGetter
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(svc userGetter) *GetUserHandler {
	return &GetUserHandler{UserService: svc}
}

// Register registers the get user endpoint with the Huma API.
func (h *GetUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
		Summary:     "Get user",
		Description: "Returns the user with the given ID.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *GetUserHandler) handle(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	user, err := h.UserService.Get(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}
	return &GetUserOutput{Body: userToAPI(user)}, nil
}
