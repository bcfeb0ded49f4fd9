package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateUserBody is the request body for a profile update. Only name and
// email are updatable.
type UpdateUserBody struct {
	Name  string `json:"name,omitempty" doc:"Display name"`
	Email string `json:"email,omitempty" doc:"Email address, unique"`

	_ struct{} `json:"-" additionalProperties:"true"`
}

// UpdateUserInput is the Huma input for updating a user.
type UpdateUserInput struct {
	ID   int64 `path:"id" doc:"User ID"`
	Body UpdateUserBody
}

// UpdateUserOutput is the Huma output for updating a user: the bare record.
type UpdateUserOutput struct {
	Body User
}

// userUpdater is the interface for updating a user.
type userUpdater interface {
	Update(ctx context.Context, id int64, name, email string) (*service.User, error)
}

// UpdateUserHandler handles PUT /users/{id}.
type UpdateUserHandler struct {
	UserService userUpdater
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(svc userUpdater) *UpdateUserHandler {
	return &UpdateUserHandler{UserService: svc}
}

// Register registers the update user endpoint with the Huma API.
func (h *UpdateUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPut,
		Path:        "/users/{id}",
		Summary:     "Update user",
		Description: "Updates the user's name and email.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *UpdateUserHandler) handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	user, err := h.UserService.Update(ctx, input.ID, input.Body.Name, input.Body.Email)
	if err != nil {
		return nil, mapError(err)
	}
	return &UpdateUserOutput{Body: userToAPI(user)}, nil
}
