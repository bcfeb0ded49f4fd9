package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// DeleteUserInput is the Huma input for deleting a user.
type DeleteUserInput struct {
	ID int64 `path:"id" doc:"User ID"`
}

// DeleteUserResponse is the success body for deleting a user.
type DeleteUserResponse struct {
	Status  bool   `json:"status" doc:"Outcome flag"`
	Message string `json:"message" doc:"Human readable outcome"`
}

// DeleteUserOutput is the Huma output for deleting a user.
type DeleteUserOutput struct {
	Body DeleteUserResponse
}

// userDeleter is the interface for deleting a user.
type userDeleter interface {
	Delete(ctx context.Context, id int64) error
}

// DeleteUserHandler handles DELETE /users/{id}.
type DeleteUserHandler struct {
	UserService userDeleter
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(svc userDeleter) *DeleteUserHandler {
	return &DeleteUserHandler{UserService: svc}
}

// Register registers the delete user endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodDelete,
		Path:        "/users/{id}",
		Summary:     "Delete user",
		Description: "Deletes the user along with owned transactions and tokens.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	if err := h.UserService.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &DeleteUserOutput{
		Body: DeleteUserResponse{
			Status:  true,
			Message: "User deleted successfully",
		},
	}, nil
}
