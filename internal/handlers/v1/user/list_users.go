package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListUsersInput is the Huma input for listing users.
type ListUsersInput struct{}

// ListUsersOutput is the Huma output for listing users: the bare array.
type ListUsersOutput struct {
	Body []User
}

// userLister is the interface for listing users.
type userLister interface {
	List(ctx context.Context) ([]service.User, error)
}

// ListUsersHandler handles GET /users.
type ListUsersHandler struct {
	UserService userLister
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(svc userLister) *ListUsersHandler {
	return &ListUsersHandler{UserService: svc}
}

// Register registers the list users endpoint with the Huma API.
func (h *ListUsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List users",
		Description: "Returns every user.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *ListUsersHandler) handle(ctx context.Context, _ *ListUsersInput) (*ListUsersOutput, error) {
	logData := logging.GetLogData(ctx)

	users, err := h.UserService.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	if logData != nil {
		logData.AddData("userCount", len(users))
	}

	resp := make([]User, len(users))
	for i, u := range users {
		resp[i] = userToAPI(&u)
	}
	return &ListUsersOutput{Body: resp}, nil
}
