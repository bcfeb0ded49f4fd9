package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// RegisterUserBody is the request body for registration. Field rules are
// enforced by the service's rule sets, not by schema tags, so failures come
// back as per-field validation messages.
type RegisterUserBody struct {
	Name     string `json:"name,omitempty" doc:"Display name"`
	Email    string `json:"email,omitempty" doc:"Email address, unique"`
	Password string `json:"password,omitempty" doc:"Password, at least 6 characters"`

	_ struct{} `json:"-" additionalProperties:"true"`
}

// RegisterUserInput is the Huma input for registration.
type RegisterUserInput struct {
	Body RegisterUserBody
}

// RegisterUserResponse is the success body for registration.
type RegisterUserResponse struct {
	Status  bool   `json:"status" doc:"Outcome flag"`
	Message string `json:"message" doc:"Human readable outcome"`
	Token   string `json:"token" doc:"Bearer token for the new user"`
}

// RegisterUserOutput is the Huma output for registration.
type RegisterUserOutput struct {
	Status int
	Body   RegisterUserResponse
}

// userRegistrar is the interface for registering users.
type userRegistrar interface {
	Register(ctx context.Context, name, email, password string) (*service.User, string, error)
}

// RegisterUserHandler handles POST /users/register.
type RegisterUserHandler struct {
	AuthService userRegistrar
}

// NewRegisterUserHandler creates a new RegisterUserHandler.
func NewRegisterUserHandler(svc userRegistrar) *RegisterUserHandler {
	return &RegisterUserHandler{AuthService: svc}
}

// Register registers the registration endpoint with the Huma API.
func (h *RegisterUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register-user",
		Method:        http.MethodPost,
		Path:          "/users/register",
		Summary:       "Register user",
		Description:   "Creates a user and issues a bearer token.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterUserHandler) handle(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	_, token, err := h.AuthService.Register(ctx, input.Body.Name, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, mapError(err)
	}

	return &RegisterUserOutput{
		Status: http.StatusCreated,
		Body: RegisterUserResponse{
			Status:  true,
			Message: "User Created Successfully",
			Token:   token,
		},
	}, nil
}
