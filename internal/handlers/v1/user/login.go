package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// LoginBody is the request body for login.
type LoginBody struct {
	Email    string `json:"email,omitempty" doc:"Email address"`
	Password string `json:"password,omitempty" doc:"Password"`

	_ struct{} `json:"-" additionalProperties:"true"`
}

// LoginInput is the Huma input for login.
type LoginInput struct {
	Body LoginBody
}

// LoginResponse is the success body for login.
type LoginResponse struct {
	Status  bool   `json:"status" doc:"Outcome flag"`
	Message string `json:"message" doc:"Human readable outcome"`
	User    User   `json:"user" doc:"The authenticated user"`
	Token   string `json:"token" doc:"Freshly issued bearer token"`
}

// LoginOutput is the Huma output for login.
type LoginOutput struct {
	Body LoginResponse
}

// userAuthenticator is the interface for credential login.
type userAuthenticator interface {
	Login(ctx context.Context, email, password string) (*service.User, string, error)
}

// LoginHandler handles POST /users/login.
type LoginHandler struct {
	AuthService userAuthenticator
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc userAuthenticator) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login-user",
		Method:      http.MethodPost,
		Path:        "/users/login",
		Summary:     "Login",
		Description: "Verifies credentials, revokes prior tokens, and issues a new one.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, token, err := h.AuthService.Login(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, mapError(err)
	}

	return &LoginOutput{
		Body: LoginResponse{
			Status:  true,
			Message: "Login successful",
			User:    userToAPI(user),
			Token:   token,
		},
	}, nil
}
