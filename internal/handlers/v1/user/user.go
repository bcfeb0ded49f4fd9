package user

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/apierror"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// User is the API response model for a user. The password hash is never
// serialized.
type User struct {
	ID        int64  `json:"id" doc:"User ID"`
	Name      string `json:"name" doc:"Display name"`
	Email     string `json:"email" doc:"Email address"`
	Role      string `json:"role" doc:"Role within the application"`
	CreatedAt string `json:"created_at" doc:"RFC3339 creation time"`
	UpdatedAt string `json:"updated_at" doc:"RFC3339 last update time"`
}

func userToAPI(u *service.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

// mapError converts service errors into the API envelopes for user
// endpoints.
func mapError(err error) error {
	switch e := err.(type) {
	case *service.ValidationError:
		return apierror.Validation(e.Errors)
	case *service.NotFoundError:
		return apierror.NotFound("User not found")
	case *service.AuthError:
		return apierror.Unauthenticated(e.Message)
	default:
		return apierror.Internal("Internal server error")
	}
}
