package service

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// User represents a user in the service layer. The password hash never
// leaves storage through this type.
type User struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func userFromStorage(row *user.User) *User {
	return &User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
