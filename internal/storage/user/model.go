package user

import (
	"context"
	"time"
)

// User represents a row in the users table.
type User struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Name     string
	Email    string
	Password string // already hashed by the caller
}

// IUserTable defines the read-side interface for user storage operations.
type IUserTable interface {
	List(ctx context.Context) ([]*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	EmailInUse(ctx context.Context, email string) (bool, error)
}

// IUserWriter defines the write-side interface for user storage operations.
type IUserWriter interface {
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Update(ctx context.Context, id int64, name, email string) (*User, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
