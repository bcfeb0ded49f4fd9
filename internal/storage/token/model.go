package token

import (
	"context"
	"time"
)

// AccessToken represents a row in the access_tokens table. Token holds the
// SHA-256 hex digest of the secret half, never the plaintext handed out.
type AccessToken struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Token     string    `db:"token"`
	CreatedAt time.Time `db:"created_at"`
}

// ITokenTable defines the read-side interface for token storage operations.
type ITokenTable interface {
	FindByID(ctx context.Context, id int64) (*AccessToken, error)
}

// ITokenWriter defines the write-side interface for token storage operations.
type ITokenWriter interface {
	Insert(ctx context.Context, userID int64, digest string) (int64, error)
	DeleteForUser(ctx context.Context, userID int64) error
}
