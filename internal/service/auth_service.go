package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/finance-tracker/internal/identity"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/validation"
)

// AuthService handles registration, credential checks, and token lifecycle.
// Tokens are issued as "<id>|<secret>"; only the SHA-256 digest of the secret
// is stored.
type AuthService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Storage, processor ActionProcessor) *AuthService {
	return &AuthService{storage: store, processor: processor}
}

// Register creates a user with a hashed password and issues its first token.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*User, string, error) {
	errs := validation.UserRegister.Validate(map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})

	if _, taken := errs["email"]; !taken && email != "" {
		inUse, err := s.storage.Users.EmailInUse(ctx, email)
		if err != nil {
			return nil, "", err
		}
		if inUse {
			validation.UniqueTaken(errs, "email")
		}
	}

	if errs.Any() {
		return nil, "", &ValidationError{Errors: errs}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	secret, digest, err := newTokenSecret()
	if err != nil {
		return nil, "", err
	}

	action := &actions.RegisterUser{
		Name:           name,
		Email:          email,
		HashedPassword: string(hashed),
		TokenDigest:    digest,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, "", err
	}

	return userFromStorage(action.User), plaintextToken(action.TokenID, secret), nil
}

// Login verifies credentials, revokes all prior tokens, and issues a new one.
func (s *AuthService) Login(ctx context.Context, email, password string) (*User, string, error) {
	errs := validation.UserLogin.Validate(map[string]string{
		"email":    email,
		"password": password,
	})
	if errs.Any() {
		return nil, "", &ValidationError{Errors: errs}
	}

	row, err := s.storage.Users.FindByEmail(ctx, email)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, "", &AuthError{Message: "Invalid credentials"}
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(row.Password), []byte(password)) != nil {
		return nil, "", &AuthError{Message: "Invalid credentials"}
	}

	secret, digest, err := newTokenSecret()
	if err != nil {
		return nil, "", err
	}

	action := &actions.LoginUser{
		UserID:      row.ID,
		TokenDigest: digest,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, "", err
	}

	return userFromStorage(row), plaintextToken(action.TokenID, secret), nil
}

// Logout revokes every token belonging to the authenticated caller.
func (s *AuthService) Logout(ctx context.Context, userID int64) error {
	return s.processor.Process(ctx, &actions.LogoutUser{UserID: userID})
}

// Authenticate resolves a bearer token to its owning user. Any malformed,
// unknown, or revoked token yields an AuthError.
func (s *AuthService) Authenticate(ctx context.Context, plaintext string) (*identity.User, error) {
	tokenID, secret, ok := splitToken(plaintext)
	if !ok {
		return nil, &AuthError{Message: "User not authenticated"}
	}

	row, err := s.storage.Tokens.FindByID(ctx, tokenID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, &AuthError{Message: "User not authenticated"}
		}
		return nil, err
	}

	digest := digestOf(secret)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(row.Token)) != 1 {
		return nil, &AuthError{Message: "User not authenticated"}
	}

	owner, err := s.storage.Users.FindByID(ctx, row.UserID)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, &AuthError{Message: "User not authenticated"}
		}
		return nil, err
	}

	return &identity.User{
		ID:    owner.ID,
		Name:  owner.Name,
		Email: owner.Email,
		Role:  owner.Role,
	}, nil
}

func newTokenSecret() (secret, digest string, err error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", "", err
	}
	secret = hex.EncodeToString(id.Bytes())
	return secret, digestOf(secret), nil
}

func digestOf(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func plaintextToken(tokenID int64, secret string) string {
	return strconv.FormatInt(tokenID, 10) + "|" + secret
}

func splitToken(plaintext string) (int64, string, bool) {
	idPart, secret, found := strings.Cut(plaintext, "|")
	if !found || secret == "" {
		return 0, "", false
	}
	tokenID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		return 0, "", false
	}
	return tokenID, secret, true
}
