package service

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/validation"
)

// UserService handles user record business logic.
type UserService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, processor ActionProcessor) *UserService {
	return &UserService{storage: store, processor: processor}
}

// List returns every user, without pagination.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	rows, err := s.storage.Users.List(ctx)
	if err != nil {
		return nil, err
	}

	converted := make([]User, len(rows))
	for i, row := range rows {
		converted[i] = *userFromStorage(row)
	}
	return converted, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, id int64) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, &NotFoundError{Resource: "User"}
		}
		return nil, err
	}
	return userFromStorage(row), nil
}

// Update applies name and email to the user. Email uniqueness is checked
// against every row, the target included, so a same-value update is rejected
// as a duplicate.
func (s *UserService) Update(ctx context.Context, id int64, name, email string) (*User, error) {
	errs := validation.UserUpdate.Validate(map[string]string{
		"name":  name,
		"email": email,
	})

	if _, taken := errs["email"]; !taken && email != "" {
		inUse, err := s.storage.Users.EmailInUse(ctx, email)
		if err != nil {
			return nil, err
		}
		if inUse {
			validation.UniqueTaken(errs, "email")
		}
	}

	if errs.Any() {
		return nil, &ValidationError{Errors: errs}
	}

	action := &actions.UpdateUser{
		ID:    id,
		Name:  name,
		Email: email,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return nil, &NotFoundError{Resource: "User"}
		}
		return nil, err
	}

	return userFromStorage(action.User), nil
}

// Delete removes the user along with all owned transactions and tokens.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.processor.Process(ctx, &actions.DeleteUser{ID: id})
	if err != nil {
		if errors.Is(err, actions.ErrNotFound) {
			return &NotFoundError{Resource: "User"}
		}
		return err
	}
	return nil
}
