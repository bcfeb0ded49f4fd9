package user

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockUserService mocks the user service surface the user handlers consume.
type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) List(ctx context.Context) ([]service.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]service.User)
	return users, args.Error(1)
}

func (m *mockUserService) Get(ctx context.Context, id int64) (*service.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*service.User)
	return u, args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, id int64, name, email string) (*service.User, error) {
	args := m.Called(ctx, id, name, email)
	u, _ := args.Get(0).(*service.User)
	return u, args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestHTTP_GetUser_Success(t *testing.T) {
	now := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	mockSvc := new(mockUserService)
	mockSvc.On("Get", mock.Anything, int64(1)).
		Return(&service.User{ID: 1, Name: "Alice", Email: "a@x.com", Role: "user", CreatedAt: now, UpdatedAt: now}, nil)

	_, api := humatest.New(t)
	NewGetUserHandler(mockSvc).Register(api)

	resp := api.Get("/users/1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.ID)
	assert.Equal(t, "a@x.com", body.Email)
	assert.Equal(t, "2024-09-01T00:00:00Z", body.CreatedAt)
}

func TestHTTP_GetUser_NotFound(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Get", mock.Anything, int64(42)).
		Return(nil, &service.NotFoundError{Resource: "User"})

	_, api := humatest.New(t)
	NewGetUserHandler(mockSvc).Register(api)

	resp := api.Get("/users/42")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body errorEnvelope
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, "User not found", body.Message)
}

func TestHTTP_ListUsers_Success(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("List", mock.Anything).Return([]service.User{
		{ID: 1, Name: "Alice", Email: "a@x.com", Role: "user"},
		{ID: 2, Name: "Bob", Email: "b@x.com", Role: "user"},
	}, nil)

	_, api := humatest.New(t)
	NewListUsersHandler(mockSvc).Register(api)

	resp := api.Get("/users")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 2)
	assert.Equal(t, "Bob", body[1].Name)
}

func TestHTTP_UpdateUser_ValidationError(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Update", mock.Anything, int64(1), "Alice", "a@x.com").
		Return(nil, &service.ValidationError{Errors: map[string][]string{
			"email": {"The email has already been taken."},
		}})

	_, api := humatest.New(t)
	NewUpdateUserHandler(mockSvc).Register(api)

	resp := api.Put("/users/1", UpdateUserBody{Name: "Alice", Email: "a@x.com"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var body errorEnvelope
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Errors["email"], "The email has already been taken.")
}

func TestHTTP_UpdateUser_Success(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Update", mock.Anything, int64(1), "Alice B", "new@x.com").
		Return(&service.User{ID: 1, Name: "Alice B", Email: "new@x.com", Role: "user"}, nil)

	_, api := humatest.New(t)
	NewUpdateUserHandler(mockSvc).Register(api)

	resp := api.Put("/users/1", UpdateUserBody{Name: "Alice B", Email: "new@x.com"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body User
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Alice B", body.Name)
}

func TestHTTP_DeleteUser_Success(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Delete", mock.Anything, int64(1)).Return(nil)

	_, api := humatest.New(t)
	NewDeleteUserHandler(mockSvc).Register(api)

	resp := api.Delete("/users/1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body DeleteUserResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Status)
	assert.Equal(t, "User deleted successfully", body.Message)
}

func TestHTTP_DeleteUser_NotFound(t *testing.T) {
	mockSvc := new(mockUserService)
	mockSvc.On("Delete", mock.Anything, int64(42)).
		Return(&service.NotFoundError{Resource: "User"})

	_, api := humatest.New(t)
	NewDeleteUserHandler(mockSvc).Register(api)

	resp := api.Delete("/users/42")

	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body errorEnvelope
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "User not found", body.Message)
}
