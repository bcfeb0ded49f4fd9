package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/token"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

func newAuthTestService(t *testing.T) (*AuthService, *mockUserTable, *mockTokenTable, *mockProcessor) {
	t.Helper()
	users := new(mockUserTable)
	tokens := new(mockTokenTable)
	processor := new(mockProcessor)
	store := &storage.Storage{Users: users, Tokens: tokens}
	return NewAuthService(store, processor), users, tokens, processor
}

func storedUser(id int64, email, password string) *user.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &user.User{
		ID:        id,
		Name:      "Alice",
		Email:     email,
		Password:  string(hashed),
		Role:      "user",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// -- Register tests --

func TestRegister_Success(t *testing.T) {
	svc, users, _, processor := newAuthTestService(t)

	users.On("EmailInUse", mock.Anything, "a@x.com").Return(false, nil)
	processor.On("Process", mock.Anything, mock.AnythingOfType("*actions.RegisterUser")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.RegisterUser)
			assert.Equal(t, "Alice", action.Name)
			assert.Equal(t, "a@x.com", action.Email)
			// Stored password must be a hash of the submitted one.
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(action.HashedPassword), []byte("secret1")))
			assert.NotEmpty(t, action.TokenDigest)
			action.User = storedUser(1, "a@x.com", "secret1")
			action.TokenID = 7
		}).
		Return(nil)

	created, plaintext, err := svc.Register(context.Background(), "Alice", "a@x.com", "secret1")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	tokenID, secret, ok := splitToken(plaintext)
	assert.True(t, ok)
	assert.Equal(t, int64(7), tokenID)
	assert.NotEmpty(t, secret)
	processor.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, users, _, processor := newAuthTestService(t)

	users.On("EmailInUse", mock.Anything, "a@x.com").Return(true, nil)

	created, plaintext, err := svc.Register(context.Background(), "Alice", "a@x.com", "secret1")

	assert.Nil(t, created)
	assert.Empty(t, plaintext)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors["email"], "The email has already been taken.")
	processor.AssertNotCalled(t, "Process")
}

func TestRegister_MissingFields(t *testing.T) {
	svc, users, _, processor := newAuthTestService(t)

	_, _, err := svc.Register(context.Background(), "", "", "")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors["name"], "The name field is required.")
	assert.Contains(t, validationErr.Errors["email"], "The email field is required.")
	assert.Contains(t, validationErr.Errors["password"], "The password field is required.")
	users.AssertNotCalled(t, "EmailInUse")
	processor.AssertNotCalled(t, "Process")
}

func TestRegister_ShortPassword(t *testing.T) {
	svc, users, _, _ := newAuthTestService(t)

	users.On("EmailInUse", mock.Anything, "a@x.com").Return(false, nil)

	_, _, err := svc.Register(context.Background(), "Alice", "a@x.com", "short")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Errors["password"], "The password field must be at least 6 characters.")
}

// -- Login tests --

func TestLogin_Success(t *testing.T) {
	svc, users, _, processor := newAuthTestService(t)

	users.On("FindByEmail", mock.Anything, "a@x.com").Return(storedUser(1, "a@x.com", "secret1"), nil)
	processor.On("Process", mock.Anything, mock.AnythingOfType("*actions.LoginUser")).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.LoginUser)
			assert.Equal(t, int64(1), action.UserID)
			action.TokenID = 8
		}).
		Return(nil)

	loggedIn, plaintext, err := svc.Login(context.Background(), "a@x.com", "secret1")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), loggedIn.ID)
	tokenID, _, ok := splitToken(plaintext)
	assert.True(t, ok)
	assert.Equal(t, int64(8), tokenID)
	processor.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, users, _, processor := newAuthTestService(t)

	users.On("FindByEmail", mock.Anything, "a@x.com").Return(storedUser(1, "a@x.com", "secret1"), nil)

	_, _, err := svc.Login(context.Background(), "a@x.com", "wrong-password")

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Message)
	processor.AssertNotCalled(t, "Process")
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, users, _, _ := newAuthTestService(t)

	users.On("FindByEmail", mock.Anything, "b@x.com").Return(nil, sql.ErrNoRows)

	_, _, err := svc.Login(context.Background(), "b@x.com", "secret1")

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Message)
}

func TestLogin_InvalidInput(t *testing.T) {
	svc, users, _, _ := newAuthTestService(t)

	_, _, err := svc.Login(context.Background(), "not-an-email", "short")

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors["email"])
	assert.NotEmpty(t, validationErr.Errors["password"])
	users.AssertNotCalled(t, "FindByEmail")
}

// -- Authenticate tests --

func TestAuthenticate_Success(t *testing.T) {
	svc, users, tokens, _ := newAuthTestService(t)

	secret, digest, err := newTokenSecret()
	assert.NoError(t, err)

	tokens.On("FindByID", mock.Anything, int64(7)).
		Return(&token.AccessToken{ID: 7, UserID: 1, Token: digest}, nil)
	users.On("FindByID", mock.Anything, int64(1)).
		Return(storedUser(1, "a@x.com", "secret1"), nil)

	caller, err := svc.Authenticate(context.Background(), plaintextToken(7, secret))

	assert.NoError(t, err)
	assert.Equal(t, int64(1), caller.ID)
	assert.Equal(t, "a@x.com", caller.Email)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	svc, _, tokens, _ := newAuthTestService(t)

	_, digest, err := newTokenSecret()
	assert.NoError(t, err)

	tokens.On("FindByID", mock.Anything, int64(7)).
		Return(&token.AccessToken{ID: 7, UserID: 1, Token: digest}, nil)

	caller, err := svc.Authenticate(context.Background(), plaintextToken(7, "other-secret"))

	assert.Nil(t, caller)
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestAuthenticate_RevokedToken(t *testing.T) {
	svc, _, tokens, _ := newAuthTestService(t)

	tokens.On("FindByID", mock.Anything, int64(7)).Return(nil, sql.ErrNoRows)

	caller, err := svc.Authenticate(context.Background(), plaintextToken(7, "whatever"))

	assert.Nil(t, caller)
	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
}

func TestAuthenticate_MalformedToken(t *testing.T) {
	svc, _, tokens, _ := newAuthTestService(t)

	for _, plaintext := range []string{"", "no-separator", "|", "abc|def", "7|"} {
		caller, err := svc.Authenticate(context.Background(), plaintext)
		assert.Nil(t, caller, plaintext)
		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr, plaintext)
	}
	tokens.AssertNotCalled(t, "FindByID")
}

// -- Logout tests --

func TestLogout_ProcessesRevocation(t *testing.T) {
	svc, _, _, processor := newAuthTestService(t)

	processor.On("Process", mock.Anything, mock.MatchedBy(func(action actions.IAction) bool {
		logout, ok := action.(*actions.LogoutUser)
		return ok && logout.UserID == 1
	})).Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), 1))
	processor.AssertExpectations(t)
}
