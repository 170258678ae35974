package api

import (
	"context"
	"database/sql"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/service"
)

type fakeUserStore struct {
	users      map[string]*entity.User
	registered *entity.RegisterRequest
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserStore) RegisterUser(ctx context.Context, req *entity.RegisterRequest, hashedPassword string) (int, error) {
	f.registered = req
	return 1, nil
}

func newAuthHandler(store *fakeUserStore) *AuthHandler {
	return NewAuthHandler(service.NewAuthService(store, []byte("test-secret")))
}

func TestAuthenticateUserMissingCredentials(t *testing.T) {
	h := newAuthHandler(&fakeUserStore{users: map[string]*entity.User{}})

	rec := postJSON(t, h.AuthenticateUser, "/loginPage/authenticateUser", `{"email": "a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing email or password")
}

func TestAuthenticateUserUnknownEmail(t *testing.T) {
	h := newAuthHandler(&fakeUserStore{users: map[string]*entity.User{}})

	rec := postJSON(t, h.AuthenticateUser, "/loginPage/authenticateUser", `{"email": "a@b.com", "password": "pw"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestAuthenticateUserWrongPassword(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.MinCost)
	require.NoError(t, err)
	h := newAuthHandler(&fakeUserStore{users: map[string]*entity.User{
		"a@b.com": {UserID: 1, EmailAddress: "a@b.com", Password: string(hashed)},
	}})

	rec := postJSON(t, h.AuthenticateUser, "/loginPage/authenticateUser", `{"email": "a@b.com", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
}

func TestRegisterUserMissingFields(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{}}
	h := newAuthHandler(store)

	rec := postJSON(t, h.RegisterUser, "/registerUser", `{"firstName": "Rin", "email": "rin@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "All fields are required")
	assert.Nil(t, store.registered)
}

func TestRegisterUserCreated(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{}}
	h := newAuthHandler(store)

	body := `{"firstName": "Rin", "lastName": "Sato", "email": "rin@example.com",
		"password": "pw", "phoneNumber": "555-0100", "userType": "U",
		"postalCode": "V5K0A1", "country": "Canada", "province": "BC",
		"city": "Vancouver", "streetAddress": "123 Water St"}`
	rec := postJSON(t, h.RegisterUser, "/registerUser", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, store.registered)
	assert.Equal(t, "U", store.registered.UserType)
}
