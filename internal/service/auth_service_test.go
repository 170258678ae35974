package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

type fakeUserStore struct {
	users          map[string]*entity.User
	registered     *entity.RegisterRequest
	hashedPassword string
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
	f.hashedPassword = hashedPassword
	return 1, nil
}

func newStoreWithUser(t *testing.T, email, password string) *fakeUserStore {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &fakeUserStore{users: map[string]*entity.User{
		email: {
			UserID:       7,
			FirstName:    "Kiyoshi",
			EmailAddress: email,
			Password:     string(hashed),
			UserType:     "U",
		},
	}}
}

func TestLoginIssuesTokenWithClaims(t *testing.T) {
	store := newStoreWithUser(t, "kiyoshi@example.com", "hunter2")
	svc := NewAuthService(store, []byte("test-secret"))

	token, user, err := svc.Login(context.Background(), "kiyoshi@example.com", "hunter2")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Empty(t, user.Password, "password hash must not leak in the response")

	claims := &JwtCustomClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Kiyoshi", claims.FirstName)
	assert.Equal(t, "kiyoshi@example.com", claims.Email)

	expiry := claims.ExpiresAt.Time
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), expiry, time.Minute)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{users: map[string]*entity.User{}}, []byte("test-secret"))

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	store := newStoreWithUser(t, "kiyoshi@example.com", "hunter2")
	svc := NewAuthService(store, []byte("test-secret"))

	_, _, err := svc.Login(context.Background(), "kiyoshi@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func validRegisterRequest() *entity.RegisterRequest {
	return &entity.RegisterRequest{
		FirstName:     "Rin",
		LastName:      "Sato",
		Email:         "rin@example.com",
		Password:      "secret-pw",
		PhoneNumber:   "555-0100",
		UserType:      "U",
		PostalCode:    "V5K0A1",
		Country:       "Canada",
		Province:      "BC",
		City:          "Vancouver",
		StreetAddress: "123 Water St",
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{users: map[string]*entity.User{}}, []byte("test-secret"))

	req := validRegisterRequest()
	req.City = ""
	err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	store := newStoreWithUser(t, "rin@example.com", "pw")
	svc := NewAuthService(store, []byte("test-secret"))

	err := svc.Register(context.Background(), validRegisterRequest())
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestRegisterHashesPassword(t *testing.T) {
	store := &fakeUserStore{users: map[string]*entity.User{}}
	svc := NewAuthService(store, []byte("test-secret"))

	err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	require.NotNil(t, store.registered)
	assert.NotEqual(t, "secret-pw", store.hashedPassword)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.hashedPassword), []byte("secret-pw")))
}
