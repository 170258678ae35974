package service

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	RegisterUser(ctx context.Context, req *entity.RegisterRequest, hashedPassword string) (int, error)
}

// JwtCustomClaims is the session token payload. Tokens expire after two
// hours; there is no refresh mechanism.
type JwtCustomClaims struct {
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

type AuthService struct {
	users  UserStore
	secret []byte
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users UserStore, secret []byte) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// Login checks the credentials and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil, ErrUserNotFound
		}
		logger.Error().Err(err).Msg("Error looking up user for login")
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := &JwtCustomClaims{
		UserID:    user.UserID,
		FirstName: user.FirstName,
		Email:     user.EmailAddress,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
		},
	}

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := tkn.SignedString(s.secret)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing session token")
		return "", nil, err
	}

	user.Password = ""
	return token, user, nil
}

// Register creates the user inside one transaction: address upsert, user
// insert and the role row ("A" gets an admin employee record, anything else a
// customer record).
func (s *AuthService) Register(ctx context.Context, req *entity.RegisterRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" ||
		req.PhoneNumber == "" || req.UserType == "" || req.PostalCode == "" || req.Country == "" ||
		req.Province == "" || req.City == "" || req.StreetAddress == "" {
		return ErrMissingFields
	}

	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking for existing email")
		return err
	}
	if exists {
		return ErrEmailInUse
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.RegisterUser(ctx, req, string(hashed))
	if err != nil {
		logger.Error().Err(err).Msg("Error registering user")
		return err
	}

	return nil
}
