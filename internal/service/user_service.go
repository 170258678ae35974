package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

// UserAdminStore is the slice of the user repository the admin/profile
// service needs.
type UserAdminStore interface {
	GetUsers(ctx context.Context) ([]*entity.UserWithAddress, error)
	UpdateUser(ctx context.Context, userID int, req *entity.EditUserRequest) (int64, error)
	DeleteUser(ctx context.Context, userID int) (int64, error)
	GetProfile(ctx context.Context, userID int) (*entity.UserWithAddress, error)
	UpdateProfile(ctx context.Context, userID int, req *entity.UpdateProfileRequest) error
	CreateAddress(ctx context.Context, addr *entity.Address) (int, error)
}

type UserService struct {
	users UserAdminStore
}

// NewUserService creates a new instance of UserService.
func NewUserService(users UserAdminStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetUsers(ctx context.Context) ([]*entity.UserWithAddress, error) {
	users, err := s.users.GetUsers(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching users")
		return nil, err
	}
	return users, nil
}

func (s *UserService) EditUser(ctx context.Context, userID int, req *entity.EditUserRequest) error {
	if req.FirstName == "" || req.LastName == "" || req.PhoneNumber == "" ||
		req.EmailAddress == "" || req.UserType == "" || req.AddressID == 0 {
		return ErrMissingFields
	}

	rows, err := s.users.UpdateUser(ctx, userID, req)
	if err != nil {
		logger.Error().Err(err).Int("user_id", userID).Msg("Error editing user")
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID int) error {
	rows, err := s.users.DeleteUser(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int("user_id", userID).Msg("Error deleting user")
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) GetProfile(ctx context.Context, userID int) (*entity.UserWithAddress, error) {
	profile, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Int("user_id", userID).Msg("Error fetching profile")
		return nil, err
	}
	return profile, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int, req *entity.UpdateProfileRequest) error {
	err := s.users.UpdateProfile(ctx, userID, req)
	if err != nil {
		logger.Error().Err(err).Int("user_id", userID).Msg("Error updating profile")
		return err
	}
	return nil
}

// AddSupplierAddress stores a supplier address row and returns its id.
func (s *UserService) AddSupplierAddress(ctx context.Context, addr *entity.Address) (int, error) {
	id, err := s.users.CreateAddress(ctx, addr)
	if err != nil {
		logger.Error().Err(err).Msg("Error adding supplier address")
		return 0, err
	}
	return id, nil
}
