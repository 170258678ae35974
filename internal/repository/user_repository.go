package repository

import (
	"context"
	"database/sql"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user := &entity.User{}
	query := `SELECT user_id, first_name, last_name, email_address, password, phone_number, user_type, address_id FROM users WHERE email_address = ?`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&user.UserID, &user.FirstName, &user.LastName, &user.EmailAddress, &user.Password, &user.PhoneNumber, &user.UserType, &user.AddressID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// EmailExists reports whether a users row already carries the email.
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var id int
	query := `SELECT user_id FROM users WHERE email_address = ?`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&id)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// RegisterUser inserts the address, the user and the role row in one
// transaction. The address insert upserts so that a repeated address reuses
// the existing row.
func (r *UserRepository) RegisterUser(ctx context.Context, req *entity.RegisterRequest, hashedPassword string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	addressQuery := `INSERT INTO full_address (postal_code, country, province, city, street_address)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE address_id = LAST_INSERT_ID(address_id)`
	addressRes, err := tx.ExecContext(ctx, addressQuery, req.PostalCode, req.Country, req.Province, req.City, req.StreetAddress)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	addressID, err := addressRes.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	userQuery := `INSERT INTO users (first_name, last_name, email_address, password, phone_number, user_type, address_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	userRes, err := tx.ExecContext(ctx, userQuery, req.FirstName, req.LastName, req.Email, hashedPassword, req.PhoneNumber, req.UserType, addressID)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	userID, err := userRes.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	// Admins get an employee record, everyone else a customer record.
	if req.UserType == "A" {
		_, err = tx.ExecContext(ctx, `INSERT INTO employees (user_id, role) VALUES (?, ?)`, userID, "admin")
	} else {
		_, err = tx.ExecContext(ctx, `INSERT INTO customers (user_id) VALUES (?)`, userID)
	}
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}

	return int(userID), nil
}

func (r *UserRepository) GetUsers(ctx context.Context) ([]*entity.UserWithAddress, error) {
	query := `SELECT u.user_id, u.first_name, u.last_name, u.phone_number, u.email_address, u.user_type,
			COALESCE(fa.street_address, ''), COALESCE(fa.city, ''), COALESCE(fa.province, ''), COALESCE(fa.country, '')
		FROM users u
		LEFT JOIN full_address fa ON u.address_id = fa.address_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*entity.UserWithAddress
	for rows.Next() {
		var user entity.UserWithAddress
		err := rows.Scan(&user.UserID, &user.FirstName, &user.LastName, &user.PhoneNumber, &user.EmailAddress, &user.UserType, &user.StreetAddress, &user.City, &user.Province, &user.Country)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	return users, rows.Err()
}

// UpdateUser applies an admin edit. Returns the number of rows touched so the
// handler can 404 on unknown ids.
func (r *UserRepository) UpdateUser(ctx context.Context, userID int, req *entity.EditUserRequest) (int64, error) {
	query := `UPDATE users SET first_name = ?, last_name = ?, phone_number = ?, email_address = ?, user_type = ?, address_id = ? WHERE user_id = ?`
	res, err := r.db.ExecContext(ctx, query, req.FirstName, req.LastName, req.PhoneNumber, req.EmailAddress, req.UserType, req.AddressID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID int) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// GetProfile returns the user joined with their address.
func (r *UserRepository) GetProfile(ctx context.Context, userID int) (*entity.UserWithAddress, error) {
	profile := &entity.UserWithAddress{}
	query := `SELECT u.first_name, u.last_name, u.phone_number, u.email_address, u.user_type,
			a.street_address, a.city, a.province, a.country, a.postal_code
		FROM users u
		JOIN full_address a ON u.address_id = a.address_id
		WHERE u.user_id = ?`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&profile.FirstName, &profile.LastName, &profile.PhoneNumber, &profile.EmailAddress, &profile.UserType, &profile.StreetAddress, &profile.City, &profile.Province, &profile.Country, &profile.PostalCode)
	if err != nil {
		return nil, err
	}
	profile.UserID = userID

	return profile, nil
}

// UpdateProfile updates the user row and, when an address is supplied, the
// linked full_address row, in one transaction.
func (r *UserRepository) UpdateProfile(ctx context.Context, userID int, req *entity.UpdateProfileRequest) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	userQuery := `UPDATE users SET first_name = ?, last_name = ?, phone_number = ?, email_address = ? WHERE user_id = ?`
	_, err = tx.ExecContext(ctx, userQuery, req.FirstName, req.LastName, req.PhoneNumber, req.EmailAddress, userID)
	if err != nil {
		tx.Rollback()
		return err
	}

	if req.Address != nil {
		var addressID int
		err = tx.QueryRowContext(ctx, `SELECT address_id FROM users WHERE user_id = ?`, userID).Scan(&addressID)
		if err != nil {
			tx.Rollback()
			return err
		}

		addressQuery := `UPDATE full_address SET street_address = ?, city = ?, province = ?, country = ?, postal_code = ? WHERE address_id = ?`
		_, err = tx.ExecContext(ctx, addressQuery, req.Address.StreetAddress, req.Address.City, req.Address.Province, req.Address.Country, req.Address.PostalCode, addressID)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// CreateAddress inserts a supplier address and returns its id.
func (r *UserRepository) CreateAddress(ctx context.Context, addr *entity.Address) (int, error) {
	query := `INSERT INTO full_address (postal_code, country, province, city, street_address) VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, addr.PostalCode, addr.Country, addr.Province, addr.City, addr.StreetAddress)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	return int(id), nil
}
