package entity

// User is a row in the users table. UserType is "A" for admins and "U" for
// customers.
type User struct {
	UserID       int    `json:"user_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password,omitempty"`
	PhoneNumber  string `json:"phone_number"`
	UserType     string `json:"user_type"`
	AddressID    int    `json:"address_id"`
}

// UserWithAddress joins users with full_address for the admin listing and
// profile views.
type UserWithAddress struct {
	UserID        int    `json:"user_id"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	PhoneNumber   string `json:"phone_number"`
	EmailAddress  string `json:"email_address"`
	UserType      string `json:"user_type"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	Province      string `json:"province"`
	Country       string `json:"country"`
	PostalCode    string `json:"postal_code,omitempty"`
}

type Address struct {
	AddressID     int    `json:"address_id"`
	PostalCode    string `json:"postal_code"`
	Country       string `json:"country"`
	Province      string `json:"province"`
	City          string `json:"city"`
	StreetAddress string `json:"street_address"`
}

// RegisterRequest is the POST /registerUser payload.
type RegisterRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	PhoneNumber   string `json:"phoneNumber"`
	UserType      string `json:"userType"`
	PostalCode    string `json:"postalCode"`
	Country       string `json:"country"`
	Province      string `json:"province"`
	City          string `json:"city"`
	StreetAddress string `json:"streetAddress"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EditUserRequest is the PUT /users/editUser/:id payload.
type EditUserRequest struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PhoneNumber  string `json:"phone_number"`
	EmailAddress string `json:"email_address"`
	UserType     string `json:"user_type"`
	AddressID    int    `json:"address_id"`
}

// UpdateProfileRequest is the PUT /profile payload; the user is identified by
// the bearer token, not the body.
type UpdateProfileRequest struct {
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	PhoneNumber  string   `json:"phone_number"`
	EmailAddress string   `json:"email_address"`
	Address      *Address `json:"address"`
}

/*
Mysql Schema:

CREATE TABLE users (
	user_id INT AUTO_INCREMENT PRIMARY KEY,
	first_name VARCHAR(50) NOT NULL,
	last_name VARCHAR(50) NOT NULL,
	email_address VARCHAR(100) NOT NULL UNIQUE,
	password VARCHAR(255) NOT NULL,
	phone_number VARCHAR(20) NOT NULL,
	user_type CHAR(1) NOT NULL,
	address_id INT NOT NULL
);

CREATE TABLE customers (
	customer_id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL
);

CREATE TABLE employees (
	employee_id INT AUTO_INCREMENT PRIMARY KEY,
	user_id INT NOT NULL,
	role VARCHAR(30) NOT NULL
);
*/
