package migrations

import (
	"database/sql"
	"time"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS full_address (
		address_id INT AUTO_INCREMENT PRIMARY KEY,
		postal_code VARCHAR(10) NOT NULL,
		country VARCHAR(50) NOT NULL,
		province VARCHAR(50) NOT NULL,
		city VARCHAR(50) NOT NULL,
		street_address VARCHAR(150) NOT NULL,
		UNIQUE KEY full_address_idx (postal_code, country, province, city, street_address)
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id INT AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email_address VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		phone_number VARCHAR(20) NOT NULL,
		user_type CHAR(1) NOT NULL,
		address_id INT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS customers (
		customer_id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS employees (
		employee_id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT NOT NULL,
		role VARCHAR(30) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS inventory (
		inventory_id INT AUTO_INCREMENT PRIMARY KEY,
		item_name VARCHAR(100) NOT NULL,
		no_in_stock INT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS menu_item (
		menu_item_id INT AUTO_INCREMENT PRIMARY KEY,
		inventory_id INT NOT NULL,
		menu_item_name VARCHAR(100) NOT NULL,
		description TEXT,
		availability BOOLEAN NOT NULL DEFAULT TRUE,
		price DOUBLE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS orders (
		order_id INT AUTO_INCREMENT PRIMARY KEY,
		customer_id INT NOT NULL,
		order_date DATE NOT NULL,
		status VARCHAR(20) NOT NULL,
		total DOUBLE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS order_details (
		order_detail_id INT AUTO_INCREMENT PRIMARY KEY,
		order_id INT NOT NULL,
		menu_item_id INT NOT NULL,
		quantity INT NOT NULL,
		customization_request TEXT,
		FOREIGN KEY (order_id) REFERENCES orders(order_id) ON DELETE CASCADE
	);`,
	`CREATE TABLE IF NOT EXISTS customer_preferences (
		customer_id INT NOT NULL,
		menu_item_id INT NOT NULL,
		order_count INT NOT NULL,
		last_ordered DATE NOT NULL,
		discount_eligible BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (customer_id, menu_item_id)
	);`,
	`CREATE TABLE IF NOT EXISTS cards (
		payment_type_id INT AUTO_INCREMENT PRIMARY KEY,
		card_number VARCHAR(20) NOT NULL,
		card_holder_name VARCHAR(100) NOT NULL,
		postal_code VARCHAR(10) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS fish_market (
		market_id INT AUTO_INCREMENT PRIMARY KEY,
		inventory_id INT NOT NULL,
		market_name VARCHAR(100) NOT NULL,
		fish_price DOUBLE NOT NULL,
		postal_code VARCHAR(10) NOT NULL,
		inbound_quantity INT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS market_price_history (
		price_id INT AUTO_INCREMENT PRIMARY KEY,
		inventory_id INT NOT NULL,
		price_amount DOUBLE NOT NULL,
		price_date DATE NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS expense_category (
		category_id INT AUTO_INCREMENT PRIMARY KEY,
		category_name VARCHAR(50) NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS expense (
		expense_id INT AUTO_INCREMENT PRIMARY KEY,
		category_id INT NOT NULL,
		amount DOUBLE NOT NULL,
		expense_date DATE NOT NULL
	);`,
}

// AutoMigrate creates every table the service uses if it does not exist.
func AutoMigrate(retries int, db *sql.DB) error {
	for _, query := range tables {
		_, err := db.Exec(query)
		if err != nil {
			// Retry creating the table
			for i := 0; i < retries; i++ {
				time.Sleep(1 * time.Second)
				_, err = db.Exec(query)
				if err == nil {
					break
				}
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}
