package entity

// Card is a stored payment card. payment_type_id is the authoritative
// identifier for edits and deletes.
type Card struct {
	PaymentTypeID  int    `json:"payment_type_id"`
	CardNumber     string `json:"card_number"`
	CardHolderName string `json:"card_holder_name"`
	PostalCode     string `json:"postal_code"`
}

type CardRequest struct {
	CardNumber     string `json:"card_number"`
	CardHolderName string `json:"card_holder_name"`
	PostalCode     string `json:"postal_code"`
}

/*
Mysql Schema:

CREATE TABLE cards (
	payment_type_id INT AUTO_INCREMENT PRIMARY KEY,
	card_number VARCHAR(20) NOT NULL,
	card_holder_name VARCHAR(100) NOT NULL,
	postal_code VARCHAR(10) NOT NULL
);
*/
