package entity

type InventoryItem struct {
	InventoryID int    `json:"inventory_id"`
	ItemName    string `json:"item_name"`
	NoInStock   int    `json:"no_in_stock"`
}

type MenuItem struct {
	MenuItemID   int     `json:"menu_item_id"`
	InventoryID  int     `json:"inventory_id"`
	MenuItemName string  `json:"menu_item_name"`
	Description  string  `json:"description"`
	Availability bool    `json:"availability"`
	Price        float64 `json:"price"`
}

// InventoryOption is the trimmed inventory row served to the menu-item form.
type InventoryOption struct {
	InventoryID int    `json:"inventory_id"`
	ItemName    string `json:"item_name"`
}

// ReceiveShipmentRequest is the POST /receivefish payload.
type ReceiveShipmentRequest struct {
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	MarketName string  `json:"market_name"`
	FishPrice  float64 `json:"fish_price"`
	PostalCode string  `json:"postal_code"`
}

// MarketReceipt is a fish_market row joined with the inventory item name.
type MarketReceipt struct {
	MarketID        int     `json:"market_id"`
	ItemName        string  `json:"item_name"`
	MarketName      string  `json:"market_name"`
	FishPrice       float64 `json:"fish_price"`
	PostalCode      string  `json:"postal_code"`
	InboundQuantity int     `json:"inbound_quantity"`
}

/*
Mysql Schema:

CREATE TABLE inventory (
	inventory_id INT AUTO_INCREMENT PRIMARY KEY,
	item_name VARCHAR(100) NOT NULL,
	no_in_stock INT NOT NULL
);

CREATE TABLE menu_item (
	menu_item_id INT AUTO_INCREMENT PRIMARY KEY,
	inventory_id INT NOT NULL,
	menu_item_name VARCHAR(100) NOT NULL,
	description TEXT,
	availability BOOLEAN NOT NULL DEFAULT TRUE,
	price DOUBLE NOT NULL
);

CREATE TABLE fish_market (
	market_id INT AUTO_INCREMENT PRIMARY KEY,
	inventory_id INT NOT NULL,
	market_name VARCHAR(100) NOT NULL,
	fish_price DOUBLE NOT NULL,
	postal_code VARCHAR(10) NOT NULL,
	inbound_quantity INT NOT NULL
);
*/
