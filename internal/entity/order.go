package entity

// Order statuses as stored in the orders table.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusCompleted  = "Completed"
)

type Order struct {
	OrderID    int     `json:"order_id"`
	CustomerID int     `json:"customer_id"`
	OrderDate  string  `json:"order_date"`
	Status     string  `json:"status"`
	Total      float64 `json:"total"`
}

type OrderDetail struct {
	OrderDetailID        int     `json:"order_detail_id"`
	OrderID              int     `json:"order_id"`
	MenuItemID           int     `json:"menu_item_id"`
	Quantity             int     `json:"quantity"`
	CustomizationRequest *string `json:"customization_request"`
}

// OrderRequest is the POST /handleorder payload.
type OrderRequest struct {
	UserID    int             `json:"user_id"`
	OrderDate string          `json:"order_date"`
	Status    string          `json:"status"`
	Items     []OrderLineItem `json:"items"`
}

// OrderLineItem carries the submitted unit price; the pipeline applies the
// loyalty discount on top of it before totalling.
type OrderLineItem struct {
	MenuItemID           int     `json:"menu_item_id"`
	Quantity             int     `json:"quantity"`
	Price                float64 `json:"price"`
	CustomizationRequest string  `json:"customization_request,omitempty"`
}

// OrderLine is a line item after discount resolution.
type OrderLine struct {
	MenuItemID           int
	Quantity             int
	UnitPrice            float64
	OriginalPrice        float64
	DiscountApplied      bool
	CustomizationRequest string
}

// OrderPlacedEvent is published to kafka after an order commits; the loyalty
// consumer turns it into preference updates.
type OrderPlacedEvent struct {
	OrderID    int              `json:"order_id"`
	CustomerID int              `json:"customer_id"`
	Items      []OrderEventItem `json:"items"`
}

type OrderEventItem struct {
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

/*
Mysql Schema:

CREATE TABLE orders (
	order_id INT AUTO_INCREMENT PRIMARY KEY,
	customer_id INT NOT NULL,
	order_date DATE NOT NULL,
	status VARCHAR(20) NOT NULL,
	total DOUBLE NOT NULL
);

CREATE TABLE order_details (
	order_detail_id INT AUTO_INCREMENT PRIMARY KEY,
	order_id INT NOT NULL,
	menu_item_id INT NOT NULL,
	quantity INT NOT NULL,
	customization_request TEXT,
	FOREIGN KEY (order_id) REFERENCES orders(order_id) ON DELETE CASCADE
);
*/
