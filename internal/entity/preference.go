package entity

// DiscountThreshold is the cumulative ordered quantity at which a
// (customer, menu item) pair becomes discount eligible.
const DiscountThreshold = 5

// DiscountRate is the fraction taken off an eligible line's unit price.
const DiscountRate = 0.10

// CustomerPreference tracks how often a customer orders a menu item.
type CustomerPreference struct {
	CustomerID       int    `json:"customer_id"`
	MenuItemID       int    `json:"menu_item_id"`
	OrderCount       int    `json:"order_count"`
	LastOrdered      string `json:"last_ordered"`
	DiscountEligible bool   `json:"discount_eligible"`
}

// PreferenceUpdateRequest is the POST /analytics/update-preferences payload;
// the loyalty consumer submits the same shape internally.
type PreferenceUpdateRequest struct {
	CustomerID int `json:"customer_id"`
	MenuItemID int `json:"menu_item_id"`
	Quantity   int `json:"quantity"`
}

// CustomerDiscount is a preference row joined with the menu item for the
// discounts listing.
type CustomerDiscount struct {
	MenuItemID       int     `json:"menu_item_id"`
	MenuItemName     string  `json:"menu_item_name"`
	OriginalPrice    float64 `json:"original_price"`
	DiscountedPrice  float64 `json:"discounted_price"`
	OrderCount       int     `json:"order_count"`
	DiscountEligible bool    `json:"discount_eligible"`
}

/*
Mysql Schema:

CREATE TABLE customer_preferences (
	customer_id INT NOT NULL,
	menu_item_id INT NOT NULL,
	order_count INT NOT NULL,
	last_ordered DATE NOT NULL,
	discount_eligible BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (customer_id, menu_item_id)
);
*/
