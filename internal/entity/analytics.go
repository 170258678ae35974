package entity

// MonthlySales is one month of the sales rollup, shaped for the dashboard
// charts.
type MonthlySales struct {
	Year             int     `json:"year"`
	MonthNum         int     `json:"month_num"`
	Month            string  `json:"month"`
	TotalSales       float64 `json:"totalSales"`
	OrderCount       int     `json:"orderCount"`
	CompletedOrders  int     `json:"completedOrders"`
	ProcessingOrders int     `json:"processingOrders"`
	PendingOrders    int     `json:"pendingOrders"`
}

type MonthlyExpense struct {
	Month    string  `json:"month"`
	MonthNum int     `json:"month_num"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type MarketPricePoint struct {
	Item  string  `json:"item"`
	Week  string  `json:"week"`
	Price float64 `json:"price"`
}

type PreferenceSummary struct {
	Customer   string `json:"customer"`
	Item       string `json:"item"`
	OrderCount int    `json:"orderCount"`
	Discount   bool   `json:"discount"`
}

type DiscountRecommendation struct {
	CustomerName           string `json:"customer_name"`
	MenuItemName           string `json:"menu_item_name"`
	OrderCount             int    `json:"order_count"`
	DiscountEligible       bool   `json:"discount_eligible"`
	RecommendedDiscountPct int    `json:"recommended_discount_percentage"`
	Recommendation         string `json:"recommendation"`
}

// SalesTrendPoint is one bucket of the sales-trends rollup.
type SalesTrendPoint struct {
	Period     string  `json:"period"`
	TotalSales float64 `json:"totalSales"`
	OrderCount int     `json:"orderCount"`
}

/*
Mysql Schema:

CREATE TABLE expense_category (
	category_id INT AUTO_INCREMENT PRIMARY KEY,
	category_name VARCHAR(50) NOT NULL
);

CREATE TABLE expense (
	expense_id INT AUTO_INCREMENT PRIMARY KEY,
	category_id INT NOT NULL,
	amount DOUBLE NOT NULL,
	expense_date DATE NOT NULL
);

CREATE TABLE market_price_history (
	price_id INT AUTO_INCREMENT PRIMARY KEY,
	inventory_id INT NOT NULL,
	price_amount DOUBLE NOT NULL,
	price_date DATE NOT NULL
);
*/
