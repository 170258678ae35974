package repository

import (
	"context"
	"database/sql"

	"github.com/rijanbdahal/SushiBaiKiyoshi/internal/entity"
)

type AnalyticsRepository struct {
	db *sql.DB
}

func NewAnalyticsRepository(db *sql.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db}
}

func (r *AnalyticsRepository) GetMonthlySales(ctx context.Context) ([]*entity.MonthlySales, error) {
	query := `SELECT
			YEAR(order_date) AS year,
			MONTH(order_date) AS month_num,
			MONTHNAME(order_date) AS month,
			SUM(total) AS totalSales,
			COUNT(*) AS orderCount,
			SUM(CASE WHEN status = 'Completed' THEN 1 ELSE 0 END) AS completedOrders,
			SUM(CASE WHEN status = 'Processing' THEN 1 ELSE 0 END) AS processingOrders,
			SUM(CASE WHEN status = 'Pending' THEN 1 ELSE 0 END) AS pendingOrders
		FROM orders
		GROUP BY YEAR(order_date), MONTH(order_date), MONTHNAME(order_date)
		ORDER BY YEAR(order_date), MONTH(order_date)`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []*entity.MonthlySales
	for rows.Next() {
		var s entity.MonthlySales
		err := rows.Scan(&s.Year, &s.MonthNum, &s.Month, &s.TotalSales, &s.OrderCount, &s.CompletedOrders, &s.ProcessingOrders, &s.PendingOrders)
		if err != nil {
			return nil, err
		}
		sales = append(sales, &s)
	}

	return sales, rows.Err()
}

func (r *AnalyticsRepository) GetMonthlyExpenses(ctx context.Context) ([]*entity.MonthlyExpense, error) {
	query := `SELECT
			MONTHNAME(e.expense_date) AS month,
			MIN(MONTH(e.expense_date)) AS month_num,
			ec.category_name AS category,
			CAST(SUM(e.amount) AS DECIMAL(10,2)) AS amount
		FROM expense e
		JOIN expense_category ec ON e.category_id = ec.category_id
		GROUP BY MONTHNAME(e.expense_date), ec.category_name
		ORDER BY month_num, ec.category_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*entity.MonthlyExpense
	for rows.Next() {
		var e entity.MonthlyExpense
		err := rows.Scan(&e.Month, &e.MonthNum, &e.Category, &e.Amount)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}

	return expenses, rows.Err()
}

func (r *AnalyticsRepository) GetMarketPrices(ctx context.Context) ([]*entity.MarketPricePoint, error) {
	query := `SELECT
			i.item_name AS item,
			DATE_FORMAT(mph.price_date, '%b %d') AS week,
			CAST(mph.price_amount AS DECIMAL(10,2)) AS price
		FROM market_price_history mph
		JOIN inventory i ON mph.inventory_id = i.inventory_id
		ORDER BY i.item_name, mph.price_date`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []*entity.MarketPricePoint
	for rows.Next() {
		var p entity.MarketPricePoint
		err := rows.Scan(&p.Item, &p.Week, &p.Price)
		if err != nil {
			return nil, err
		}
		points = append(points, &p)
	}

	return points, rows.Err()
}

func (r *AnalyticsRepository) GetPreferenceSummaries(ctx context.Context) ([]*entity.PreferenceSummary, error) {
	query := `SELECT
			CONCAT(u.first_name, ' ', u.last_name) AS customer,
			mi.menu_item_name AS item,
			cp.order_count AS orderCount,
			cp.discount_eligible AS discount
		FROM customer_preferences cp
		JOIN customers c ON cp.customer_id = c.customer_id
		JOIN users u ON c.user_id = u.user_id
		JOIN menu_item mi ON cp.menu_item_id = mi.menu_item_id
		ORDER BY cp.order_count DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*entity.PreferenceSummary
	for rows.Next() {
		var s entity.PreferenceSummary
		err := rows.Scan(&s.Customer, &s.Item, &s.OrderCount, &s.Discount)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &s)
	}

	return summaries, rows.Err()
}

func (r *AnalyticsRepository) GetDiscountRecommendations(ctx context.Context) ([]*entity.DiscountRecommendation, error) {
	query := `SELECT
			CONCAT(u.first_name, ' ', u.last_name) AS customer_name,
			mi.menu_item_name,
			cp.order_count,
			cp.discount_eligible,
			CASE WHEN cp.discount_eligible = 1 THEN 10 ELSE 0 END AS recommended_discount_percentage,
			CASE
				WHEN cp.discount_eligible = 1 THEN 'Eligible for discount'
				ELSE CONCAT('Needs ', 5 - cp.order_count, ' more orders to qualify')
			END AS recommendation
		FROM customer_preferences cp
		JOIN customers c ON cp.customer_id = c.customer_id
		JOIN users u ON c.user_id = u.user_id
		JOIN menu_item mi ON cp.menu_item_id = mi.menu_item_id
		WHERE cp.order_count >= 3
		ORDER BY cp.order_count DESC, customer_name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []*entity.DiscountRecommendation
	for rows.Next() {
		var rec entity.DiscountRecommendation
		err := rows.Scan(&rec.CustomerName, &rec.MenuItemName, &rec.OrderCount, &rec.DiscountEligible, &rec.RecommendedDiscountPct, &rec.Recommendation)
		if err != nil {
			return nil, err
		}
		recs = append(recs, &rec)
	}

	return recs, rows.Err()
}

// GetSalesTrends buckets order totals by day, ISO week or month.
func (r *AnalyticsRepository) GetSalesTrends(ctx context.Context, periodType string) ([]*entity.SalesTrendPoint, error) {
	var periodExpr string
	switch periodType {
	case "daily":
		periodExpr = `DATE_FORMAT(order_date, '%Y-%m-%d')`
	case "weekly":
		periodExpr = `DATE_FORMAT(order_date, '%x-W%v')`
	default:
		periodExpr = `DATE_FORMAT(order_date, '%Y-%m')`
	}

	query := `SELECT ` + periodExpr + ` AS period, SUM(total) AS totalSales, COUNT(*) AS orderCount
		FROM orders
		GROUP BY period
		ORDER BY period`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []*entity.SalesTrendPoint
	for rows.Next() {
		var p entity.SalesTrendPoint
		err := rows.Scan(&p.Period, &p.TotalSales, &p.OrderCount)
		if err != nil {
			return nil, err
		}
		points = append(points, &p)
	}

	return points, rows.Err()
}
