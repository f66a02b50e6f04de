package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMyOrdersQueryHandler retrieves a customer's order history from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetMyOrdersQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetMyOrdersQueryHandler(db *gorm.DB) GetMyOrdersQueryHandler {
	return GetMyOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the customer's order summaries.
// Results are sorted by creation time, newest first. The item count is the
// total number of units across the order's snapshot lines.
func (h GetMyOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetMyOrdersQuery,
) ([]GetMyOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetMyOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			o.status,
			COALESCE(SUM(oi.quantity), 0),
			o.total,
			o.created_at
		FROM orders o
		LEFT JOIN order_items oi ON oi.order_id = o.id
		WHERE o.customer_id = ?
		GROUP BY o.id, o.order_number, o.status, o.total, o.created_at
		ORDER BY o.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var summary GetMyOrdersQueryResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&summary.Number,
			&status,
			&summary.ItemCount,
			&summary.Total,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		summary.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.Status = order.Status(status).String()

		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
