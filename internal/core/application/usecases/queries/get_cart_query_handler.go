package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a customer's cart directly from the database.
// Uses raw SQL for optimal read performance in the CQRS pattern, joining
// the product catalog so cart lines carry current product names.
//
// Example:
//
//	handler := NewGetCartQueryHandler(db)
//	query, _ := NewGetCartQuery(customerID)
//
//	cart, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get cart: %v", err)
//	    return err
//	}
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart read queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query and returns the cart read model.
// A customer without a persisted cart receives an empty view with
// zero totals and no items.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		CustomerID: query.CustomerID(),
		Items:      make([]GetCartItemResponse, 0),
	}

	var cartID uuid.UUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			coupon_code,
			subtotal,
			tax,
			shipping,
			discount,
			total
		FROM carts
		WHERE customer_id = ?
	`, query.CustomerID().Bytes()).Row()

	err := row.Scan(
		&cartID,
		&response.CouponCode,
		&response.Subtotal,
		&response.Tax,
		&response.Shipping,
		&response.Discount,
		&response.Total,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return response, nil
	}
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	response.CartID, err = kernel.UUIDFromBytes(cartID[:])
	if err != nil {
		return GetCartQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.id,
			ci.product_id,
			COALESCE(p.name, ''),
			ci.unit_price,
			ci.quantity
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = ?
		ORDER BY ci.position
	`, cartID).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetCartItemResponse
		var itemID, productID uuid.UUID

		err = rows.Scan(
			&itemID,
			&productID,
			&item.ProductName,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		item.ItemID, err = kernel.UUIDFromBytes(itemID[:])
		if err != nil {
			return GetCartQueryResponse{}, err
		}
		item.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		item.LineTotal = item.UnitPrice * float64(item.Quantity)
		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
