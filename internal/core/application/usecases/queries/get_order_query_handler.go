package queries

import (
	"context"
	"database/sql"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model from the database.
// Enforces ownership: the order is only returned to the customer who placed it.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query and returns the full order detail.
// Returns ObjectNotFound when the order does not exist and Unauthorized
// when it belongs to a different customer.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var id, customerID uuid.UUID
	var status, paymentMethod int
	var trackingCarrier, trackingNumber, trackingURL string
	var deliveredAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			order_number,
			status,
			payment_method,
			coupon_code,
			subtotal,
			tax,
			shipping,
			discount,
			total,
			ship_full_name,
			ship_phone_number,
			ship_address_line1,
			ship_address_line2,
			ship_city,
			ship_state,
			ship_country,
			ship_postal_code,
			tracking_carrier,
			tracking_number,
			tracking_url,
			delivered_at,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&customerID,
		&response.Number,
		&status,
		&paymentMethod,
		&response.CouponCode,
		&response.Subtotal,
		&response.Tax,
		&response.Shipping,
		&response.Discount,
		&response.Total,
		&response.ShippingAddress.FullName,
		&response.ShippingAddress.PhoneNumber,
		&response.ShippingAddress.AddressLine1,
		&response.ShippingAddress.AddressLine2,
		&response.ShippingAddress.City,
		&response.ShippingAddress.State,
		&response.ShippingAddress.Country,
		&response.ShippingAddress.PostalCode,
		&trackingCarrier,
		&trackingNumber,
		&trackingURL,
		&deliveredAt,
		&response.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	ownerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if !ownerID.IsEqual(query.CustomerID()) {
		return GetOrderQueryResponse{}, errs.NewUnauthorizedError("order", query.OrderID().String())
	}

	response.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Status = order.Status(status).String()
	response.PaymentMethod = order.PaymentMethod(paymentMethod).String()

	if trackingCarrier != "" || trackingNumber != "" {
		response.Tracking = &GetOrderTrackingResponse{
			Carrier:        trackingCarrier,
			TrackingNumber: trackingNumber,
			TrackingURL:    trackingURL,
		}
	}
	if deliveredAt.Valid {
		at := deliveredAt.Time.UTC()
		response.DeliveredAt = &at
	}

	response.Items, err = h.loadItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			image,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOrderItemResponse
		var productID uuid.UUID

		err = rows.Scan(
			&productID,
			&item.Name,
			&item.Image,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, err
		}

		item.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return nil, err
		}
		item.LineTotal = item.UnitPrice * float64(item.Quantity)

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
