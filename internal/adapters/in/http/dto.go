package http

import (
	"time"

	"storefront/internal/core/application/usecases/queries"
)

// Request bodies.

// AddCartItemRequest is the body of POST /cart/add.
type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest is the body of PUT /cart/item/:itemId.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// ApplyCouponRequest is the body of POST /cart/coupon.
type ApplyCouponRequest struct {
	Code string `json:"code"`
}

// AddressRequest is the shipping address block of a checkout request.
type AddressRequest struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode"`
}

// CheckoutRequest is the body of POST /orders.
type CheckoutRequest struct {
	ShippingAddress AddressRequest `json:"shippingAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

// TrackingRequest is the tracking block of a status update request.
type TrackingRequest struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl"`
}

// UpdateOrderStatusRequest is the body of PUT /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status       string           `json:"status"`
	TrackingInfo *TrackingRequest `json:"trackingInfo,omitempty"`
}

// ReviewRequest is the body of review create and update endpoints.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// Response bodies.

// Error is the uniform error response body.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	ItemID      string  `json:"itemId"`
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

// CartResponse is the cart view with its totals breakdown.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	CouponCode string             `json:"couponCode,omitempty"`
	Subtotal   float64            `json:"subtotal"`
	Tax        float64            `json:"tax"`
	Shipping   float64            `json:"shipping"`
	Discount   float64            `json:"discount"`
	Total      float64            `json:"total"`
}

func toCartResponse(view queries.GetCartQueryResponse) CartResponse {
	items := make([]CartItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, CartItemResponse{
			ItemID:      item.ItemID.String(),
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
	}

	return CartResponse{
		Items:      items,
		CouponCode: view.CouponCode,
		Subtotal:   view.Subtotal,
		Tax:        view.Tax,
		Shipping:   view.Shipping,
		Discount:   view.Discount,
		Total:      view.Total,
	}
}

// CheckoutResponse is the body returned by a successful checkout.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// OrderSummaryResponse is one entry of the order history listing.
type OrderSummaryResponse struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	Status    string    `json:"status"`
	ItemCount int       `json:"itemCount"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderItemResponse is one snapshot line of an order.
type OrderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Image     string  `json:"image,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
}

// AddressResponse is the shipping address of an order.
type AddressResponse struct {
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country"`
	PostalCode   string `json:"postalCode"`
}

// TrackingResponse is the shipment tracking detail of a shipped order.
type TrackingResponse struct {
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"trackingNumber"`
	TrackingURL    string `json:"trackingUrl,omitempty"`
}

// OrderResponse is the full order detail.
type OrderResponse struct {
	ID              string              `json:"id"`
	Number          string              `json:"number"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	ShippingAddress AddressResponse     `json:"shippingAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	CouponCode      string              `json:"couponCode,omitempty"`
	Subtotal        float64             `json:"subtotal"`
	Tax             float64             `json:"tax"`
	Shipping        float64             `json:"shipping"`
	Discount        float64             `json:"discount"`
	Total           float64             `json:"total"`
	Tracking        *TrackingResponse   `json:"tracking,omitempty"`
	DeliveredAt     *time.Time          `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
}

func toOrderResponse(view queries.GetOrderQueryResponse) OrderResponse {
	items := make([]OrderItemResponse, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Image:     item.Image,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}

	response := OrderResponse{
		ID:     view.ID.String(),
		Number: view.Number,
		Status: view.Status,
		Items:  items,
		ShippingAddress: AddressResponse{
			FullName:     view.ShippingAddress.FullName,
			PhoneNumber:  view.ShippingAddress.PhoneNumber,
			AddressLine1: view.ShippingAddress.AddressLine1,
			AddressLine2: view.ShippingAddress.AddressLine2,
			City:         view.ShippingAddress.City,
			State:        view.ShippingAddress.State,
			Country:      view.ShippingAddress.Country,
			PostalCode:   view.ShippingAddress.PostalCode,
		},
		PaymentMethod: view.PaymentMethod,
		CouponCode:    view.CouponCode,
		Subtotal:      view.Subtotal,
		Tax:           view.Tax,
		Shipping:      view.Shipping,
		Discount:      view.Discount,
		Total:         view.Total,
		DeliveredAt:   view.DeliveredAt,
		CreatedAt:     view.CreatedAt,
	}

	if view.Tracking != nil {
		response.Tracking = &TrackingResponse{
			Carrier:        view.Tracking.Carrier,
			TrackingNumber: view.Tracking.TrackingNumber,
			TrackingURL:    view.Tracking.TrackingURL,
		}
	}

	return response
}

// ReviewResponse is one review of the listing.
type ReviewResponse struct {
	ID               string    `json:"id"`
	CustomerID       string    `json:"customerId"`
	Rating           int       `json:"rating"`
	Title            string    `json:"title"`
	Comment          string    `json:"comment,omitempty"`
	VerifiedPurchase bool      `json:"verifiedPurchase"`
	HelpfulCount     int       `json:"helpfulCount"`
	CreatedAt        time.Time `json:"createdAt"`
}

// ReviewListResponse is the review listing with the aggregate rating.
type ReviewListResponse struct {
	ProductID     string           `json:"productId"`
	AverageRating float64          `json:"averageRating"`
	ReviewCount   int              `json:"reviewCount"`
	Reviews       []ReviewResponse `json:"reviews"`
}

func toReviewListResponse(view queries.GetProductReviewsQueryResponse) ReviewListResponse {
	reviews := make([]ReviewResponse, 0, len(view.Reviews))
	for _, rev := range view.Reviews {
		reviews = append(reviews, ReviewResponse{
			ID:               rev.ID.String(),
			CustomerID:       rev.CustomerID.String(),
			Rating:           rev.Rating,
			Title:            rev.Title,
			Comment:          rev.Comment,
			VerifiedPurchase: rev.VerifiedPurchase,
			HelpfulCount:     rev.HelpfulCount,
			CreatedAt:        rev.CreatedAt,
		})
	}

	return ReviewListResponse{
		ProductID:     view.ProductID.String(),
		AverageRating: view.AverageRating,
		ReviewCount:   view.ReviewCount,
		Reviews:       reviews,
	}
}

// HelpfulResponse reports the voter's state after a helpful toggle.
type HelpfulResponse struct {
	Helpful bool `json:"helpful"`
}
