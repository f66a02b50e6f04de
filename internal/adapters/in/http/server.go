// Package http provides the inbound HTTP adapter.
// It translates echo requests into commands and queries and maps domain
// errors onto HTTP status codes. Authentication happens upstream: the
// gateway injects the authenticated customer id via the X-User-Id header.
package http

import (
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	userIDHeader         = "X-User-Id"
	idempotencyKeyHeader = "Idempotency-Key"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addCartItemHandler       commands.AddCartItemCommandHandler
	updateCartItemHandler    commands.UpdateCartItemCommandHandler
	removeCartItemHandler    commands.RemoveCartItemCommandHandler
	clearCartHandler         commands.ClearCartCommandHandler
	applyCouponHandler       commands.ApplyCouponCommandHandler
	checkoutHandler          commands.CheckoutCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	addReviewHandler         commands.AddReviewCommandHandler
	updateReviewHandler      commands.UpdateReviewCommandHandler
	deleteReviewHandler      commands.DeleteReviewCommandHandler
	markHelpfulHandler       commands.MarkReviewHelpfulCommandHandler

	// Query handlers
	getCartHandler           queries.GetCartQueryHandler
	getMyOrdersHandler       queries.GetMyOrdersQueryHandler
	getOrderHandler          queries.GetOrderQueryHandler
	getProductReviewsHandler queries.GetProductReviewsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addCartItemHandler commands.AddCartItemCommandHandler,
	updateCartItemHandler commands.UpdateCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	applyCouponHandler commands.ApplyCouponCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	addReviewHandler commands.AddReviewCommandHandler,
	updateReviewHandler commands.UpdateReviewCommandHandler,
	deleteReviewHandler commands.DeleteReviewCommandHandler,
	markHelpfulHandler commands.MarkReviewHelpfulCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getMyOrdersHandler queries.GetMyOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getProductReviewsHandler queries.GetProductReviewsQueryHandler,
) *Server {
	return &Server{
		addCartItemHandler:       addCartItemHandler,
		updateCartItemHandler:    updateCartItemHandler,
		removeCartItemHandler:    removeCartItemHandler,
		clearCartHandler:         clearCartHandler,
		applyCouponHandler:       applyCouponHandler,
		checkoutHandler:          checkoutHandler,
		cancelOrderHandler:       cancelOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		addReviewHandler:         addReviewHandler,
		updateReviewHandler:      updateReviewHandler,
		deleteReviewHandler:      deleteReviewHandler,
		markHelpfulHandler:       markHelpfulHandler,
		getCartHandler:           getCartHandler,
		getMyOrdersHandler:       getMyOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getProductReviewsHandler: getProductReviewsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.GET("/cart", s.GetCart)
	api.POST("/cart/add", s.AddCartItem)
	api.PUT("/cart/item/:itemId", s.UpdateCartItem)
	api.DELETE("/cart/item/:itemId", s.RemoveCartItem)
	api.DELETE("/cart/clear", s.ClearCart)
	api.POST("/cart/coupon", s.ApplyCoupon)

	api.POST("/orders", s.Checkout)
	api.GET("/orders/my-orders", s.GetMyOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/cancel", s.CancelOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)

	api.GET("/products/:productId/reviews", s.GetProductReviews)
	api.POST("/products/:productId/reviews", s.AddReview)
	api.PUT("/reviews/:id", s.UpdateReview)
	api.DELETE("/reviews/:id", s.DeleteReview)
	api.POST("/reviews/:id/helpful", s.MarkReviewHelpful)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// customerID extracts the authenticated customer from the X-User-Id header.
func customerID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(userIDHeader)
	if raw == "" {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "missing "+userIDHeader+" header")
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid "+userIDHeader+" header")
	}

	return id, nil
}

func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

// cartView re-reads the customer's cart so mutations respond with fresh state.
func (s *Server) cartView(ctx echo.Context, customer kernel.UUID) error {
	query, err := queries.NewGetCartQuery(customer)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCartResponse(view))
}

// GetCart handles GET /api/v1/cart.
func (s *Server) GetCart(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	return s.cartView(ctx, customer)
}

// AddCartItem handles POST /api/v1/cart/add.
func (s *Server) AddCartItem(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	var body AddCartItemRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	productID, err := kernel.UUIDFromString(body.ProductID)
	if err != nil {
		return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("productId", err))
	}

	cmd, err := commands.NewAddCartItemCommand(customer, productID, body.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.cartView(ctx, customer)
}

// UpdateCartItem handles PUT /api/v1/cart/item/:itemId.
func (s *Server) UpdateCartItem(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	itemID, err := pathID(ctx, "itemId")
	if err != nil {
		return respondError(ctx, err)
	}

	var body UpdateCartItemRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewUpdateCartItemCommand(customer, itemID, body.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.cartView(ctx, customer)
}

// RemoveCartItem handles DELETE /api/v1/cart/item/:itemId.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	itemID, err := pathID(ctx, "itemId")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(customer, itemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.cartView(ctx, customer)
}

// ClearCart handles DELETE /api/v1/cart/clear.
func (s *Server) ClearCart(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	cmd, err := commands.NewClearCartCommand(customer)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.cartView(ctx, customer)
}

// ApplyCoupon handles POST /api/v1/cart/coupon.
func (s *Server) ApplyCoupon(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	var body ApplyCouponRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewApplyCouponCommand(customer, body.Code)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.applyCouponHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return s.cartView(ctx, customer)
}

// Checkout handles POST /api/v1/orders.
func (s *Server) Checkout(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	var body CheckoutRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	address, err := order.NewAddress(
		body.ShippingAddress.FullName,
		body.ShippingAddress.PhoneNumber,
		body.ShippingAddress.AddressLine1,
		body.ShippingAddress.AddressLine2,
		body.ShippingAddress.City,
		body.ShippingAddress.State,
		body.ShippingAddress.Country,
		body.ShippingAddress.PostalCode,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	method, err := order.PaymentMethodFromString(body.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCheckoutCommand(customer, address, method, ctx.Request().Header.Get(idempotencyKeyHeader))
	if err != nil {
		return respondError(ctx, err)
	}

	orderID, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetMyOrders handles GET /api/v1/orders/my-orders.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	query, err := queries.NewGetMyOrdersQuery(customer)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getMyOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, summary := range orders {
		response = append(response, OrderSummaryResponse{
			ID:        summary.ID.String(),
			Number:    summary.Number,
			Status:    summary.Status,
			ItemCount: summary.ItemCount,
			Total:     summary.Total,
			CreatedAt: summary.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(customer, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(view))
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	orderID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(customer, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
// Fulfillment side endpoint: moves an order forward through its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var body UpdateOrderStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	var tracking order.Tracking
	if body.TrackingInfo != nil {
		tracking = order.NewTracking(
			body.TrackingInfo.Carrier,
			body.TrackingInfo.TrackingNumber,
			body.TrackingInfo.TrackingURL,
		)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, tracking)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProductReviews handles GET /api/v1/products/:productId/reviews.
func (s *Server) GetProductReviews(ctx echo.Context) error {
	productID, err := pathID(ctx, "productId")
	if err != nil {
		return respondError(ctx, err)
	}

	sort, err := queries.ReviewSortFromString(ctx.QueryParam("sort"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProductReviewsQuery(productID, sort)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getProductReviewsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toReviewListResponse(view))
}

// AddReview handles POST /api/v1/products/:productId/reviews.
func (s *Server) AddReview(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	productID, err := pathID(ctx, "productId")
	if err != nil {
		return respondError(ctx, err)
	}

	var body ReviewRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewAddReviewCommand(customer, productID, body.Rating, body.Title, body.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.addReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateReview handles PUT /api/v1/reviews/:id.
func (s *Server) UpdateReview(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	reviewID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var body ReviewRequest
	if err = ctx.Bind(&body); err != nil {
		return respondError(ctx, errs.NewValueIsInvalidError("body"))
	}

	cmd, err := commands.NewUpdateReviewCommand(customer, reviewID, body.Rating, body.Title, body.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteReview handles DELETE /api/v1/reviews/:id.
func (s *Server) DeleteReview(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	reviewID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteReviewCommand(customer, reviewID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteReviewHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkReviewHelpful handles POST /api/v1/reviews/:id/helpful.
func (s *Server) MarkReviewHelpful(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return err
	}

	reviewID, err := pathID(ctx, "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewMarkReviewHelpfulCommand(customer, reviewID)
	if err != nil {
		return respondError(ctx, err)
	}

	helpful, err := s.markHelpfulHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, HelpfulResponse{Helpful: helpful})
}
