package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
)

// ErrCartIsEmpty is returned when checking out a cart with no lines.
var ErrCartIsEmpty = errors.New("cart is empty")

// idempotencyKeyTTL bounds how long a checkout replay key stays claimable.
const idempotencyKeyTTL = 24 * time.Hour

// orderNumberAttempts bounds retries when a generated order number collides.
// Each attempt runs a fresh transaction with a regenerated number.
const orderNumberAttempts = 3

// CheckoutCommandHandler orchestrates the cart-to-order pipeline. The
// all-or-nothing guarantee is built in two layers:
//
//  1. Stock for every line is reserved through the inventory ledger's atomic
//     conditional updates, strictly before anything else is written. A failed
//     reservation releases every earlier one in reverse order and aborts.
//  2. Order creation and cart clearing share one database transaction.
//
// A crash between the layers leaves reserved stock and no order, never an
// order without reserved stock; the conservation invariant is preserved.
type CheckoutCommandHandler struct {
	uowFactory  CheckoutUoWFactory
	products    ports.ProductRepository
	idempotency ports.IdempotencyStore
	notifier    ports.Notifier
	pricing     cart.TotalsPolicy
	logger      *slog.Logger
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// The product repository operates outside the checkout transaction because
// stock reservations must commit independently of order persistence.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	products ports.ProductRepository,
	idempotency ports.IdempotencyStore,
	notifier ports.Notifier,
	pricing cart.TotalsPolicy,
	logger *slog.Logger,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory:  uowFactory,
		products:    products,
		idempotency: idempotency,
		notifier:    notifier,
		pricing:     pricing,
		logger:      logger.With("component", "checkout"),
	}
}

// Handle processes the checkout command and returns the ID of the placed
// order. When the command carries an idempotency key seen before, the order
// from the first attempt is returned and nothing is written.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	orderID := kernel.NewUUID()

	if cmd.IdempotencyKey() != "" {
		claimed, existing, err := h.idempotency.Reserve(ctx, cmd.IdempotencyKey(), orderID.String(), idempotencyKeyTTL)
		if err != nil {
			return kernel.UUID{}, err
		}
		if !claimed {
			return kernel.UUIDFromString(existing)
		}
	}

	var placedID kernel.UUID
	var err error
	for attempt := 1; ; attempt++ {
		placedID, err = h.checkout(ctx, cmd, orderID)
		if !errors.Is(err, ports.ErrOrderNumberConflict) || attempt == orderNumberAttempts {
			break
		}
		// A failed attempt released its reservations and rolled back, so the
		// retry starts clean and buildOrder draws a fresh number.
		h.logger.Warn("order number conflict, retrying with a fresh number",
			"orderId", orderID.String(), "attempt", attempt)
	}

	if err != nil && cmd.IdempotencyKey() != "" {
		if releaseErr := h.idempotency.Release(ctx, cmd.IdempotencyKey()); releaseErr != nil {
			h.logger.Warn("failed to release idempotency key",
				"key", cmd.IdempotencyKey(), "error", releaseErr)
		}
	}
	return placedID, err
}

func (h *CheckoutCommandHandler) checkout(
	ctx context.Context,
	cmd CheckoutCommand,
	orderID kernel.UUID,
) (kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if customerCart.IsEmpty() {
		return kernel.UUID{}, ErrCartIsEmpty
	}

	items, err := h.reserveAndSnapshot(ctx, customerCart)
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := h.buildOrder(cmd, orderID, customerCart, items)
	if err != nil {
		h.releaseReservations(ctx, items)
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		h.releaseReservations(ctx, items)
		return kernel.UUID{}, err
	}

	customerCart.Clear()
	if err = cartRepo.Update(ctx, customerCart); err != nil {
		h.releaseReservations(ctx, items)
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		h.releaseReservations(ctx, items)
		return kernel.UUID{}, err
	}

	h.notifier.OrderConfirmation(ctx, newOrder)
	h.logger.Info("order placed",
		"orderId", newOrder.ID().String(),
		"orderNumber", newOrder.Number(),
		"total", newOrder.Totals().Total())
	return newOrder.ID(), nil
}

// reserveAndSnapshot reserves stock for every cart line and returns the order
// item snapshots. On any failure the reservations made so far are released in
// reverse order before the error is returned.
func (h *CheckoutCommandHandler) reserveAndSnapshot(
	ctx context.Context,
	customerCart *cart.Cart,
) ([]order.Item, error) {
	items := make([]order.Item, 0, len(customerCart.Items()))

	for _, line := range customerCart.Items() {
		product, err := h.products.Get(ctx, line.ProductID())
		if err != nil {
			h.releaseReservations(ctx, items)
			return nil, err
		}

		if err = h.products.Reserve(ctx, line.ProductID(), line.Quantity()); err != nil {
			h.releaseReservations(ctx, items)
			return nil, err
		}

		item, err := order.NewItem(line.ProductID(), product.Name(), product.Image(), line.UnitPrice(), line.Quantity())
		if err != nil {
			if releaseErr := h.products.Release(ctx, line.ProductID(), line.Quantity()); releaseErr != nil {
				h.logger.Error("failed to release reservation",
					"productId", line.ProductID().String(), "error", releaseErr)
			}
			h.releaseReservations(ctx, items)
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// releaseReservations returns every reserved quantity back to stock, newest
// first. Release failures are logged and do not stop the remaining releases.
func (h *CheckoutCommandHandler) releaseReservations(ctx context.Context, items []order.Item) {
	for i := len(items) - 1; i >= 0; i-- {
		if err := h.products.Release(ctx, items[i].ProductID(), items[i].Quantity()); err != nil {
			h.logger.Error("failed to release reservation",
				"productId", items[i].ProductID().String(), "error", err)
		}
	}
}

func (h *CheckoutCommandHandler) buildOrder(
	cmd CheckoutCommand,
	orderID kernel.UUID,
	customerCart *cart.Cart,
	items []order.Item,
) (*order.Order, error) {
	customerCart.Recalculate(h.pricing)
	totals := customerCart.Totals()

	paymentInfo, err := order.NewPaymentInfo(cmd.PaymentMethod())
	if err != nil {
		return nil, err
	}

	return order.NewOrder(
		orderID,
		order.NewNumber(),
		cmd.CustomerID(),
		items,
		cmd.ShippingAddress(),
		paymentInfo,
		order.NewTotals(totals.Subtotal(), totals.Tax(), totals.Shipping(), totals.Discount(), totals.Total()),
		customerCart.Coupon().Code(),
	)
}
