package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrProductUnavailable is returned when the requested product is not sellable.
var ErrProductUnavailable = errors.New("product is not available")

// AddCartItemCommandHandler handles the business logic for adding a product
// to a cart. The cart is created lazily on the customer's first add.
//
// The availability check compares the requested quantity plus what is already
// in the cart against live stock, so a customer cannot stage more units than
// exist. Stock itself is only decremented at checkout.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	pricing    cart.TotalsPolicy
}

// NewAddCartItemCommandHandler creates a handler for cart add operations.
func NewAddCartItemCommandHandler(uowFactory CartUoWFactory, pricing cart.TotalsPolicy) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
	}
}

// Handle processes the add command: loads or creates the cart, checks live
// stock, merges the line, and recomputes totals in one transaction.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if !product.IsActive() {
		return ErrProductUnavailable
	}

	cartRepo := uow.CartRepository()
	customerCart, created, err := loadOrCreateCart(ctx, cartRepo, cmd.CustomerID())
	if err != nil {
		return err
	}

	requested := cmd.Quantity() + customerCart.QuantityOf(cmd.ProductID())
	if requested > product.Stock() {
		return errs.NewInsufficientStockError(product.Name(), requested, product.Stock())
	}

	if err = customerCart.AddItem(cmd.ProductID(), cmd.Quantity(), product.Price()); err != nil {
		return err
	}
	customerCart.Recalculate(h.pricing)

	if created {
		err = cartRepo.Add(ctx, customerCart)
	} else {
		err = cartRepo.Update(ctx, customerCart)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// loadOrCreateCart fetches the customer's cart or creates a fresh one when
// none exists yet. The second return value reports whether the cart is new
// and must be inserted rather than updated.
func loadOrCreateCart(
	ctx context.Context,
	repo ports.CartRepository,
	customerID kernel.UUID,
) (*cart.Cart, bool, error) {
	customerCart, err := repo.GetByCustomer(ctx, customerID)
	if err == nil {
		return customerCart, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	customerCart, err = cart.NewCart(kernel.NewUUID(), customerID)
	if err != nil {
		return nil, false, err
	}
	return customerCart, true, nil
}
