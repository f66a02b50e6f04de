package commands

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/review"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"
)

// ErrReviewAlreadyExists is returned when the customer has already reviewed
// the product.
var ErrReviewAlreadyExists = errors.New("customer has already reviewed this product")

// AddReviewCommandHandler handles creating a product review. The verified
// purchase flag is derived from the customer's delivered orders, and the
// product's aggregate rating is recomputed from the full review set inside
// the same transaction.
type AddReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewAddReviewCommandHandler creates a handler for review creation.
func NewAddReviewCommandHandler(uowFactory ReviewUoWFactory) AddReviewCommandHandler {
	return AddReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the review and refreshes the product's rating atomically.
func (h *AddReviewCommandHandler) Handle(ctx context.Context, cmd AddReviewCommand) error {
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

	if _, err := uow.ProductRepository().Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	reviewRepo := uow.ReviewRepository()
	_, err := reviewRepo.GetByProductAndCustomer(ctx, cmd.ProductID(), cmd.CustomerID())
	if err == nil {
		return ErrReviewAlreadyExists
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	verified, err := uow.OrderRepository().HasDeliveredOrderWithProduct(ctx, cmd.CustomerID(), cmd.ProductID())
	if err != nil {
		return err
	}

	newReview, err := review.NewReview(
		kernel.NewUUID(),
		cmd.ProductID(),
		cmd.CustomerID(),
		cmd.Rating(),
		cmd.Title(),
		cmd.Comment(),
		verified,
	)
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, newReview); err != nil {
		return err
	}

	if err = refreshProductRating(ctx, uow, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// refreshProductRating recomputes the product's aggregate rating from the
// full review set within the current transaction.
func refreshProductRating(ctx context.Context, uow ReviewUoW, productID kernel.UUID) error {
	reviews, err := uow.ReviewRepository().GetAllByProduct(ctx, productID)
	if err != nil {
		return err
	}

	return uow.ProductRepository().UpdateRating(ctx, productID, services.AggregateRating(reviews))
}
