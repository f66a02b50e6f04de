package commands

import (
	"context"

	"storefront/internal/pkg/errs"
)

// DeleteReviewCommandHandler handles review deletion by the author. The
// product rating is recomputed from the remaining reviews in the same
// transaction; deleting the last review resets it to zero.
type DeleteReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewDeleteReviewCommandHandler creates a handler for review deletion.
func NewDeleteReviewCommandHandler(uowFactory ReviewUoWFactory) DeleteReviewCommandHandler {
	return DeleteReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the review and refreshes the product's rating atomically.
func (h *DeleteReviewCommandHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
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

	reviewRepo := uow.ReviewRepository()
	customerReview, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return err
	}
	if !customerReview.IsOwnedBy(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("review", cmd.ReviewID().String())
	}

	if err = reviewRepo.Delete(ctx, cmd.ReviewID()); err != nil {
		return err
	}

	if err = refreshProductRating(ctx, uow, customerReview.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
