package commands

import (
	"context"

	"storefront/internal/pkg/errs"
)

// UpdateReviewCommandHandler handles review edits. Only the author may edit,
// and the product rating is recomputed in the same transaction.
type UpdateReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewUpdateReviewCommandHandler creates a handler for review edits.
func NewUpdateReviewCommandHandler(uowFactory ReviewUoWFactory) UpdateReviewCommandHandler {
	return UpdateReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle edits the review and refreshes the product's rating atomically.
func (h *UpdateReviewCommandHandler) Handle(ctx context.Context, cmd UpdateReviewCommand) error {
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

	if err = customerReview.Edit(cmd.Rating(), cmd.Title(), cmd.Comment()); err != nil {
		return err
	}

	if err = reviewRepo.Update(ctx, customerReview); err != nil {
		return err
	}

	if err = refreshProductRating(ctx, uow, customerReview.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
