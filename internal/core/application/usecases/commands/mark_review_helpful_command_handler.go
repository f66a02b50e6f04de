package commands

import (
	"context"
)

// MarkReviewHelpfulCommandHandler handles toggling helpful votes. Helpful
// votes do not affect the product's aggregate rating, so no recomputation
// happens here.
type MarkReviewHelpfulCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewMarkReviewHelpfulCommandHandler creates a handler for helpful votes.
func NewMarkReviewHelpfulCommandHandler(uowFactory ReviewUoWFactory) MarkReviewHelpfulCommandHandler {
	return MarkReviewHelpfulCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle toggles the vote and reports whether the review is now marked
// helpful by the voter.
func (h *MarkReviewHelpfulCommandHandler) Handle(ctx context.Context, cmd MarkReviewHelpfulCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewRepo := uow.ReviewRepository()
	customerReview, err := reviewRepo.Get(ctx, cmd.ReviewID())
	if err != nil {
		return false, err
	}

	marked, err := customerReview.ToggleHelpful(cmd.VoterID())
	if err != nil {
		return false, err
	}

	if err = reviewRepo.Update(ctx, customerReview); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return marked, nil
}
