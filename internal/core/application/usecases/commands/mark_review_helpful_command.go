package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrMarkReviewHelpfulCommandIsNotConstructed = errors.New(
		"MarkReviewHelpfulCommand must be created via NewMarkReviewHelpfulCommand constructor",
	)
)

// MarkReviewHelpfulCommand represents a request to toggle the voter's helpful
// vote on a review. Voting a second time removes the vote.
type MarkReviewHelpfulCommand struct { //nolint:recvcheck //using for validation
	voterID  kernel.UUID
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReviewHelpfulCommand creates a command to toggle a helpful vote.
func NewMarkReviewHelpfulCommand(voterID, reviewID kernel.UUID) (MarkReviewHelpfulCommand, error) {
	command := MarkReviewHelpfulCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVoterID(voterID),
		command.setReviewID(reviewID),
	); err != nil {
		return MarkReviewHelpfulCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReviewHelpfulCommand) Validate() error {
	return c.guard.Validate(ErrMarkReviewHelpfulCommandIsNotConstructed)
}

// VoterID returns the voting customer's identifier.
func (c MarkReviewHelpfulCommand) VoterID() kernel.UUID {
	return c.voterID
}

// ReviewID returns the review being voted on.
func (c MarkReviewHelpfulCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

func (c *MarkReviewHelpfulCommand) setVoterID(voterID kernel.UUID) error {
	if err := voterID.Validate(); err != nil {
		return err
	}

	c.voterID = voterID
	return nil
}

func (c *MarkReviewHelpfulCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}
