package commands

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrRestorePendingStockCommandIsNotConstructed = errors.New(
		"RestorePendingStockCommand must be created via NewRestorePendingStockCommand constructor",
	)
)

// RestorePendingStockCommand triggers a pass over the pending stock
// restorations, releasing each back to stock. Issued periodically by the
// restoration job.
type RestorePendingStockCommand struct {
	guard guard.ConstructorGuard
}

// NewRestorePendingStockCommand creates a restoration pass command.
func NewRestorePendingStockCommand() RestorePendingStockCommand {
	return RestorePendingStockCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RestorePendingStockCommand) Validate() error {
	return c.guard.Validate(ErrRestorePendingStockCommandIsNotConstructed)
}
