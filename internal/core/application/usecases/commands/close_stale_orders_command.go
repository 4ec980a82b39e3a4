package commands

import (
	"errors"
	"fmt"

	"completion/internal/pkg/errs"
	"completion/internal/pkg/guard"
)

var (
	ErrCloseStaleOrdersCommandIsNotConstructed = errors.New(
		"CloseStaleOrdersCommand must be created via NewCloseStaleOrdersCommand constructor",
	)
)

// CloseStaleOrdersCommand represents one auto-close sweep over orders that
// were delivered but never closed. Orders older than the configured number of
// hours are transitioned to their closed state, at most batchSize per sweep.
// A dry run reports what would be closed without mutating anything.
type CloseStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	hours     int
	batchSize int
	dryRun    bool

	guard guard.ConstructorGuard
}

// NewCloseStaleOrdersCommand creates a sweep command.
// Hours and batch size must both be positive.
func NewCloseStaleOrdersCommand(hours int, batchSize int, dryRun bool) (CloseStaleOrdersCommand, error) {
	cmd := CloseStaleOrdersCommand{
		dryRun: dryRun,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setHours(hours),
		cmd.setBatchSize(batchSize),
	); err != nil {
		return CloseStaleOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCloseStaleOrdersCommandIsNotConstructed if validation fails.
func (c CloseStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCloseStaleOrdersCommandIsNotConstructed)
}

// Hours returns the age threshold for closing delivered orders.
func (c CloseStaleOrdersCommand) Hours() int {
	return c.hours
}

// BatchSize returns the maximum number of orders closed per sweep.
func (c CloseStaleOrdersCommand) BatchSize() int {
	return c.batchSize
}

// DryRun reports whether the sweep only counts eligible orders.
func (c CloseStaleOrdersCommand) DryRun() bool {
	return c.dryRun
}

func (c *CloseStaleOrdersCommand) setHours(hours int) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("hours",
			fmt.Errorf("%d is not greater than 0", hours))
	}
	c.hours = hours
	return nil
}

func (c *CloseStaleOrdersCommand) setBatchSize(batchSize int) error {
	if batchSize <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("batchSize",
			fmt.Errorf("%d is not greater than 0", batchSize))
	}
	c.batchSize = batchSize
	return nil
}
