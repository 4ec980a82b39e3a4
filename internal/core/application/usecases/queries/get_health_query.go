package queries

import (
	"errors"

	"completion/internal/pkg/guard"
)

var (
	ErrGetHealthQueryIsNotConstructed = errors.New(
		"GetHealthQuery must be created via NewGetHealthQuery constructor",
	)
)

// GetHealthQuery probes process and datastore liveness.
// This is a parameterless query.
type GetHealthQuery struct {
	guard guard.ConstructorGuard
}

// NewGetHealthQuery creates a health probe query.
func NewGetHealthQuery() GetHealthQuery {
	return GetHealthQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetHealthQueryIsNotConstructed if validation fails.
func (q GetHealthQuery) Validate() error {
	return q.guard.Validate(ErrGetHealthQueryIsNotConstructed)
}

// GetHealthQueryResponse reports the liveness probe outcome.
type GetHealthQueryResponse struct {
	DatabaseReachable bool
}
