package queries

import (
	"errors"

	"deliveryquery/internal/pkg/guard"
)

var (
	ErrGetAverageGapsPerDirectionQueryIsNotConstructed = errors.New(
		"GetAverageGapsPerDirectionQuery must be created via NewGetAverageGapsPerDirectionQuery constructor",
	)
)

// GetAverageGapsPerDirectionQuery asks for the average travel time of every
// route. A delivery missing its loading start or arrival end counts as a zero
// minute gap.
type GetAverageGapsPerDirectionQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAverageGapsPerDirectionQuery() GetAverageGapsPerDirectionQuery {
	return GetAverageGapsPerDirectionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAverageGapsPerDirectionQuery) Validate() error {
	return q.guard.Validate(ErrGetAverageGapsPerDirectionQueryIsNotConstructed)
}
