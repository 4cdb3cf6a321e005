// Package queries contains read-only use cases. Every query is a guarded value
// object paired with a handler that loads a delivery snapshot from the
// repository and answers it with services.DeliveryQueryService.
package queries

import (
	"errors"
	"strings"

	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/guard"
)

var (
	ErrGetClientDeliveriesQueryIsNotConstructed = errors.New(
		"GetClientDeliveriesQuery must be created via NewGetClientDeliveriesQuery constructor",
	)
)

// GetClientDeliveriesQuery asks for the short info of every delivery ordered by
// one client. The client identifier is matched exactly.
//
// Example:
//
//	query, err := NewGetClientDeliveriesQuery("client-42")
//	if err != nil {
//	    return err
//	}
//	infos, err := handler.Handle(ctx, query)
type GetClientDeliveriesQuery struct {
	clientID string

	guard guard.ConstructorGuard
}

// NewGetClientDeliveriesQuery creates the query. A blank client identifier is
// rejected with errs.ValueIsRequiredError.
func NewGetClientDeliveriesQuery(clientID string) (GetClientDeliveriesQuery, error) {
	if strings.TrimSpace(clientID) == "" {
		return GetClientDeliveriesQuery{}, errs.NewValueIsRequiredError("clientID")
	}

	return GetClientDeliveriesQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetClientDeliveriesQueryIsNotConstructed)
}

func (q GetClientDeliveriesQuery) ClientID() string {
	return q.clientID
}
