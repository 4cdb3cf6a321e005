package delivery

import (
	"strings"

	"deliveryquery/internal/pkg/errs"
	"deliveryquery/internal/pkg/guard"
)

// ErrClientIsNotConstructed is returned when a zero-value Client is used.
var ErrClientIsNotConstructed = errs.NewValueIsRequiredError("client must be created via NewClient constructor")

// Client identifies the owner of a delivery. The identifier is opaque and
// matched exactly (case-sensitive); the name is for display only.
type Client struct {
	id    string
	name  string
	guard guard.ConstructorGuard
}

// NewClient requires a non-blank identifier. The name may be empty.
func NewClient(id string, name string) (Client, error) {
	if strings.TrimSpace(id) == "" {
		return Client{}, errs.NewValueIsRequiredError("clientId")
	}
	return Client{
		id:    id,
		name:  strings.TrimSpace(name),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c Client) Validate() error {
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c Client) ID() string {
	return c.id
}

func (c Client) Name() string {
	return c.name
}
