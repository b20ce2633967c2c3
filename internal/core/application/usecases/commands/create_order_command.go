package commands

import (
	"errors"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientNameIsRequired      = errors.New("client name is required")
	ErrItemsAreRequired          = errors.New("order must contain at least one item")
	ErrItemDescriptionIsRequired = errors.New("item description is required")
	ErrItemQuantityIsInvalid     = errors.New("item quantity must be at least 1")
	ErrItemUnitPriceIsInvalid    = errors.New("item unit price cannot be negative")
)

// OrderItemInput carries one requested line item into CreateOrderCommand.
// The request-shape validation proper lives in the HTTP adapter; the command
// re-checks the same rules so the core cannot be driven into an invalid
// state by other callers.
type OrderItemInput struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// CreateOrderCommand represents a request to create a new order with its
// line items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "Carlos Gómez", items)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientName string
	items      []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, the client name is not empty, and
// every item has a description, a positive quantity, and a non-negative
// unit price.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientName string,
	items []OrderItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientName(clientName),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientName returns the name of the client placing the order.
func (c CreateOrderCommand) ClientName() string {
	return c.clientName
}

// Items returns the requested line items.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return append([]OrderItemInput(nil), c.items...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return ErrClientNameIsRequired
	}
	c.clientName = clientName
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if item.Description == "" {
			return ErrItemDescriptionIsRequired
		}
		if item.Quantity < 1 {
			return ErrItemQuantityIsInvalid
		}
		if item.UnitPrice.IsNegative() {
			return ErrItemUnitPriceIsInvalid
		}
	}
	c.items = append([]OrderItemInput(nil), items...)
	return nil
}
