package order

import (
	"errors"
	"fmt"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

const maxDescriptionLength = 255

// Item is a single line of an order: a description, a positive quantity, and
// a non-negative unit price. Items are immutable after creation; their
// subtotal is computed once, at construction, with decimal arithmetic.
type Item struct {
	id          kernel.UUID
	description string
	quantity    int
	unitPrice   decimal.Decimal
	subtotal    decimal.Decimal

	isConstructed bool
}

// NewItem creates a validated line item and computes its subtotal as
// quantity × unit price.
func NewItem(id kernel.UUID, description string, quantity int, unitPrice decimal.Decimal) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.subtotal = unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return item, nil
}

// RestoreItem reconstructs an item from persistence, trusting the stored
// subtotal instead of recomputing it.
func RestoreItem(
	id kernel.UUID,
	description string,
	quantity int,
	unitPrice decimal.Decimal,
	subtotal decimal.Decimal,
) (Item, error) {
	item, err := NewItem(id, description, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}

	item.subtotal = subtotal
	return item, nil
}

// Validate ensures the Item was created through NewItem or RestoreItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i Item) ID() kernel.UUID {
	return i.id
}

// Description returns the human-readable dish or product name.
func (i Item) Description() string {
	return i.description
}

// Quantity returns the ordered count.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity × unit price.
func (i Item) Subtotal() decimal.Decimal {
	return i.subtotal
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if len(description) > maxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"description",
			fmt.Errorf("length %d exceeds %d characters", len(description), maxDescriptionLength),
		)
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is negative", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
