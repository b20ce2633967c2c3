package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle. It owns its line items
// and its chronological status log.
//
// Order maintains these invariants:
//   - the total always equals the sum of the items' subtotals, recomputed
//     synchronously when the items are attached, never at read time
//   - a persisted order holds at least one item
//   - the status follows the fixed flow Initiated -> Sent -> Delivered;
//     an order whose status would become Delivered is deleted, so Delivered
//     is never observable on a stored order
//   - every transition, including creation, appends exactly one StatusLog
type Order struct {
	id         kernel.UUID
	clientName string
	status     Status
	total      decimal.Decimal
	createdAt  time.Time
	items      []Item
	logs       []StatusLog

	isConstructed bool
}

// NewOrder creates an order in Initiated status with the given items,
// computes the total, and records the creation log entry (no previous
// status). At least one item is required.
func NewOrder(id kernel.UUID, clientName string, items []Item, now time.Time) (*Order, error) {
	o := &Order{
		status:        Initiated,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.createdAt = now
	o.calculateTotal()

	creationLog, err := NewStatusLog(kernel.NewUUID(), nil, Initiated, now)
	if err != nil {
		return nil, err
	}
	o.logs = []StatusLog{creationLog}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without recomputing
// the total or appending log entries. The stored status must be one of the
// persistable states; Delivered orders do not exist in storage.
func RestoreOrder(
	id kernel.UUID,
	clientName string,
	status Status,
	total decimal.Decimal,
	createdAt time.Time,
	items []Item,
	logs []StatusLog,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.total = total
	o.createdAt = createdAt
	o.items = append([]Item(nil), items...)
	o.logs = append([]StatusLog(nil), logs...)
	return o, nil
}

// Validate ensures the Order instance was properly constructed. It should be
// called when reconstructing orders from persistence or other boundaries.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientName returns the name of the client who placed the order.
func (o *Order) ClientName() string {
	return o.clientName
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the order total, always equal to the sum of the items'
// subtotals.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns the line items in insertion order.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Logs returns the status log in chronological order.
func (o *Order) Logs() []StatusLog {
	return append([]StatusLog(nil), o.logs...)
}

// Advance moves the order to the next status in the flow and appends the
// corresponding log entry.
//
// The returned bool is false when the current status has no successor: the
// order is left untouched and no log is recorded. That case is defensive;
// Delivered orders are deleted, so in practice every stored order can
// advance.
//
// After a transition to Delivered the caller is expected to delete the
// order rather than persist the status.
func (o *Order) Advance(now time.Time) (StatusLog, bool, error) {
	next, ok := o.status.Next()
	if !ok {
		return StatusLog{}, false, nil
	}

	previous := o.status
	log, err := NewStatusLog(kernel.NewUUID(), &previous, next, now)
	if err != nil {
		return StatusLog{}, false, err
	}

	o.status = next
	o.logs = append(o.logs, log)
	return log, true, nil
}

// calculateTotal recomputes the total from the items' subtotals. Called
// whenever the item collection is attached; items are immutable afterwards.
func (o *Order) calculateTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	if len(clientName) > maxDescriptionLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"client name",
			fmt.Errorf("length %d exceeds %d characters", len(clientName), maxDescriptionLength),
		)
	}
	o.clientName = clientName
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}
