package order

import (
	"errors"
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/pkg/errs"
)

// ErrStatusLogIsNotConstructed is returned when a StatusLog was not created
// through NewStatusLog or RestoreStatusLog.
var ErrStatusLogIsNotConstructed = errors.New(
	"StatusLog must be created via NewStatusLog or RestoreStatusLog")

// StatusLog is an append-only record of a single status transition. The
// creation event has no previous status; every later transition records both
// sides. Log rows are never mutated and are removed only by cascade when
// their order is deleted.
type StatusLog struct {
	id        kernel.UUID
	previous  *Status
	newStatus Status
	changedAt time.Time

	isConstructed bool
}

// NewStatusLog creates a transition record. previous is nil for the creation
// event and must otherwise be a valid status.
func NewStatusLog(id kernel.UUID, previous *Status, newStatus Status, changedAt time.Time) (StatusLog, error) {
	if err := id.Validate(); err != nil {
		return StatusLog{}, err
	}
	if err := newStatus.Validate(); err != nil {
		return StatusLog{}, err
	}
	if previous != nil {
		if err := previous.Validate(); err != nil {
			return StatusLog{}, err
		}
	}
	if changedAt.IsZero() {
		return StatusLog{}, errs.NewValueIsRequiredError("changed at")
	}

	return StatusLog{
		id:            id,
		previous:      previous,
		newStatus:     newStatus,
		changedAt:     changedAt,
		isConstructed: true,
	}, nil
}

// RestoreStatusLog reconstructs a transition record from persistence.
func RestoreStatusLog(id kernel.UUID, previous *Status, newStatus Status, changedAt time.Time) (StatusLog, error) {
	return NewStatusLog(id, previous, newStatus, changedAt)
}

// Validate ensures the StatusLog was created through a constructor.
func (l StatusLog) Validate() error {
	if !l.isConstructed {
		return ErrStatusLogIsNotConstructed
	}
	return nil
}

// ID returns the log entry's unique identifier.
func (l StatusLog) ID() kernel.UUID {
	return l.id
}

// PreviousStatus returns the status before the transition, or nil for the
// creation event.
func (l StatusLog) PreviousStatus() *Status {
	if l.previous == nil {
		return nil
	}
	prev := *l.previous
	return &prev
}

// NewStatus returns the status after the transition.
func (l StatusLog) NewStatus() Status {
	return l.newStatus
}

// ChangedAt returns when the transition happened.
func (l StatusLog) ChangedAt() time.Time {
	return l.changedAt
}
