// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/kernel"
	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored as its lowercase string form and indexed for the
// active-orders listing. Items and logs cascade on order deletion so a
// finished order leaves no orphan rows.
type OrderDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientName string          `gorm:"size:255;not null"`
	Status     string          `gorm:"size:16;not null;index"`
	Total      decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CreatedAt  time.Time       `gorm:"not null;index"`
	Items      []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Logs       []OrderLogDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one line of an order. The subtotal is persisted
// rather than recomputed so stored totals stay stable across reads.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"size:255;not null"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for order item entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderLogDTO represents one status transition of an order. PreviousStatus
// is NULL for the creation entry.
type OrderLogDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	PreviousStatus *string   `gorm:"size:16"`
	NewStatus      string    `gorm:"size:16;not null"`
	ChangedAt      time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for order log entities.
func (OrderLogDTO) TableName() string {
	return "order_logs"
}

// fromDomain converts an order domain aggregate to its database representation,
// including item and log rows so a single Create persists the whole aggregate.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(aggregate.ID(), item))
	}

	logs := make([]OrderLogDTO, 0, len(aggregate.Logs()))
	for _, log := range aggregate.Logs() {
		logs = append(logs, logFromDomain(aggregate.ID(), log))
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		ClientName: aggregate.ClientName(),
		Status:     aggregate.Status().String(),
		Total:      aggregate.Total(),
		CreatedAt:  aggregate.CreatedAt(),
		Items:      items,
		Logs:       logs,
	}
}

func itemFromDomain(orderID kernel.UUID, item order.Item) OrderItemDTO {
	return OrderItemDTO{
		ID:          item.ID().Bytes(),
		OrderID:     orderID.Bytes(),
		Description: item.Description(),
		Quantity:    item.Quantity(),
		UnitPrice:   item.UnitPrice(),
		Subtotal:    item.Subtotal(),
	}
}

func logFromDomain(orderID kernel.UUID, log order.StatusLog) OrderLogDTO {
	var previous *string
	if prev := log.PreviousStatus(); prev != nil {
		s := prev.String()
		previous = &s
	}

	return OrderLogDTO{
		ID:             log.ID().Bytes(),
		OrderID:        orderID.Bytes(),
		PreviousStatus: previous,
		NewStatus:      log.NewStatus().String(),
		ChangedAt:      log.ChangedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and logs using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	logs := make([]order.StatusLog, 0, len(dto.Logs))
	for _, logDTO := range dto.Logs {
		log, logErr := logToDomain(logDTO)
		if logErr != nil {
			return nil, logErr
		}
		logs = append(logs, log)
	}

	return order.RestoreOrder(id, dto.ClientName, status, dto.Total, dto.CreatedAt, items, logs)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, dto.Description, dto.Quantity, dto.UnitPrice, dto.Subtotal)
}

func logToDomain(dto OrderLogDTO) (order.StatusLog, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusLog{}, err
	}

	newStatus, err := order.ParseStatus(dto.NewStatus)
	if err != nil {
		return order.StatusLog{}, err
	}

	var previous *order.Status
	if dto.PreviousStatus != nil {
		prev, prevErr := order.ParseStatus(*dto.PreviousStatus)
		if prevErr != nil {
			return order.StatusLog{}, prevErr
		}
		previous = &prev
	}

	return order.RestoreStatusLog(id, previous, newStatus, dto.ChangedAt)
}
