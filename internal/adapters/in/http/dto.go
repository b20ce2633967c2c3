package http

import (
	"fmt"
	"time"

	"github.com/R4UZ3R/olaclick-backend-challenge/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// envelope is the shared response shape. Message and Data are omitted when
// empty so list responses stay `{success, data}`.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// validationEnvelope carries per-field messages for a rejected payload.
type validationEnvelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type createOrderRequest struct {
	ClientName string                   `json:"client_name"`
	Items      []createOrderItemRequest `json:"items"`
}

type createOrderItemRequest struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

const maxNameLength = 255

// validate returns one message per offending field, keyed the way the
// payload spells them (items.0.quantity).
func (r createOrderRequest) validate() map[string]string {
	fieldErrors := make(map[string]string)

	if r.ClientName == "" {
		fieldErrors["client_name"] = "client_name is required"
	} else if len(r.ClientName) > maxNameLength {
		fieldErrors["client_name"] = "client_name must not exceed 255 characters"
	}

	if len(r.Items) == 0 {
		fieldErrors["items"] = "items must contain at least one entry"
	}

	for i, item := range r.Items {
		if item.Description == "" {
			fieldErrors[fmt.Sprintf("items.%d.description", i)] = "description is required"
		} else if len(item.Description) > maxNameLength {
			fieldErrors[fmt.Sprintf("items.%d.description", i)] = "description must not exceed 255 characters"
		}

		if item.Quantity < 1 {
			fieldErrors[fmt.Sprintf("items.%d.quantity", i)] = "quantity must be at least 1"
		}

		if item.UnitPrice.IsNegative() {
			fieldErrors[fmt.Sprintf("items.%d.unit_price", i)] = "unit_price must not be negative"
		}
	}

	return fieldErrors
}

type orderItemResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

type orderLogResponse struct {
	ID             string    `json:"id"`
	PreviousStatus *string   `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ChangedAt      time.Time `json:"changed_at"`
}

// orderResponse serves both the listing (no logs) and the detail view.
// Money fields render as fixed two-decimal strings.
type orderResponse struct {
	ID         string              `json:"id"`
	ClientName string              `json:"client_name"`
	Status     string              `json:"status"`
	Total      string              `json:"total"`
	CreatedAt  time.Time           `json:"created_at"`
	Items      []orderItemResponse `json:"items"`
	Logs       []orderLogResponse  `json:"logs,omitempty"`
}

func toOrderSummary(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemResponse{
			ID:          item.ID().String(),
			Description: item.Description(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice().StringFixed(2),
			Subtotal:    item.Subtotal().StringFixed(2),
		})
	}

	return orderResponse{
		ID:         o.ID().String(),
		ClientName: o.ClientName(),
		Status:     o.Status().String(),
		Total:      o.Total().StringFixed(2),
		CreatedAt:  o.CreatedAt(),
		Items:      items,
	}
}

func toOrderDetail(o *order.Order) orderResponse {
	response := toOrderSummary(o)

	logs := make([]orderLogResponse, 0, len(o.Logs()))
	for _, log := range o.Logs() {
		var previous *string
		if prev := log.PreviousStatus(); prev != nil {
			s := prev.String()
			previous = &s
		}

		logs = append(logs, orderLogResponse{
			ID:             log.ID().String(),
			PreviousStatus: previous,
			NewStatus:      log.NewStatus().String(),
			ChangedAt:      log.ChangedAt(),
		})
	}

	response.Logs = logs
	return response
}
