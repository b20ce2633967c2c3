// Package order provides the domain entities and business rules for the
// restaurant order lifecycle.
//
// The package includes:
//   - Order: the aggregate root owning line items and the status log
//   - Item: an immutable order line with a computed subtotal
//   - StatusLog: an append-only record of a status transition
//   - Status: the state machine initiated -> sent -> delivered
//
// Key business rules:
//   - an order's total always equals the sum of its items' subtotals
//   - an order is created with at least one item; items never change afterwards
//   - every transition, including creation, produces exactly one StatusLog
//   - delivered is terminal and is realized as deletion of the order, so a
//     stored order is always initiated or sent
package order
