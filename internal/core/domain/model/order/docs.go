// Package order provides domain entities and business logic for partner
// orders. It implements the Order aggregate root with lifecycle management,
// total computation, and the credit-reservation marker.
//
// The package includes:
//   - Order: The aggregate root owning identity, line items, total, and lifecycle
//   - Item: An immutable line item (product, quantity, unit price)
//   - Status: A state machine enforcing the fixed status sequence
//   - StatusEvent: The snapshot emitted after each committed transition
//
// Key business rules:
//   - The order total is the sum of quantity × unitPrice over its items,
//     computed once at creation; items never change afterwards
//   - Status follows PENDING -> APPROVED -> PROCESSING -> SHIPPED -> DELIVERED,
//     with CANCELLED reachable from any non-terminal status
//   - DELIVERED and CANCELLED are terminal
//   - The credit reservation marker is set exactly once, when the partner's
//     credit is debited on the first PENDING -> APPROVED crossing
package order
