// Package kernel provides core domain primitives for the order service.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//   - Money: A fixed-point decimal amount with two fraction digits, used for
//     unit prices, order totals, and partner credit
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
