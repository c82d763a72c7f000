// Package order provides the domain model for cherry orders: the Order
// aggregate root plus its Status, Item, and Recipient value objects.
//
// Key business rules:
//   - Orders are created in pending status; the store assigns the id and
//     stamps the creation time on first persistence.
//   - Status is one of pending, reviewed, shipped, completed. Transitions
//     between valid statuses are unrestricted; staff tooling moves orders
//     both forward and backward.
//   - A tracking number may be attached at any point and never changes the
//     status on its own.
//   - Items are an ordered sequence of (variety, size, boxes) entries;
//     serialization to the storage format happens only at the repository
//     boundary.
//   - Orders are never deleted.
//
// All objects are built through validating constructors; zero-value
// instances fail Validate.
package order
