// Package kernel provides the value objects shared by every aggregate of the
// delivery system.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Address: validated free-text postal address (shop or delivery destination)
//
// Value objects are immutable, safe for concurrent use, and invalid in their zero
// value: construct them through NewUUID / UUIDFromString / NewAddress.
package kernel
