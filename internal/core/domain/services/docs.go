// Package services contains domain services: business logic that spans an
// aggregate and data owned by another service.
//
// The package includes:
//   - OrderDispatcher: chooses a free rider for an unassigned order
package services
