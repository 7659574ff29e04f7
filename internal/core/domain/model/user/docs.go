// Package user holds the identity service's account aggregate: customers,
// merchants and riders, each with a fixed role and, for riders, an availability.
package user
