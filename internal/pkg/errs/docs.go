// Package errs holds the typed errors shared by the domain, the use cases and
// the adapters.
//
// Every type unwraps to one sentinel, so callers classify with errors.Is and
// never inspect messages:
//
//	ErrValueIsRequired    missing argument          (ValueIsRequiredError)
//	ErrValueIsInvalid     argument breaks a rule    (ValueIsInvalidError)
//	ErrValueIsOutOfRange  argument outside a range  (ValueIsOutOfRangeError)
//	ErrObjectNotFound     lookup matched nothing    (ObjectNotFoundError)
//	ErrVersionIsInvalid   optimistic write lost     (VersionIsInvalidError)
//
// The message servers turn the first three into 400 replies, not-found into
// 404 and version conflicts into 409.
package errs
