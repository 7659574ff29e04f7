// Package rpc carries typed messages between the identity, catalog and order
// services over plain HTTP.
//
// A message is a struct whose JSON object is its argument list. Its Kind alone
// decides which service receives it: kinds are registered once against a
// Service, and a static AddressBook maps each Service to a host and port.
// Calls are asynchronous and resolve a Future exactly once.
//
//	client := rpc.NewClient(rpc.NewStaticResolver(rpc.DefaultAddressBook()))
//	client.Send(ctx, messages.GetOrderDetails{OrderID: id},
//	    func(body json.RawMessage) { ... },
//	    func(err error) { ... },
//	)
package rpc

import (
	"fmt"
	"sync"
)

// Kind names a message type, e.g. "CreateOrder".
type Kind string

// Service names one of the three deployable services.
type Service string

const (
	Identity Service = "identity"
	Catalog  Service = "catalog"
	Order    Service = "order"
)

// Message is implemented by every request struct.
type Message interface {
	Kind() Kind
}

var (
	registryMu sync.RWMutex
	registry   = map[Kind]Service{}
)

// Register binds kind to the service that handles it. It is meant for package
// init and panics if kind is already bound to a different service.
func Register(kind Kind, service Service) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if existing, ok := registry[kind]; ok && existing != service {
		panic(fmt.Sprintf("rpc: kind %s already registered for %s", kind, existing))
	}
	registry[kind] = service
}

// ServiceOf returns the service a kind is addressed to.
func ServiceOf(kind Kind) (Service, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	service, ok := registry[kind]
	return service, ok
}

// KindsOf lists the kinds registered for service.
func KindsOf(service Service) []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()

	kinds := make([]Kind, 0)
	for kind, s := range registry {
		if s == service {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}
