package rpc

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind = errors.New("unknown message kind")
	ErrNoAddress   = errors.New("no address for service")
)

// Address is a host and port a service listens on.
type Address struct {
	Host string
	Port int
}

// ParseAddress parses "host:port".
func ParseAddress(s string) (Address, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return Address{}, fmt.Errorf("invalid address %q: %w", s, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return Address{}, fmt.Errorf("invalid port in address %q", s)
	}
	return Address{Host: host, Port: port}, nil
}

func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// AddressBook is the static service -> address table, loaded once at start.
type AddressBook map[Service]Address

// DefaultAddressBook returns the local single-host layout.
func DefaultAddressBook() AddressBook {
	return AddressBook{
		Identity: {Host: "127.0.0.1", Port: 10010},
		Order:    {Host: "127.0.0.1", Port: 10011},
		Catalog:  {Host: "127.0.0.1", Port: 10012},
	}
}

// LoadAddressBook overlays a YAML file on the defaults:
//
//	identity: 10.0.0.5:10010
//	catalog: 10.0.0.6:10012
func LoadAddressBook(path string) (AddressBook, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read address book: %w", err)
	}

	var entries map[string]string
	if err = yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse address book: %w", err)
	}

	book := DefaultAddressBook()
	for name, addr := range entries {
		service := Service(name)
		if _, known := book[service]; !known {
			return nil, fmt.Errorf("address book: unknown service %q", name)
		}
		if book, err = book.With(service, addr); err != nil {
			return nil, err
		}
	}
	return book, nil
}

// With returns a copy of the book with service pointed at addr ("host:port").
// An empty addr leaves the entry as is.
func (b AddressBook) With(service Service, addr string) (AddressBook, error) {
	out := make(AddressBook, len(b)+1)
	for k, v := range b {
		out[k] = v
	}
	if addr == "" {
		return out, nil
	}

	parsed, err := ParseAddress(addr)
	if err != nil {
		return nil, err
	}
	out[service] = parsed
	return out, nil
}

// Resolver maps a message kind to the address of its service.
type Resolver interface {
	Resolve(kind Kind) (Address, error)
}

// StaticResolver resolves through the kind registry and a fixed address book.
type StaticResolver struct {
	book AddressBook
}

func NewStaticResolver(book AddressBook) StaticResolver {
	return StaticResolver{book: book}
}

func (r StaticResolver) Resolve(kind Kind) (Address, error) {
	service, ok := ServiceOf(kind)
	if !ok {
		return Address{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	addr, ok := r.book[service]
	if !ok {
		return Address{}, fmt.Errorf("%w: %s", ErrNoAddress, service)
	}
	return addr, nil
}
