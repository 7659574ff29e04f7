package cmd

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fooddelivery/internal/pkg/rpc"
)

// ServiceAll runs the three services in one process.
const ServiceAll = "all"

type Config struct {
	Service string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AddressBookPath string
	IdentityAddr    string
	CatalogAddr     string
	OrderAddr       string

	JWTSecret string
	TokenTTL  time.Duration

	LogLevel string

	DispatchEnabled  bool
	DispatchSchedule string
}

// Services lists the services this process runs.
func (c Config) Services() ([]rpc.Service, error) {
	switch strings.ToLower(strings.TrimSpace(c.Service)) {
	case "", ServiceAll:
		return []rpc.Service{rpc.Identity, rpc.Catalog, rpc.Order}, nil
	case string(rpc.Identity):
		return []rpc.Service{rpc.Identity}, nil
	case string(rpc.Catalog):
		return []rpc.Service{rpc.Catalog}, nil
	case string(rpc.Order):
		return []rpc.Service{rpc.Order}, nil
	default:
		return nil, fmt.Errorf("unknown service %q", c.Service)
	}
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// AddressBook starts from the defaults, overlays the YAML file if one is set,
// then the per-service overrides.
func (c Config) AddressBook() (rpc.AddressBook, error) {
	book := rpc.DefaultAddressBook()
	if c.AddressBookPath != "" {
		loaded, err := rpc.LoadAddressBook(c.AddressBookPath)
		if err != nil {
			return nil, err
		}
		book = loaded
	}

	overrides := []struct {
		service rpc.Service
		addr    string
	}{
		{rpc.Identity, c.IdentityAddr},
		{rpc.Catalog, c.CatalogAddr},
		{rpc.Order, c.OrderAddr},
	}
	for _, o := range overrides {
		var err error
		if book, err = book.With(o.service, o.addr); err != nil {
			return nil, fmt.Errorf("%s address: %w", o.service, err)
		}
	}

	return book, nil
}

// SlogLevel parses LogLevel, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
