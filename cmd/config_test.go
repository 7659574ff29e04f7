package cmd_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"fooddelivery/cmd"
	"fooddelivery/internal/pkg/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Services(t *testing.T) {
	tests := []struct {
		value string
		want  []rpc.Service
	}{
		{"", []rpc.Service{rpc.Identity, rpc.Catalog, rpc.Order}},
		{"all", []rpc.Service{rpc.Identity, rpc.Catalog, rpc.Order}},
		{"Order", []rpc.Service{rpc.Order}},
		{"catalog", []rpc.Service{rpc.Catalog}},
		{"identity", []rpc.Service{rpc.Identity}},
	}

	for _, tt := range tests {
		t.Run("service_"+tt.value, func(t *testing.T) {
			got, err := cmd.Config{Service: tt.value}.Services()

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown_service", func(t *testing.T) {
		_, err := cmd.Config{Service: "billing"}.Services()

		require.Error(t, err)
	})
}

func TestConfig_AddressBook(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		book, err := cmd.Config{}.AddressBook()

		require.NoError(t, err)
		assert.Equal(t, rpc.DefaultAddressBook(), book)
	})

	t.Run("file_then_env_override", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "book.yaml")
		require.NoError(t, os.WriteFile(path, []byte("catalog: 10.0.0.6:20012\norder: 10.0.0.7:20011\n"), 0o600))

		book, err := cmd.Config{AddressBookPath: path, OrderAddr: "order.internal:30011"}.AddressBook()

		require.NoError(t, err)
		assert.Equal(t, rpc.Address{Host: "10.0.0.6", Port: 20012}, book[rpc.Catalog])
		assert.Equal(t, rpc.Address{Host: "order.internal", Port: 30011}, book[rpc.Order])
		assert.Equal(t, rpc.DefaultAddressBook()[rpc.Identity], book[rpc.Identity])
	})

	t.Run("bad_override", func(t *testing.T) {
		_, err := cmd.Config{IdentityAddr: "no-port"}.AddressBook()

		require.Error(t, err)
	})
}

func TestConfig_SlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, cmd.Config{LogLevel: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, cmd.Config{LogLevel: "WARN"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, cmd.Config{}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, cmd.Config{LogLevel: "loud"}.SlogLevel())
}

func TestConfig_DSN(t *testing.T) {
	cfg := cmd.Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "food", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=food sslmode=disable", cfg.DSN())
}
