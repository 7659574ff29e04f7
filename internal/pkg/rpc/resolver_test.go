package rpc_test

import (
	"os"
	"path/filepath"
	"testing"

	"fooddelivery/internal/pkg/rpc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAddressBook(t *testing.T) {
	book := rpc.DefaultAddressBook()

	assert.Equal(t, "127.0.0.1:10010", book[rpc.Identity].String())
	assert.Equal(t, "127.0.0.1:10011", book[rpc.Order].String())
	assert.Equal(t, "127.0.0.1:10012", book[rpc.Catalog].String())
}

func TestAddressBook_With(t *testing.T) {
	book := rpc.DefaultAddressBook()

	updated, err := book.With(rpc.Order, "10.0.0.7:9000")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.7:9000", updated[rpc.Order].String())
	assert.Equal(t, "127.0.0.1:10011", book[rpc.Order].String(), "original untouched")

	same, err := book.With(rpc.Order, "")
	require.NoError(t, err)
	assert.Equal(t, book, same)

	_, err = book.With(rpc.Order, "no-port")
	require.Error(t, err)
	_, err = book.With(rpc.Order, "host:99999")
	require.Error(t, err)
}

func TestLoadAddressBook(t *testing.T) {
	dir := t.TempDir()

	t.Run("overlays_defaults", func(t *testing.T) {
		path := filepath.Join(dir, "book.yaml")
		require.NoError(t, os.WriteFile(path, []byte("catalog: 10.1.1.1:7000\n"), 0o600))

		book, err := rpc.LoadAddressBook(path)
		require.NoError(t, err)
		assert.Equal(t, "10.1.1.1:7000", book[rpc.Catalog].String())
		assert.Equal(t, "127.0.0.1:10010", book[rpc.Identity].String())
	})

	t.Run("unknown_service", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("billing: 10.1.1.1:7000\n"), 0o600))

		_, err := rpc.LoadAddressBook(path)
		require.ErrorContains(t, err, "billing")
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := rpc.LoadAddressBook(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
	})
}

func TestStaticResolver_Resolve(t *testing.T) {
	rpc.Register("ResolverTestIdentityKind", rpc.Identity)
	rpc.Register("ResolverTestOrderKind", rpc.Order)

	book := rpc.AddressBook{rpc.Identity: {Host: "10.0.0.1", Port: 1}}
	resolver := rpc.NewStaticResolver(book)

	addr, err := resolver.Resolve("ResolverTestIdentityKind")
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.1:1", addr.String())

	_, err = resolver.Resolve("ResolverTestOrderKind")
	require.ErrorIs(t, err, rpc.ErrNoAddress)

	_, err = resolver.Resolve("NeverRegistered")
	require.ErrorIs(t, err, rpc.ErrUnknownKind)
}

func TestRegister(t *testing.T) {
	rpc.Register("RegisterTestKind", rpc.Catalog)
	rpc.Register("RegisterTestKind", rpc.Catalog)

	service, ok := rpc.ServiceOf("RegisterTestKind")
	require.True(t, ok)
	assert.Equal(t, rpc.Catalog, service)
	assert.Contains(t, rpc.KindsOf(rpc.Catalog), rpc.Kind("RegisterTestKind"))

	assert.Panics(t, func() { rpc.Register("RegisterTestKind", rpc.Order) })
}
