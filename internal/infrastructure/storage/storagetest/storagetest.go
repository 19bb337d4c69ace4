// Package storagetest holds the behaviour every ports.StateStore must share.
package storagetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resourcehub/portal/internal/core/domain"
	"github.com/resourcehub/portal/internal/core/ports"
)

// Run exercises store against the StateStore contract. The store should
// start without the keys "token" and "user".
func Run(t *testing.T, store ports.StateStore) {
	t.Helper()
	ctx := context.Background()

	t.Run("ping", func(t *testing.T) {
		require.NoError(t, store.Ping(ctx))
	})

	t.Run("missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "token")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "token", []byte("abc")))
		got, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)
	})

	t.Run("overwrite", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "user", []byte(`{"id":1}`)))
		require.NoError(t, store.Set(ctx, "user", []byte(`{"id":2}`)))
		got, err := store.Get(ctx, "user")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":2}`, string(got))
	})

	t.Run("returned bytes are detached", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "token", []byte("abc")))
		got, err := store.Get(ctx, "token")
		require.NoError(t, err)
		got[0] = 'x'

		again, err := store.Get(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), again)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "token", []byte("abc")))
		require.NoError(t, store.Delete(ctx, "token"))
		_, err := store.Get(ctx, "token")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		require.NoError(t, store.Delete(ctx, "token"), "deleting a missing key is not an error")
		require.NoError(t, store.Delete(ctx, "user"))
	})
}
