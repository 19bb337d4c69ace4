package file

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resourcehub/portal/internal/infrastructure/storage/storagetest"
)

func TestStore_Plain(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.json"), "")
	require.NoError(t, err)
	storagetest.Run(t, s)
}

func TestStore_Encrypted(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "state.bin"), "s3cret")
	require.NoError(t, err)
	storagetest.Run(t, s)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.json")

	s, err := Open(path, "")
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "token", []byte("T")))

	reopened, err := Open(path, "")
	require.NoError(t, err)
	got, err := reopened.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("T"), got)
}

func TestStore_EncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.bin")

	s, err := Open(path, "s3cret")
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "token", []byte("visible-token")))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, bytes.Contains(raw, []byte("visible-token")))

	reopened, err := Open(path, "s3cret")
	require.NoError(t, err)
	got, err := reopened.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, []byte("visible-token"), got)

	_, err = Open(path, "other")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestOpen_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Open(path, "")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("", "")
	assert.Error(t, err)
}
