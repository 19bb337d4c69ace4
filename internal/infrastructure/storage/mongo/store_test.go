package mongo

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resourcehub/portal/internal/infrastructure/storage/storagetest"
)

func TestStore(t *testing.T) {
	uri := os.Getenv("PORTAL_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("PORTAL_TEST_MONGO_URI not set")
	}

	ctx := context.Background()
	dbName := "portal_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	s, err := Open(ctx, Config{URI: uri, Database: dbName})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.db.Drop(ctx)
		_ = s.Close(ctx)
	})

	storagetest.Run(t, s)
}

func TestConfig_ClientOptions(t *testing.T) {
	_, err := Config{Database: "portal"}.clientOptions()
	require.Error(t, err)
	_, err = Config{URI: "mongodb://localhost:27017"}.clientOptions()
	require.Error(t, err)

	opts, err := Config{URI: "mongodb://localhost:27017", Database: "portal"}.clientOptions()
	require.NoError(t, err)
	require.NotNil(t, opts.AppName)
	assert.Equal(t, appName, *opts.AppName)
	require.NotNil(t, opts.ServerSelectionTimeout)
	assert.Equal(t, defaultTimeout, *opts.ServerSelectionTimeout)
	require.NotNil(t, opts.MaxPoolSize)
	assert.Equal(t, uint64(4), *opts.MaxPoolSize)

	opts, err = Config{URI: "mongodb://localhost:27017", Database: "portal", Timeout: time.Second}.clientOptions()
	require.NoError(t, err)
	assert.Equal(t, time.Second, *opts.ServerSelectionTimeout)
}
