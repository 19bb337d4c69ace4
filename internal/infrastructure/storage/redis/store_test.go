package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resourcehub/portal/internal/infrastructure/storage/storagetest"
)

func TestStore(t *testing.T) {
	addr := os.Getenv("PORTAL_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("PORTAL_TEST_REDIS_ADDR not set")
	}

	s, err := Open(context.Background(), Config{Addr: addr, Prefix: "portal-test-" + uuid.NewString()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })

	storagetest.Run(t, s)
}

func TestStore_KeyPrefix(t *testing.T) {
	s := NewStore(nil, "")
	if got := s.key("token"); got != "portal:token" {
		t.Fatalf("expected portal:token, got %s", got)
	}
	s = NewStore(nil, "tenant")
	if got := s.key("user"); got != "tenant:user" {
		t.Fatalf("expected tenant:user, got %s", got)
	}
}

func TestConfig_Options(t *testing.T) {
	_, err := Config{}.options()
	require.Error(t, err)

	opts, err := Config{Addr: "cache:6379", DB: 2}.options()
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, clientName, opts.ClientName)
	assert.Equal(t, defaultDialTO, opts.DialTimeout)
	assert.Equal(t, defaultIOTO, opts.ReadTimeout)

	opts, err = Config{Addr: "cache:6379", Timeout: time.Second}.options()
	require.NoError(t, err)
	assert.Equal(t, time.Second, opts.DialTimeout)
}

func TestOpen_Unreachable(t *testing.T) {
	// Nothing listens on the discard port.
	_, err := Open(context.Background(), Config{Addr: "127.0.0.1:9", Timeout: 200 * time.Millisecond})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "127.0.0.1:9 unreachable")
}
