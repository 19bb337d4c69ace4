package memory

import (
	"testing"

	"github.com/resourcehub/portal/internal/infrastructure/storage/storagetest"
)

func TestStore(t *testing.T) {
	storagetest.Run(t, New())
}
