package catalog

import (
	"testing"
	"time"

	"tourvia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReplace_SwapsSnapshotWholesale(t *testing.T) {
	svc := NewCatalogService(nil, zap.NewNop())
	svc.Replace(testTours())
	require.Len(t, svc.Snapshot(), 3)

	svc.Replace([]models.Tour{{ID: "only", Name: "Solo"}})

	snapshot := svc.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "only", snapshot[0].ID)
}

func TestSnapshot_ReturnsCopy(t *testing.T) {
	svc := seededCatalog()

	snapshot := svc.Snapshot()
	snapshot[0].Name = "mutated"

	fresh := svc.Snapshot()
	assert.Equal(t, "Langkawi Island Escape", fresh[0].Name)
}

func TestGetByID(t *testing.T) {
	svc := seededCatalog()

	tour, ok := svc.GetByID("t2")
	require.True(t, ok)
	assert.Equal(t, "Cameron Highlands Trek", tour.Name)

	_, ok = svc.GetByID("missing")
	assert.False(t, ok)
}

func TestSubscribe_ReceivesReplacementSnapshots(t *testing.T) {
	svc := NewCatalogService(nil, zap.NewNop())
	id, ch := svc.Subscribe()
	defer svc.Unsubscribe(id)

	svc.Replace(testTours())

	select {
	case snapshot := <-ch:
		assert.Len(t, snapshot, 3)
	case <-time.After(time.Second):
		t.Fatal("expected a snapshot delivery")
	}
}

func TestUnsubscribe_ClosesChannel(t *testing.T) {
	svc := NewCatalogService(nil, zap.NewNop())
	id, ch := svc.Subscribe()

	svc.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open)
}
