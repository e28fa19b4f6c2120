package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swifttrack/backoffice/internal/domain/document"
)

func TestCreateThenGetRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Create(ctx, document.CollectionDrivers, document.Document{
		"firstName": "Amina",
		"isDriverOnline": true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	rec, err := s.Get(ctx, document.CollectionDrivers, id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Amina", rec.Data["firstName"])
	assert.Equal(t, true, rec.Data["isDriverOnline"])
}

func TestGetAbsentIsNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), document.CollectionDrivers, "missing")
	assert.True(t, errors.Is(err, document.ErrNotFound))
}

func TestDeleteOfAbsentSucceeds(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Delete(ctx, document.CollectionDrivers, "never-existed"))

	id, err := s.Create(ctx, document.CollectionDrivers, document.Document{"firstName": "Joe"})
	require.NoError(t, err)
	assert.NoError(t, s.Delete(ctx, document.CollectionDrivers, id))
	assert.NoError(t, s.Delete(ctx, document.CollectionDrivers, id))
}

func TestUpdateMergesPartialData(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	id, err := s.Create(ctx, document.CollectionDrivers, document.Document{
		"firstName":  "Amina",
		"lastName":   "Diallo",
		"isApproved": false,
	})
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, document.CollectionDrivers, id, document.Document{"isApproved": true}))

	rec, err := s.Get(ctx, document.CollectionDrivers, id)
	require.NoError(t, err)
	assert.Equal(t, "Amina", rec.Data["firstName"])
	assert.Equal(t, true, rec.Data["isApproved"])
}

func TestUpdateAbsentIsNotFound(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	err := s.Update(ctx, document.CollectionDrivers, "missing", document.Document{"a": 1})
	assert.True(t, errors.Is(err, document.ErrNotFound))

	// A failed update must not leave a document behind.
	_, err = s.Get(ctx, document.CollectionDrivers, "missing")
	assert.True(t, errors.Is(err, document.ErrNotFound))
}

func TestQueryFiltersOrderAndLimit(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.Seed(document.CollectionDeliveryRequests, "t1", document.Document{
		"driverId": "d1", "status": "completed", "createdAt": "2025-01-01T10:00:00Z",
	})
	s.Seed(document.CollectionDeliveryRequests, "t2", document.Document{
		"driverId": "d1", "status": "pending", "createdAt": "2025-02-01T10:00:00Z",
	})
	s.Seed(document.CollectionDeliveryRequests, "t3", document.Document{
		"driverId": "d2", "status": "completed", "createdAt": "2025-03-01T10:00:00Z",
	})

	byDriver, err := s.Query(ctx, document.CollectionDeliveryRequests,
		map[string]interface{}{"driverId": "d1"}, nil, nil, 0)
	require.NoError(t, err)
	assert.Len(t, byDriver, 2)

	completed, err := s.Query(ctx, document.CollectionDeliveryRequests, nil,
		&document.InFilter{Field: "status", Values: []interface{}{"completed", "ended", "delivered"}},
		&document.Order{Field: "createdAt", Desc: true}, 1)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "t3", completed[0].ID)
}
