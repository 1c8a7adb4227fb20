package services

import (
	"fmt"
	"testing"
	"time"

	"ecocycle-service/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRecordsPagination(t *testing.T) {
	db := testutil.OpenTestDB(t)
	catalog := NewCatalogService(db)
	require.NoError(t, catalog.Seed())
	recycling := NewRecyclingService(db, catalog)
	records := NewRecordService(db)

	user, err := recycling.CreateUser("greta")
	require.NoError(t, err)

	base := time.Now().Add(-25 * time.Hour)
	for i := 0; i < 25; i++ {
		insertRecord(t, db, user.ID, fmt.Sprintf("item-%02d", i), 1, base.Add(time.Duration(i)*time.Hour))
	}

	page, err := records.ListRecords(user.ID, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.Pages)
	assert.Equal(t, 2, page.CurrentPage)
	require.Len(t, page.Records, 10)

	// Newest first: page 2 starts with the 11th most recent entry.
	assert.Equal(t, "item-14", page.Records[0].ItemName)
	for i := 1; i < len(page.Records); i++ {
		assert.True(t, !page.Records[i-1].RecycledAt.Before(page.Records[i].RecycledAt))
	}

	last, err := records.ListRecords(user.ID, 3, 10)
	require.NoError(t, err)
	assert.Len(t, last.Records, 5)

	empty, err := records.ListRecords(user.ID, 4, 10)
	require.NoError(t, err)
	assert.Empty(t, empty.Records)
	assert.Equal(t, int64(25), empty.Total)
}

func TestListRecordsClampsParameters(t *testing.T) {
	db := testutil.OpenTestDB(t)
	catalog := NewCatalogService(db)
	require.NoError(t, catalog.Seed())
	recycling := NewRecyclingService(db, catalog)
	records := NewRecordService(db)

	user, err := recycling.CreateUser("greta")
	require.NoError(t, err)
	insertRecord(t, db, user.ID, "paper", 3, time.Now())

	page, err := records.ListRecords(user.ID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 1, page.Pages)
	assert.Len(t, page.Records, 1)

	page, err = records.ListRecords(user.ID, -3, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Len(t, page.Records, 1)
}

func TestListRecordsUnknownUser(t *testing.T) {
	db := testutil.OpenTestDB(t)
	records := NewRecordService(db)

	_, err := records.ListRecords("missing-id", 1, 10)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
