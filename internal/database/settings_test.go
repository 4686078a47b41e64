package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_GetSetDelete(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	ctx := context.Background()
	repo := newSettingsRepo(db.conn)

	// Missing key
	_, found, err := repo.Get(ctx, "opgaver:monthlyGroups")
	require.NoError(t, err)
	assert.False(t, found)

	err = repo.Set(ctx, "opgaver:monthlyGroups", `{"groupA":["NA","OL"],"groupB":["BA","AL"]}`)
	require.NoError(t, err)

	value, found, err := repo.Get(ctx, "opgaver:monthlyGroups")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"groupA":["NA","OL"],"groupB":["BA","AL"]}`, value)

	// Overwrite
	err = repo.Set(ctx, "opgaver:monthlyGroups", "{}")
	require.NoError(t, err)

	value, _, err = repo.Get(ctx, "opgaver:monthlyGroups")
	require.NoError(t, err)
	assert.Equal(t, "{}", value)

	err = repo.Delete(ctx, "opgaver:monthlyGroups")
	require.NoError(t, err)

	_, found, err = repo.Get(ctx, "opgaver:monthlyGroups")
	require.NoError(t, err)
	assert.False(t, found)

	// Deleting a missing key is not an error
	assert.NoError(t, repo.Delete(ctx, "unknown"))
}
