package subscribers

import (
	"context"
	"testing"

	"status-notifier/core/database"
	"status-notifier/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

func newSubscriber(email string, keys ...string) *models.Subscriber {
	sub := &models.Subscriber{Firstname: "Ada", Lastname: "Lovelace", Email: email}
	sub.SetKeys(keys)
	return sub
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := NewStore(setupDB(t))
	ctx := context.Background()

	sub := newSubscriber("ada@example.com", "NA1", "EU2")
	require.NoError(t, store.Save(ctx, sub))
	require.NotZero(t, sub.ID)

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ada@example.com", all[0].Email)
	assert.Equal(t, []string{"NA1", "EU2"}, all[0].Keys())
}

func TestStore_SaveReplacesServers(t *testing.T) {
	db := setupDB(t)
	store := NewStore(db)
	ctx := context.Background()

	sub := newSubscriber("ada@example.com", "NA1", "EU2")
	require.NoError(t, store.Save(ctx, sub))

	replacement := newSubscriber("ada@example.com", "AP3")
	replacement.ID = sub.ID
	replacement.Lastname = "Byron"
	require.NoError(t, store.Save(ctx, replacement))

	got, err := store.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, sub.ID, got.ID)
	assert.Equal(t, "Byron", got.Lastname)
	assert.Equal(t, []string{"AP3"}, got.Keys())

	var rows int64
	require.NoError(t, db.Model(&models.SubscriberServer{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestStore_FindByServers(t *testing.T) {
	store := NewStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSubscriber("a@example.com", "NA1", "EU2")))
	require.NoError(t, store.Save(ctx, newSubscriber("b@example.com", "EU2")))
	require.NoError(t, store.Save(ctx, newSubscriber("c@example.com", "AP3")))

	watchers, err := store.FindByServers(ctx, "EU2")
	require.NoError(t, err)
	require.Len(t, watchers, 2)
	assert.Equal(t, "a@example.com", watchers[0].Email)
	assert.Equal(t, "b@example.com", watchers[1].Email)
	assert.Equal(t, []string{"NA1", "EU2"}, watchers[0].Keys())

	none, err := store.FindByServers(ctx, "XX9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_FindByEmailMissing(t *testing.T) {
	store := NewStore(setupDB(t))

	_, err := store.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
