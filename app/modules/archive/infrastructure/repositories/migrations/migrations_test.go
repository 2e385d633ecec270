package archivemigrations

import (
	"context"
	"testing"

	archivedb "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/repositories"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/migrate"
)

func TestMigrations_SQLite(t *testing.T) {
	ctx := context.Background()
	db, err := archivedb.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	migrator := migrate.NewMigrator(db, Migrations)
	require.NoError(t, migrator.Init(ctx))

	group, err := migrator.Migrate(ctx)
	require.NoError(t, err)
	require.False(t, group.IsZero(), "expected the kv_entries migration to run")

	store := archivedb.NewSQLStore(db)
	require.NoError(t, store.Set(ctx, "k", "v"))
	v, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "v", v)

	group, err = migrator.Rollback(ctx)
	require.NoError(t, err)
	require.False(t, group.IsZero())

	_, _, err = store.Get(ctx, "k")
	require.Error(t, err, "table should be gone after rollback")
}
