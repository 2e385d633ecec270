package archivemigrations

import "github.com/uptrace/bun/migrate"

// Migrations holds the schema for the SQL archive store.
var Migrations = migrate.NewMigrations()
