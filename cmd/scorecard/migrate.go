package main

import (
	"fmt"

	"github.com/Black-And-White-Club/frolf-scorecard/app"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
)

// withMigrator opens the configured SQL database and hands its migrator to fn.
func withMigrator(c *cli.Context, fn func(m *migrate.Migrator) error) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	if !cfg.UsesSQL() {
		return fmt.Errorf("storage driver %q has no schema to migrate", cfg.Storage.Driver)
	}
	db, err := app.OpenDB(cfg)
	if err != nil {
		return err
	}
	defer func(db *bun.DB) { _ = db.Close() }(db)
	return fn(app.NewMigrator(db))
}

func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "init",
				Usage: "create migration tables",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrator) error {
						fmt.Fprintln(c.App.Writer, "Initializing migrations")
						return m.Init(c.Context)
					})
				},
			},
			{
				Name:  "migrate",
				Usage: "migrate database",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrator) error {
						if err := m.Init(c.Context); err != nil {
							return err
						}
						group, err := m.Migrate(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Fprintln(c.App.Writer, "No new migrations to run")
						} else {
							fmt.Fprintf(c.App.Writer, "Migrated to %s\n", group)
						}
						return nil
					})
				},
			},
			{
				Name:  "rollback",
				Usage: "rollback the last migration group",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrator) error {
						group, err := m.Rollback(c.Context)
						if err != nil {
							return err
						}
						if group.IsZero() {
							fmt.Fprintln(c.App.Writer, "No groups to roll back")
						} else {
							fmt.Fprintf(c.App.Writer, "Rolled back %s\n", group)
						}
						return nil
					})
				},
			},
			{
				Name:  "status",
				Usage: "print migrations status",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *migrate.Migrator) error {
						ms, err := m.MigrationsWithStatus(c.Context)
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "Migrations: %s\n", ms)
						fmt.Fprintf(c.App.Writer, "  Applied: %s\n", ms.Applied())
						fmt.Fprintf(c.App.Writer, "  Unapplied: %s\n", ms.Unapplied())
						return nil
					})
				},
			},
		},
	}
}
