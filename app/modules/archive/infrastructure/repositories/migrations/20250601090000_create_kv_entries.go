package archivemigrations

import (
	"context"
	"fmt"

	archivedb "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/repositories"
	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating kv_entries table...")

		if _, err := db.NewCreateTable().Model((*archivedb.KVEntry)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("kv_entries table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping kv_entries table...")

		if _, err := db.NewDropTable().Model((*archivedb.KVEntry)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("kv_entries table dropped successfully!")
		return nil
	})
}
