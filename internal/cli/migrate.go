package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"
	"termtrivia/internal/bank"
	"termtrivia/internal/config"
	pgmigrations "termtrivia/internal/infra/postgres/migrations"
)

// NewMigrateCmd applies database migrations for the Postgres question bank
// and optionally seeds it with the built-in questions.
func NewMigrateCmd(configPath *string) *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run question bank migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd.Context(), *configPath, seed)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "seed the default question bank if the table is empty")
	return cmd
}

func runMigrations(ctx context.Context, configPath string, seed bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.URL)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)

	if err := migrator.Init(ctx); err != nil {
		return err
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return err
	}
	log.Printf("migrations applied")

	if seed {
		if err := seedQuestions(ctx, db); err != nil {
			return err
		}
	}
	return nil
}

func seedQuestions(ctx context.Context, db *bun.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Printf("questions table already has %d rows, skipping seed", count)
		return nil
	}
	for _, q := range bank.Default() {
		data, err := json.Marshal(q)
		if err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO questions (data) VALUES (?::jsonb)`, string(data)); err != nil {
			return err
		}
	}
	log.Printf("seeded %d default questions", len(bank.Default()))
	return nil
}
