package cmd

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/MarvinNL046/cutiepawspedia/internal/config"
)

// migrationsPath is the relative path to the migrations directory.
const migrationsPath = "file://migrations"

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Run database migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"up", "down"},
		RunE: func(_ *cobra.Command, args []string) error {
			return runMigrate(args[0])
		},
	}
	return cmd
}

func runMigrate(direction string) error {
	if direction != "up" && direction != "down" {
		return fmt.Errorf("invalid direction %q (must be \"up\" or \"down\")", direction)
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	m, err := migrate.New(migrationsPath, buildMigrateURL(cfg))
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	fmt.Printf("migration %s completed\n", direction)
	return nil
}

// buildMigrateURL constructs a PostgreSQL URL from the database config.
func buildMigrateURL(cfg *config.Config) string {
	db := cfg.Database
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		db.User, db.Password, db.Host, db.Port, db.Name, db.SSLMode,
	)
}
