package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/catalogapp/catalog/internal/database"
	"github.com/catalogapp/catalog/internal/repository/mongostore"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Schema migration commands",
	Long: "Applies the schema for the configured STORE_DRIVER. PostgreSQL uses the " +
		"embedded SQL migrations; MongoDB gets its indexes created.",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Run all pending migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMigrations(database.Up)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Rollback the last migration",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runMigrations(database.Down)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
}

func runMigrations(direction database.Direction) error {
	switch driver := viper.GetString("STORE_DRIVER"); driver {
	case "postgres":
		changed, err := database.Migrate(viper.GetString("DATABASE_URL"), direction)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println("No migrations to apply")
			return nil
		}
		if direction == database.Up {
			fmt.Println("Migrations completed successfully")
		} else {
			fmt.Println("Migration rolled back successfully")
		}
		return nil

	case "mongo":
		if direction == database.Down {
			return fmt.Errorf("migrate down is not supported for mongo")
		}
		return ensureMongoIndexes()

	case "memory":
		fmt.Println("Nothing to migrate for the memory store")
		return nil

	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want mongo, postgres or memory)", driver)
	}
}

func ensureMongoIndexes() error {
	uri := viper.GetString("MONGO_URI")
	if uri == "" {
		return fmt.Errorf("MONGO_URI is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongostore.Connect(ctx, uri)
	if err != nil {
		return err
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	if err := mongostore.EnsureIndexes(ctx, client.Database(viper.GetString("MONGO_DATABASE"))); err != nil {
		return err
	}
	fmt.Println("Indexes created successfully")
	return nil
}
