package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Cari-app/cari-quizzies-sub001/internal/config"
	"github.com/Cari-app/cari-quizzies-sub001/internal/models"
	"github.com/Cari-app/cari-quizzies-sub001/pkg"
)

// NewMigrateCmd builds the CLI subcommand that applies schema migrations.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			db, err := pkg.InitDatabase(cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			if err := db.AutoMigrate(
				&models.Quiz{},
				&models.Stage{},
				&models.Submission{},
			); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Println("migrations applied")
			return nil
		},
	}
}
