package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yeremiapane/restaurant-concierge/config"
	"github.com/yeremiapane/restaurant-concierge/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			return database.AutoMigrate(db)
		},
	}
}
