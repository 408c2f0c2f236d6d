package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/yeremiapane/restaurant-concierge/config"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

func NewRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "concierge",
		Short:         "Restaurant front-of-house backend: tables, reservations, feedback and the chat concierge",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env opsional; env yang sudah di-set tidak ditimpa
			if err := godotenv.Load(envFile); err != nil {
				if cmd.Flags().Changed("env-file") {
					return fmt.Errorf("load %s: %w", envFile, err)
				}
			}
			utils.InitLoggerWithLevel(os.Getenv("LOG_LEVEL"))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to the .env file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newChatCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig dipakai semua subcommand
func loadConfig() (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
