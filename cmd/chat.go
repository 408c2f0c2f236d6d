package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yeremiapane/restaurant-concierge/chatbot"
	"github.com/yeremiapane/restaurant-concierge/config"
	"github.com/yeremiapane/restaurant-concierge/database"
	"github.com/yeremiapane/restaurant-concierge/router"
)

// chat -> percakapan di terminal memakai database yang sama dengan server
func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the concierge from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			if err := database.AutoMigrate(db); err != nil {
				return err
			}

			deps := router.NewDeps(db, chatbot.NewMemoryStore(), 0)
			sessionID := chatbot.NewSessionID()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "bot>", chatbot.Greeting)
			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				fmt.Fprint(out, "you> ")
				if !scanner.Scan() {
					fmt.Fprintln(out)
					return scanner.Err()
				}
				text := strings.TrimSpace(scanner.Text())
				if text == "" {
					continue
				}
				if text == "/quit" || text == "/exit" {
					return nil
				}

				turn, err := deps.Chat.Send(cmd.Context(), sessionID, text)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "bot>", turn.Reply)
			}
		},
	}
}
