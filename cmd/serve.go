package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/yeremiapane/restaurant-concierge/chatbot"
	"github.com/yeremiapane/restaurant-concierge/config"
	"github.com/yeremiapane/restaurant-concierge/database"
	"github.com/yeremiapane/restaurant-concierge/middlewares"
	"github.com/yeremiapane/restaurant-concierge/router"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

const sweepInterval = 5 * time.Minute

func newServeCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, chat concierge and realtime hub",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if cfg.GinMode == "release" {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			db, err := config.InitDB(cfg)
			if err != nil {
				return err
			}
			if migrateUp {
				if err := database.AutoMigrate(db); err != nil {
					return err
				}
			}

			store, stop, err := openSessionStore(cfg)
			if err != nil {
				return err
			}
			defer stop()

			deps := router.NewDeps(db, store, cfg.ChatTypingDelay)
			deps.CORSOrigin = cfg.CORSOrigin
			deps.ChatLimiter = middlewares.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           router.SetupRouter(deps),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			utils.InfoLogger.Println("Shutting down...")
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancelShutdown()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	return cmd
}

// openSessionStore memilih store session chat. stop menutup sweeper/redis.
func openSessionStore(cfg *config.Config) (chatbot.SessionStore, func(), error) {
	if cfg.ChatStore == config.ChatStoreRedis {
		client, err := config.InitRedis(cfg)
		if err != nil {
			return nil, nil, err
		}
		utils.InfoLogger.Println("Chat sessions stored in redis")
		return chatbot.NewRedisStore(client, cfg.ChatSessionTTL), func() { _ = client.Close() }, nil
	}

	store := chatbot.NewMemoryStore()
	sweeper, err := chatbot.NewSweeper(store, cfg.ChatSessionTTL, sweepInterval)
	if err != nil {
		return nil, nil, err
	}
	sweeper.Start()
	return store, func() {
		if err := sweeper.Stop(); err != nil {
			utils.ErrorLogger.Errorf("Stop sweeper: %v", err)
		}
	}, nil
}
