package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	claudeadapter "pet-companion/internal/adapters/assistant"
	"pet-companion/internal/adapters/auth/token"
	"pet-companion/internal/adapters/breedfacts"
	pg "pet-companion/internal/adapters/storage/postgres"
	"pet-companion/internal/config"
	"pet-companion/internal/domain/assistant"
	"pet-companion/internal/middleware"
	"pet-companion/internal/platform/logger"
	"pet-companion/internal/ports/auth"
	breedsport "pet-companion/internal/ports/breeds"
	"pet-companion/internal/router"
)

// version se sobreescribe en build con -ldflags "-X main.version=...".
var version = "dev"

var cfg *config.Config

// @title Pet Companion API
// @version 1.0
// @description API de seguimiento de mascotas: perfiles, carnet de salud, diario, galería y timeline unificado.
// @BasePath /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:   "pet-companion",
		Short: "Pet Companion — API de seguimiento y bienestar de mascotas",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var seedDemo bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Arranca el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), seedDemo)
		},
	}
	cmd.Flags().BoolVar(&seedDemo, "seed-demo", false, "carga la mascota y los registros de demo al arrancar")

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Muestra la versión del binario",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}

func runServe(ctx context.Context, seedDemo bool) error {
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Logging.Level),
		Format: logger.ParseFormat(cfg.Logging.Format),
		App:    cfg.Logging.App,
	})

	var db *sql.DB
	if dsn := strings.TrimSpace(cfg.DB.DSN); dsn != "" {
		if cfg.DB.Migrate {
			if err := pg.Migrate(dsn); err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}
		}

		opened, err := pg.Open(dsn)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer opened.Close()
		db = opened
		log.Info("usando almacenamiento postgres", nil)
	} else {
		log.Info("sin DB_DSN: almacenamiento in-memory (modo dev)", nil)
	}

	var verifier auth.AuthVerifier
	if strings.TrimSpace(cfg.Auth.BaseURL) != "" {
		client, err := token.NewClient(token.Config{
			BaseURL: cfg.Auth.BaseURL,
			APIKey:  cfg.Auth.APIKey,
		})
		if err != nil {
			return fmt.Errorf("auth client: %w", err)
		}
		verifier = token.NewVerifier(client)
		log.Info("verificación de tokens habilitada", logger.Fields{"base_url": cfg.Auth.BaseURL})
	} else {
		log.Warn("sin verifier: modo dev con X-Debug-User-ID", nil)
	}

	var responder assistant.Responder
	if strings.TrimSpace(cfg.Assistant.APIKey) != "" {
		responder = claudeadapter.NewClaudeResponder(cfg.Assistant.APIKey, cfg.Assistant.Model, log)
		log.Info("asistente conectado a Claude", logger.Fields{"model": cfg.Assistant.Model})
	}

	var breedResolver breedsport.Resolver
	if strings.TrimSpace(cfg.BreedFacts.BaseURL) != "" {
		client, err := breedfacts.NewClient(breedfacts.Config{
			BaseURL: cfg.BreedFacts.BaseURL,
			APIKey:  cfg.BreedFacts.APIKey,
		})
		if err != nil {
			return fmt.Errorf("breed catalog client: %w", err)
		}
		breedResolver = client
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(middleware.RateLimiterConfig{
			Rate:            rate.Limit(float64(cfg.RateLimit.PerMinute) / 60.0),
			Burst:           cfg.RateLimit.Burst,
			CleanupInterval: 5 * time.Minute,
		})
		defer limiter.Stop()
	}

	handler := router.NewRouter(router.Options{
		Log:           log,
		AuthVerifier:  verifier,
		DB:            db,
		Responder:     responder,
		BreedResolver: breedResolver,
		RateLimiter:   limiter,
		SeedDemo:      seedDemo,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", logger.Fields{"addr": cfg.Server.Addr, "version": version})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
