package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	pg "pets-api/internal/adapters/storage/postgres"
	"pets-api/internal/config"
	"pets-api/internal/domain/pets"
	"pets-api/internal/platform/httpclient"
	"pets-api/internal/platform/logger"
	"pets-api/internal/router"

	"github.com/spf13/cobra"
)

// @title Pets API
// @version 1.0
// @description CRUD en memoria de mascotas (id, name, age, size).
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	var (
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:           "pets-api",
		Short:         "HTTP API de mascotas en memoria",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logger.ParseLevel(logLevel)
			}
			if cmd.Flags().Changed("log-format") {
				cfg.LogFormat = logger.ParseFormat(logFormat)
			}
			return serve(cmd.Context(), cfg)
		},
	}

	f := root.Flags()
	f.StringVar(&cfg.Port, "port", cfg.Port, "puerto HTTP (env PORT)")
	f.StringVar(&cfg.DBDSN, "db-dsn", cfg.DBDSN, "DSN de Postgres; vacío usa el store in-memory (env DB_DSN)")
	f.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML con las mascotas iniciales (env SEED_FILE)")
	f.BoolVar(&cfg.StrictNotFound, "strict-not-found", cfg.StrictNotFound, "responder 404 cuando el id no existe (env STRICT_NOT_FOUND)")
	f.StringVar(&logLevel, "log-level", cfg.LogLevel.String(), "debug|info|warn|error (env LOG_LEVEL)")
	f.StringVar(&logFormat, "log-format", string(cfg.LogFormat), "text|json (env LOG_FORMAT)")

	root.AddCommand(newPingCmd(cfg))
	return root
}

// newPingCmd sirve como healthcheck de contenedor: exit 0 si /ping responde pong!.
func newPingCmd(cfg config.Config) *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Llama GET /ping en una instancia corriendo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := httpclient.NewWithBaseURL(addr, timeout)
			if err != nil {
				return err
			}

			res, err := c.Do(cmd.Context(), http.MethodGet, "/ping", nil)
			if err != nil {
				return err
			}
			if res.StatusCode != http.StatusOK || strings.TrimSpace(string(res.Body)) != "pong!" {
				return &httpclient.HTTPError{StatusCode: res.StatusCode, Body: string(res.Body)}
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(res.Body))
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "http://localhost:"+cfg.Port, "URL base del servicio")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "timeout del request")
	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	seed := pets.DefaultSeed()
	if cfg.SeedFile != "" {
		loaded, err := pets.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Error("cannot load seed file", map[string]any{"path": cfg.SeedFile, "error": err.Error()})
			return err
		}
		seed = loaded
	}

	opts := router.Options{
		Logger:         log,
		Seed:           seed,
		StrictNotFound: cfg.StrictNotFound,
	}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			log.Error("cannot open postgres", map[string]any{"error": err.Error()})
			return err
		}
		defer db.Close()

		repo := pg.NewPetsRepo(db)
		if err := repo.EnsureSchema(ctx, seed); err != nil {
			log.Error("cannot prepare pets schema", map[string]any{"error": err.Error()})
			return err
		}
		opts.PetRepo = repo
		log.Info("using postgres store", nil)
	} else {
		log.Info("using in-memory store", map[string]any{"seed": len(seed)})
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			log.Error("server error", map[string]any{"error": err.Error()})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
