package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"interviewai-backend/internal/bootstrap"
	"interviewai-backend/internal/shared/config"
	"interviewai-backend/internal/shared/server"
	"interviewai-backend/internal/shared/storage/db"
	"interviewai-backend/internal/shared/telemetry"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		if flags.Changed("port") {
			cfg.Port, _ = flags.GetString("port")
		}
		migrate, _ := flags.GetBool("migrate")
		return serve(cmd.Context(), cfg, migrate)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("port", "p", "", "listen port (overrides PORT)")
	serveCmd.Flags().Bool("migrate", false, "apply database migrations before serving")
}

func serve(parent context.Context, cfg config.Config, migrate bool) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := telemetry.L()
	if !cfg.LogDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	application, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("closing app", zap.Error(err))
		}
	}()

	if migrate && application.DB != nil {
		if err := db.RunMigrations(ctx, application.DB); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              server.Addr(cfg.Port),
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting api server",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.Env),
			zap.String("version", version),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
