package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathstudio/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		gin.SetMode(cfg.Server.Mode)

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		srv := api.New(api.Options{
			Engine:            a.Engine,
			Extension:         a.Extension(),
			Problems:          a.Store.ProblemRepo(),
			Events:            a.Store.EventRepo(),
			Metrics:           a.Metrics,
			Logger:            logger,
			OnProblemsChanged: a.ReloadPool,
		})
		httpSrv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: srv.Router(),
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening",
				zap.String("addr", cfg.Server.Addr),
				zap.Int("extension_problems", a.Pool.Len()))
			if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			logger.Error("could not stop server gracefully", zap.Error(err))
			return httpSrv.Close()
		}
		logger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
