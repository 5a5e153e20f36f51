package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"content_variation_generator/generator"
	"content_variation_generator/logger"
	"content_variation_generator/server"
	"content_variation_generator/tracer"
)

func ServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web form and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ServerAddr = addr
			}

			log, err := logger.New(cfg.Log.Mode)
			if err != nil {
				return err
			}
			defer log.Sync()
			if logger.IsProduction(cfg.Log.Mode) {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			shutdownTracing, err := tracer.Init(ctx, tracer.Config{
				ServiceName: cfg.Tracing.ServiceName,
				Enabled:     cfg.Tracing.Enabled,
			})
			if err != nil {
				return err
			}

			agent, err := generator.NewAgent(cfg.GenerationDelay)
			if err != nil {
				return err
			}
			srv, err := server.New(agent, cfg, log)
			if err != nil {
				return err
			}

			httpSrv := &http.Server{
				Addr:              cfg.ServerAddr,
				Handler:           srv.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errCh := make(chan error, 1)
			go func() {
				log.Info("starting web server", "addr", cfg.ServerAddr, "generation_delay", cfg.GenerationDelay)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-ctx.Done():
				log.Info("shutting down")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				log.Warn("http shutdown", "error", err)
			}
			if err := srv.Close(); err != nil {
				log.Warn("close sessions", "error", err)
			}
			return shutdownTracing(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "http listen address (overrides server_addr)")
	return cmd
}
