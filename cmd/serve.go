package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/levarentz132/storing/cache"
	"github.com/levarentz132/storing/config"
	"github.com/levarentz132/storing/controllers"
	"github.com/levarentz132/storing/jobs"
	"github.com/levarentz132/storing/routes"
	"github.com/levarentz132/storing/service"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var skipMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the low-stock scheduler",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not run AutoMigrate on start")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, db, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(db)

	if !skipMigrate {
		if err := config.AutoMigrate(db); err != nil {
			return fmt.Errorf("auto-migrate: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stockCache := cache.New(ctx, config.NewRedis(cfg), cfg.CacheTTLDuration())
	svc := service.NewStockService(db, stockCache)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := routes.NewEngine(
		controllers.NewHandler(svc, cfg.LowStockThreshold),
		routes.Options{JWTSecret: []byte(cfg.JWTSecret), AllowedOrigins: cfg.AllowedOrigins()},
	)
	if cfg.JWTSecret == "" {
		log.Println("⚠️  API_JWT_SECRET kosong, endpoint tulis tidak butuh token")
	}

	scheduler, err := jobs.NewScheduler(cfg.LowStockCron, jobs.LowStockJob{
		Reporter:  svc,
		Threshold: cfg.LowStockThreshold,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	figure.NewFigure("storing", "small", true).Print()
	fmt.Println()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("API server running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		scheduler.Start()
		<-gctx.Done()
		<-scheduler.Stop().Done()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Println("server is gracefully shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server failed shutdown gracefully: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Println("server has been gracefully shutdown")
	return nil
}
