package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"status-notifier/core/loader"
	"status-notifier/core/logger"
	"status-notifier/core/middleware/auth"
	"status-notifier/core/middleware/rayid"
	"status-notifier/core/scheduler"
	"status-notifier/feature/instances"
	"status-notifier/feature/notifier"
	"status-notifier/feature/subscribers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "status-notifier/docs/swagger"
)

// @title Status Notifier API
// @version 1.0
// @description Management API for tracked server instances, subscribers and notification cycles.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

const shutdownTimeout = 30 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the management server and the cycle scheduler",
	Long:  `Starts the HTTP management API and, unless disabled, the scheduler that runs a cycle on the configured cron schedule.`,
	Run: func(cmd *cobra.Command, args []string) {
		rt, err := bootstrap(true)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		engine, cleanup, err := buildEngine(context.Background(), rt)
		if err != nil {
			logg.Fatal("Failed to build reconcile engine", zap.Error(err))
		}
		defer cleanup()

		var sched *scheduler.Scheduler
		var planner notifier.Planner
		if rt.cfg.Scheduler.Enabled {
			sched, err = scheduler.New(rt.cfg.Scheduler.Schedule, engine, logg)
			if err != nil {
				logg.Fatal("Failed to create scheduler", zap.Error(err))
			}
			planner = sched
		} else {
			logg.Info("Scheduler disabled, cycles run only on demand")
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(instances.NewFeature(rt.instances, logg))
		mgr.Register(subscribers.NewFeature(rt.subscribers, logg))
		mgr.Register(notifier.NewFeature(engine, planner, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger stays public
		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))
		if !rt.cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, management API is unauthenticated")
		}

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("addr", rt.cfg.Server.Addr()))
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		if sched != nil {
			sched.Start()
		}

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if sched != nil {
			if err := sched.Stop(ctx); err != nil {
				logg.Warn("Scheduler did not stop in time", zap.Error(err))
			}
		}
		_ = app.ShutdownWithContext(ctx)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
