// Package server initializes and runs the application server. It wires the
// configuration, storage, token layer, and HTTP endpoint together and
// handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sportvest/sportvest/internal/logging"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/config"
	"github.com/sportvest/sportvest/internal/server/httpapi"
	"github.com/sportvest/sportvest/internal/server/repositories/repomanager"
	"github.com/sportvest/sportvest/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	authenticator := auth.NewAuthenticator(tokens, logger)

	authSvc := services.NewAuthService(rm.Users(), tokens, logger)
	scheduleSvc := services.NewScheduleService(rm.Users(), rm.Schedules(), logger)
	recordSvc := services.NewRecordService(rm.Users(), rm.Records(), logger)
	analyticsSvc := services.NewAnalyticsService(rm.Users(), rm.Records(), rm.Schedules(), logger)
	exportSvc := services.NewExportService(rm.Users(), rm, logger)

	srv := httpapi.NewServer(cfg.EndpointAddrHTTP, authenticator,
		authSvc, scheduleSvc, recordSvc, analyticsSvc, exportSvc, logger)

	return &App{config: cfg, logger: logger, repos: rm, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.repos.RunMigrations(ctx); err != nil {
		app.logger.Error(ctx, "migrations failed", "error", err.Error())
		return
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close failed", "error", err.Error())
	}
}
