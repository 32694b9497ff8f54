// Package httpapi exposes the HTTP surface of the server: authentication,
// schedule and record CRUD, analytics, and CSV export. Every request passes
// through the identity-resolving middleware before it reaches a handler.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sportvest/sportvest/internal/logging"
	"github.com/sportvest/sportvest/internal/server/auth"
	"github.com/sportvest/sportvest/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	addr      string
	logger    logging.Logger
	auth      *services.AuthService
	schedules *services.ScheduleService
	records   *services.RecordService
	analytics *services.AnalyticsService
	exports   *services.ExportService

	httpServer *http.Server
}

func NewServer(addr string, authenticator *auth.Authenticator,
	authSvc *services.AuthService, scheduleSvc *services.ScheduleService,
	recordSvc *services.RecordService, analyticsSvc *services.AnalyticsService,
	exportSvc *services.ExportService, logger logging.Logger) *Server {

	s := &Server{
		addr:      addr,
		logger:    logger.With("module", "httpapi"),
		auth:      authSvc,
		schedules: scheduleSvc,
		records:   recordSvc,
		analytics: analyticsSvc,
		exports:   exportSvc,
	}
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: authenticator.Middleware(s.routes()),
	}
	return s
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleWelcome)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /api/sports/health", s.handleSportsHealth)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)
	mux.HandleFunc("POST /api/auth/logout", s.handleLogout)

	mux.HandleFunc("POST /api/sports/schedules", s.handleScheduleCreate)
	mux.HandleFunc("GET /api/sports/schedules", s.handleScheduleList)
	mux.HandleFunc("GET /api/sports/schedules/filtered", s.handleScheduleList)
	mux.HandleFunc("GET /api/sports/schedules/upcoming", s.handleScheduleUpcoming)
	mux.HandleFunc("GET /api/sports/schedules/{id}", s.handleScheduleGet)
	mux.HandleFunc("DELETE /api/sports/schedules/{id}", s.handleScheduleDelete)

	mux.HandleFunc("POST /api/sports/records", s.handleRecordCreate)
	mux.HandleFunc("GET /api/sports/records", s.handleRecordList)
	mux.HandleFunc("GET /api/sports/records/{id}", s.handleRecordGet)
	mux.HandleFunc("PUT /api/sports/records/{id}", s.handleRecordUpdate)
	mux.HandleFunc("DELETE /api/sports/records/{id}", s.handleRecordDelete)

	mux.HandleFunc("GET /api/sports/analytics/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/sports/analytics/investment-total", s.handleInvestmentTotal)
	mux.HandleFunc("GET /api/sports/analytics/profit-total", s.handleProfitTotal)

	mux.HandleFunc("GET /api/analytics/dashboard", s.handleReportOverall)
	mux.HandleFunc("GET /api/analytics/monthly", s.handleReportMonthly)
	mux.HandleFunc("GET /api/analytics/sport-wise", s.handleReportBySport)
	mux.HandleFunc("GET /api/analytics/profit-loss", s.handleReportDateRange)

	mux.HandleFunc("GET /api/sports/export/overall", s.handleExportOverall)
	mux.HandleFunc("GET /api/sports/export/monthly", s.handleExportMonthly)
	mux.HandleFunc("GET /api/sports/export/by-sport", s.handleExportBySport)

	return mux
}

// Run starts the listener and blocks until ctx is cancelled, then drains
// in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server starting", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "http server stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
