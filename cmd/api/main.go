package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/employee-portal-go/internal/config"
	appHTTP "github.com/cmlabs-hris/employee-portal-go/internal/handler/http"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/cron"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/metrics"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/sse"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/storage"
	"github.com/cmlabs-hris/employee-portal-go/internal/repository/slot"
	appraisalService "github.com/cmlabs-hris/employee-portal-go/internal/service/appraisal"
	attendanceService "github.com/cmlabs-hris/employee-portal-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/employee-portal-go/internal/service/dashboard"
	leaveService "github.com/cmlabs-hris/employee-portal-go/internal/service/leave"
	notificationService "github.com/cmlabs-hris/employee-portal-go/internal/service/notification"
	profileService "github.com/cmlabs-hris/employee-portal-go/internal/service/profile"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})).With(slog.String("app", "employee-portal")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		slog.Error("Error opening storage", "driver", cfg.Storage.Driver, "error", err)
		os.Exit(1)
	}
	slog.Info("Storage opened", "driver", cfg.Storage.Driver)

	m := metrics.New()
	loc := cfg.Location()
	now := func() time.Time { return time.Now().In(loc) }

	slot.Inventory(ctx, st)
	leaveRepo := slot.NewLeaveRequestRepository(ctx, st, m)
	appraisalRepo := slot.NewAppraisalRepository(ctx, st, m)
	attendanceRepo := slot.NewAttendanceRepository(ctx, st, m)
	profileRepo := slot.NewProfileRepository(ctx, st, m)

	hub := sse.NewHub()
	notifier := notificationService.NewNotificationService(hub, m, notificationService.Config{
		TTL: cfg.Notification.TTL,
	})

	leaveSvc := leaveService.NewLeaveService(leaveRepo, notifier, now)
	appraisalSvc := appraisalService.NewAppraisalService(appraisalRepo, notifier, now)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, profileRepo, notifier, now)
	profileSvc := profileService.NewProfileService(profileRepo, notifier)
	dashboardSvc := dashboardService.NewDashboardService(leaveRepo, appraisalRepo, attendanceRepo, profileRepo, now)

	routerCfg := appHTTP.RouterConfig{
		Env:            cfg.App.Env,
		Version:        version,
		LogLevel:       cfg.App.SlogLevel(),
		AllowedOrigins: cfg.App.AllowedOrigins,
	}
	if cfg.Metrics.Enabled {
		routerCfg.Metrics = m.Handler()
	}

	router := appHTTP.NewRouter(routerCfg, appHTTP.Handlers{
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Appraisal:    appHTTP.NewAppraisalHandler(appraisalSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc, now),
		Profile:      appHTTP.NewProfileHandler(profileSvc),
		Notification: appHTTP.NewNotificationHandler(notifier),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, notifier, now, cfg.Notification.ReminderInterval).RegisterJobs(scheduler)
	scheduler.Start(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", srv.Addr, "timezone", loc.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// SSE streams only end when the hub closes their channels.
	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	scheduler.Stop()
	notifier.Close()
	if err := st.Close(); err != nil {
		slog.Error("Storage close error", "error", err)
	}
	slog.Info("Server stopped")
}
