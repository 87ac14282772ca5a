package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	appHTTP "github.com/pontolabs/ponto-backend-go/internal/handler/http"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/cron"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	presenceService "github.com/pontolabs/ponto-backend-go/internal/service/presence"
	punchService "github.com/pontolabs/ponto-backend-go/internal/service/punch"
	timesheetService "github.com/pontolabs/ponto-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	punchRepo := postgresql.NewPunchRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	dailyRecordRepo := postgresql.NewDailyRecordRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo, cfg.Attendance)
	presenceSvc := presenceService.NewPresenceService(punchRepo, employeeRepo, cfg.Attendance)
	timesheetSvc := timesheetService.NewTimesheetService(punchRepo, employeeRepo, cfg.Attendance)

	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	presenceHandler := appHTTP.NewPresenceHandler(presenceSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	scheduler := cron.NewScheduler()
	timesheetJobs := cron.NewTimesheetJobs(punchRepo, employeeRepo, dailyRecordRepo, db, cfg.Attendance)
	timesheetJobs.RegisterJobs(scheduler)
	scheduler.Start()

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		punchHandler,
		presenceHandler,
		timesheetHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:    port,
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
