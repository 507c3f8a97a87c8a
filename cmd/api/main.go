package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/giftnest/backoffice-go/internal/config"
	appHTTP "github.com/giftnest/backoffice-go/internal/handler/http"
	"github.com/giftnest/backoffice-go/internal/pkg/clock"
	"github.com/giftnest/backoffice-go/internal/pkg/database"
	"github.com/giftnest/backoffice-go/internal/pkg/jwt"
	"github.com/giftnest/backoffice-go/internal/repository/postgresql"
	attendanceService "github.com/giftnest/backoffice-go/internal/service/attendance"
	authService "github.com/giftnest/backoffice-go/internal/service/auth"
	leaveService "github.com/giftnest/backoffice-go/internal/service/leave"
	notificationService "github.com/giftnest/backoffice-go/internal/service/notification"
	performanceService "github.com/giftnest/backoffice-go/internal/service/performance"
	reportService "github.com/giftnest/backoffice-go/internal/service/report"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	appClock, err := clock.New(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Error loading timezone: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.QueryTimeout)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	penalty, err := decimal.NewFromString(cfg.Attendance.TardinessPenalty)
	if err != nil {
		log.Fatal("Invalid TARDINESS_PENALTY: ", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	clockEventRepo := postgresql.NewClockEventRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	shiftPolicy := attendanceService.NewShiftPolicy(cfg.Attendance)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(
		txRunner,
		clockEventRepo,
		userRepo,
		leaveRequestRepo,
		appClock,
		shiftPolicy,
		penalty,
	)
	leaveSvc := leaveService.NewLeaveService(
		txRunner,
		leaveRequestRepo,
		userRepo,
		notificationRepo,
		appClock,
		cfg.App.FrontendURL,
	)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, userRepo)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	reportSvc := reportService.NewReportService(userRepo, performanceRepo, attendanceSvc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	performanceHandler := appHTTP.NewPerformanceHandler(performanceSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		reportHandler,
		performanceHandler,
		notificationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
