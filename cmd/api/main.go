package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Vanshahuja1/shrm-backend-go/internal/config"
	"github.com/Vanshahuja1/shrm-backend-go/internal/domain/attendance"
	appHTTP "github.com/Vanshahuja1/shrm-backend-go/internal/handler/http"
	"github.com/Vanshahuja1/shrm-backend-go/internal/pkg/database"
	"github.com/Vanshahuja1/shrm-backend-go/internal/pkg/jwt"
	"github.com/Vanshahuja1/shrm-backend-go/internal/repository/postgresql"
	attendanceService "github.com/Vanshahuja1/shrm-backend-go/internal/service/attendance"
	authService "github.com/Vanshahuja1/shrm-backend-go/internal/service/auth"
	reportService "github.com/Vanshahuja1/shrm-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRecordRepo := postgresql.NewPunchRecordRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	workday, err := workdaySettings(cfg.Workday)
	if err != nil {
		log.Fatal("Error in workday config: ", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, jwtService, jwtRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, punchRecordRepo, employeeRepo, workday)
	reportSvc := reportService.NewReportService(attendanceSvc)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(jwtService, cfg.App.FrontendURL, authHandler, attendanceHandler, reportHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

func workdaySettings(cfg config.WorkdayConfig) (attendanceService.WorkdaySettings, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return attendanceService.WorkdaySettings{}, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}

	parts := strings.SplitN(cfg.WorkdayStart, ":", 2)
	if len(parts) != 2 {
		return attendanceService.WorkdaySettings{}, fmt.Errorf("invalid workday start %q", cfg.WorkdayStart)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return attendanceService.WorkdaySettings{}, fmt.Errorf("invalid workday start %q: %w", cfg.WorkdayStart, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return attendanceService.WorkdaySettings{}, fmt.Errorf("invalid workday start %q: %w", cfg.WorkdayStart, err)
	}

	return attendanceService.WorkdaySettings{
		Policy:             attendance.WorkdayPolicyFromOffDays(cfg.OffDays),
		StartHour:          hour,
		StartMinute:        minute,
		GracePeriodMinutes: cfg.GracePeriodMinutes,
		Location:           loc,
	}, nil
}
