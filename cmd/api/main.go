package main

import (
	"fmt"
	"net/http"

	"github.com/timekeeper-ph/timekeeper-backend-go/internal/config"
	appHTTP "github.com/timekeeper-ph/timekeeper-backend-go/internal/handler/http"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/database"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/pkg/jwt"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/repository/postgresql"
	attendanceService "github.com/timekeeper-ph/timekeeper-backend-go/internal/service/attendance"
	cashAdvanceService "github.com/timekeeper-ph/timekeeper-backend-go/internal/service/cashadvance"
	employerService "github.com/timekeeper-ph/timekeeper-backend-go/internal/service/employer"
	payrollService "github.com/timekeeper-ph/timekeeper-backend-go/internal/service/payroll"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/service/schedule"
	"github.com/timekeeper-ph/timekeeper-backend-go/internal/service/timesheet"
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

	loc := cfg.Location()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	employerRepo := postgresql.NewEmployerRepository(db)
	cashAdvanceRepo := postgresql.NewCashAdvanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	resolver := schedule.NewResolver()
	classifier := timesheet.NewClassifier(loc)

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		employerRepo,
		resolver,
		loc,
	)
	payrollSvc := payrollService.NewPayrollService(
		db,
		payrollRepo,
		attendanceRepo,
		employeeRepo,
		employerRepo,
		cashAdvanceRepo,
		resolver,
		classifier,
		loc,
	)
	cashAdvanceSvc := cashAdvanceService.NewCashAdvanceService(cashAdvanceRepo, employeeRepo, loc)
	employerSvc := employerService.NewEmployerService(employerRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, payrollSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	cashAdvanceHandler := appHTTP.NewCashAdvanceHandler(cashAdvanceSvc)
	employerHandler := appHTTP.NewEmployerHandler(employerSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		attendanceHandler,
		payrollHandler,
		cashAdvanceHandler,
		employerHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
