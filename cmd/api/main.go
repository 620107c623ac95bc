package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/innovyx-tech/hrms-backend-go/internal/config"
	appHTTP "github.com/innovyx-tech/hrms-backend-go/internal/handler/http"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/cron"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/database"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/jwt"
	"github.com/innovyx-tech/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/innovyx-tech/hrms-backend-go/internal/service/attendance"
	holidayService "github.com/innovyx-tech/hrms-backend-go/internal/service/holiday"
	leaveService "github.com/innovyx-tech/hrms-backend-go/internal/service/leave"
	payrollService "github.com/innovyx-tech/hrms-backend-go/internal/service/payroll"
	shiftService "github.com/innovyx-tech/hrms-backend-go/internal/service/shift"
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

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	shiftRepo := postgresql.NewShiftPolicyRepository(db)
	workingDaysRepo := postgresql.NewWorkingDaysRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	breakRepo := postgresql.NewBreakLogRepository(db)
	holidayRepo := postgresql.NewCalendarEventRepository(db)
	empLeaveRepo := postgresql.NewEmpLeaveRepository(db)
	batchRepo := postgresql.NewPayrollBatchRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	structureRepo := postgresql.NewSalaryStructureRepository(db)
	taxRepo := postgresql.NewIncomeTaxConfigRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		breakRepo,
		employeeRepo,
		shiftRepo,
		workingDaysRepo,
		holidayRepo,
		empLeaveRepo,
		companyRepo,
	)
	payrollSvc := payrollService.NewPayrollService(
		db,
		batchRepo,
		payrollRepo,
		structureRepo,
		taxRepo,
		employeeRepo,
		attendanceRepo,
		empLeaveRepo,
		companyRepo,
	)
	shiftSvc := shiftService.NewShiftService(shiftRepo, workingDaysRepo, departmentRepo)
	leaveSvc := leaveService.NewLeaveService(leaveTypeRepo, empLeaveRepo)
	calendarSvc := holidayService.NewCalendarService(holidayRepo)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(
		attendanceRepo,
		breakRepo,
		employeeRepo,
		shiftRepo,
		workingDaysRepo,
		holidayRepo,
		empLeaveRepo,
		companyRepo,
		db,
	)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		payrollHandler,
		shiftHandler,
		leaveHandler,
		calendarHandler,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Server shutdown error:", err)
	}
}
