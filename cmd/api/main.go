package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peoplehub/hr-portal-go/internal/config"
	appHTTP "github.com/peoplehub/hr-portal-go/internal/handler/http"
	"github.com/peoplehub/hr-portal-go/internal/pkg/database"
	"github.com/peoplehub/hr-portal-go/internal/pkg/jwt"
	"github.com/peoplehub/hr-portal-go/internal/pkg/storage"
	"github.com/peoplehub/hr-portal-go/internal/repository/postgresql"
	attendanceService "github.com/peoplehub/hr-portal-go/internal/service/attendance"
	authService "github.com/peoplehub/hr-portal-go/internal/service/auth"
	dashboardService "github.com/peoplehub/hr-portal-go/internal/service/dashboard"
	employeeService "github.com/peoplehub/hr-portal-go/internal/service/employee"
	exceptionService "github.com/peoplehub/hr-portal-go/internal/service/exception"
	leaveService "github.com/peoplehub/hr-portal-go/internal/service/leave"
	"github.com/peoplehub/hr-portal-go/internal/service/master"
	payrollService "github.com/peoplehub/hr-portal-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	earlyOutRepo := postgresql.NewEarlyOutRepository(db)
	lateArrivalRepo := postgresql.NewLateArrivalRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	attendanceSvc, err := attendanceService.NewAttendanceService(shiftRepo, employeeRepo, cfg.Office, nil)
	if err != nil {
		log.Fatal("Failed to initialize attendance service:", err)
	}
	dashboardSvc, err := dashboardService.NewDashboardService(shiftRepo, employeeRepo, announcementRepo, leaveRepo, cfg.Office, nil)
	if err != nil {
		log.Fatal("Failed to initialize dashboard service:", err)
	}
	employeeSvc, err := employeeService.NewEmployeeService(txManager, employeeRepo, userRepo, shiftRepo, fileStorage, cfg.Office, nil)
	if err != nil {
		log.Fatal("Failed to initialize employee service:", err)
	}
	payrollSvc, err := payrollService.NewPayrollService(shiftRepo, leaveRepo, employeeRepo, cfg.Leave, cfg.Office, nil)
	if err != nil {
		log.Fatal("Failed to initialize payroll service:", err)
	}
	exceptionSvc := exceptionService.NewExceptionService(txManager, earlyOutRepo, lateArrivalRepo, shiftRepo, nil)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRepo, employeeRepo, cfg.Leave, nil)
	departmentSvc := master.NewDepartmentService(departmentRepo)
	announcementSvc := master.NewAnnouncementService(announcementRepo)

	router := appHTTP.NewRouter(cfg.App, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Exception:  appHTTP.NewExceptionHandler(exceptionSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Master:     appHTTP.NewMasterHandler(departmentSvc, announcementSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
