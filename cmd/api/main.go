package main

import (
	"fmt"
	"net/http"

	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/config"
	appHTTP "github.com/CoffeeAndCommit/backend-hrmsapp/internal/handler/http"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/database"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/pkg/jwt"
	"github.com/CoffeeAndCommit/backend-hrmsapp/internal/repository/postgresql"
	attendanceService "github.com/CoffeeAndCommit/backend-hrmsapp/internal/service/attendance"
	authService "github.com/CoffeeAndCommit/backend-hrmsapp/internal/service/auth"
	holidayService "github.com/CoffeeAndCommit/backend-hrmsapp/internal/service/holiday"
	leaveService "github.com/CoffeeAndCommit/backend-hrmsapp/internal/service/leave"
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

	txManager := postgresql.NewTxManager(db)
	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	calculator := attendanceService.NewCalculator(cfg.Attendance.HalfDayThreshold)

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, employeeRepo, holidayRepo, calculator)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRepo, attendanceRepo, employeeRepo, holidayRepo, leaveService.NewDayCounter())
	holidaySvc := holidayService.NewHolidayService(holidayRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)

	router := appHTTP.NewRouter(jwtService, authHandler, attendanceHandler, leaveHandler, holidayHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
