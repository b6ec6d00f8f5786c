package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/geekganization/MOUP-sub000/internal/config"
	"github.com/geekganization/MOUP-sub000/internal/domain/payroll"
	"github.com/geekganization/MOUP-sub000/internal/domain/worktime"
	appHTTP "github.com/geekganization/MOUP-sub000/internal/handler/http"
	"github.com/geekganization/MOUP-sub000/internal/pkg/database"
	"github.com/geekganization/MOUP-sub000/internal/pkg/jwt"
	"github.com/geekganization/MOUP-sub000/internal/repository/postgresql"
	dashboardService "github.com/geekganization/MOUP-sub000/internal/service/dashboard"
	"github.com/geekganization/MOUP-sub000/internal/service/earnings"
	payrollService "github.com/geekganization/MOUP-sub000/internal/service/payroll"
	shiftService "github.com/geekganization/MOUP-sub000/internal/service/shift"
	wageService "github.com/geekganization/MOUP-sub000/internal/service/wage"
	workerDashboardService "github.com/geekganization/MOUP-sub000/internal/service/worker_dashboard"
	workplaceService "github.com/geekganization/MOUP-sub000/internal/service/workplace"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	workplaceRepo := postgresql.NewWorkplaceRepository(db)
	wageRepo := postgresql.NewWageProfileRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	routineRepo := postgresql.NewRoutineRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	payrollCalc := payrollService.NewCalculator(payroll.Rates{
		EmploymentInsurance: cfg.Payroll.EmploymentInsuranceRate,
		HealthInsurance:     cfg.Payroll.HealthInsuranceRate,
		IndustrialAccident:  cfg.Payroll.IndustrialAccidentRate,
		NationalPension:     cfg.Payroll.NationalPensionRate,
		IncomeTax:           cfg.Payroll.IncomeTaxRate,
	})
	earningsCalc := earnings.NewCalculator(
		worktime.Window{Start: cfg.Payroll.NightWindowStart, End: cfg.Payroll.NightWindowEnd},
		cfg.Payroll.NightMultiplier,
		payrollCalc,
		slog.Default(),
	)

	workplaceSvc := workplaceService.NewWorkplaceService(db, workplaceRepo)
	wageSvc := wageService.NewWageService(db, wageRepo, workplaceRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, workplaceRepo)
	dashboardSvc := dashboardService.NewDashboardService(workplaceRepo, shiftRepo, routineRepo, earningsCalc)
	workerDashboardSvc := workerDashboardService.NewWorkerDashboardService(workplaceRepo, wageRepo, shiftRepo, routineRepo, earningsCalc)

	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	workerDashboardHandler := appHTTP.NewWorkerDashboardHandler(workerDashboardSvc)
	workplaceHandler := appHTTP.NewWorkplaceHandler(workplaceSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	wageHandler := appHTTP.NewWageHandler(wageSvc)

	router := appHTTP.NewRouter(
		jwtService,
		dashboardHandler,
		workerDashboardHandler,
		workplaceHandler,
		shiftHandler,
		wageHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
		os.Exit(1)
	}
}
