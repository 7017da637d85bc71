package main

import (
	"fmt"
	"net/http"

	"github.com/fournilsoft/backoffice-go/internal/config"
	appHTTP "github.com/fournilsoft/backoffice-go/internal/handler/http"
	"github.com/fournilsoft/backoffice-go/internal/pkg/database"
	"github.com/fournilsoft/backoffice-go/internal/pkg/jwt"
	"github.com/fournilsoft/backoffice-go/internal/repository/postgresql"
	authService "github.com/fournilsoft/backoffice-go/internal/service/auth"
	employeeService "github.com/fournilsoft/backoffice-go/internal/service/employee"
	payrollService "github.com/fournilsoft/backoffice-go/internal/service/payroll"
	recipeService "github.com/fournilsoft/backoffice-go/internal/service/recipe"
	structureService "github.com/fournilsoft/backoffice-go/internal/service/structure"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	structureRepo := postgresql.NewStructureRepository(db)
	recipeRepo := postgresql.NewRecipeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, payrollRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, ledgerRepo)
	structureSvc := structureService.NewStructureService(structureRepo)
	recipeSvc := recipeService.NewRecipeService(db, recipeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	structureHandler := appHTTP.NewStructureHandler(structureSvc)
	recipeHandler := appHTTP.NewRecipeHandler(recipeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		employeeHandler,
		payrollHandler,
		structureHandler,
		recipeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
