package http

import (
	"log/slog"
	"os"

	"github.com/fournilsoft/backoffice-go/internal/handler/http/middleware"
	"github.com/fournilsoft/backoffice-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	frontendURL string,
	env string,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	structureHandler StructureHandler,
	recipeHandler RecipeHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "fournil-backoffice"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.GetByID)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)

					r.Get("/history", employeeHandler.GetHistory)
					r.Post("/history", employeeHandler.AddHistoryEvent)
					r.Delete("/history/{eventID}", employeeHandler.DeleteHistoryEvent)

					r.Get("/months/{monthKey}", payrollHandler.GetMonthlyData)
					r.Put("/months/{monthKey}", payrollHandler.UpdateMonthlyData)
					r.Get("/payslip/{monthKey}", payrollHandler.GetPayslip)

					// Credit adjustments touch money directly
					r.With(middleware.AdminOnly).Put("/credit", employeeHandler.UpdateCredit)
				})
			})

			r.Route("/payroll/periods/{monthKey}", func(r chi.Router) {
				r.Get("/", payrollHandler.GetPeriod)
				r.Get("/summary", payrollHandler.GetPeriodSummary)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/close", payrollHandler.ClosePeriod)
					r.Post("/reopen", payrollHandler.ReopenPeriod)
				})
			})

			r.Route("/structure", func(r chi.Router) {
				r.Route("/accounts", func(r chi.Router) {
					r.Get("/", structureHandler.ListAccounts)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.AdminOnly)
						r.Post("/", structureHandler.CreateAccount)
						r.Put("/{id}", structureHandler.UpdateAccount)
						r.Delete("/{id}", structureHandler.DeleteAccount)
					})
				})

				r.Route("/families", func(r chi.Router) {
					r.Get("/", structureHandler.ListProductFamilies)
					r.Post("/", structureHandler.CreateProductFamily)
					r.Delete("/{id}", structureHandler.DeleteProductFamily)
				})
			})

			r.Route("/recipes", func(r chi.Router) {
				r.Get("/", recipeHandler.ListRecipes)
				r.Post("/", recipeHandler.CreateRecipe)

				r.Route("/ingredients", func(r chi.Router) {
					r.Get("/", recipeHandler.ListIngredients)
					r.Post("/", recipeHandler.CreateIngredient)
					r.Put("/{id}", recipeHandler.UpdateIngredient)
					r.Delete("/{id}", recipeHandler.DeleteIngredient)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", recipeHandler.GetRecipe)
					r.Delete("/", recipeHandler.DeleteRecipe)
					r.Get("/cost", recipeHandler.GetRecipeCost)
				})
			})
		})
	})

	return r
}
