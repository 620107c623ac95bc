package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/innovyx-tech/hrms-backend-go/internal/handler/http/middleware"
	"github.com/innovyx-tech/hrms-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	payrollHandler PayrollHandler,
	shiftHandler ShiftHandler,
	leaveHandler LeaveHandler,
	calendarHandler CalendarHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendances", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/history", attendanceHandler.History)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/monthly-log", attendanceHandler.MonthlyLog)
					r.Post("/{id}/recompute", attendanceHandler.Recompute)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/types", leaveHandler.ListTypes)
				r.Post("/", leaveHandler.Submit)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/types", leaveHandler.CreateType)
					r.Patch("/{id}/status", leaveHandler.UpdateStatus)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/payroll", func(r chi.Router) {
					r.Post("/preview", payrollHandler.Preview)
					r.Post("/generate", payrollHandler.Generate)

					r.Route("/batches", func(r chi.Router) {
						r.Get("/", payrollHandler.ListBatches)
						r.Get("/{batchID}", payrollHandler.GetBatch)
						r.Post("/{batchID}/finalize", payrollHandler.Finalize)
					})

					r.Route("/salary-structures", func(r chi.Router) {
						r.Get("/", payrollHandler.ListSalaryStructures)
						r.Post("/", payrollHandler.CreateSalaryStructure)
						r.Post("/allowances", payrollHandler.AddAllowanceType)
						r.Post("/deductions", payrollHandler.AddDeductionPolicy)
					})

					r.Post("/income-tax", payrollHandler.CreateIncomeTaxConfig)
				})

				r.Route("/shifts", func(r chi.Router) {
					r.Get("/", shiftHandler.ListPolicies)
					r.Post("/", shiftHandler.CreatePolicy)
					r.Get("/{id}", shiftHandler.GetPolicy)
					r.Put("/{id}", shiftHandler.UpdatePolicy)
					r.Delete("/{id}", shiftHandler.DeletePolicy)
				})

				r.Route("/working-days", func(r chi.Router) {
					r.Post("/", shiftHandler.UpsertWorkingDays)
					r.Get("/{departmentID}", shiftHandler.GetWorkingDays)
				})

				r.Get("/departments", shiftHandler.ListDepartments)

				r.Route("/calendar", func(r chi.Router) {
					r.Get("/", calendarHandler.ListEvents)
					r.Post("/", calendarHandler.CreateEvent)
					r.Delete("/{id}", calendarHandler.DeleteEvent)
				})
			})
		})
	})

	return r
}
