package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kitawise-server/src/handlers"
	"kitawise-server/src/middleware"
	"kitawise-server/src/records"
)

type Deps struct {
	Projects *records.ProjectService
	Expenses *records.ExpenseService
	Goals    *records.GoalService
	Users    *records.UserService

	JWTSecret      string
	AllowedOrigins []string
}

func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(deps.AllowedOrigins))
	r.Use(middleware.IdentityMiddleware(deps.JWTSecret))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.Register(deps.Users, deps.JWTSecret))
		r.Post("/auth/login", handlers.Login(deps.Users, deps.JWTSecret))

		// Projects
		r.Get("/projects", handlers.ListProjects(deps.Projects))
		r.Post("/projects", handlers.CreateProject(deps.Projects))
		r.Put("/projects/{id}", handlers.UpdateProject(deps.Projects))
		r.Delete("/projects/{id}", handlers.DeleteProject(deps.Projects))

		// Expenses
		r.Get("/expenses", handlers.ListExpenses(deps.Expenses))
		r.Post("/expenses", handlers.CreateExpense(deps.Expenses))
		r.Put("/expenses/{id}", handlers.UpdateExpense(deps.Expenses))
		r.Delete("/expenses/{id}", handlers.DeleteExpense(deps.Expenses))

		// Goals
		r.Get("/goals", handlers.ListGoals(deps.Goals))
		r.Post("/goals", handlers.CreateGoal(deps.Goals))
		r.Put("/goals/{id}", handlers.UpdateGoal(deps.Goals))
		r.Delete("/goals/{id}", handlers.DeleteGoal(deps.Goals))

		// Derived metrics
		r.Get("/dashboard", handlers.GetDashboard(deps.Projects, deps.Expenses, deps.Goals))
		r.Get("/insights", handlers.GetInsights(deps.Projects, deps.Expenses, deps.Goals))
	})

	return r
}
