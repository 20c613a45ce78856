package api

import (
	"net/http"

	"finledger/database"
	"finledger/handlers"
	"finledger/middleware"
	"finledger/security"
	"finledger/services"

	"github.com/gorilla/mux"
)

// Options carries the request-facing configuration the server needs beyond
// its collaborators.
type Options struct {
	AllowedOrigins    []string
	MinPasswordLength int
}

// Server wires the services and handlers onto the router. Everything is
// constructed explicitly; there is no package-level state.
type Server struct {
	router *mux.Router

	auth            *handlers.AuthHandler
	users           *handlers.UserHandler
	transactions    *handlers.TransactionHandler
	budgets         *handlers.BudgetHandler
	categoryBudgets *handlers.CategoryBudgetHandler
}

// NewServer creates the API server with all routes registered.
func NewServer(db *database.DB, tokens *security.TokenManager, opts Options) *Server {
	userService := services.NewUserService(db, tokens)

	s := &Server{
		router:          mux.NewRouter(),
		auth:            handlers.NewAuthHandler(userService, opts.MinPasswordLength),
		users:           handlers.NewUserHandler(userService),
		transactions:    handlers.NewTransactionHandler(services.NewTransactionService(db)),
		budgets:         handlers.NewBudgetHandler(services.NewBudgetService(db)),
		categoryBudgets: handlers.NewCategoryBudgetHandler(services.NewCategoryBudgetService(db)),
	}
	s.registerRoutes(tokens, opts)
	return s
}

// Handler returns the HTTP handler for the API server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) registerRoutes(tokens *security.TokenManager, opts Options) {
	s.router.Use(middleware.RequestLogger)
	s.router.Use(middleware.CORS(opts.AllowedOrigins))
	s.router.Use(middleware.Authenticate(tokens))

	// CORS preflight for any path; the CORS middleware answers it.
	s.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	api := s.router.PathPrefix("/api").Subrouter()

	// Public routes (no auth required)
	api.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	api.HandleFunc("/auth/register", s.auth.Register).Methods("POST")
	api.HandleFunc("/auth/login", s.auth.Login).Methods("POST")

	// Create a subrouter for authenticated routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireUser)

	protected.HandleFunc("/users/me", s.users.Me).Methods("GET")

	protected.HandleFunc("/transactions", s.transactions.List).Methods("GET")
	protected.HandleFunc("/transactions", s.transactions.Create).Methods("POST")
	protected.HandleFunc("/transactions/{id}", s.transactions.Get).Methods("GET")
	protected.HandleFunc("/transactions/{id}", s.transactions.Update).Methods("PUT")
	protected.HandleFunc("/transactions/{id}", s.transactions.Delete).Methods("DELETE")

	protected.HandleFunc("/budgets", s.budgets.Get).Methods("GET")
	protected.HandleFunc("/budgets", s.budgets.Set).Methods("PUT")
	protected.HandleFunc("/budgets", s.budgets.Delete).Methods("DELETE")

	protected.HandleFunc("/budgets/categories", s.categoryBudgets.List).Methods("GET")
	protected.HandleFunc("/budgets/categories", s.categoryBudgets.Set).Methods("PUT")
	protected.HandleFunc("/budgets/categories", s.categoryBudgets.Delete).Methods("DELETE")
}
