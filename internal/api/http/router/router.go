package router

import (
	"encoding/json"
	"net/http"

	"github.com/oghenefuyereo/spendwise-api/internal/api/http/handler"
	"github.com/oghenefuyereo/spendwise-api/internal/api/http/middleware"
	"github.com/oghenefuyereo/spendwise-api/internal/logger"
	"github.com/oghenefuyereo/spendwise-api/internal/model"
	"github.com/oghenefuyereo/spendwise-api/internal/service"
)

// Router assembles the HTTP routing table for the API.
// It wires handlers and middleware into a single http.Handler.
type Router struct {
	authService        *service.Auth
	accountService     *service.Account
	transactionService *service.Transaction
	categoryService    *service.Category
	goalService        *service.Goal
	verifier           model.IdentityVerifier
	tokens             model.TokenManager
	contextManager     model.ContextManager
	logger             *logger.Logger
}

// New creates new Router instance.
func New(
	authService *service.Auth,
	accountService *service.Account,
	transactionService *service.Transaction,
	categoryService *service.Category,
	goalService *service.Goal,
	verifier model.IdentityVerifier,
	tokens model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:        authService,
		accountService:     accountService,
		transactionService: transactionService,
		categoryService:    categoryService,
		goalService:        goalService,
		verifier:           verifier,
		tokens:             tokens,
		contextManager:     contextManager,
		logger:             logger,
	}
}

// Register builds the routing table and returns the root handler.
// Auth endpoints, the banner and the health check are public; everything
// under /api/users, /api/transactions, /api/categories and /api/goals
// requires a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)

	mux := http.NewServeMux()

	r.registerPublicRoutes(mux)

	protected := http.NewServeMux()
	r.registerAccountRoutes(protected)
	r.registerTransactionRoutes(protected)
	r.registerCategoryRoutes(protected)
	r.registerGoalRoutes(protected)

	mux.Handle("/api/users/", authenticate.Handle(protected))
	mux.Handle("/api/transactions", authenticate.Handle(protected))
	mux.Handle("/api/transactions/", authenticate.Handle(protected))
	mux.Handle("/api/categories", authenticate.Handle(protected))
	mux.Handle("/api/categories/", authenticate.Handle(protected))
	mux.Handle("/api/goals", authenticate.Handle(protected))
	mux.Handle("/api/goals/", authenticate.Handle(protected))

	return logging.Handle(mux)
}

func (r *Router) registerPublicRoutes(mux *http.ServeMux) {
	authHandler := handler.NewAuth(r.authService, r.verifier, r.logger)

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("POST /api/auth/google", authHandler.Google)
	mux.HandleFunc("GET /api/auth/google/start", authHandler.GoogleStart)
	mux.HandleFunc("GET /api/auth/google/callback", authHandler.GoogleCallback)

	mux.HandleFunc("GET /{$}", banner)
	mux.HandleFunc("GET /healthz", health)
}

func (r *Router) registerAccountRoutes(mux *http.ServeMux) {
	accountHandler := handler.NewAccount(r.accountService, r.contextManager, r.logger)

	mux.HandleFunc("GET /api/users/me", accountHandler.Me)
	mux.HandleFunc("PUT /api/users/me", accountHandler.UpdateMe)
	mux.HandleFunc("DELETE /api/users/me", accountHandler.DeleteMe)
}

func (r *Router) registerTransactionRoutes(mux *http.ServeMux) {
	transactionHandler := handler.NewTransaction(r.transactionService, r.contextManager, r.logger)

	mux.HandleFunc("POST /api/transactions", transactionHandler.Create)
	mux.HandleFunc("GET /api/transactions", transactionHandler.List)
	mux.HandleFunc("GET /api/transactions/{id}", transactionHandler.Get)
	mux.HandleFunc("PUT /api/transactions/{id}", transactionHandler.Update)
	mux.HandleFunc("DELETE /api/transactions/{id}", transactionHandler.Delete)
	mux.HandleFunc("PUT /api/transactions/{id}/receipt", transactionHandler.AttachReceipt)
	mux.HandleFunc("GET /api/transactions/{id}/receipt", transactionHandler.DownloadReceipt)
}

func (r *Router) registerCategoryRoutes(mux *http.ServeMux) {
	categoryHandler := handler.NewCategory(r.categoryService, r.contextManager, r.logger)

	mux.HandleFunc("POST /api/categories", categoryHandler.Create)
	mux.HandleFunc("GET /api/categories", categoryHandler.List)
	mux.HandleFunc("GET /api/categories/{id}", categoryHandler.Get)
	mux.HandleFunc("PUT /api/categories/{id}", categoryHandler.Update)
	mux.HandleFunc("DELETE /api/categories/{id}", categoryHandler.Delete)
}

func (r *Router) registerGoalRoutes(mux *http.ServeMux) {
	goalHandler := handler.NewGoal(r.goalService, r.contextManager, r.logger)

	mux.HandleFunc("POST /api/goals", goalHandler.Create)
	mux.HandleFunc("GET /api/goals", goalHandler.List)
	mux.HandleFunc("GET /api/goals/{id}", goalHandler.Get)
	mux.HandleFunc("PUT /api/goals/{id}", goalHandler.Update)
	mux.HandleFunc("DELETE /api/goals/{id}", goalHandler.Delete)
}

func banner(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Spendwise API is running..."})
}

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
