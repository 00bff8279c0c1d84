package http

import (
	"net/http"

	"github.com/avagyan/expense-tracker/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs and returns an HTTP handler that serves the expense
// tracker API. It applies JSON content-type enforcement and request logging
// globally, and bearer-token authentication on the expense endpoints.
//
// Routes:
//
//	GET    /hello               → liveness greeting (public)
//	POST   /auth/register       → authHandler.Register (public)
//	POST   /auth/login          → authHandler.Login (public)
//	GET    /expenses            → expenseHandler.List (bearer token)
//	POST   /expenses            → expenseHandler.Create (bearer token)
//	GET    /expenses/{id}       → expenseHandler.Get (bearer token)
//	PUT    /expenses/{id}       → expenseHandler.Update (bearer token)
//	DELETE /expenses/{id}       → expenseHandler.Delete (bearer token)
//
// The {id} pattern only matches digits; anything else falls through to the
// router's 404. Token verification runs once, in the middleware, so the
// handlers never touch the Authorization header themselves.
func NewRouter(
	authHandler *AuthHandler,
	expenseHandler *ExpenseHandler,
	tokens middleware.TokenVerifier,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Only allow requests with Content-Type: application/json.
	// Bodyless requests (GET, DELETE) pass through unchecked.
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/hello", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Hello, World!"))
	})

	// Public endpoints
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Protected group: requires a valid bearer token
	r.Route("/expenses", func(r chi.Router) {
		r.Use(middleware.BearerAuth(tokens))

		r.Get("/", expenseHandler.List)
		r.Post("/", expenseHandler.Create)
		r.Get("/{id:[0-9]+}", expenseHandler.Get)
		r.Put("/{id:[0-9]+}", expenseHandler.Update)
		r.Delete("/{id:[0-9]+}", expenseHandler.Delete)
	})

	return r
}
