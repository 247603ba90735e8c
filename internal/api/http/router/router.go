package router

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Vish501/Video-Sharing-Application/internal/api/http/handler"
	"github.com/Vish501/Video-Sharing-Application/internal/api/http/middleware"
	"github.com/Vish501/Video-Sharing-Application/internal/logger"
	"github.com/Vish501/Video-Sharing-Application/internal/model"
	"github.com/Vish501/Video-Sharing-Application/internal/service"
)

// Router wires handlers and middleware into the HTTP route tree.
type Router struct {
	authService  *service.Auth
	postService  *service.Post
	tokenManager model.TokenManager
	userStore    model.UserStore
	logger       *logger.Logger
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	postService *service.Post,
	tokenManager model.TokenManager,
	userStore model.UserStore,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:  authService,
		postService:  postService,
		tokenManager: tokenManager,
		userStore:    userStore,
		logger:       logger,
	}
}

// Register builds the route tree. Post mutation, feed, account deletion and
// verification requests sit behind bearer authentication; registration,
// login and the password flows are public.
func (r *Router) Register() *chi.Mux {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.userStore, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	postHandler := handler.NewPost(r.postService, r.logger)

	mux := chi.NewRouter()
	mux.Use(chiMiddleware.RequestID)
	mux.Use(chiMiddleware.RealIP)
	mux.Use(logging.Handler)
	mux.Use(chiMiddleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	mux.Get("/health", handler.Health)

	mux.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", authHandler.Register)
			auth.Post("/jwt/login", authHandler.Login)
			auth.Post("/verify", authHandler.Verify)
			auth.Post("/forgot-password", authHandler.ForgotPassword)
			auth.Post("/reset-password", authHandler.ResetPassword)

			auth.Group(func(protected chi.Router) {
				protected.Use(authenticate.Handler)
				protected.Post("/request-verify", authHandler.RequestVerify)
			})
		})

		api.Group(func(protected chi.Router) {
			protected.Use(authenticate.Handler)
			protected.Delete("/users/me", authHandler.DeleteAccount)
			protected.Post("/posts/upload", postHandler.Upload)
			protected.Delete("/posts/{id}", postHandler.Delete)
			protected.Get("/feed", postHandler.Feed)
		})
	})

	return mux
}
