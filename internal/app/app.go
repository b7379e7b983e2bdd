package app

import (
	"fmt"
	"net/http"
	"time"

	"mapacademy/internal/app/deps"
	"mapacademy/internal/app/services"
	createarticle "mapacademy/internal/http/handlers/articles/create_article"
	getarticle "mapacademy/internal/http/handlers/articles/get_article"
	listarticles "mapacademy/internal/http/handlers/articles/list_articles"
	loginwithemail "mapacademy/internal/http/handlers/auth/log_in_with_email"
	resetpassword "mapacademy/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "mapacademy/internal/http/handlers/auth/send_password_reset_token"
	signupwithemail "mapacademy/internal/http/handlers/auth/sign_up_with_email"
	validatepasswordresettoken "mapacademy/internal/http/handlers/auth/validate_password_reset_token"
	"mapacademy/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, isTestMode),
	)
	authRouter.Method(
		http.MethodGet,
		"/password_reset/{token}",
		validatepasswordresettoken.New(s.ValidatePasswordResetToken),
	)
	authRouter.Method(http.MethodPut, "/password_reset", resetpassword.New(s.ResetPassword))

	articlesRouter := chi.NewRouter()
	articlesRouter.Method(http.MethodPost, "/", createarticle.New(s.CreateArticle))
	articlesRouter.Method(http.MethodGet, "/", listarticles.New(s.ListArticles))
	articlesRouter.Method(http.MethodGet, "/{articleID:[0-9]+}", getarticle.New(s.GetArticle))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Use(middleware.RequestID)
	router.Mount("/auth", authRouter)
	router.Mount("/articles", articlesRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           router,
		Addr:              address,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       5 * time.Second,
	}
}
