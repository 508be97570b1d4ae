package app

import (
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	checkpasswordresettoken "accounts/internal/http/handlers/auth/check_password_reset_token"
	resetpassword "accounts/internal/http/handlers/auth/reset_password"
	sendpasswordresettoken "accounts/internal/http/handlers/auth/send_password_reset_token"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterOptions struct {
	AllowedOrigins []string
	// Browser clients are redirected here after a reset email is requested or a password is changed.
	LoginURL string
	Gatherer prometheus.Gatherer
}

func NewRouter(opts RouterOptions, s *services.Services) http.Handler {
	authRouter := chi.NewRouter()
	authRouter.Method(
		http.MethodPost,
		"/password_reset/token",
		sendpasswordresettoken.New(s.SendPasswordResetToken, opts.LoginURL),
	)
	resetPasswordHandler := resetpassword.New(s.ResetPassword, opts.LoginURL)
	authRouter.Method(http.MethodPut, "/password_reset", resetPasswordHandler)
	authRouter.Method(http.MethodPost, "/password_reset", resetPasswordHandler)
	authRouter.Method(
		http.MethodGet,
		"/password_reset/{token}",
		checkpasswordresettoken.New(s.CheckPasswordResetToken),
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)
	if opts.Gatherer != nil {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	return router
}

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(
		RouterOptions{
			AllowedOrigins: deps.Config.AllowedOrigins,
			LoginURL:       deps.Config.PasswordResetLoginURL,
			Gatherer:       deps.MetricsRegistry,
		},
		s,
	)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
