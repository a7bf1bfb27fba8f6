// Package router sets up all HTTP routes and middleware chains for the
// ContentForge API. Routes are grouped by the session state they require:
// open, half-open (awaiting a TOTP code), and fully authenticated.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"contentforge/internal/handlers"
	"contentforge/internal/middleware"
	"contentforge/internal/session"
)

// Deps carries everything the router wires together.
type Deps struct {
	Sessions      *session.Store
	Health        *handlers.Health
	Auth          *handlers.Auth
	Brands        *handlers.Brands
	Content       *handlers.Content
	Vibes         *handlers.Vibes
	Admin         *handlers.Admin
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The returned rate limiter must be stopped on
// shutdown.
func New(d Deps) (chi.Router, *middleware.RateLimiter) {
	r := chi.NewRouter()

	// Credential-guessing endpoints get a tight per-IP window.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(d.Sessions))

	// Health check, no auth, no CSRF.
	r.Get("/health", d.Health.Check)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.NewCSRF(d.SecureCookies))

		// Open routes.
		r.Post("/auth/register", d.Auth.Register)
		r.With(loginLimiter.Middleware).Post("/auth/login", d.Auth.Login)
		r.Post("/auth/logout", d.Auth.Logout)

		// Half-open session: logged in, TOTP code still owed.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.With(loginLimiter.Middleware).Post("/auth/2fa", d.Auth.TwoFAVerify)
		})

		// Fully authenticated area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/auth/me", d.Auth.Me)
			r.Post("/auth/totp/setup", d.Auth.TOTPSetup)
			r.Post("/auth/totp/confirm", d.Auth.TOTPConfirm)

			r.Get("/vibes", d.Vibes.List)

			r.Route("/brands", func(r chi.Router) {
				r.Get("/", d.Brands.List)
				r.Post("/", d.Brands.Create)
				r.Get("/{id}", d.Brands.Get)
				r.Put("/{id}", d.Brands.Update)
				r.Delete("/{id}", d.Brands.Delete)
				r.Post("/{id}/generate", d.Content.Generate)
				r.Get("/{id}/content", d.Content.History)
			})

			r.Delete("/content/{id}", d.Content.Delete)

			// Admin-only: runtime AI provider selection.
			r.Route("/admin/ai", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)
				r.Get("/", d.Admin.AIProviders)
				r.Put("/provider", d.Admin.AISetProvider)
			})
		})
	})

	return r, loginLimiter
}
