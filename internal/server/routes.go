package server

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"faqbot/internal/answers"
	"faqbot/internal/bot"
	"faqbot/internal/db"
	"faqbot/internal/handlers"
	"faqbot/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(ctx context.Context, database *db.DB, store *answers.Store, b *bot.Bot) error {
	probeHandler := handlers.NewProbeHandler(database)
	dashboardHandler := handlers.NewDashboardHandler(database, store, b)

	// Keep-alive and probe endpoints
	s.App.Get("/", probeHandler.Root)
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)

	// Prometheus scrape endpoint
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Moderator dashboard - only when OIDC is configured
	if !s.Cfg.IsDashboardEnabled() {
		log.Println("Moderator dashboard disabled. Set OIDC_ISSUER and OIDC_CLIENT_ID to enable.")
		return nil
	}

	authHandler, err := handlers.NewAuthHandler(ctx, s.Cfg, s.Sessions)
	if err != nil {
		return err
	}
	authMiddleware := middleware.NewAuthMiddleware(s.Sessions, s.Cfg.ModeratorEmails())

	s.App.Get("/auth/login", authHandler.Login)
	s.App.Get("/auth/callback", authHandler.Callback)
	s.App.Get("/auth/logout", authHandler.Logout)

	s.App.Get("/api/questions", authMiddleware.RequireModerator, dashboardHandler.ListQuestions)
	s.App.Get("/api/questions/:id", authMiddleware.RequireModerator, dashboardHandler.GetQuestion)
	s.App.Post("/api/questions/:id/resolve", authMiddleware.RequireModerator, dashboardHandler.ResolveQuestion)
	s.App.Post("/api/questions/:id/amend", authMiddleware.RequireModerator, dashboardHandler.AmendQuestion)
	s.App.Get("/api/faqs", authMiddleware.RequireModerator, dashboardHandler.ListFaqs)

	return nil
}
