package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	caseapp "github.com/MightyBhargava/LegalChain-sub001/internal/application/cases"
	chatapp "github.com/MightyBhargava/LegalChain-sub001/internal/application/chat"
	"github.com/MightyBhargava/LegalChain-sub001/internal/application/device"
	hearingapp "github.com/MightyBhargava/LegalChain-sub001/internal/application/hearings"
	historyapp "github.com/MightyBhargava/LegalChain-sub001/internal/application/history"
	notifapp "github.com/MightyBhargava/LegalChain-sub001/internal/application/notifications"
	prefapp "github.com/MightyBhargava/LegalChain-sub001/internal/application/preferences"
	"github.com/MightyBhargava/LegalChain-sub001/internal/application/session"
	"github.com/MightyBhargava/LegalChain-sub001/internal/application/user"
	"github.com/MightyBhargava/LegalChain-sub001/internal/config"
	"github.com/MightyBhargava/LegalChain-sub001/internal/transport/http/handler"
	appmiddleware "github.com/MightyBhargava/LegalChain-sub001/internal/transport/http/middleware"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10. Applied to the public credential
	// endpoints only.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	sessionSvc := session.NewService(session.ServiceDeps{
		SessionRepo:     deps.SessionRepo,
		UserRepo:        deps.UserRepo,
		DeviceRepo:      deps.DeviceRepo,
		Verifier:        deps.GoogleVerifier,
		JWTProvider:     deps.JWTProvider,
		RefreshTokenDur: cfg.RefreshTokenDur,
	})
	userSvc := user.NewService(user.ServiceDeps{
		UserRepo:        deps.UserRepo,
		SessionRepo:     deps.SessionRepo,
		DeviceRepo:      deps.DeviceRepo,
		JWTProvider:     deps.JWTProvider,
		RefreshTokenDur: cfg.RefreshTokenDur,
	})
	deviceSvc := device.NewService(deps.DeviceRepo)
	caseSvc := caseapp.NewService(deps.Registries.Cases, deps.S3Store)
	notifSvc := notifapp.NewService(deps.Registries.Notifications)
	hearingSvc := hearingapp.NewService(deps.Registries.Hearings, deps.Registries.Cases, notifSvc)
	historySvc := historyapp.NewService(deps.Registries.History, deps.S3Store)
	chatSvc := chatapp.NewService(deps.Registries.Chat, deps.AIClient)
	prefSvc := prefapp.NewService(deps.PreferenceRepo)

	healthH := handler.NewHealthHandler()
	sessionH := handler.NewSessionHandler(sessionSvc)
	userH := handler.NewUserHandler(userSvc)
	deviceH := handler.NewDeviceHandler(deviceSvc)
	caseH := handler.NewCaseHandler(caseSvc)
	hearingH := handler.NewHearingHandler(hearingSvc)
	notifH := handler.NewNotificationHandler(notifSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	chatH := handler.NewChatHandler(chatSvc)
	prefH := handler.NewPreferenceHandler(prefSvc)

	r.Route("/v1", func(r chi.Router) {
		// Public routes (no auth)
		r.Get("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/sessions/login", sessionH.Login)
		r.With(sensitiveRL.Limit).Post("/sessions/google", sessionH.LoginWithGoogle)
		r.Post("/sessions/refresh", sessionH.Refresh)
		r.With(sensitiveRL.Limit).Post("/users", userH.Register)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/sessions", sessionH.GetCurrent)
			r.Post("/sessions/logout", sessionH.Logout)

			r.Get("/profile", userH.GetProfile)
			r.Put("/profile", userH.UpdateProfile)
			r.Post("/profile/change-password", userH.ChangePassword)
			r.Delete("/profile", userH.Delete)

			r.Get("/cases", caseH.List)
			r.Post("/cases", caseH.Create)
			r.Get("/cases/{id}", caseH.Get)
			r.Put("/cases/{id}", caseH.Update)
			r.Delete("/cases/{id}", caseH.Delete)
			r.Post("/cases/{id}/documents", caseH.UploadDocument)
			r.Get("/cases/{id}/documents/{docID}", caseH.DownloadDocument)

			r.Get("/hearings", hearingH.List)
			r.Post("/hearings", hearingH.Schedule)

			r.Get("/notifications", notifH.List)
			r.Post("/notifications/load-more", notifH.LoadMore)
			r.Put("/notifications/read-all", notifH.MarkAllRead)
			r.Put("/notifications/{id}/read", notifH.ToggleRead)

			r.Get("/history", historyH.List)
			r.Get("/history/{id}/download", historyH.Download)

			r.Get("/chat", chatH.History)
			r.Post("/chat", chatH.Ask)

			r.Get("/preferences", prefH.Get)
			r.Put("/preferences", prefH.Update)

			r.Get("/devices", deviceH.List)
			r.Get("/devices/{id}", deviceH.Get)
			r.Put("/devices/{id}", deviceH.Update)
			r.Delete("/devices/{id}", deviceH.Delete)
		})
	})

	return r
}
