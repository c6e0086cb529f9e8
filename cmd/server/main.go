package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alextreichler/thumbify/internal/assistant"
	"github.com/alextreichler/thumbify/internal/catalog"
	"github.com/alextreichler/thumbify/internal/config"
	"github.com/alextreichler/thumbify/internal/handlers"
	"github.com/alextreichler/thumbify/internal/session"
	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
)

func main() {
	// Configure slog to output DEBUG level messages
	// This should be done as early as possible in main
	handlerOpts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	// Using TextHandler for console readability; for production JSONHandler might be preferred.
	logger := slog.New(slog.NewTextHandler(os.Stdout, handlerOpts))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. In-memory state: the app session (user + orders) and the catalog.
	// Everything is reset on restart; there is no database in this product.
	appSession := session.NewStore()
	cat := catalog.New()

	// 3. Idea assistant backend
	var generator assistant.IdeaGenerator
	if cfg.Assistant.APIKey == "" {
		slog.Warn("ASSISTANT_API_KEY not set; the idea assistant will report itself unavailable")
		generator = assistant.Disabled{}
	} else {
		generator = assistant.NewOpenAICompatGenerator(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.Timeout())
	}

	// 4. Cookie session (flash messages only; identity lives in appSession)
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure // Configurable for production
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"
	if cfg.CookieDomain != "" {
		sessionStore.Options.Domain = cfg.CookieDomain
	}

	// 5. Init Templates
	templates := handlers.NewTemplateCache()
	if err := templates.Load("templates"); err != nil {
		slog.Error("Failed to load templates", "error", err)
		os.Exit(1)
	}

	// 6. Setup Handlers
	homeHandler := &handlers.HomeHandler{
		Catalog:      cat,
		App:          appSession,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	authHandler := &handlers.AuthHandler{
		App:          appSession,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	orderHandler := &handlers.OrderHandler{
		Catalog:      cat,
		App:          appSession,
		Generator:    generator,
		Templates:    templates,
		SessionStore: sessionStore,
	}
	dashboardHandler := &handlers.DashboardHandler{
		Catalog:      cat,
		App:          appSession,
		Templates:    templates,
		SessionStore: sessionStore,
	}

	mux := http.NewServeMux()

	// Static Files
	fileServer := http.FileServer(http.Dir("./static"))
	mux.Handle("/static/", http.StripPrefix("/static", fileServer))

	// Rate limiters for the public-facing POSTs. The ideas endpoint gets
	// its own limiter so an idea request never blocks the order submit.
	orderLimiter := handlers.NewRateLimiter(30 * time.Second)
	ideasLimiter := handlers.NewRateLimiter(5 * time.Second)

	// Public Routes
	mux.HandleFunc("/", homeHandler.Index) // also catches unknown paths
	mux.HandleFunc("/portfolio", homeHandler.Portfolio)
	mux.HandleFunc("/pricing", homeHandler.Pricing)
	mux.HandleFunc("/confirmation", homeHandler.Confirmation)

	mux.HandleFunc("/login", authHandler.LoginGet)
	mux.HandleFunc("POST /login", authHandler.LoginPost)
	mux.HandleFunc("/logout", authHandler.Logout)

	// Protected Routes: the gate re-checks the user slot on every request
	mux.HandleFunc("/order/{packId}", handlers.RequireUser(appSession, sessionStore, orderHandler.OrderForm))
	mux.HandleFunc("POST /order/{packId}", handlers.RequireUser(appSession, sessionStore, orderLimiter.Middleware(orderHandler.SubmitOrder)))
	mux.HandleFunc("POST /order/{packId}/ideas", handlers.RequireUser(appSession, sessionStore, ideasLimiter.MiddlewareJSON(orderHandler.Ideas)))

	mux.HandleFunc("/dashboard", handlers.RequireUser(appSession, sessionStore, dashboardHandler.Dashboard))
	mux.HandleFunc("POST /dashboard/items", handlers.RequireUser(appSession, sessionStore, dashboardHandler.CreateItem))

	// 7. Middleware Setup
	CSRF := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.CookieSecure), // Configurable for production
		csrf.TrustedOrigins([]string{"localhost:" + cfg.Port, "127.0.0.1:" + cfg.Port, "localhost", "127.0.0.1"}),
	)

	// Wrap the router with middleware chain
	// Chain: Logger -> Security Headers -> CSRF -> Mux
	handler := handlers.LoggingMiddleware(
		handlers.SecurityHeadersMiddleware(
			CSRF(mux),
		),
	)

	// 8. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
