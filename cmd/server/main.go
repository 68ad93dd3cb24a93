package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"kinshare/internal/config"
	"kinshare/internal/database"
	"kinshare/internal/handlers"
	"kinshare/internal/repository"
	"kinshare/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database with config (supports sqlite, postgres, mysql)
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	familyRepo := repository.NewFamilyRepository(db)
	messageRepo := repository.NewMessageRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	familyService := service.NewFamilyService(familyRepo)
	userService := service.NewUserService(userRepo, familyRepo)

	emailService, err := service.NewEmailService(cfg.SESRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.FrontendBaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	messageService := service.NewMessageService(messageRepo, familyRepo, userRepo, emailService)

	googleOAuth := &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"openid", "email", "profile"},
	}

	// Initialize handlers
	middleware := handlers.NewMiddleware(authService)
	authHandler := handlers.NewAuthHandler(authService, googleOAuth,
		"https://www.googleapis.com/oauth2/v2/userinfo", cfg.OAuthRedirectBaseURL, cfg.FrontendBaseURL)
	userHandler := handlers.NewUserHandler(userService)
	familyHandler := handlers.NewFamilyHandler(familyService)
	messageHandler := handlers.NewMessageHandler(messageService)

	// Setup routes
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("GET /{$}", authHandler.Home)
	mux.HandleFunc("GET /auth/google", authHandler.StartGoogleOAuth)
	mux.HandleFunc("GET /auth/google/callback", authHandler.GoogleOAuthCallback)
	mux.HandleFunc("GET /auth/logout", authHandler.Logout)

	// Protected routes
	mux.HandleFunc("GET /messages/{family}", middleware.RequireAuth(messageHandler.ListMessages))
	mux.HandleFunc("POST /messages", middleware.RequireAuth(messageHandler.CreateMessage))
	mux.HandleFunc("DELETE /messages/{messageId}", middleware.RequireAuth(messageHandler.DeleteMessage))
	mux.HandleFunc("POST /family", middleware.RequireAuth(familyHandler.CreateFamily))
	mux.HandleFunc("POST /family/{familyId}/members", middleware.RequireAuth(familyHandler.AddMember))
	mux.HandleFunc("GET /user", middleware.RequireAuth(userHandler.GetUser))
	mux.HandleFunc("GET /members", middleware.RequireAuth(userHandler.ListMembers))
	mux.HandleFunc("POST /comments", middleware.RequireAuth(messageHandler.CreateComment))
	mux.HandleFunc("DELETE /comments/{messageId}/{commentId}", middleware.RequireAuth(messageHandler.DeleteComment))

	// Wrap with CORS and logging middleware
	handler := handlers.Logging(handlers.CORS(mux))

	// Start server
	addr := cfg.ServerHost + ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
