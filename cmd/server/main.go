package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/deorigen/backend/internal/handler"
	"github.com/deorigen/backend/internal/logging"
	"github.com/deorigen/backend/internal/repository"
	"github.com/deorigen/backend/internal/service"
	"github.com/deorigen/backend/pkg/mailer"
	"github.com/joho/godotenv"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// corsOrigins parses the comma-separated CORS_ORIGINS allow-list. An empty
// value means any origin.
func corsOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return nil
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func main() {
	_ = godotenv.Load()
	logging.Setup()

	mongoURL := getenv("MONGO_URL", "mongodb://localhost:27017")
	dbName := getenv("DB_NAME", "deorigen")
	port := getenv("PORT", "8080")

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := repository.NewClient(connectCtx, mongoURL, dbName)
	cancel()
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}

	statusRepo := repository.NewMongoStatusCheckRepository(client)
	contactRepo := repository.NewMongoContactRepository(client)
	galleryRepo := repository.NewMongoGalleryRepository(client)

	// Resend 設定（未設定の場合は通知メールを無効化）
	resendAPIKey := os.Getenv("RESEND_API_KEY")
	if resendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set; contact notifications disabled")
	}
	mail := mailer.NewResendClient(resendAPIKey, os.Getenv("CONTACT_EMAIL"))

	statusService := service.NewStatusCheckService(statusRepo)
	contactService := service.NewContactService(contactRepo, mail)
	galleryService := service.NewGalleryService(galleryRepo)

	h := handler.New(client, corsOrigins())
	statusHandler := handler.NewStatusCheckHandler(statusService)
	contactHandler := handler.NewContactHandler(contactService)
	galleryHandler := handler.NewGalleryHandler(galleryService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{$}", h.Root)
	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("POST /api/status", statusHandler.Create)
	mux.HandleFunc("GET /api/status", statusHandler.List)
	mux.HandleFunc("POST /api/contact", contactHandler.Submit)
	mux.HandleFunc("GET /api/contact", contactHandler.List)
	mux.HandleFunc("GET /api/gallery", galleryHandler.List)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(h.CORS(mux))),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		slog.Error("database disconnect error", "error", err)
	}
}
