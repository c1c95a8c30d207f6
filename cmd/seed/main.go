// Command seed populates the gallery_images collection with the default
// gallery so the site serves store-backed images instead of the in-process
// fallback.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/deorigen/backend/internal/logging"
	"github.com/deorigen/backend/internal/model"
	"github.com/deorigen/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: seed [command]

Commands:
  (default)   ギャラリーが空の場合のみデフォルト画像を投入
  reset       既存のギャラリー画像を全削除してから投入`)
	os.Exit(1)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	logging.Setup()

	mongoURL := getenv("MONGO_URL", "mongodb://localhost:27017")
	dbName := getenv("DB_NAME", "deorigen")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := repository.NewClient(ctx, mongoURL, dbName)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := repository.NewMongoGalleryRepository(client)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		existing, err := repo.List(ctx)
		if err != nil {
			logging.Fatal("list gallery failed", "error", err)
		}
		if len(existing) > 0 {
			slog.Info("gallery already seeded, nothing to do", "count", len(existing))
			return
		}
	case "reset":
		if err := repo.Clear(ctx); err != nil {
			logging.Fatal("clear gallery failed", "error", err)
		}
		slog.Info("cleared gallery_images")
	default:
		usage()
	}

	for _, img := range model.DefaultGallery() {
		// Seeded records are real store documents: fresh server identity,
		// same content and ordering as the fallback.
		img.ID = uuid.NewString()
		img.CreatedAt = time.Now().UTC()
		if err := repo.Save(ctx, img); err != nil {
			logging.Fatal("insert gallery image failed", "title", img.TitleEN, "error", err)
		}
		slog.Info("seeded gallery image", "title", img.TitleEN, "order", img.Order)
	}
	slog.Info("gallery seeding complete")
}
