package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/cardbox/cardbox/internal/api"
	"github.com/cardbox/cardbox/internal/db"
	"github.com/cardbox/cardbox/internal/middleware"
	"github.com/cardbox/cardbox/internal/services"
	"github.com/cardbox/cardbox/internal/utils"
)

func init() {
	// Optional .env for local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("load .env: %v", err)
	}
}

func main() {
	addr := utils.EnvOr("CARDBOX_ADDR", ":8080")
	quizPath := utils.EnvOr("CARDBOX_QUIZ_PATH", "data/quizzes.json")
	dbPath := utils.EnvOr("CARDBOX_DB_PATH", "data/cardbox.db")

	var records services.RecordStore
	if dbPath == "memory" {
		log.Printf("using in-memory record store, state will not survive a restart")
		records = db.NewMemoryRecords()
	} else {
		store, err := db.Open(dbPath)
		if err != nil {
			log.Fatalf("open records database %s: %v", dbPath, err)
		}
		defer store.Close()
		records = store
	}

	// The quiz catalog is fetched exactly once; without it the quiz feature
	// cannot run at all, so failure ends the session here and nowhere else.
	catalog, err := services.LoadQuizCatalogFile(quizPath)
	if err != nil {
		log.Fatalf("quiz catalog unavailable (%s): %v", quizPath, err)
	}

	gateway := services.NewGateway(records)
	cards := services.NewCollectionService(gateway)
	quiz := services.NewQuizEngine(gateway, catalog)

	mux := http.NewServeMux()
	api.NewRouter(cards, quiz).Register(mux)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		locale := middleware.LocaleFromContext(r.Context())
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":     true,
			"name":   "cardbox",
			"locale": locale,
			"msg":    utils.T(locale, "health.ok"),
		})
	})

	// Static frontend, when one is built alongside the server.
	if staticDir := os.Getenv("CARDBOX_STATIC_DIR"); staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}

	handler := middleware.RequestID(middleware.SecureHeaders(middleware.NoStore(middleware.Locale(mux))))
	handler = cors.New(cors.Options{
		AllowedOrigins: strings.Split(utils.EnvOr("CARDBOX_ALLOWED_ORIGINS", "*"), ","),
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Accept", "Origin", "X-Requested-With"},
		MaxAge:         86400,
	}).Handler(handler)

	log.Printf("cardbox server listening on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
