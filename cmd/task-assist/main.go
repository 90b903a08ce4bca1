package main

import (
	"log"
	"net/http"

	"github.com/rs/cors"

	"task-assist/internal/assist/gemini"
	"task-assist/internal/config"
	"task-assist/internal/handle"
)

func main() {
	cfg := config.Load()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	h := handle.New(gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel))

	mux.HandleFunc("/api/analyze", h.Analyze)
	mux.HandleFunc("/api/suggest", h.Suggest)

	// The frontend is served from another origin.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	addr := ":" + cfg.Port
	log.Printf("task-assist listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, c.Handler(mux)))
}
