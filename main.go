package main

import (
	"crypto/tls"
	"encoding/json"
	stdlog "log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/Gabrielkempp/biasi/src/config"
	"github.com/Gabrielkempp/biasi/src/handlers"
	"github.com/Gabrielkempp/biasi/src/logger"
	"github.com/Gabrielkempp/biasi/src/services"
	"github.com/Gabrielkempp/biasi/src/sheets"
	"github.com/Gabrielkempp/biasi/src/utils"
)

func proxyHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Forwarded-Proto") == "https" {
			r.URL.Scheme = "https"
			r.TLS = &tls.ConnectionState{}
		}
		next.ServeHTTP(w, r)
	})
}

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			logger.L.Warn("Rate limit exceeded", "path", r.URL.Path)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func enableCORS(next http.Handler) http.Handler {
	allowedOrigins := make(map[string]bool, len(config.Cfg.AllowedOrigins))
	for _, origin := range config.Cfg.AllowedOrigins {
		allowedOrigins[origin] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, If-None-Match")
		} else if origin == "" {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		utils.SendJSONError(w, "Recurso não encontrado", http.StatusNotFound)
		return
	}
	http.NotFound(w, r)
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)

	logger.L.Info("Biasi dashboards backend starting...")

	sheetCache := cache.New(config.Cfg.CacheTTL, 2*config.Cfg.CacheTTL)
	fetcher := sheets.NewCachedFetcher(sheets.NewClient(config.Cfg.FetchTimeout), sheetCache)

	despesasService := services.NewDespesasService(fetcher, config.Cfg.SheetDespesasURL, nil)
	fluxoService := services.NewFluxoService(fetcher, config.Cfg.SheetFluxoURL)
	financiamentosService := services.NewFinanciamentosService(fetcher, config.Cfg.SheetFinanciamentosURL, nil)
	dividasService := services.NewDividasService(fetcher, config.Cfg.SheetDividasURL, nil)
	producaoService := services.NewProducaoService(fetcher, config.Cfg.SheetProducaoURL, nil)

	despesasHandler := handlers.NewDespesasHandler(despesasService)
	fluxoHandler := handlers.NewFluxoHandler(fluxoService)
	financiamentosHandler := handlers.NewFinanciamentosHandler(financiamentosService)
	dividasHandler := handlers.NewDividasHandler(dividasService)
	producaoHandler := handlers.NewProducaoHandler(producaoService)

	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(handlers.ContextualLoggerMiddleware)
	r.Use(proxyHeadersMiddleware)
	r.Use(enableCORS)
	r.Use(rateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Biasi backend is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/despesas", despesasHandler.HandleGetSummary)
		r.Get("/fluxo", fluxoHandler.HandleGetSummary)
		r.Get("/financiamentos", financiamentosHandler.HandleGetSummary)
		r.Get("/dividas", dividasHandler.HandleGetSummary)
		r.Get("/producao", producaoHandler.HandleGetSummary)
		r.Get("/producao/export", producaoHandler.HandleExportCSV)
	})

	r.NotFound(notFoundHandler)

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		stdlog.Fatalf("Failed to start server: %v", err)
	}
}
