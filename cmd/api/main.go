package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"modernshop-backend/config"
	"modernshop-backend/internal/delivery/http/middleware"
	v1 "modernshop-backend/internal/delivery/http/v1"
	"modernshop-backend/internal/dispatch"
	"modernshop-backend/internal/domain"
	memcache "modernshop-backend/internal/infrastructure/cache"
	"modernshop-backend/internal/infrastructure/fakestore"
	"modernshop-backend/internal/repository/localstore"
	"modernshop-backend/internal/usecase"
	"modernshop-backend/pkg/logger"

	"github.com/NYTimes/gziphandler"
	"golang.org/x/time/rate"
)

func main() {
	cfg := config.LoadConfig()

	// Initialize Logger
	logger.Init(cfg.Env, cfg.LogLevel)
	log := logger.Get()

	// Open the local state store. If the database cannot be opened the
	// service still runs, holding state in memory only for this process
	// lifetime.
	var kv domain.KVStore
	store, err := localstore.Open(cfg.StatePath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.StatePath).
			Msg("Could not open state store, running without persistence")
		kv = localstore.NewMemoryStore()
	} else {
		defer store.Close()
		kv = store
		log.Info().Str("path", cfg.StatePath).Msg("State store ready")
	}

	// Repositories
	cartRepo := localstore.NewCartRepository(kv)
	wishlistRepo := localstore.NewWishlistRepository(kv)
	searchRepo := localstore.NewSearchHistoryRepository(kv)
	themeRepo := localstore.NewThemeRepository(kv)

	// Catalog source with response cache
	memCache := memcache.NewMemoryCache(cfg.CacheProductTTL, 2*cfg.CacheProductTTL)
	catalogClient := fakestore.NewClient(cfg.CatalogURL, cfg.CatalogTimeout)

	// --- Modules Initialization ---

	catalogUC := usecase.NewCatalogUsecase(catalogClient, memCache, fakestore.FallbackProducts(), cfg.CacheProductTTL)

	cartUC := usecase.NewCartUsecase(cartRepo, usecase.CartConfig{
		TaxRate:               cfg.TaxRate,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		ShippingFee:           cfg.ShippingFee,
		MaxQuantity:           cfg.MaxCartQuantity,
	})
	cartUC.OnChange(func() {
		log.Debug().Int("item_count", cartUC.GetItemCount()).Msg("Cart changed")
	})

	wishlistUC := usecase.NewWishlistUsecase(wishlistRepo)
	searchUC := usecase.NewSearchUsecase(searchRepo, cfg.SearchHistoryLimit)
	themeUC := usecase.NewThemeUsecase(themeRepo)

	dispatcher := dispatch.NewDispatcher(cartUC, catalogUC)

	cartHandler := v1.NewCartHandler(cartUC, catalogUC, dispatcher, cfg.MaxCartQuantity)
	catalogHandler := v1.NewCatalogHandler(catalogUC, searchUC)
	wishlistHandler := v1.NewWishlistHandler(wishlistUC, catalogUC)
	searchHandler := v1.NewSearchHandler(searchUC, catalogUC)
	prefsHandler := v1.NewPrefsHandler(themeUC)

	// Set up Router
	mux := http.NewServeMux()

	// Catalog
	mux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts)
	mux.HandleFunc("GET /api/v1/product/{id}", catalogHandler.GetProductByID)
	mux.HandleFunc("GET /api/v1/categories", catalogHandler.GetCategories)

	// Cart
	mux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart)
	mux.HandleFunc("POST /api/v1/cart", cartHandler.AddToCart)
	mux.HandleFunc("PUT /api/v1/cart", cartHandler.UpdateCart)
	mux.HandleFunc("DELETE /api/v1/cart/{productId}", cartHandler.RemoveFromCart)
	mux.HandleFunc("DELETE /api/v1/cart", cartHandler.ClearCart)
	mux.HandleFunc("POST /api/v1/cart/commands", cartHandler.ExecuteCommand)

	// Wishlist
	mux.HandleFunc("GET /api/v1/wishlist", wishlistHandler.GetWishlist)
	mux.HandleFunc("POST /api/v1/wishlist", wishlistHandler.AddToWishlist)
	mux.HandleFunc("POST /api/v1/wishlist/toggle", wishlistHandler.ToggleWishlist)
	mux.HandleFunc("DELETE /api/v1/wishlist/{productId}", wishlistHandler.RemoveFromWishlist)

	// Search
	mux.HandleFunc("GET /api/v1/search", searchHandler.Search)
	mux.HandleFunc("GET /api/v1/search/suggestions", searchHandler.Suggestions)
	mux.HandleFunc("GET /api/v1/search/history", searchHandler.GetHistory)
	mux.HandleFunc("DELETE /api/v1/search/history", searchHandler.ClearHistory)

	// Preferences
	mux.HandleFunc("GET /api/v1/prefs/theme", prefsHandler.GetTheme)
	mux.HandleFunc("PUT /api/v1/prefs/theme", prefsHandler.SetTheme)
	mux.HandleFunc("POST /api/v1/prefs/theme/toggle", prefsHandler.ToggleTheme)

	// Health Check
	healthHandler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	}
	mux.HandleFunc("GET /api/v1/health", healthHandler)
	mux.HandleFunc("GET /health", healthHandler)

	addr := fmt.Sprintf(":%s", cfg.Port)

	// Rate limiter with lifecycle management: cleanup every minute,
	// client TTL 3 minutes.
	rateLimiter := middleware.NewRateLimiter(
		context.Background(),
		rate.Limit(cfg.RateLimitPerSecond),
		cfg.RateLimitBurst,
		time.Minute,
		3*time.Minute,
	)

	// Apply CORS, Request Logger, Rate Limit, and Gzip
	handler := middleware.NewCORSMiddleware(cfg)(mux)
	handler = middleware.RequestLogger(handler)
	handler = rateLimiter.Middleware()(handler)
	handler = gziphandler.GzipHandler(handler)

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	logger.ServiceStart("modernshop-backend", "1.0.0", cfg.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	rateLimiter.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.ServiceStop("modernshop-backend")
}
