package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nhalm/canonlog"
	"github.com/nhalm/pgxkit"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/catalogapp/catalog/internal/api"
	"github.com/catalogapp/catalog/internal/cache"
	"github.com/catalogapp/catalog/internal/repository/memory"
	"github.com/catalogapp/catalog/internal/repository/mongostore"
	"github.com/catalogapp/catalog/internal/repository/postgres"
	"github.com/catalogapp/catalog/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to run the server on")
	serveCmd.Flags().String("host", "0.0.0.0", "Host to bind the server to")
	_ = viper.BindPFlag("PORT", serveCmd.Flags().Lookup("port"))
	_ = viper.BindPFlag("HOST", serveCmd.Flags().Lookup("host"))
}

type categoryStore interface {
	service.CategoryRepository
	api.Pinger
}

// stores is the repository pair for the configured STORE_DRIVER.
type stores struct {
	categories categoryStore
	products   service.ProductRepository
	close      func(context.Context) error
}

func openStores(ctx context.Context, driver string) (*stores, error) {
	switch driver {
	case "mongo":
		uri := viper.GetString("MONGO_URI")
		if uri == "" {
			return nil, fmt.Errorf("MONGO_URI is required")
		}
		client, err := mongostore.Connect(ctx, uri)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to mongo: %w", err)
		}
		db := client.Database(viper.GetString("MONGO_DATABASE"))
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			categories: mongostore.NewCategoryRepository(db),
			products:   mongostore.NewProductRepository(db),
			close:      client.Disconnect,
		}, nil

	case "postgres":
		databaseURL := viper.GetString("DATABASE_URL")
		if databaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		db := pgxkit.NewDB()
		if err := db.Connect(ctx, databaseURL); err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return &stores{
			categories: postgres.NewCategoryRepository(db),
			products:   postgres.NewProductRepository(db),
			close:      db.Shutdown,
		}, nil

	case "memory":
		return &stores{
			categories: memory.NewCategoryRepository(),
			products:   memory.NewProductRepository(),
			close:      func(context.Context) error { return nil },
		}, nil
	}

	return nil, fmt.Errorf("unknown STORE_DRIVER %q (want mongo, postgres or memory)", driver)
}

// categoryOptions enables the Redis reference cache when REDIS_URL is set.
// An unreachable Redis only disables the cache.
func categoryOptions(ctx context.Context) ([]service.CategoryServiceOption, func()) {
	redisURL := viper.GetString("REDIS_URL")
	if redisURL == "" {
		return nil, func() {}
	}

	client, err := cache.Connect(ctx, redisURL)
	if err != nil {
		slog.Warn("category cache disabled", "error", err)
		return nil, func() {}
	}

	refCache := cache.NewCategoryRefCache(client, viper.GetDuration("CACHE_TTL"))
	slog.Info("category cache enabled", "ttl", viper.GetDuration("CACHE_TTL"))
	return []service.CategoryServiceOption{service.WithRefCache(refCache)}, func() { _ = client.Close() }
}

func runServe(_ *cobra.Command, _ []string) error {
	canonlog.SetupGlobalLogger(viper.GetString("LOG_LEVEL"), viper.GetString("LOG_FORMAT"))

	host := viper.GetString("HOST")
	port := viper.GetInt("PORT")
	addr := fmt.Sprintf("%s:%d", host, port)

	ctx := context.Background()
	driver := viper.GetString("STORE_DRIVER")

	st, err := openStores(ctx, driver)
	if err != nil {
		return err
	}
	defer func() { _ = st.close(ctx) }()

	opts, closeCache := categoryOptions(ctx)
	defer closeCache()

	// Services
	categorySvc := service.NewCategoryService(st.categories, opts...)
	productSvc := service.NewProductService(st.products, categorySvc)

	// Handler
	handler := api.NewHandler(categorySvc, productSvc, st.categories)

	routeConfig := api.RouteConfig{
		ReadRPS:        viper.GetInt("RATE_LIMIT_READ_RPS"),
		WriteRPS:       viper.GetInt("RATE_LIMIT_WRITE_RPS"),
		MaxBodyBytes:   viper.GetInt64("MAX_REQUEST_BODY_BYTES"),
		AllowedOrigins: api.ParseAllowedOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
	}

	srv := &http.Server{
		Addr:           addr,
		Handler:        handler.RoutesWithConfig(routeConfig),
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   75 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1048576,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", addr, "store", driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
