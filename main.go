package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nicolesequeira/simpleshop/cart"
	"github.com/nicolesequeira/simpleshop/catalogsource"
	cartControllers "github.com/nicolesequeira/simpleshop/controllers/cart"
	"github.com/nicolesequeira/simpleshop/middleware"
	"github.com/nicolesequeira/simpleshop/models"
	"github.com/nicolesequeira/simpleshop/routes"
	"github.com/nicolesequeira/simpleshop/session"
	"github.com/nicolesequeira/simpleshop/storage"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("starting simpleshop")

	// Cart persistence backend
	store := initStorage(logger)

	sm := session.NewManager(store, 30*time.Minute)
	stop := make(chan struct{})
	defer close(stop)
	sm.StartJanitor(5*time.Minute, stop)

	// Catalog load. A failure is not fatal: the server stays up, shop and
	// cart routes answer 503 and a restart re-attempts the load.
	if products, err := loadCatalog(); err != nil {
		logger.Error("catalog load failed", zap.Error(err))
	} else if err := sm.SetCatalog(products); err != nil {
		logger.Error("catalog rejected", zap.Error(err))
	} else {
		logger.Info("catalog loaded", zap.Int("products", len(products)))
	}

	// Gin setup
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Session())

	// Setup routes
	hub := cartControllers.NewHub()
	routes.SetupRoutes(r, sm, hub)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("server running", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// initStorage picks the cart persistence backend: Postgres via GORM when
// DATABASE_URL is set, files under CART_DIR otherwise, in-memory as the
// dev fallback.
func initStorage(logger *zap.Logger) cart.Storage {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			logger.Fatal("db connection failed", zap.Error(err))
		}
		store, err := storage.NewGorm(db)
		if err != nil {
			logger.Fatal("db migration failed", zap.Error(err))
		}
		logger.Info("cart storage: postgres")
		return store
	}

	if dir := os.Getenv("CART_DIR"); dir != "" {
		store, err := storage.NewFile(dir)
		if err != nil {
			logger.Fatal("cart dir unusable", zap.String("dir", dir), zap.Error(err))
		}
		logger.Info("cart storage: file", zap.String("dir", dir))
		return store
	}

	logger.Info("cart storage: in-memory")
	return storage.NewMemory()
}

// loadCatalog reads the shop document named by SHOP_DATA: an http(s) URL,
// an .xlsx workbook, or a JSON file path (default shop.json).
func loadCatalog() ([]models.Product, error) {
	src := os.Getenv("SHOP_DATA")
	if src == "" {
		src = "shop.json"
	}

	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		return catalogsource.Fetch(context.Background(), src)
	case strings.HasSuffix(src, ".xlsx"):
		return catalogsource.FromXLSX(src)
	default:
		return catalogsource.FromFile(src)
	}
}
