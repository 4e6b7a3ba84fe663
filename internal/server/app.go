package server

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/chefmaster/backend/config"
	"github.com/pageza/chefmaster/backend/internal/api"
	"github.com/pageza/chefmaster/backend/internal/cache"
	"github.com/pageza/chefmaster/backend/internal/database"
	"github.com/pageza/chefmaster/backend/internal/generator"
	"github.com/pageza/chefmaster/backend/internal/imaging"
	"github.com/pageza/chefmaster/backend/internal/kb"
	"github.com/pageza/chefmaster/backend/internal/middleware"
	"github.com/pageza/chefmaster/backend/internal/router"
	"github.com/pageza/chefmaster/backend/internal/service"
	"github.com/pageza/chefmaster/backend/internal/store"
)

// App holds the server and the connections it owns
type App struct {
	Server *Server
	DB     *gorm.DB
	Redis  *redis.Client
}

// Bootstrap connects every dependency named in cfg and builds the server.
// Redis and S3 are optional; when unreachable the app runs without them.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, error) {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	base, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{DB: db}

	var drafts cache.DraftCache = cache.NewMemoryCache(cfg.DraftTTL)
	if cfg.RedisEnabled() {
		rdb, err := database.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Printf("Warning: Redis unavailable, using in-memory drafts without rate limiting: %v", err)
		} else {
			app.Redis = rdb
			drafts = cache.NewRedisCache(rdb, cfg.DraftTTL)
		}
	}

	var objects imaging.ObjectStore
	if cfg.S3Enabled() {
		s3cfg, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Printf("Warning: S3 unavailable, serving cuisine images directly: %v", err)
		} else {
			objects = s3cfg
		}
	}
	resolver := imaging.NewResolver(cfg.ImageFetchTimeout, cfg.PlaceholderImageURL, objects)

	recipeStore := store.NewRecipeStore(db)
	health := map[string]api.HealthChecker{
		"database": func(ctx context.Context) error { return database.HealthCheck(ctx, db) },
	}
	if app.Redis != nil {
		health["redis"] = func(ctx context.Context) error { return app.Redis.Ping(ctx).Err() }
	}

	r := router.SetupRouter(router.Dependencies{
		Recipes:     service.NewRecipeService(generator.New(base), recipeStore, drafts, resolver),
		Feedback:    service.NewFeedbackService(recipeStore),
		Limiter:     middleware.NewGenerationRateLimiter(app.Redis, cfg.RateLimitWindow, cfg.RateLimitRequests),
		CORSOrigins: cfg.CORSOrigins,
		Health:      health,
	})
	app.Server = NewServer(cfg, r)

	log.Printf("Loaded %d cuisines: %v", base.Len(), base.CuisineIDs())
	return app, nil
}

// Close releases the database and Redis connections
func (a *App) Close() error {
	var errs []error
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}

// runMigrations is replaced in tests
var runMigrations = database.RunMigrations

// openDatabase connects and migrates, closing the connection if migration fails
func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := runMigrations(db); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, err
	}
	return db, nil
}

func loadCatalog(cfg *config.Config) (*kb.Base, error) {
	if cfg.CatalogPath == "" {
		return kb.Default(), nil
	}
	base, err := kb.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return base, nil
}
