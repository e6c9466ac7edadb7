package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookfinder-backend/internal/config"
	infraCache "bookfinder-backend/internal/infrastructure/cache"
	"bookfinder-backend/internal/infrastructure/database"
	"bookfinder-backend/migrations"
	"bookfinder-backend/pkg/cache"

	"bookfinder-backend/internal/domains/author"
	authorHandler "bookfinder-backend/internal/domains/author/handler"
	authorRepo "bookfinder-backend/internal/domains/author/repository"
	authorService "bookfinder-backend/internal/domains/author/service"
	"bookfinder-backend/internal/domains/book"
	bookHandler "bookfinder-backend/internal/domains/book/handler"
	bookRepo "bookfinder-backend/internal/domains/book/repository"
	bookService "bookfinder-backend/internal/domains/book/service"
)

// Container holds every dependency of the application and is the root of the
// dependency graph. All components are singletons for the process lifetime.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache
	IDs    database.IDAllocator

	// Data access
	AuthorRepo author.Repository
	BookRepo   book.Repository

	// Business logic
	AuthorService author.Service
	BookService   book.Service

	// HTTP
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
}

// NewContainer initializes the whole dependency graph, in order: config,
// infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	log.Println("Loading configuration...")
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	log.Println("Connecting to PostgreSQL...")
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.Migrate(migrations.FS); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Connecting to Redis...")
	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is non-critical; the health endpoint will report it.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("Redis connection failed (non-critical): %v", err)
		}
	}
	c.Cache = redisCache

	c.IDs = database.NewSequenceAllocator(db)

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.IDs)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool, c.IDs)

	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)

	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)

	log.Println("Container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("Failed to close Redis client: %v", err)
		}
	}

	if c.DB != nil {
		_ = c.DB.Close()
	}
}
