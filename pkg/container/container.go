package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"

	"library-backend/internal/domains/author"
	authorHandler "library-backend/internal/domains/author/handler"
	authorRepo "library-backend/internal/domains/author/repository"
	authorService "library-backend/internal/domains/author/service"

	"library-backend/internal/domains/book"
	bookHandler "library-backend/internal/domains/book/handler"
	bookRepo "library-backend/internal/domains/book/repository"
	bookService "library-backend/internal/domains/book/service"

	"library-backend/internal/domains/user"
	userHandler "library-backend/internal/domains/user/handler"
	userRepo "library-backend/internal/domains/user/repository"
	userService "library-backend/internal/domains/user/service"
)

// Container holds the application's full dependency graph. Everything
// in it is a singleton living for the process lifetime.
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.MongoDB
	JWTManager *jwt.Manager

	// Repositories (data access)
	AuthorRepo author.Repository
	BookRepo   book.Repository
	UserRepo   user.Repository

	// Services (business logic)
	AuthorService author.Service
	BookService   book.Service
	UserService   user.Service

	// Handlers (HTTP)
	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.BookHandler
	UserHandler   *userHandler.UserHandler
}

// NewContainer initializes the dependency graph in order:
// config, then infrastructure, then repositories, services, handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	// STEP 1: CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// STEP 2: DATABASE
	db := database.NewMongoDB(cfg.Mongo)

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// The unique indexes are load-bearing: author upserts and username
	// uniqueness depend on them existing before the first write
	if err := db.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}

	c.DB = db
	logger.Info("database connected", map[string]interface{}{
		"database": cfg.Mongo.Database,
	})

	// STEP 3: TOKEN MANAGER
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour)

	// STEP 4: REPOSITORIES
	c.AuthorRepo = authorRepo.NewMongoRepository(db)
	c.BookRepo = bookRepo.NewMongoRepository(db)
	c.UserRepo = userRepo.NewMongoRepository(db)

	// STEP 5: SERVICES
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)

	// STEP 6: HANDLERS
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)

	return c, nil
}

// Cleanup releases held resources; call on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := c.DB.Close(ctx); err != nil {
			logger.Error("failed to close database", err)
		}
	}
}
