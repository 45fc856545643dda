package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	handlerHttp "github.com/mikiasgoitom/Notebook/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Notebook/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Notebook/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Notebook/internal/infrastructure/database"
	"github.com/mikiasgoitom/Notebook/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/Notebook/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/Notebook/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Notebook/internal/infrastructure/store"
	"github.com/mikiasgoitom/Notebook/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Notebook/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Notebook/internal/usecase"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	roleRepo := mongodb.NewMongoRoleRepository(db.Collection("roles"))
	noteRepo := mongodb.NewMongoNoteRepository(db.Collection("notes"))

	// Unique indexes back the bootstrap's existence checks when several
	// processes start at once.
	if err := userRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}
	if err := roleRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create role indexes: %v", err)
	}

	// Dependency Injection: Services
	appConfig := config.NewConfig()
	hasher := passwordservice.NewHasher(appConfig.GetBcryptCost())
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, appLogger)
	noteUsecase := usecase.NewNoteUsecase(noteRepo, uuidGenerator, appLogger, appValidator)
	userUsecase := usecase.NewUserUsecase(userRepo, roleRepo, appLogger)

	// Optional Dependency Injection: Redis cache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		noteCache := store.NewNoteCacheStore(rdb)
		noteUsecase.SetNoteCache(noteCache)
	}

	// Seed baseline roles and accounts before accepting traffic. A
	// partially seeded store must never serve requests.
	bootstrap := usecase.NewBootstrapUsecase(roleRepo, userRepo, hasher, uuidGenerator, appLogger, appConfig)
	if err := bootstrap.Run(context.Background()); err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}

	// Setup API routes
	appRouter := handlerHttp.NewRouter(authUsecase, noteUsecase, userUsecase, appLogger)
	appRouter.SetupRoutes(router)

	// Start the server
	port := appConfig.GetPort()
	log.Printf("Server running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
