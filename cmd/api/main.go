package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/counselhub/counsel-api/internal/config"
	"github.com/counselhub/counsel-api/internal/directory"
	"github.com/counselhub/counsel-api/internal/handlers"
	"github.com/counselhub/counsel-api/internal/middleware"
	"github.com/counselhub/counsel-api/internal/registry"
	"github.com/counselhub/counsel-api/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}
	config.Load()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.MongoURI))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(ctx)
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	db := client.Database(config.AppConfig.MongoDatabase)
	logger.Info("Connected to MongoDB", zap.String("database", config.AppConfig.MongoDatabase))

	// --- Stores ---
	slotRegistry := registry.NewMongoRegistry(db)
	if ensurer, ok := slotRegistry.(registry.IndexEnsurer); ok {
		if err := ensurer.EnsureIndexes(ctx); err != nil {
			logger.Fatal("Failed to ensure slot indexes", zap.Error(err))
		}
	}
	consultants := directory.NewMongoDirectory(db)
	if ensurer, ok := consultants.(registry.IndexEnsurer); ok {
		if err := ensurer.EnsureIndexes(ctx); err != nil {
			logger.Fatal("Failed to ensure consultant indexes", zap.Error(err))
		}
	}

	h := handlers.NewHandler(slotRegistry, consultants)

	// --- Gin Router ---
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorHandler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.AppConfig.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	// --- Routes ---
	api := r.Group("/api")
	{
		// Public reads: the booking UI and the calendar grid need these
		// without a session.
		api.GET("/slot-times", h.ListSlots)
		api.GET("/slot-times/find", h.FindSlot)
		api.GET("/consultants", h.ListConsultants)
		api.GET("/consultants/:id", h.GetConsultant)
	}

	admin := r.Group("/api")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.POST("/slot-times", h.CreateSlot)
		admin.PUT("/slot-times/:id", h.UpdateSlot)
		admin.PUT("/slot-times/:id/status", h.SetSlotStatus)
		admin.DELETE("/slot-times/:id", h.DeleteSlot)

		admin.POST("/consultants", h.CreateConsultant)
		admin.DELETE("/consultants/:id", h.DeleteConsultant)
	}

	logger.Info("Starting server", zap.String("port", config.AppConfig.APIPort))
	if err := r.Run(":" + config.AppConfig.APIPort); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
