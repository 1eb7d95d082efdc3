package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"telefood/internal/bot"
	"telefood/internal/handlers"
	"telefood/internal/middleware"
	"telefood/internal/models"
	"telefood/internal/repositories"
	"telefood/internal/services"
	"telefood/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("SQLITE_PATH", "telefood.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	botToken := viper.GetString("TELEGRAM_BOT_TOKEN")
	if botToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is not set")
	}
	jwtSecret := viper.GetString("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// --- Database ---
	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.ProductType{},
		&models.Product{},
		&models.Cart{},
		&models.Order{},
		&models.Admin{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL is empty, order events disabled")
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	catalogRepo := repositories.NewGORMCatalogRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	adminRepo := repositories.NewGORMAdminRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(catalogRepo)
	cartService := services.NewCartService(cartRepo, catalogRepo)
	var events services.OrderEventPublisher
	if mqClient != nil {
		events = mqClient
	}
	orderService := services.NewOrderService(orderRepo, catalogRepo, events)
	authService := services.NewAuthService(adminRepo, jwtSecret)

	// --- Admin API ---
	app := fiber.New()
	app.Use(fiberlogger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService).RegisterRoutes(apiV1)

	protected := apiV1.Group("", middleware.AuthRequired(authService))
	handlers.NewCatalogHandler(catalogService).RegisterRoutes(protected)
	handlers.NewOrderHandler(orderService).RegisterRoutes(protected)

	// --- Telegram bot ---
	foodBot, err := bot.New(botToken, userService, catalogService, cartService, orderService)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := foodBot.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Bot stopped: %v", err)
		}
	}()

	// --- Order event consumer ---
	if mqClient != nil {
		messageHandler := func(msg amqp.Delivery) error {
			log.Printf("Received order event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}
		if err := mqClient.ConsumeOrderEvents(messageHandler); err != nil {
			log.Printf("Failed to start order event consumer: %v", err)
		}
	}

	// --- HTTP server ---
	appPort := viper.GetString("APP_PORT")
	go func() {
		log.Printf("Starting admin API on %s", appPort)
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	cancel()
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}

// openDatabase opens PostgreSQL when DATABASE_DSN is set and falls back to a
// local SQLite file otherwise.
func openDatabase() (*gorm.DB, error) {
	if dsn := viper.GetString("DATABASE_DSN"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(viper.GetString("SQLITE_PATH")), &gorm.Config{})
}
