package main

import (
	"context"                       // context package is needed for Redis operations
	"log"                           // log package is needed for logging
	"mybudget/internal/api"         // Custom package for API handlers
	"mybudget/internal/config"      // Custom package for configuration
	"mybudget/internal/middleware"  // Custom package for middleware
	"mybudget/internal/store"       // Custom package for persistence

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Permissive CORS with the Authorization header exposed
	r.Use(middleware.CORS())

	// Persistence gateways
	accounts := store.NewAccountStore(db)
	transactions := store.NewTransactionStore(db)

	// Client auth routes
	r.POST("/client", api.RegisterClientHandler(db))             // Registration endpoint
	r.GET("/client", api.LoginClientHandler(db, cfg.JWTSecret))  // Login endpoint

	// Account routes
	r.GET("/accounts", api.ListAccountsHandler(accounts, redisClient))          // Full unfiltered list
	r.GET("/account/:id", api.GetAccountHandler(accounts))                      // Single account
	r.POST("/account", api.CreateAccountHandler(accounts, redisClient))         // Create account
	r.PATCH("/account/:id", api.UpdateAccountHandler(accounts, redisClient))    // Update account
	r.DELETE("/account/:id", api.DeleteAccountHandler(accounts, redisClient))   // Delete account

	// Owner-scoped account listing, behind the bearer gate. Gin allows a
	// single wildcard name per path position, so both owner-scoped routes
	// share :id.
	r.GET("/:id/accounts", middleware.BearerAuth(cfg.JWTSecret), api.ListClientAccountsHandler(accounts, redisClient))

	// Transaction routes
	r.GET("/:id/transactions", api.ListAccountTransactionsHandler(transactions, redisClient)) // Account-scoped list
	r.GET("/transaction/:id", api.GetTransactionHandler(transactions))                        // Single transaction
	r.POST("/transaction", api.CreateTransactionHandler(transactions, redisClient))           // Validated creation
	r.PATCH("/transaction/:id", api.UpdateTransactionHandler(transactions, redisClient))      // Update transaction
	r.DELETE("/transaction/:id", api.DeleteTransactionHandler(transactions, redisClient))     // Delete transaction

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
