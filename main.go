package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"learning-service/internal/config"
	"learning-service/internal/db"
	"learning-service/internal/event"
	"learning-service/internal/handlers"
	"learning-service/internal/llm"
	"learning-service/internal/repository"
	"learning-service/internal/service"
	"learning-service/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()

	gin.SetMode(config.AppConfig.GinMode)

	db.InitMongo(config.AppConfig.MongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher (optional)
	var publisher *event.EventPublisher
	if config.AppConfig.RabbitMQURI != "" && config.AppConfig.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(config.AppConfig.RabbitMQURI, config.AppConfig.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		log.Println("RabbitMQ connected successfully")
	} else {
		log.Println("RabbitMQ not configured, learning events will not be published")
	}

	database := db.Client.Database(config.AppConfig.MongoDatabase)

	llmClient := llm.NewClient(config.AppConfig.LLMBaseURL, config.AppConfig.LLMAPIKey, config.AppConfig.LLMModel)

	// Repositories
	userRepo := repository.NewUserRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	chatRepo := repository.NewChatRepository(database)

	// Services
	authService := service.NewAuthService(userRepo)
	quizService := service.NewQuizService(quizRepo, progressRepo, userRepo, llmClient)
	progressService := service.NewProgressService(progressRepo, userRepo)
	chatService := service.NewChatService(chatRepo, llmClient)
	moduleService := service.NewModuleService()

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	quizHandler := handlers.NewQuizHandler(quizService)
	progressHandler := handlers.NewProgressHandler(progressService)
	aiHandler := handlers.NewAIHandler(chatService)
	moduleHandler := handlers.NewModuleHandler(moduleService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AppConfig.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   config.AppConfig.ServiceName,
			"version":   config.AppConfig.ServiceVersion,
			"timestamp": time.Now(),
		})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/signup", func(c *gin.Context) {
			authHandler.Signup(c)
			if publisher != nil && c.Writer.Status() == http.StatusOK {
				publisher.Publish("user.signup", gin.H{"timestamp": time.Now()})
			}
		})
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authMiddleware(), authHandler.Me)
	}

	ai := api.Group("/ai")
	ai.Use(authMiddleware())
	{
		ai.POST("/tutor", aiHandler.Tutor)
		ai.POST("/chat", func(c *gin.Context) {
			aiHandler.Chat(c)
			if publisher != nil {
				publisher.Publish("chat.message", gin.H{
					"user_id":   c.GetString("userID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	quiz := api.Group("/quiz")
	quiz.Use(authMiddleware())
	{
		quiz.POST("/generate", func(c *gin.Context) {
			quizHandler.Generate(c)
			if publisher != nil {
				publisher.Publish("quiz.generated", gin.H{
					"user_id":   c.GetString("userID"),
					"timestamp": time.Now(),
				})
			}
		})
		quiz.POST("/submit", func(c *gin.Context) {
			quizHandler.Submit(c)
			if publisher != nil {
				publisher.Publish("quiz.submitted", gin.H{
					"user_id":   c.GetString("userID"),
					"timestamp": time.Now(),
				})
			}
		})
		quiz.GET("/list", quizHandler.List)
	}

	progress := api.Group("/progress")
	progress.Use(authMiddleware())
	{
		progress.GET("/stats", progressHandler.Stats)
		progress.POST("/add", func(c *gin.Context) {
			progressHandler.Add(c)
			if publisher != nil {
				publisher.Publish("progress.added", gin.H{
					"user_id":   c.GetString("userID"),
					"timestamp": time.Now(),
				})
			}
		})
	}

	modules := api.Group("/modules")
	{
		modules.GET("/list", moduleHandler.List)
		modules.GET("/:id", moduleHandler.Get)
	}

	log.Printf("Starting %s on port %s", config.AppConfig.ServiceName, config.AppConfig.Port)
	if err := r.Run(":" + config.AppConfig.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := utils.GetUserIDFromToken(c)
		if err != nil {
			utils.UnauthorizedResponse(c, "Invalid or missing token")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
