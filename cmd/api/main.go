// @title Taskgen API
// @version 1.0
// @description Parametrized exercise sheets: documents of problems rendered per student.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"taskgen/internal/adapter"
	"taskgen/internal/cache"
	"taskgen/internal/config"
	"taskgen/internal/database"
	"taskgen/internal/handler"
	"taskgen/internal/logger"
	"taskgen/internal/middleware"
	"taskgen/internal/problems/kinds"
	"taskgen/internal/repository"
	"taskgen/internal/service"
	"taskgen/internal/validation"

	_ "taskgen/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(logger.Config{Level: cfg.Logger.Level, Env: cfg.Env}); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Every kind must be registered before the first entity operation.
	registry := kinds.NewDefaultRegistry()
	appLogger.Info("Problem kind registry built", zap.Strings("kinds", registry.Identifiers()))

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	problemRepository := repository.NewSQLXProblemRepository(db)
	textRepository := repository.NewSQLXProblemTextRepository(db)
	documentRepository := repository.NewSQLXDocumentRepository(db)
	studentRepository := repository.NewSQLXStudentRepository(db)
	userRepository := repository.NewSQLXUserRepository(db)

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	sheetCache := service.NewSheetCacheService(cacheAdapter, cfg.Cache.StudentSheetTTL)

	problemService := service.NewProblemService(
		problemRepository, textRepository, documentRepository, studentRepository,
		registry, sheetCache,
	)
	documentService := service.NewDocumentService(
		documentRepository, problemRepository, studentRepository, problemService,
	)
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}

	validator := validation.NewValidator()
	problemHandler := handler.NewProblemHandler(problemService, validator)
	documentHandler := handler.NewDocumentHandler(documentService, validator)
	authHandler := handler.NewAuthHandler(authService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	protected := middleware.Protected(authService)

	documentGroup := apiGroup.Group("/documents", protected)
	documentGroup.Post("/", documentHandler.CreateDocument)
	documentGroup.Get("/", documentHandler.ListDocuments)
	documentGroup.Get("/:documentId", documentHandler.GetDocument)
	documentGroup.Put("/:documentId", documentHandler.UpdateDocument)
	documentGroup.Delete("/:documentId", documentHandler.DeleteDocument)
	documentGroup.Post("/:documentId/worksheets", documentHandler.Worksheets)
	documentGroup.Post("/:documentId/problems", problemHandler.CreateProblem)

	problemGroup := apiGroup.Group("/problems", protected)
	problemGroup.Get("/:problemId", problemHandler.GetProblem)
	problemGroup.Put("/:problemId", problemHandler.UpdateProblem)
	problemGroup.Delete("/:problemId", problemHandler.DeleteProblem)
	problemGroup.Post("/:problemId/duplicate", problemHandler.DuplicateProblem)
	problemGroup.Get("/:problemId/example", problemHandler.ExampleText)
	problemGroup.Get("/:problemId/students/:studentId/text", problemHandler.StudentText)

	apiGroup.Get("/kinds", protected, problemHandler.ListKinds)
	apiGroup.Get("/kinds/:kindId/texts", protected, problemHandler.ListTextsByKind)
	apiGroup.Post("/texts", protected, problemHandler.CreateText)
	apiGroup.Get("/students", protected, documentHandler.ListStudents)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
