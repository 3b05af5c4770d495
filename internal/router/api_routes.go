package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"fleet-web/internal/config"
	"fleet-web/internal/handler"
	"fleet-web/internal/middleware"
	"fleet-web/internal/repository"
	"fleet-web/internal/service"
	"fleet-web/internal/utils"
	"fleet-web/internal/worker"
)

func SetupAPIRoutes(
	router fiber.Router,
	db *sqlx.DB,
	redisClient *redis.Client,
	cfg *config.Config,
) {
	log := utils.GetLogger()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	carrierRepo := repository.NewCarrierRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	truckRepo := repository.NewTruckRepository(db)
	trailerRepo := repository.NewTrailerRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	loadRepo := repository.NewLoadRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	batchRepo := repository.NewBatchRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, cfg)
	spreadsheetService := service.NewSpreadsheetService()
	importService := service.NewImportService(
		cfg, spreadsheetService,
		carrierRepo, customerRepo, truckRepo, trailerRepo, driverRepo,
		vendorRepo, locationRepo, loadRepo, leadRepo, userRepo, batchRepo,
		log,
	)

	// Asynq client enables the async path for large files; without
	// Redis every import runs synchronously.
	if redisClient != nil {
		asynqClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.AsynqRedisAddr,
			Password: cfg.AsynqRedisPassword,
			DB:       cfg.AsynqRedisDB,
		})
		importService.SetEnqueuer(worker.NewEnqueuer(asynqClient))
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	importHandler := handler.NewImportHandler(importService, spreadsheetService, cfg)
	batchHandler := handler.NewBatchHandler(batchRepo, redisClient)

	// Public routes
	auth := router.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", authHandler.Register)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)

	// Protected routes
	protected := router.Group("", middleware.AuthMiddleware(cfg))

	protected.Get("/auth/me", authHandler.Me)

	imports := protected.Group("/imports")
	imports.Get("/batches", batchHandler.List)
	imports.Get("/batches/:id", batchHandler.Get)
	imports.Get("/:entity/template", importHandler.Template)
	imports.Post("/:entity", importHandler.Upload)
}
