package worker

import (
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"fleet-web/internal/config"
	"fleet-web/internal/repository"
	"fleet-web/internal/service"
	"fleet-web/internal/utils"
)

func RegisterHandlers(mux *asynq.ServeMux, db *sqlx.DB, redisClient *redis.Client, cfg *config.Config) {
	log := utils.GetLogger()

	imports := service.NewImportService(
		cfg,
		service.NewSpreadsheetService(),
		repository.NewCarrierRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewTruckRepository(db),
		repository.NewTrailerRepository(db),
		repository.NewDriverRepository(db),
		repository.NewVendorRepository(db),
		repository.NewLocationRepository(db),
		repository.NewLoadRepository(db),
		repository.NewLeadRepository(db),
		repository.NewUserRepository(db),
		repository.NewBatchRepository(db),
		log,
	)

	handler := NewImportTaskHandler(imports, redisClient, log)
	mux.HandleFunc(TypeImportProcess, handler.Handle)
}
