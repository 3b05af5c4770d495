package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"fleet-web/internal/repository"
	"fleet-web/internal/utils"
)

type BatchHandler struct {
	batches *repository.BatchRepository
	redis   *redis.Client
}

func NewBatchHandler(batches *repository.BatchRepository, redisClient *redis.Client) *BatchHandler {
	return &BatchHandler{
		batches: batches,
		redis:   redisClient,
	}
}

func (h *BatchHandler) List(c *fiber.Ctx) error {
	companyID := localString(c, "company_id")
	params := utils.GetPaginationParams(c)

	batches, total, err := h.batches.FindAll(companyID, params.Limit, utils.GetOffset(params.Page, params.Limit))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.CodeInternal, "Failed to load import batches")
	}

	meta := utils.CalculatePagination(params.Page, params.Limit, int64(total))
	return utils.PaginatedResponseBuilder(c, "Import batches", batches, meta)
}

func (h *BatchHandler) Get(c *fiber.Ctx) error {
	batch, err := h.batches.FindByID(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, utils.CodeNotFound, "Import batch not found")
	}
	if batch.CompanyID != localString(c, "company_id") {
		return utils.ErrorResponse(c, fiber.StatusNotFound, utils.CodeNotFound, "Import batch not found")
	}

	progress := ""
	if h.redis != nil {
		progress, _ = h.redis.Get(c.Context(), "import:progress:"+batch.ID).Result()
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"batch":    batch,
		"progress": progress,
	})
}
