package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"fleet-web/internal/service"
)

// ImportTaskHandler runs queued import batches. Progress is published to
// Redis under import:progress:<batch-id> so the API can report it.
type ImportTaskHandler struct {
	imports *service.ImportService
	redis   *redis.Client
	log     *logrus.Logger
}

func NewImportTaskHandler(imports *service.ImportService, redisClient *redis.Client, log *logrus.Logger) *ImportTaskHandler {
	return &ImportTaskHandler{
		imports: imports,
		redis:   redisClient,
		log:     log,
	}
}

func progressKey(batchID string) string {
	return "import:progress:" + batchID
}

func (h *ImportTaskHandler) Handle(ctx context.Context, task *asynq.Task) error {
	var payload ImportPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid import payload: %w", err)
	}

	h.log.WithFields(logrus.Fields{
		"batch_id": payload.BatchID,
		"entity":   payload.Request.EntityType,
	}).Info("processing queued import")

	h.setProgress(ctx, payload.BatchID, "running")

	result, err := h.imports.ProcessBatch(ctx, payload.Request, payload.BatchID)
	if err != nil {
		h.setProgress(ctx, payload.BatchID, "failed")
		return err
	}

	h.setProgress(ctx, payload.BatchID, "completed")
	h.log.WithFields(logrus.Fields{
		"batch_id": payload.BatchID,
		"created":  result.Created,
		"updated":  result.Updated,
		"restored": result.Restored,
		"skipped":  result.Skipped,
		"rejected": result.Rejected,
	}).Info("queued import finished")
	return nil
}

func (h *ImportTaskHandler) setProgress(ctx context.Context, batchID, state string) {
	if h.redis == nil {
		return
	}
	if err := h.redis.Set(ctx, progressKey(batchID), state, 24*time.Hour).Err(); err != nil {
		h.log.WithError(err).Warn("failed to publish import progress")
	}
}
