package worker

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"fleet-web/internal/importer"
)

const (
	TypeImportProcess = "import:process"

	// QueueImports carries the bulk import runs; it outweighs the
	// default queue so uploads drain ahead of housekeeping tasks.
	QueueImports = "imports"
)

// ImportPayload is the queued form of one import run. The request keeps
// the caller's mapping and resolutions so the worker run behaves exactly
// like the synchronous path would have.
type ImportPayload struct {
	BatchID string           `json:"batch_id"`
	Request importer.Request `json:"request"`
}

func NewImportTask(batchID string, req importer.Request) (*asynq.Task, error) {
	payload, err := json.Marshal(ImportPayload{BatchID: batchID, Request: req})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeImportProcess, payload,
		asynq.Queue(QueueImports), asynq.MaxRetry(2)), nil
}

// Enqueuer pushes import tasks onto the asynq queue. It satisfies
// service.ImportEnqueuer.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueImport(batchID string, req importer.Request) error {
	task, err := NewImportTask(batchID, req)
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(task)
	return err
}
