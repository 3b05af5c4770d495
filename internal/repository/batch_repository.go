package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type BatchRepository struct {
	db *sqlx.DB
}

func NewBatchRepository(db *sqlx.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

func (r *BatchRepository) Create(batch *models.ImportBatch) error {
	if batch.ID == "" {
		batch.ID = uuid.NewString()
	}
	query := `INSERT INTO import_batches
	          (id, company_id, user_id, entity_type, filename, file_path, status,
	           total_rows, record_count, error_count, error_message, created_at, updated_at)
	          VALUES (:id, :company_id, :user_id, :entity_type, :filename, :file_path, :status,
	           :total_rows, :record_count, :error_count, :error_message, NOW(), NOW())`
	_, err := r.db.NamedExec(query, batch)
	return err
}

func (r *BatchRepository) Update(batch *models.ImportBatch) error {
	query := `UPDATE import_batches SET status = :status, total_rows = :total_rows,
	          record_count = :record_count, error_count = :error_count,
	          error_message = :error_message, updated_at = NOW()
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, batch)
	return err
}

func (r *BatchRepository) FindByID(id string) (*models.ImportBatch, error) {
	var batch models.ImportBatch
	query := `SELECT * FROM import_batches WHERE id = ? LIMIT 1`
	err := r.db.Get(&batch, query, id)
	if err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *BatchRepository) FindAll(companyID string, limit, offset int) ([]models.ImportBatch, int, error) {
	var batches []models.ImportBatch
	var total int

	err := r.db.Get(&total, `SELECT COUNT(*) FROM import_batches WHERE company_id = ?`, companyID)
	if err != nil {
		return nil, 0, err
	}

	query := `SELECT * FROM import_batches WHERE company_id = ?
	          ORDER BY created_at DESC LIMIT ? OFFSET ?`
	err = r.db.Select(&batches, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return batches, total, nil
}
