package models

import "time"

// Import batch statuses
const (
	BatchPending   = "PENDING"
	BatchQueued    = "QUEUED"
	BatchRunning   = "RUNNING"
	BatchCompleted = "COMPLETED"
	BatchFailed    = "FAILED"
)

// ImportBatch is the audit anchor for one import run. Every record written
// during the run carries its ID.
type ImportBatch struct {
	ID           string    `db:"id" json:"id"`
	CompanyID    string    `db:"company_id" json:"company_id"`
	UserID       string    `db:"user_id" json:"user_id"`
	EntityType   string    `db:"entity_type" json:"entity_type"`
	Filename     string    `db:"filename" json:"filename"`
	FilePath     string    `db:"file_path" json:"file_path"`
	Status       string    `db:"status" json:"status"`
	TotalRows    int       `db:"total_rows" json:"total_rows"`
	RecordCount  int       `db:"record_count" json:"record_count"`
	ErrorCount   int       `db:"error_count" json:"error_count"`
	ErrorMessage string    `db:"error_message" json:"error_message"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}
