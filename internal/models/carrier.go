package models

import "time"

// Carrier is an operating authority (MC number) records are scoped under.
// Free-text company/MC references in import files resolve to one of these.
type Carrier struct {
	ID          string     `db:"id" json:"id"`
	CompanyID   string     `db:"company_id" json:"company_id"`
	Number      string     `db:"number" json:"number"`
	CompanyName string     `db:"company_name" json:"company_name"`
	Type        string     `db:"type" json:"type"`
	IsDefault   bool       `db:"is_default" json:"is_default"`
	DeletedAt   *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
