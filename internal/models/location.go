package models

import "time"

type Location struct {
	ID              string     `db:"id" json:"id"`
	CompanyID       string     `db:"company_id" json:"company_id"`
	LocationNumber  string     `db:"location_number" json:"location_number"`
	Name            string     `db:"name" json:"name"`
	LocationCompany string     `db:"location_company" json:"location_company"`
	Address         string     `db:"address" json:"address"`
	City            string     `db:"city" json:"city"`
	State           string     `db:"state" json:"state"`
	Zip             string     `db:"zip" json:"zip"`
	ContactName     string     `db:"contact_name" json:"contact_name"`
	ImportBatchID   string     `db:"import_batch_id" json:"import_batch_id"`
	IsActive        bool       `db:"is_active" json:"is_active"`
	DeletedAt       *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}
