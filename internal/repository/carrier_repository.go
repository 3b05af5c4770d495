package repository

import (
	"fleet-web/internal/models"

	"github.com/jmoiron/sqlx"
)

type CarrierRepository struct {
	db *sqlx.DB
}

func NewCarrierRepository(db *sqlx.DB) *CarrierRepository {
	return &CarrierRepository{db: db}
}

// FindAll returns every live carrier for a company, for reference
// resolution of free-text MC cells.
func (r *CarrierRepository) FindAll(companyID string) ([]models.Carrier, error) {
	var carriers []models.Carrier
	query := `SELECT * FROM carriers WHERE company_id = ? AND deleted_at IS NULL ORDER BY number`
	err := r.db.Select(&carriers, query, companyID)
	return carriers, err
}

// FindDefault returns the company's default operating authority.
func (r *CarrierRepository) FindDefault(companyID string) (*models.Carrier, error) {
	var carrier models.Carrier
	query := `SELECT * FROM carriers WHERE company_id = ? AND deleted_at IS NULL
	          ORDER BY is_default DESC, created_at ASC LIMIT 1`
	err := r.db.Get(&carrier, query, companyID)
	if err != nil {
		return nil, err
	}
	return &carrier, nil
}
