package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LocationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) FindAllForImport(companyID string) ([]models.Location, error) {
	var locations []models.Location
	query := `SELECT id, location_number, name, address, city, state, deleted_at, is_active
	          FROM locations WHERE company_id = ?`
	err := r.db.Select(&locations, query, companyID)
	return locations, err
}

const locationInsertColumns = `(id, company_id, location_number, name, location_company,
	address, city, state, zip, contact_name,
	import_batch_id, is_active, created_at, updated_at)
	VALUES (:id, :company_id, :location_number, :name, :location_company,
	:address, :city, :state, :zip, :contact_name,
	:import_batch_id, :is_active, NOW(), NOW())`

func (r *LocationRepository) BulkInsert(locations []models.Location) error {
	if len(locations) == 0 {
		return nil
	}
	for i := range locations {
		if locations[i].ID == "" {
			locations[i].ID = uuid.NewString()
		}
	}
	_, err := r.db.NamedExec("INSERT INTO locations "+locationInsertColumns, locations)
	return err
}

func (r *LocationRepository) Create(location *models.Location) error {
	if location.ID == "" {
		location.ID = uuid.NewString()
	}
	_, err := r.db.NamedExec("INSERT INTO locations "+locationInsertColumns, location)
	return err
}

func locationMergeSet(l *models.Location) *mergeSet {
	s := &mergeSet{}
	s.set("location_number", l.LocationNumber)
	s.set("name", l.Name)
	s.set("location_company", l.LocationCompany)
	s.set("address", l.Address)
	s.set("city", l.City)
	s.set("state", l.State)
	s.set("zip", l.Zip)
	s.set("contact_name", l.ContactName)
	s.set("import_batch_id", l.ImportBatchID)
	s.force("updated_at = NOW()")
	return s
}

func (r *LocationRepository) Update(id string, location *models.Location) error {
	s := locationMergeSet(location)
	_, err := r.db.Exec("UPDATE locations SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}

func (r *LocationRepository) Restore(id string, location *models.Location) error {
	s := locationMergeSet(location)
	s.force("deleted_at = NULL")
	s.force("is_active = 1")
	_, err := r.db.Exec("UPDATE locations SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}
