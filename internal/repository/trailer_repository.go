package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TrailerRepository struct {
	db *sqlx.DB
}

func NewTrailerRepository(db *sqlx.DB) *TrailerRepository {
	return &TrailerRepository{db: db}
}

func (r *TrailerRepository) FindAllForImport(companyID string) ([]models.Trailer, error) {
	var trailers []models.Trailer
	query := `SELECT id, trailer_number, vin, deleted_at, is_active
	          FROM trailers WHERE company_id = ?`
	err := r.db.Select(&trailers, query, companyID)
	return trailers, err
}

const trailerInsertColumns = `(id, company_id, carrier_id, trailer_number, vin, make, model, year,
	license_plate, state, type, status, assigned_truck_id,
	registration_expiry, insurance_expiry, inspection_expiry,
	import_batch_id, is_active, created_at, updated_at)
	VALUES (:id, :company_id, :carrier_id, :trailer_number, :vin, :make, :model, :year,
	:license_plate, :state, :type, :status, :assigned_truck_id,
	:registration_expiry, :insurance_expiry, :inspection_expiry,
	:import_batch_id, :is_active, NOW(), NOW())`

func (r *TrailerRepository) BulkInsert(trailers []models.Trailer) error {
	if len(trailers) == 0 {
		return nil
	}
	for i := range trailers {
		if trailers[i].ID == "" {
			trailers[i].ID = uuid.NewString()
		}
	}
	_, err := r.db.NamedExec("INSERT INTO trailers "+trailerInsertColumns, trailers)
	return err
}

func (r *TrailerRepository) Create(trailer *models.Trailer) error {
	if trailer.ID == "" {
		trailer.ID = uuid.NewString()
	}
	_, err := r.db.NamedExec("INSERT INTO trailers "+trailerInsertColumns, trailer)
	return err
}

func trailerMergeSet(t *models.Trailer) *mergeSet {
	s := &mergeSet{}
	s.set("carrier_id", t.CarrierID)
	s.set("trailer_number", t.TrailerNumber)
	s.set("vin", t.VIN)
	s.set("make", t.Make)
	s.set("model", t.Model)
	s.set("year", t.Year)
	s.set("license_plate", t.LicensePlate)
	s.set("state", t.State)
	s.set("type", t.Type)
	s.set("status", t.Status)
	s.set("assigned_truck_id", t.AssignedTruckID)
	s.set("registration_expiry", t.RegistrationExpiry)
	s.set("insurance_expiry", t.InsuranceExpiry)
	s.set("inspection_expiry", t.InspectionExpiry)
	s.set("import_batch_id", t.ImportBatchID)
	s.force("updated_at = NOW()")
	return s
}

func (r *TrailerRepository) Update(id string, trailer *models.Trailer) error {
	s := trailerMergeSet(trailer)
	_, err := r.db.Exec("UPDATE trailers SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}

func (r *TrailerRepository) Restore(id string, trailer *models.Trailer) error {
	s := trailerMergeSet(trailer)
	s.force("deleted_at = NULL")
	s.force("is_active = 1")
	_, err := r.db.Exec("UPDATE trailers SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}
