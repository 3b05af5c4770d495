package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TruckRepository struct {
	db *sqlx.DB
}

func NewTruckRepository(db *sqlx.DB) *TruckRepository {
	return &TruckRepository{db: db}
}

func (r *TruckRepository) FindAllForImport(companyID string) ([]models.Truck, error) {
	var trucks []models.Truck
	query := `SELECT id, truck_number, vin, deleted_at, is_active
	          FROM trucks WHERE company_id = ?`
	err := r.db.Select(&trucks, query, companyID)
	return trucks, err
}

const truckInsertColumns = `(id, company_id, carrier_id, truck_number, vin, make, model, year,
	license_plate, state, equipment_type, status, driver_id,
	odometer_reading, capacity,
	registration_expiry, insurance_expiry, inspection_expiry,
	import_batch_id, is_active, created_at, updated_at)
	VALUES (:id, :company_id, :carrier_id, :truck_number, :vin, :make, :model, :year,
	:license_plate, :state, :equipment_type, :status, :driver_id,
	:odometer_reading, :capacity,
	:registration_expiry, :insurance_expiry, :inspection_expiry,
	:import_batch_id, :is_active, NOW(), NOW())`

func (r *TruckRepository) BulkInsert(trucks []models.Truck) error {
	if len(trucks) == 0 {
		return nil
	}
	for i := range trucks {
		if trucks[i].ID == "" {
			trucks[i].ID = uuid.NewString()
		}
	}
	_, err := r.db.NamedExec("INSERT INTO trucks "+truckInsertColumns, trucks)
	return err
}

func (r *TruckRepository) Create(truck *models.Truck) error {
	if truck.ID == "" {
		truck.ID = uuid.NewString()
	}
	_, err := r.db.NamedExec("INSERT INTO trucks "+truckInsertColumns, truck)
	return err
}

func truckMergeSet(t *models.Truck) *mergeSet {
	s := &mergeSet{}
	s.set("carrier_id", t.CarrierID)
	s.set("truck_number", t.TruckNumber)
	s.set("vin", t.VIN)
	s.set("make", t.Make)
	s.set("model", t.Model)
	s.set("year", t.Year)
	s.set("license_plate", t.LicensePlate)
	s.set("state", t.State)
	s.set("equipment_type", t.EquipmentType)
	s.set("status", t.Status)
	s.set("driver_id", t.DriverID)
	s.set("odometer_reading", t.OdometerReading)
	s.set("capacity", t.Capacity)
	s.set("registration_expiry", t.RegistrationExpiry)
	s.set("insurance_expiry", t.InsuranceExpiry)
	s.set("inspection_expiry", t.InspectionExpiry)
	s.set("import_batch_id", t.ImportBatchID)
	s.force("updated_at = NOW()")
	return s
}

func (r *TruckRepository) Update(id string, truck *models.Truck) error {
	s := truckMergeSet(truck)
	_, err := r.db.Exec("UPDATE trucks SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}

func (r *TruckRepository) Restore(id string, truck *models.Truck) error {
	s := truckMergeSet(truck)
	s.force("deleted_at = NULL")
	s.force("is_active = 1")
	_, err := r.db.Exec("UPDATE trucks SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}
