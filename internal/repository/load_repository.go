package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LoadRepository struct {
	db *sqlx.DB
}

func NewLoadRepository(db *sqlx.DB) *LoadRepository {
	return &LoadRepository{db: db}
}

func (r *LoadRepository) FindAllForImport(companyID string) ([]models.Load, error) {
	var loads []models.Load
	query := `SELECT id, load_number, deleted_at, is_active
	          FROM loads WHERE company_id = ?`
	err := r.db.Select(&loads, query, companyID)
	return loads, err
}

const loadInsertColumns = `(id, company_id, carrier_id, load_number,
	customer_id, truck_id, trailer_id, driver_id, status,
	pickup_city, pickup_state, pickup_date,
	delivery_city, delivery_state, delivery_date,
	revenue, driver_pay, total_miles,
	import_batch_id, is_active, created_at, updated_at)
	VALUES (:id, :company_id, :carrier_id, :load_number,
	:customer_id, :truck_id, :trailer_id, :driver_id, :status,
	:pickup_city, :pickup_state, :pickup_date,
	:delivery_city, :delivery_state, :delivery_date,
	:revenue, :driver_pay, :total_miles,
	:import_batch_id, :is_active, NOW(), NOW())`

func (r *LoadRepository) BulkInsert(loads []models.Load) error {
	if len(loads) == 0 {
		return nil
	}
	for i := range loads {
		if loads[i].ID == "" {
			loads[i].ID = uuid.NewString()
		}
	}
	_, err := r.db.NamedExec("INSERT INTO loads "+loadInsertColumns, loads)
	return err
}

func (r *LoadRepository) Create(load *models.Load) error {
	if load.ID == "" {
		load.ID = uuid.NewString()
	}
	_, err := r.db.NamedExec("INSERT INTO loads "+loadInsertColumns, load)
	return err
}

func loadMergeSet(l *models.Load) *mergeSet {
	s := &mergeSet{}
	s.set("carrier_id", l.CarrierID)
	s.set("load_number", l.LoadNumber)
	s.set("customer_id", l.CustomerID)
	s.set("truck_id", l.TruckID)
	s.set("trailer_id", l.TrailerID)
	s.set("driver_id", l.DriverID)
	s.set("status", l.Status)
	s.set("pickup_city", l.PickupCity)
	s.set("pickup_state", l.PickupState)
	s.set("pickup_date", l.PickupDate)
	s.set("delivery_city", l.DeliveryCity)
	s.set("delivery_state", l.DeliveryState)
	s.set("delivery_date", l.DeliveryDate)
	s.set("revenue", l.Revenue)
	s.set("driver_pay", l.DriverPay)
	s.set("total_miles", l.TotalMiles)
	s.set("import_batch_id", l.ImportBatchID)
	s.force("updated_at = NOW()")
	return s
}

func (r *LoadRepository) Update(id string, load *models.Load) error {
	s := loadMergeSet(load)
	_, err := r.db.Exec("UPDATE loads SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}

func (r *LoadRepository) Restore(id string, load *models.Load) error {
	s := loadMergeSet(load)
	s.force("deleted_at = NULL")
	s.force("is_active = 1")
	_, err := r.db.Exec("UPDATE loads SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}
