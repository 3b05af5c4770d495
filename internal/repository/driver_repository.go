package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type DriverRepository struct {
	db *sqlx.DB
}

func NewDriverRepository(db *sqlx.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

// FindAllForImport joins the linked user so both the driver number and
// the email participate in duplicate detection.
func (r *DriverRepository) FindAllForImport(companyID string) ([]models.Driver, error) {
	var drivers []models.Driver
	query := `SELECT d.id, d.driver_number, d.user_id, d.deleted_at, d.is_active,
	                 COALESCE(u.email, '') AS email,
	                 COALESCE(u.first_name, '') AS first_name,
	                 COALESCE(u.last_name, '') AS last_name,
	                 COALESCE(u.phone, '') AS phone
	          FROM drivers d
	          LEFT JOIN users u ON u.id = d.user_id
	          WHERE d.company_id = ?`
	err := r.db.Select(&drivers, query, companyID)
	return drivers, err
}

const driverInsertColumns = `(id, company_id, carrier_id, user_id, driver_number, driver_type, status,
	license_number, license_state, license_expiry, medical_card_expiry,
	pay_type, pay_rate, address, city, state, zip,
	import_batch_id, is_active, created_at, updated_at)
	VALUES (:id, :company_id, :carrier_id, :user_id, :driver_number, :driver_type, :status,
	:license_number, :license_state, :license_expiry, :medical_card_expiry,
	:pay_type, :pay_rate, :address, :city, :state, :zip,
	:import_batch_id, :is_active, NOW(), NOW())`

func (r *DriverRepository) BulkInsert(drivers []models.Driver) error {
	if len(drivers) == 0 {
		return nil
	}
	for i := range drivers {
		if drivers[i].ID == "" {
			drivers[i].ID = uuid.NewString()
		}
	}
	_, err := r.db.NamedExec("INSERT INTO drivers "+driverInsertColumns, drivers)
	return err
}

func (r *DriverRepository) Create(driver *models.Driver) error {
	if driver.ID == "" {
		driver.ID = uuid.NewString()
	}
	_, err := r.db.NamedExec("INSERT INTO drivers "+driverInsertColumns, driver)
	return err
}

func driverMergeSet(d *models.Driver) *mergeSet {
	s := &mergeSet{}
	s.set("carrier_id", d.CarrierID)
	s.set("user_id", d.UserID)
	s.set("driver_number", d.DriverNumber)
	s.set("driver_type", d.DriverType)
	s.set("status", d.Status)
	s.set("license_number", d.LicenseNumber)
	s.set("license_state", d.LicenseState)
	s.set("license_expiry", d.LicenseExpiry)
	s.set("medical_card_expiry", d.MedicalCardExpiry)
	s.set("pay_type", d.PayType)
	s.set("pay_rate", d.PayRate)
	s.set("address", d.Address)
	s.set("city", d.City)
	s.set("state", d.State)
	s.set("zip", d.Zip)
	s.set("import_batch_id", d.ImportBatchID)
	s.force("updated_at = NOW()")
	return s
}

func (r *DriverRepository) Update(id string, driver *models.Driver) error {
	s := driverMergeSet(driver)
	_, err := r.db.Exec("UPDATE drivers SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}

func (r *DriverRepository) Restore(id string, driver *models.Driver) error {
	s := driverMergeSet(driver)
	s.force("deleted_at = NULL")
	s.force("is_active = 1")
	_, err := r.db.Exec("UPDATE drivers SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}
