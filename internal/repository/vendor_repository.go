package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type VendorRepository struct {
	db *sqlx.DB
}

func NewVendorRepository(db *sqlx.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) FindAllForImport(companyID string) ([]models.Vendor, error) {
	var vendors []models.Vendor
	query := `SELECT id, vendor_number, name, deleted_at, is_active
	          FROM vendors WHERE company_id = ?`
	err := r.db.Select(&vendors, query, companyID)
	return vendors, err
}

const vendorInsertColumns = `(id, company_id, vendor_number, name, type, email, phone, website, tag,
	address, city, state, zip,
	import_batch_id, is_active, created_at, updated_at)
	VALUES (:id, :company_id, :vendor_number, :name, :type, :email, :phone, :website, :tag,
	:address, :city, :state, :zip,
	:import_batch_id, :is_active, NOW(), NOW())`

func (r *VendorRepository) BulkInsert(vendors []models.Vendor) error {
	if len(vendors) == 0 {
		return nil
	}
	for i := range vendors {
		if vendors[i].ID == "" {
			vendors[i].ID = uuid.NewString()
		}
	}
	_, err := r.db.NamedExec("INSERT INTO vendors "+vendorInsertColumns, vendors)
	return err
}

func (r *VendorRepository) Create(vendor *models.Vendor) error {
	if vendor.ID == "" {
		vendor.ID = uuid.NewString()
	}
	_, err := r.db.NamedExec("INSERT INTO vendors "+vendorInsertColumns, vendor)
	return err
}

func vendorMergeSet(v *models.Vendor) *mergeSet {
	s := &mergeSet{}
	s.set("vendor_number", v.VendorNumber)
	s.set("name", v.Name)
	s.set("type", v.Type)
	s.set("email", v.Email)
	s.set("phone", v.Phone)
	s.set("website", v.Website)
	s.set("tag", v.Tag)
	s.set("address", v.Address)
	s.set("city", v.City)
	s.set("state", v.State)
	s.set("zip", v.Zip)
	s.set("import_batch_id", v.ImportBatchID)
	s.force("updated_at = NOW()")
	return s
}

func (r *VendorRepository) Update(id string, vendor *models.Vendor) error {
	s := vendorMergeSet(vendor)
	_, err := r.db.Exec("UPDATE vendors SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}

func (r *VendorRepository) Restore(id string, vendor *models.Vendor) error {
	s := vendorMergeSet(vendor)
	s.force("deleted_at = NULL")
	s.force("is_active = 1")
	_, err := r.db.Exec("UPDATE vendors SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}
