package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CustomerRepository struct {
	db *sqlx.DB
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindAllForImport returns id and key fields for every customer of a
// company, soft-deleted rows included, to seed the duplicate registry.
func (r *CustomerRepository) FindAllForImport(companyID string) ([]models.Customer, error) {
	var customers []models.Customer
	query := `SELECT id, customer_number, name, deleted_at, is_active
	          FROM customers WHERE company_id = ?`
	err := r.db.Select(&customers, query, companyID)
	return customers, err
}

const customerInsertColumns = `(id, company_id, customer_number, name, type, carrier_id,
	address, city, state, zip, phone, email,
	billing_address, billing_emails, billing_type,
	status, tags, warning, credit_rate, risk_level, comments,
	import_batch_id, is_active, created_at, updated_at)
	VALUES (:id, :company_id, :customer_number, :name, :type, :carrier_id,
	:address, :city, :state, :zip, :phone, :email,
	:billing_address, :billing_emails, :billing_type,
	:status, :tags, :warning, :credit_rate, :risk_level, :comments,
	:import_batch_id, :is_active, NOW(), NOW())`

func (r *CustomerRepository) BulkInsert(customers []models.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	for i := range customers {
		if customers[i].ID == "" {
			customers[i].ID = uuid.NewString()
		}
	}
	_, err := r.db.NamedExec("INSERT INTO customers "+customerInsertColumns, customers)
	return err
}

func (r *CustomerRepository) Create(customer *models.Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.NewString()
	}
	_, err := r.db.NamedExec("INSERT INTO customers "+customerInsertColumns, customer)
	return err
}

// customerMergeSet keeps only the fields the import actually resolved,
// so a file without a phone column leaves stored phones alone.
func customerMergeSet(c *models.Customer) *mergeSet {
	s := &mergeSet{}
	s.set("customer_number", c.CustomerNumber)
	s.set("name", c.Name)
	s.set("type", c.Type)
	s.set("carrier_id", c.CarrierID)
	s.set("address", c.Address)
	s.set("city", c.City)
	s.set("state", c.State)
	s.set("zip", c.Zip)
	s.set("phone", c.Phone)
	s.set("email", c.Email)
	s.set("billing_address", c.BillingAddress)
	s.set("billing_emails", c.BillingEmails)
	s.set("billing_type", c.BillingType)
	s.set("status", c.Status)
	s.set("tags", c.Tags)
	s.set("warning", c.Warning)
	s.set("credit_rate", c.CreditRate)
	s.set("risk_level", c.RiskLevel)
	s.set("comments", c.Comments)
	s.set("import_batch_id", c.ImportBatchID)
	s.force("updated_at = NOW()")
	return s
}

func (r *CustomerRepository) Update(id string, customer *models.Customer) error {
	s := customerMergeSet(customer)
	_, err := r.db.Exec("UPDATE customers SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}

// Restore merges a soft-deleted customer in place and clears the
// deletion marker.
func (r *CustomerRepository) Restore(id string, customer *models.Customer) error {
	s := customerMergeSet(customer)
	s.force("deleted_at = NULL")
	s.force("is_active = 1")
	_, err := r.db.Exec("UPDATE customers SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}
