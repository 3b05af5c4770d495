package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LeadRepository struct {
	db *sqlx.DB
}

func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// FindAllForImport returns id and contact fields for every lead of a
// company, soft-deleted rows included, to seed the duplicate registry.
func (r *LeadRepository) FindAllForImport(companyID string) ([]models.Lead, error) {
	var leads []models.Lead
	query := `SELECT id, lead_number, phone, email, deleted_at, is_active
	          FROM leads WHERE company_id = ?`
	err := r.db.Select(&leads, query, companyID)
	return leads, err
}

const leadInsertColumns = `(id, company_id, lead_number, first_name, last_name, phone, email,
	address, city, state, zip, status, priority, source,
	cdl_number, cdl_class, cdl_expiration, endorsements,
	years_experience, previous_employers, freight_types, date_of_birth, tags,
	import_batch_id, is_active, created_at, updated_at)
	VALUES (:id, :company_id, :lead_number, :first_name, :last_name, :phone, :email,
	:address, :city, :state, :zip, :status, :priority, :source,
	:cdl_number, :cdl_class, :cdl_expiration, :endorsements,
	:years_experience, :previous_employers, :freight_types, :date_of_birth, :tags,
	:import_batch_id, :is_active, NOW(), NOW())`

func (r *LeadRepository) BulkInsert(leads []models.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	for i := range leads {
		if leads[i].ID == "" {
			leads[i].ID = uuid.NewString()
		}
	}
	_, err := r.db.NamedExec("INSERT INTO leads "+leadInsertColumns, leads)
	return err
}

func (r *LeadRepository) Create(lead *models.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	_, err := r.db.NamedExec("INSERT INTO leads "+leadInsertColumns, lead)
	return err
}

func leadMergeSet(l *models.Lead) *mergeSet {
	s := &mergeSet{}
	s.set("lead_number", l.LeadNumber)
	s.set("first_name", l.FirstName)
	s.set("last_name", l.LastName)
	s.set("phone", l.Phone)
	s.set("email", l.Email)
	s.set("address", l.Address)
	s.set("city", l.City)
	s.set("state", l.State)
	s.set("zip", l.Zip)
	s.set("status", l.Status)
	s.set("priority", l.Priority)
	s.set("source", l.Source)
	s.set("cdl_number", l.CdlNumber)
	s.set("cdl_class", l.CdlClass)
	s.set("cdl_expiration", l.CdlExpiration)
	s.set("endorsements", l.Endorsements)
	s.set("years_experience", l.YearsExperience)
	s.set("previous_employers", l.PreviousEmployers)
	s.set("freight_types", l.FreightTypes)
	s.set("date_of_birth", l.DateOfBirth)
	s.set("tags", l.Tags)
	s.set("import_batch_id", l.ImportBatchID)
	s.force("updated_at = NOW()")
	return s
}

func (r *LeadRepository) Update(id string, lead *models.Lead) error {
	s := leadMergeSet(lead)
	_, err := r.db.Exec("UPDATE leads SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}

func (r *LeadRepository) Restore(id string, lead *models.Lead) error {
	s := leadMergeSet(lead)
	s.force("deleted_at = NULL")
	s.force("is_active = 1")
	_, err := r.db.Exec("UPDATE leads SET "+s.clause()+" WHERE id = ?",
		append(s.args, id)...)
	return err
}
