package models

import "time"

// Lead statuses, the driver recruiting pipeline
const (
	LeadNew                = "NEW"
	LeadContacted          = "CONTACTED"
	LeadQualified          = "QUALIFIED"
	LeadDocumentsPending   = "DOCUMENTS_PENDING"
	LeadDocumentsCollected = "DOCUMENTS_COLLECTED"
	LeadInterview          = "INTERVIEW"
	LeadOffer              = "OFFER"
	LeadHired              = "HIRED"
	LeadLost               = "REJECTED"
)

// Lead priorities
const (
	LeadHot  = "HOT"
	LeadWarm = "WARM"
	LeadCold = "COLD"
)

// Lead sources
const (
	LeadSourceFacebook = "FACEBOOK"
	LeadSourceReferral = "REFERRAL"
	LeadSourceDirect   = "DIRECT"
	LeadSourceWebsite  = "WEBSITE"
	LeadSourceOther    = "OTHER"
)

// Lead is a prospective driver in the recruiting pipeline. Unlike a
// Driver it has no linked user; contact details live on the row itself.
type Lead struct {
	ID                string     `db:"id" json:"id"`
	CompanyID         string     `db:"company_id" json:"company_id"`
	LeadNumber        string     `db:"lead_number" json:"lead_number"`
	FirstName         string     `db:"first_name" json:"first_name"`
	LastName          string     `db:"last_name" json:"last_name"`
	Phone             string     `db:"phone" json:"phone"`
	Email             string     `db:"email" json:"email"`
	Address           string     `db:"address" json:"address"`
	City              string     `db:"city" json:"city"`
	State             string     `db:"state" json:"state"`
	Zip               string     `db:"zip" json:"zip"`
	Status            string     `db:"status" json:"status"`
	Priority          string     `db:"priority" json:"priority"`
	Source            string     `db:"source" json:"source"`
	CdlNumber         string     `db:"cdl_number" json:"cdl_number"`
	CdlClass          string     `db:"cdl_class" json:"cdl_class"`
	CdlExpiration     *time.Time `db:"cdl_expiration" json:"cdl_expiration"`
	Endorsements      string     `db:"endorsements" json:"endorsements"`
	YearsExperience   int        `db:"years_experience" json:"years_experience"`
	PreviousEmployers string     `db:"previous_employers" json:"previous_employers"`
	FreightTypes      string     `db:"freight_types" json:"freight_types"`
	DateOfBirth       *time.Time `db:"date_of_birth" json:"date_of_birth"`
	Tags              string     `db:"tags" json:"tags"`
	ImportBatchID     string     `db:"import_batch_id" json:"import_batch_id"`
	IsActive          bool       `db:"is_active" json:"is_active"`
	DeletedAt         *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}
