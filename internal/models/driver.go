package models

import "time"

// Driver statuses
const (
	DriverAvailable = "AVAILABLE"
	DriverOnDuty    = "ON_DUTY"
	DriverDriving   = "DRIVING"
	DriverOffDuty   = "OFF_DUTY"
	DriverInTransit = "IN_TRANSIT"
	DriverOnLeave   = "ON_LEAVE"
	DriverInactive  = "INACTIVE"
)

// Driver types
const (
	DriverCompany       = "COMPANY_DRIVER"
	DriverLease         = "LEASE"
	DriverOwnerOperator = "OWNER_OPERATOR"
)

// Pay types
const (
	PayPerMile           = "PER_MILE"
	PayPercent           = "PERCENTAGE"
	PayFlat              = "FLAT_RATE"
	PayPerHour           = "PER_HOUR"
	DefaultDriverPayRate = 0.65
)

// Driver is the role-specific profile; identity lives on the linked User,
// which is shared across organizational boundaries (email unique globally).
type Driver struct {
	ID                string     `db:"id" json:"id"`
	CompanyID         string     `db:"company_id" json:"company_id"`
	CarrierID         string     `db:"carrier_id" json:"carrier_id"`
	UserID            string     `db:"user_id" json:"user_id"`
	DriverNumber      string     `db:"driver_number" json:"driver_number"`
	DriverType        string     `db:"driver_type" json:"driver_type"`
	Status            string     `db:"status" json:"status"`
	LicenseNumber     string     `db:"license_number" json:"license_number"`
	LicenseState      string     `db:"license_state" json:"license_state"`
	LicenseExpiry     time.Time  `db:"license_expiry" json:"license_expiry"`
	MedicalCardExpiry time.Time  `db:"medical_card_expiry" json:"medical_card_expiry"`
	PayType           string     `db:"pay_type" json:"pay_type"`
	PayRate           float64    `db:"pay_rate" json:"pay_rate"`
	Address           string     `db:"address" json:"address"`
	City              string     `db:"city" json:"city"`
	State             string     `db:"state" json:"state"`
	Zip               string     `db:"zip" json:"zip"`
	ImportBatchID     string     `db:"import_batch_id" json:"import_batch_id"`
	IsActive          bool       `db:"is_active" json:"is_active"`
	DeletedAt         *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`

	// Populated on reads that join users
	Email     string `db:"email" json:"email"`
	FirstName string `db:"first_name" json:"first_name"`
	LastName  string `db:"last_name" json:"last_name"`
	Phone     string `db:"phone" json:"phone"`
}
