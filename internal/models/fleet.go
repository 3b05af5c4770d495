package models

import "time"

// Equipment types shared by trucks and trailers
const (
	EquipmentDryVan   = "DRY_VAN"
	EquipmentReefer   = "REEFER"
	EquipmentFlatbed  = "FLATBED"
	EquipmentStepDeck = "STEP_DECK"
	EquipmentTanker   = "TANKER"
)

// Fleet unit statuses
const (
	FleetAvailable    = "AVAILABLE"
	FleetInUse        = "IN_USE"
	FleetMaintenance  = "MAINTENANCE"
	FleetOutOfService = "OUT_OF_SERVICE"
	FleetInactive     = "INACTIVE"
)

type Truck struct {
	ID                 string     `db:"id" json:"id"`
	CompanyID          string     `db:"company_id" json:"company_id"`
	CarrierID          string     `db:"carrier_id" json:"carrier_id"`
	TruckNumber        string     `db:"truck_number" json:"truck_number"`
	VIN                string     `db:"vin" json:"vin"`
	Make               string     `db:"make" json:"make"`
	Model              string     `db:"model" json:"model"`
	Year               int        `db:"year" json:"year"`
	LicensePlate       string     `db:"license_plate" json:"license_plate"`
	State              string     `db:"state" json:"state"`
	EquipmentType      string     `db:"equipment_type" json:"equipment_type"`
	Status             string     `db:"status" json:"status"`
	DriverID           string     `db:"driver_id" json:"driver_id"`
	OdometerReading    float64    `db:"odometer_reading" json:"odometer_reading"`
	Capacity           float64    `db:"capacity" json:"capacity"`
	RegistrationExpiry time.Time  `db:"registration_expiry" json:"registration_expiry"`
	InsuranceExpiry    time.Time  `db:"insurance_expiry" json:"insurance_expiry"`
	InspectionExpiry   time.Time  `db:"inspection_expiry" json:"inspection_expiry"`
	ImportBatchID      string     `db:"import_batch_id" json:"import_batch_id"`
	IsActive           bool       `db:"is_active" json:"is_active"`
	DeletedAt          *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type Trailer struct {
	ID                 string     `db:"id" json:"id"`
	CompanyID          string     `db:"company_id" json:"company_id"`
	CarrierID          string     `db:"carrier_id" json:"carrier_id"`
	TrailerNumber      string     `db:"trailer_number" json:"trailer_number"`
	VIN                string     `db:"vin" json:"vin"`
	Make               string     `db:"make" json:"make"`
	Model              string     `db:"model" json:"model"`
	Year               int        `db:"year" json:"year"`
	LicensePlate       string     `db:"license_plate" json:"license_plate"`
	State              string     `db:"state" json:"state"`
	Type               string     `db:"type" json:"type"`
	Status             string     `db:"status" json:"status"`
	AssignedTruckID    string     `db:"assigned_truck_id" json:"assigned_truck_id"`
	RegistrationExpiry time.Time  `db:"registration_expiry" json:"registration_expiry"`
	InsuranceExpiry    time.Time  `db:"insurance_expiry" json:"insurance_expiry"`
	InspectionExpiry   time.Time  `db:"inspection_expiry" json:"inspection_expiry"`
	ImportBatchID      string     `db:"import_batch_id" json:"import_batch_id"`
	IsActive           bool       `db:"is_active" json:"is_active"`
	DeletedAt          *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}
