package models

import "time"

// Load statuses
const (
	LoadPending         = "PENDING"
	LoadAssigned        = "ASSIGNED"
	LoadEnRoutePickup   = "EN_ROUTE_PICKUP"
	LoadAtPickup        = "AT_PICKUP"
	LoadLoaded          = "LOADED"
	LoadEnRouteDelivery = "EN_ROUTE_DELIVERY"
	LoadAtDelivery      = "AT_DELIVERY"
	LoadDelivered       = "DELIVERED"
	LoadInvoiced        = "INVOICED"
	LoadPaid            = "PAID"
	LoadCancelled       = "CANCELLED"
)

// Load is a shipment moved for a customer.
type Load struct {
	ID            string     `db:"id" json:"id"`
	CompanyID     string     `db:"company_id" json:"company_id"`
	CarrierID     string     `db:"carrier_id" json:"carrier_id"`
	LoadNumber    string     `db:"load_number" json:"load_number"`
	CustomerID    string     `db:"customer_id" json:"customer_id"`
	TruckID       string     `db:"truck_id" json:"truck_id"`
	TrailerID     string     `db:"trailer_id" json:"trailer_id"`
	DriverID      string     `db:"driver_id" json:"driver_id"`
	Status        string     `db:"status" json:"status"`
	PickupCity    string     `db:"pickup_city" json:"pickup_city"`
	PickupState   string     `db:"pickup_state" json:"pickup_state"`
	PickupDate    time.Time  `db:"pickup_date" json:"pickup_date"`
	DeliveryCity  string     `db:"delivery_city" json:"delivery_city"`
	DeliveryState string     `db:"delivery_state" json:"delivery_state"`
	DeliveryDate  *time.Time `db:"delivery_date" json:"delivery_date"`
	Revenue       float64    `db:"revenue" json:"revenue"`
	DriverPay     float64    `db:"driver_pay" json:"driver_pay"`
	TotalMiles    float64    `db:"total_miles" json:"total_miles"`
	ImportBatchID string     `db:"import_batch_id" json:"import_batch_id"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	DeletedAt     *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
