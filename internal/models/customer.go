package models

import "time"

// Customer types
const (
	CustomerDirect     = "DIRECT"
	CustomerBroker     = "BROKER"
	CustomerForwarder  = "FREIGHT_FORWARDER"
	CustomerThirdParty = "THIRD_PARTY_LOGISTICS"
)

type Customer struct {
	ID             string     `db:"id" json:"id"`
	CompanyID      string     `db:"company_id" json:"company_id"`
	CustomerNumber string     `db:"customer_number" json:"customer_number"`
	Name           string     `db:"name" json:"name"`
	Type           string     `db:"type" json:"type"`
	CarrierID      string     `db:"carrier_id" json:"carrier_id"`
	Address        string     `db:"address" json:"address"`
	City           string     `db:"city" json:"city"`
	State          string     `db:"state" json:"state"`
	Zip            string     `db:"zip" json:"zip"`
	Phone          string     `db:"phone" json:"phone"`
	Email          string     `db:"email" json:"email"`
	BillingAddress string     `db:"billing_address" json:"billing_address"`
	BillingEmails  string     `db:"billing_emails" json:"billing_emails"`
	BillingType    string     `db:"billing_type" json:"billing_type"`
	Status         string     `db:"status" json:"status"`
	Tags           string     `db:"tags" json:"tags"`
	Warning        string     `db:"warning" json:"warning"`
	CreditRate     float64    `db:"credit_rate" json:"credit_rate"`
	RiskLevel      string     `db:"risk_level" json:"risk_level"`
	Comments       string     `db:"comments" json:"comments"`
	ImportBatchID  string     `db:"import_batch_id" json:"import_batch_id"`
	IsActive       bool       `db:"is_active" json:"is_active"`
	DeletedAt      *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}
