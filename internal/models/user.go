package models

import "time"

// Roles
const (
	RoleAdmin      = "ADMIN"
	RoleDispatcher = "DISPATCHER"
	RoleDriver     = "DRIVER"
	RoleUser       = "USER"
)

// User is the shared identity record. Email is unique across all companies,
// so a person imported under a new organization links to the same user.
type User struct {
	ID           string     `db:"id" json:"id"`
	CompanyID    string     `db:"company_id" json:"company_id"`
	CarrierID    string     `db:"carrier_id" json:"carrier_id"`
	Email        string     `db:"email" json:"email"`
	FirstName    string     `db:"first_name" json:"first_name"`
	LastName     string     `db:"last_name" json:"last_name"`
	Phone        string     `db:"phone" json:"phone"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         string     `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"is_active"`
	DeletedAt    *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	CompanyID string `json:"company_id"`
}
