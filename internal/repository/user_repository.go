package repository

import (
	"fleet-web/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail looks a user up across all companies. Email is globally
// unique, which is what lets driver imports link to an existing person.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	query := "SELECT * FROM users WHERE email = ? LIMIT 1"
	err := r.db.Get(&user, query, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	query := "SELECT * FROM users WHERE id = ? LIMIT 1"
	err := r.db.Get(&user, query, id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	query := `INSERT INTO users
	          (id, company_id, carrier_id, email, first_name, last_name, phone,
	           password_hash, role, is_active, created_at, updated_at)
	          VALUES (:id, :company_id, :carrier_id, :email, :first_name, :last_name, :phone,
	           :password_hash, :role, :is_active, NOW(), NOW())`
	_, err := r.db.NamedExec(query, user)
	return err
}

func (r *UserRepository) Update(user *models.User) error {
	query := `UPDATE users SET first_name = :first_name, last_name = :last_name,
	          phone = :phone, role = :role, is_active = :is_active, updated_at = NOW()
	          WHERE id = :id`
	_, err := r.db.NamedExec(query, user)
	return err
}

func (r *UserRepository) UpdatePassword(id string, passwordHash string) error {
	query := "UPDATE users SET password_hash = ?, updated_at = NOW() WHERE id = ?"
	_, err := r.db.Exec(query, passwordHash, id)
	return err
}
