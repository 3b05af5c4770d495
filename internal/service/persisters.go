package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"fleet-web/internal/importer"
	"fleet-web/internal/models"
	"fleet-web/internal/repository"
	"fleet-web/internal/utils"
)

// Per-entity adapters between the import writer and the sqlx
// repositories. The repositories do not take contexts, matching the
// rest of the data layer; the writer's context is accepted and ignored.

type customerPersister struct {
	repo *repository.CustomerRepository
}

func (p customerPersister) CreateBulk(_ context.Context, recs []importer.Record) error {
	customers := make([]models.Customer, len(recs))
	for i, r := range recs {
		customers[i] = r.(*importer.CustomerRecord).Customer
	}
	return p.repo.BulkInsert(customers)
}

func (p customerPersister) Create(_ context.Context, rec importer.Record) error {
	c := rec.(*importer.CustomerRecord).Customer
	return p.repo.Create(&c)
}

func (p customerPersister) Update(_ context.Context, id string, rec importer.Record) error {
	c := rec.(*importer.CustomerRecord).Customer
	return p.repo.Update(id, &c)
}

func (p customerPersister) Restore(_ context.Context, id string, rec importer.Record) error {
	c := rec.(*importer.CustomerRecord).Customer
	return p.repo.Restore(id, &c)
}

type truckPersister struct {
	repo *repository.TruckRepository
}

func (p truckPersister) CreateBulk(_ context.Context, recs []importer.Record) error {
	trucks := make([]models.Truck, len(recs))
	for i, r := range recs {
		trucks[i] = r.(*importer.TruckRecord).Truck
	}
	return p.repo.BulkInsert(trucks)
}

func (p truckPersister) Create(_ context.Context, rec importer.Record) error {
	t := rec.(*importer.TruckRecord).Truck
	return p.repo.Create(&t)
}

func (p truckPersister) Update(_ context.Context, id string, rec importer.Record) error {
	t := rec.(*importer.TruckRecord).Truck
	return p.repo.Update(id, &t)
}

func (p truckPersister) Restore(_ context.Context, id string, rec importer.Record) error {
	t := rec.(*importer.TruckRecord).Truck
	return p.repo.Restore(id, &t)
}

type trailerPersister struct {
	repo *repository.TrailerRepository
}

func (p trailerPersister) CreateBulk(_ context.Context, recs []importer.Record) error {
	trailers := make([]models.Trailer, len(recs))
	for i, r := range recs {
		trailers[i] = r.(*importer.TrailerRecord).Trailer
	}
	return p.repo.BulkInsert(trailers)
}

func (p trailerPersister) Create(_ context.Context, rec importer.Record) error {
	t := rec.(*importer.TrailerRecord).Trailer
	return p.repo.Create(&t)
}

func (p trailerPersister) Update(_ context.Context, id string, rec importer.Record) error {
	t := rec.(*importer.TrailerRecord).Trailer
	return p.repo.Update(id, &t)
}

func (p trailerPersister) Restore(_ context.Context, id string, rec importer.Record) error {
	t := rec.(*importer.TrailerRecord).Trailer
	return p.repo.Restore(id, &t)
}

// driverPersister links or creates the identity user before touching the
// driver profile. Emails are globally unique, so a driver imported under
// a new company reuses the existing user.
type driverPersister struct {
	repo  *repository.DriverRepository
	users *repository.UserRepository
}

func (p driverPersister) ensureUser(d *importer.DriverRecord) (string, error) {
	email := strings.ToLower(strings.TrimSpace(d.Email))
	if email != "" {
		user, err := p.users.FindByEmail(email)
		if err == nil {
			return user.ID, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return "", err
		}
	}
	if email == "" {
		email = strings.ToLower(d.DriverNumber) + "@drivers.invalid"
	}

	// Imported users get an unguessable password until they reset it.
	hash, err := utils.HashPassword(uuid.NewString())
	if err != nil {
		return "", err
	}
	user := &models.User{
		CompanyID:    d.CompanyID,
		CarrierID:    d.CarrierID,
		Email:        email,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Phone:        d.Phone,
		PasswordHash: hash,
		Role:         models.RoleDriver,
		IsActive:     true,
	}
	if err := p.users.Create(user); err != nil {
		return "", err
	}
	return user.ID, nil
}

func (p driverPersister) CreateBulk(_ context.Context, recs []importer.Record) error {
	drivers := make([]models.Driver, len(recs))
	for i, r := range recs {
		d := r.(*importer.DriverRecord)
		userID, err := p.ensureUser(d)
		if err != nil {
			return err
		}
		d.UserID = userID
		drivers[i] = d.Driver
	}
	return p.repo.BulkInsert(drivers)
}

func (p driverPersister) Create(_ context.Context, rec importer.Record) error {
	d := rec.(*importer.DriverRecord)
	userID, err := p.ensureUser(d)
	if err != nil {
		return err
	}
	d.UserID = userID
	driver := d.Driver
	return p.repo.Create(&driver)
}

func (p driverPersister) Update(_ context.Context, id string, rec importer.Record) error {
	d := rec.(*importer.DriverRecord)
	userID, err := p.ensureUser(d)
	if err != nil {
		return err
	}
	d.UserID = userID
	driver := d.Driver
	return p.repo.Update(id, &driver)
}

func (p driverPersister) Restore(_ context.Context, id string, rec importer.Record) error {
	d := rec.(*importer.DriverRecord)
	userID, err := p.ensureUser(d)
	if err != nil {
		return err
	}
	d.UserID = userID
	driver := d.Driver
	return p.repo.Restore(id, &driver)
}

type vendorPersister struct {
	repo *repository.VendorRepository
}

func (p vendorPersister) CreateBulk(_ context.Context, recs []importer.Record) error {
	vendors := make([]models.Vendor, len(recs))
	for i, r := range recs {
		vendors[i] = r.(*importer.VendorRecord).Vendor
	}
	return p.repo.BulkInsert(vendors)
}

func (p vendorPersister) Create(_ context.Context, rec importer.Record) error {
	v := rec.(*importer.VendorRecord).Vendor
	return p.repo.Create(&v)
}

func (p vendorPersister) Update(_ context.Context, id string, rec importer.Record) error {
	v := rec.(*importer.VendorRecord).Vendor
	return p.repo.Update(id, &v)
}

func (p vendorPersister) Restore(_ context.Context, id string, rec importer.Record) error {
	v := rec.(*importer.VendorRecord).Vendor
	return p.repo.Restore(id, &v)
}

type locationPersister struct {
	repo *repository.LocationRepository
}

func (p locationPersister) CreateBulk(_ context.Context, recs []importer.Record) error {
	locations := make([]models.Location, len(recs))
	for i, r := range recs {
		locations[i] = r.(*importer.LocationRecord).Location
	}
	return p.repo.BulkInsert(locations)
}

func (p locationPersister) Create(_ context.Context, rec importer.Record) error {
	l := rec.(*importer.LocationRecord).Location
	return p.repo.Create(&l)
}

func (p locationPersister) Update(_ context.Context, id string, rec importer.Record) error {
	l := rec.(*importer.LocationRecord).Location
	return p.repo.Update(id, &l)
}

func (p locationPersister) Restore(_ context.Context, id string, rec importer.Record) error {
	l := rec.(*importer.LocationRecord).Location
	return p.repo.Restore(id, &l)
}

type leadPersister struct {
	repo *repository.LeadRepository
}

func (p leadPersister) CreateBulk(_ context.Context, recs []importer.Record) error {
	leads := make([]models.Lead, len(recs))
	for i, r := range recs {
		leads[i] = r.(*importer.LeadRecord).Lead
	}
	return p.repo.BulkInsert(leads)
}

func (p leadPersister) Create(_ context.Context, rec importer.Record) error {
	l := rec.(*importer.LeadRecord).Lead
	return p.repo.Create(&l)
}

func (p leadPersister) Update(_ context.Context, id string, rec importer.Record) error {
	l := rec.(*importer.LeadRecord).Lead
	return p.repo.Update(id, &l)
}

func (p leadPersister) Restore(_ context.Context, id string, rec importer.Record) error {
	l := rec.(*importer.LeadRecord).Lead
	return p.repo.Restore(id, &l)
}

type loadPersister struct {
	repo *repository.LoadRepository
}

func (p loadPersister) CreateBulk(_ context.Context, recs []importer.Record) error {
	loads := make([]models.Load, len(recs))
	for i, r := range recs {
		loads[i] = r.(*importer.LoadRecord).Load
	}
	return p.repo.BulkInsert(loads)
}

func (p loadPersister) Create(_ context.Context, rec importer.Record) error {
	l := rec.(*importer.LoadRecord).Load
	return p.repo.Create(&l)
}

func (p loadPersister) Update(_ context.Context, id string, rec importer.Record) error {
	l := rec.(*importer.LoadRecord).Load
	return p.repo.Update(id, &l)
}

func (p loadPersister) Restore(_ context.Context, id string, rec importer.Record) error {
	l := rec.(*importer.LoadRecord).Load
	return p.repo.Restore(id, &l)
}
