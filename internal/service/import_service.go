package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"fleet-web/internal/config"
	"fleet-web/internal/importer"
	"fleet-web/internal/models"
	"fleet-web/internal/repository"
)

// ImportEnqueuer hands a batch off to the background queue. The worker
// package provides the asynq-backed implementation.
type ImportEnqueuer interface {
	EnqueueImport(batchID string, req importer.Request) error
}

// ImportService orchestrates one import run: parse the file, seed the
// duplicate registry and reference index from the store, run the
// reconciliation engine, then persist through the chunked writer.
type ImportService struct {
	enqueuer ImportEnqueuer

	cfg         *config.Config
	engine      *importer.Engine
	spreadsheet *SpreadsheetService
	carriers    *repository.CarrierRepository
	customers   *repository.CustomerRepository
	trucks      *repository.TruckRepository
	trailers    *repository.TrailerRepository
	drivers     *repository.DriverRepository
	vendors     *repository.VendorRepository
	locations   *repository.LocationRepository
	loads       *repository.LoadRepository
	leads       *repository.LeadRepository
	users       *repository.UserRepository
	batches     *repository.BatchRepository
	log         *logrus.Logger
}

func NewImportService(
	cfg *config.Config,
	spreadsheet *SpreadsheetService,
	carriers *repository.CarrierRepository,
	customers *repository.CustomerRepository,
	trucks *repository.TruckRepository,
	trailers *repository.TrailerRepository,
	drivers *repository.DriverRepository,
	vendors *repository.VendorRepository,
	locations *repository.LocationRepository,
	loads *repository.LoadRepository,
	leads *repository.LeadRepository,
	users *repository.UserRepository,
	batches *repository.BatchRepository,
	log *logrus.Logger,
) *ImportService {
	return &ImportService{
		cfg: cfg,
		engine: importer.NewEngine(
			importer.CustomerReconciler{},
			importer.TruckReconciler{},
			importer.TrailerReconciler{},
			importer.DriverReconciler{},
			importer.VendorReconciler{},
			importer.LocationReconciler{},
			importer.LoadReconciler{},
			importer.LeadReconciler{},
		),
		spreadsheet: spreadsheet,
		carriers:    carriers,
		customers:   customers,
		trucks:      trucks,
		trailers:    trailers,
		drivers:     drivers,
		vendors:     vendors,
		locations:   locations,
		loads:       loads,
		leads:       leads,
		users:       users,
		batches:     batches,
		log:         log,
	}
}

// SetEnqueuer enables the asynchronous path for large files.
func (s *ImportService) SetEnqueuer(e ImportEnqueuer) {
	s.enqueuer = e
}

// ImportFile runs a full import for an uploaded file. A batch record is
// created first (except in preview) so every written record can point
// back at it. Files above the async row cutoff are queued instead; the
// returned result is nil and the batch carries the QUEUED status.
func (s *ImportService) ImportFile(ctx context.Context, req importer.Request, filePath, filename string) (*importer.Result, *models.ImportBatch, error) {
	rows, err := s.spreadsheet.ParseFile(filePath)
	if err != nil {
		return nil, nil, err
	}

	if !req.PreviewOnly && s.enqueuer != nil && len(rows) > s.cfg.AsyncRowCutoff {
		batch := &models.ImportBatch{
			CompanyID:  req.CompanyID,
			UserID:     req.UserID,
			EntityType: req.EntityType,
			Filename:   filename,
			FilePath:   filePath,
			Status:     models.BatchQueued,
			TotalRows:  len(rows),
		}
		if err := s.batches.Create(batch); err != nil {
			return nil, nil, fmt.Errorf("failed to create import batch: %w", err)
		}
		req.BatchID = batch.ID
		if err := s.enqueuer.EnqueueImport(batch.ID, req); err != nil {
			batch.Status = models.BatchFailed
			batch.ErrorMessage = err.Error()
			if uerr := s.batches.Update(batch); uerr != nil {
				s.log.WithError(uerr).Error("failed to mark batch failed")
			}
			return nil, batch, fmt.Errorf("failed to queue import: %w", err)
		}
		s.log.WithFields(logrus.Fields{"batch_id": batch.ID, "rows": len(rows)}).Info("import queued")
		return nil, batch, nil
	}

	var batch *models.ImportBatch
	if !req.PreviewOnly {
		batch = &models.ImportBatch{
			CompanyID:  req.CompanyID,
			UserID:     req.UserID,
			EntityType: req.EntityType,
			Filename:   filename,
			FilePath:   filePath,
			Status:     models.BatchRunning,
			TotalRows:  len(rows),
		}
		if err := s.batches.Create(batch); err != nil {
			return nil, nil, fmt.Errorf("failed to create import batch: %w", err)
		}
		req.BatchID = batch.ID
	}

	result, err := s.Run(ctx, req, rows)
	if err != nil {
		if batch != nil {
			batch.Status = models.BatchFailed
			batch.ErrorMessage = err.Error()
			if uerr := s.batches.Update(batch); uerr != nil {
				s.log.WithError(uerr).Error("failed to mark batch failed")
			}
		}
		return nil, batch, err
	}

	if batch != nil {
		batch.Status = models.BatchCompleted
		batch.RecordCount = result.Created + result.Updated + result.Restored
		batch.ErrorCount = len(result.Errors)
		if err := s.batches.Update(batch); err != nil {
			s.log.WithError(err).Error("failed to finalize import batch")
		}
	}
	return result, batch, nil
}

// ProcessBatch is the worker-side entry point for a queued batch.
func (s *ImportService) ProcessBatch(ctx context.Context, req importer.Request, batchID string) (*importer.Result, error) {
	batch, err := s.batches.FindByID(batchID)
	if err != nil {
		return nil, fmt.Errorf("batch %s not found: %w", batchID, err)
	}

	batch.Status = models.BatchRunning
	if err := s.batches.Update(batch); err != nil {
		s.log.WithError(err).Error("failed to mark batch running")
	}

	rows, err := s.spreadsheet.ParseFile(batch.FilePath)
	if err == nil {
		req.BatchID = batch.ID
		var result *importer.Result
		result, err = s.Run(ctx, req, rows)
		if err == nil {
			batch.Status = models.BatchCompleted
			batch.RecordCount = result.Created + result.Updated + result.Restored
			batch.ErrorCount = len(result.Errors)
			if uerr := s.batches.Update(batch); uerr != nil {
				s.log.WithError(uerr).Error("failed to finalize import batch")
			}
			return result, nil
		}
	}

	batch.Status = models.BatchFailed
	batch.ErrorMessage = err.Error()
	if uerr := s.batches.Update(batch); uerr != nil {
		s.log.WithError(uerr).Error("failed to mark batch failed")
	}
	return nil, err
}

// Run reconciles pre-parsed rows and, unless previewing, writes them.
func (s *ImportService) Run(ctx context.Context, req importer.Request, rows []importer.Row) (*importer.Result, error) {
	rc := importer.NewRunContext(req)
	rc.ContainmentRatio = s.cfg.FuzzyContainmentRatio
	rc.WordOverlap = s.cfg.FuzzyWordOverlap

	if err := s.seed(rc); err != nil {
		return nil, fmt.Errorf("failed to load existing records: %w", err)
	}

	outcomes, err := s.engine.Run(rc, rows)
	if err != nil {
		return nil, err
	}

	if req.PreviewOnly {
		result := importer.Summarize(rc, outcomes, true, s.cfg.PreviewSampleCap)
		return &result, nil
	}

	writer := importer.NewBatchWriter(s.persister(req.EntityType), s.chunkSize(req.EntityType), s.log)
	stats := writer.Write(ctx, outcomes)

	result := importer.Summarize(rc, outcomes, false, s.cfg.PreviewSampleCap)
	// Reconcile counts with what actually landed.
	result.Created = stats.Created
	result.Updated = stats.Updated
	result.Restored = stats.Restored
	result.Rejected += stats.Failed
	result.Errors = append(result.Errors, stats.Errors...)

	s.log.WithFields(logrus.Fields{
		"entity":   req.EntityType,
		"total":    result.Total,
		"created":  result.Created,
		"updated":  result.Updated,
		"restored": result.Restored,
		"skipped":  result.Skipped,
		"rejected": result.Rejected,
	}).Info("import run finished")
	return &result, nil
}

func (s *ImportService) persister(entityType string) importer.Persister {
	switch entityType {
	case importer.EntityCustomers:
		return customerPersister{repo: s.customers}
	case importer.EntityTrucks:
		return truckPersister{repo: s.trucks}
	case importer.EntityTrailers:
		return trailerPersister{repo: s.trailers}
	case importer.EntityDrivers:
		return driverPersister{repo: s.drivers, users: s.users}
	case importer.EntityVendors:
		return vendorPersister{repo: s.vendors}
	case importer.EntityLocations:
		return locationPersister{repo: s.locations}
	case importer.EntityLoads:
		return loadPersister{repo: s.loads}
	case importer.EntityPersonnel:
		return leadPersister{repo: s.leads}
	default:
		return nil
	}
}

// chunkSize is smaller for drivers because each record may fan out into
// a user lookup and insert.
func (s *ImportService) chunkSize(entityType string) int {
	if entityType == importer.EntityDrivers {
		return s.cfg.DriverChunkSize
	}
	return s.cfg.ChunkSize
}

// seed pre-fetches everything the run needs in bulk: carriers always,
// the entity's own key space for duplicate detection, and the reference
// spaces its rows may point at. No per-row queries happen after this.
func (s *ImportService) seed(rc *importer.RunContext) error {
	if err := s.seedCarriers(rc); err != nil {
		return err
	}

	switch rc.Req.EntityType {
	case importer.EntityCustomers:
		return s.seedCustomers(rc)
	case importer.EntityTrucks:
		if err := s.seedDrivers(rc); err != nil {
			return err
		}
		return s.seedTrucks(rc)
	case importer.EntityTrailers:
		if err := s.seedTrucks(rc); err != nil {
			return err
		}
		return s.seedTrailers(rc)
	case importer.EntityDrivers:
		return s.seedDrivers(rc)
	case importer.EntityVendors:
		return s.seedVendors(rc)
	case importer.EntityLocations:
		return s.seedLocations(rc)
	case importer.EntityLoads:
		for _, fn := range []func(*importer.RunContext) error{
			s.seedCustomers, s.seedTrucks, s.seedTrailers, s.seedDrivers,
		} {
			if err := fn(rc); err != nil {
				return err
			}
		}
		return s.seedLoads(rc)
	case importer.EntityPersonnel:
		return s.seedLeads(rc)
	default:
		return fmt.Errorf("unknown entity type %q", rc.Req.EntityType)
	}
}

func (s *ImportService) seedCarriers(rc *importer.RunContext) error {
	carriers, err := s.carriers.FindAll(rc.Req.CompanyID)
	if err != nil {
		return err
	}
	for _, c := range carriers {
		rc.Refs.Add(importer.RefCarrier, c.Number, c.ID)
		rc.Refs.Add(importer.RefCarrier, "MC "+c.Number, c.ID)
		rc.Refs.Add(importer.RefCarrier, c.CompanyName, c.ID)
		if rc.Req.DefaultCarrierID == "" && c.IsDefault {
			rc.Req.DefaultCarrierID = c.ID
		}
	}
	// An explicit MC number on the request beats the caller's own carrier.
	if rc.Req.DefaultMC != "" {
		if id, ok := rc.Refs.Resolve(importer.RefCarrier, rc.Req.DefaultMC, rc.ContainmentRatio, rc.WordOverlap); ok {
			rc.Req.DefaultCarrierID = id
		}
	}
	if rc.Req.DefaultCarrierID == "" && len(carriers) > 0 {
		rc.Req.DefaultCarrierID = carriers[0].ID
	}
	return nil
}

func (s *ImportService) seedCustomers(rc *importer.RunContext) error {
	customers, err := s.customers.FindAllForImport(rc.Req.CompanyID)
	if err != nil {
		return err
	}
	for _, c := range customers {
		existing := importer.Existing{ID: c.ID, Deleted: c.DeletedAt != nil}
		rc.Dupes.Seed(importer.EntityCustomers, "number|"+c.CustomerNumber, existing)
		rc.Dupes.Seed(importer.EntityCustomers, "name|"+c.Name, existing)
		if c.DeletedAt == nil {
			rc.Refs.Add(importer.RefCustomer, c.Name, c.ID)
			rc.Refs.Add(importer.RefCustomer, c.CustomerNumber, c.ID)
		}
	}
	return nil
}

func (s *ImportService) seedTrucks(rc *importer.RunContext) error {
	trucks, err := s.trucks.FindAllForImport(rc.Req.CompanyID)
	if err != nil {
		return err
	}
	for _, t := range trucks {
		existing := importer.Existing{ID: t.ID, Deleted: t.DeletedAt != nil}
		rc.Dupes.Seed(importer.EntityTrucks, "number|"+t.TruckNumber, existing)
		rc.Dupes.Seed(importer.EntityTrucks, "vin|"+t.VIN, existing)
		if t.DeletedAt == nil {
			rc.Refs.Add(importer.RefTruck, t.TruckNumber, t.ID)
			rc.Refs.Add(importer.RefTruck, "truck "+t.TruckNumber, t.ID)
		}
	}
	return nil
}

func (s *ImportService) seedTrailers(rc *importer.RunContext) error {
	trailers, err := s.trailers.FindAllForImport(rc.Req.CompanyID)
	if err != nil {
		return err
	}
	for _, t := range trailers {
		existing := importer.Existing{ID: t.ID, Deleted: t.DeletedAt != nil}
		rc.Dupes.Seed(importer.EntityTrailers, "number|"+t.TrailerNumber, existing)
		rc.Dupes.Seed(importer.EntityTrailers, "vin|"+t.VIN, existing)
		if t.DeletedAt == nil {
			rc.Refs.Add(importer.RefTrailer, t.TrailerNumber, t.ID)
			rc.Refs.Add(importer.RefTrailer, "trailer "+t.TrailerNumber, t.ID)
		}
	}
	return nil
}

func (s *ImportService) seedDrivers(rc *importer.RunContext) error {
	drivers, err := s.drivers.FindAllForImport(rc.Req.CompanyID)
	if err != nil {
		return err
	}
	for _, d := range drivers {
		existing := importer.Existing{ID: d.ID, Deleted: d.DeletedAt != nil}
		rc.Dupes.Seed(importer.EntityDrivers, "number|"+d.DriverNumber, existing)
		if d.Email != "" {
			rc.Dupes.Seed(importer.EntityDrivers, "email|"+d.Email, existing)
		}
		if d.DeletedAt == nil {
			rc.Refs.Add(importer.RefDriver, d.DriverNumber, d.ID)
			name := strings.TrimSpace(d.FirstName + " " + d.LastName)
			rc.Refs.Add(importer.RefDriver, name, d.ID)
		}
	}
	return nil
}

func (s *ImportService) seedVendors(rc *importer.RunContext) error {
	vendors, err := s.vendors.FindAllForImport(rc.Req.CompanyID)
	if err != nil {
		return err
	}
	for _, v := range vendors {
		existing := importer.Existing{ID: v.ID, Deleted: v.DeletedAt != nil}
		rc.Dupes.Seed(importer.EntityVendors, "number|"+v.VendorNumber, existing)
		rc.Dupes.Seed(importer.EntityVendors, "name|"+v.Name, existing)
	}
	return nil
}

func (s *ImportService) seedLocations(rc *importer.RunContext) error {
	locations, err := s.locations.FindAllForImport(rc.Req.CompanyID)
	if err != nil {
		return err
	}
	for _, l := range locations {
		existing := importer.Existing{ID: l.ID, Deleted: l.DeletedAt != nil}
		quad := strings.Join([]string{l.Name, l.Address, l.City, l.State}, "~")
		rc.Dupes.Seed(importer.EntityLocations, "site|"+quad, existing)
	}
	return nil
}

func (s *ImportService) seedLeads(rc *importer.RunContext) error {
	leads, err := s.leads.FindAllForImport(rc.Req.CompanyID)
	if err != nil {
		return err
	}
	for _, l := range leads {
		existing := importer.Existing{ID: l.ID, Deleted: l.DeletedAt != nil}
		if d := importer.DigitsOnly(l.Phone); d != "" {
			rc.Dupes.Seed(importer.EntityPersonnel, "phone|"+d, existing)
		}
		if l.Email != "" {
			rc.Dupes.Seed(importer.EntityPersonnel, "email|"+strings.ToLower(l.Email), existing)
		}
	}
	return nil
}

func (s *ImportService) seedLoads(rc *importer.RunContext) error {
	loads, err := s.loads.FindAllForImport(rc.Req.CompanyID)
	if err != nil {
		return err
	}
	for _, l := range loads {
		existing := importer.Existing{ID: l.ID, Deleted: l.DeletedAt != nil}
		rc.Dupes.Seed(importer.EntityLoads, "number|"+l.LoadNumber, existing)
	}
	return nil
}
