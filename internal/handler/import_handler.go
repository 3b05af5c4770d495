package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fleet-web/internal/config"
	"fleet-web/internal/importer"
	"fleet-web/internal/service"
	"fleet-web/internal/utils"
)

var validEntities = map[string]bool{
	importer.EntityCustomers: true,
	importer.EntityTrucks:    true,
	importer.EntityTrailers:  true,
	importer.EntityDrivers:   true,
	importer.EntityVendors:   true,
	importer.EntityLocations: true,
	importer.EntityLoads:     true,
	importer.EntityPersonnel: true,
}

var allowedExtensions = map[string]bool{
	".xlsx": true, ".xls": true, ".xlsm": true, ".csv": true, ".txt": true,
}

type ImportHandler struct {
	imports     *service.ImportService
	spreadsheet *service.SpreadsheetService
	cfg         *config.Config
}

func NewImportHandler(imports *service.ImportService, spreadsheet *service.SpreadsheetService, cfg *config.Config) *ImportHandler {
	return &ImportHandler{
		imports:     imports,
		spreadsheet: spreadsheet,
		cfg:         cfg,
	}
}

// Upload receives a spreadsheet and runs (or queues) an import for one
// entity type. Multipart form fields:
//
//	file              the spreadsheet (required)
//	import_mode       create | update | upsert (default create)
//	preview           "true" to classify without writing
//	mc_number         carrier fallback when rows name no carrier
//	column_mapping    JSON object, target field -> source header
//	value_resolutions JSON object, field -> raw value -> record id
//	fixed_values      JSON object, target field -> default value
func (h *ImportHandler) Upload(c *fiber.Ctx) error {
	entity := c.Params("entity")
	if !validEntities[entity] {
		return utils.ErrorResponse(c, fiber.StatusNotFound, utils.CodeNotFound, "Unknown entity type: "+entity)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeMissingFile, "File is required")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeUnsupportedFormat, "Only .xlsx, .xls and .csv files are supported")
	}
	if file.Size > int64(h.cfg.UploadMaxSize) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeParseError, "File size exceeds maximum limit")
	}

	filePath := filepath.Join(h.cfg.UploadPath, fmt.Sprintf("import-%s%s", uuid.NewString()[:8], ext))
	if err := c.SaveFile(file, filePath); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.CodeInternal, "Failed to save file")
	}

	req, err := h.buildRequest(c, entity)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeParseError, err.Error())
	}

	result, batch, err := h.imports.ImportFile(c.Context(), req, filePath, file.Filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFormat):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeUnsupportedFormat, err.Error())
		case errors.Is(err, service.ErrEmptyFile):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, utils.CodeEmptyFile, err.Error())
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.CodeParseError, err.Error())
		}
	}

	// Large files come back with no result: the batch was queued.
	if result == nil {
		return utils.SuccessResponse(c, fiber.StatusAccepted, fiber.Map{"batch": batch})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"result": result,
		"batch":  batch,
	})
}

func (h *ImportHandler) buildRequest(c *fiber.Ctx, entity string) (importer.Request, error) {
	mode := importer.Mode(c.FormValue("import_mode", string(importer.ModeCreate)))
	switch mode {
	case importer.ModeCreate, importer.ModeUpdate, importer.ModeUpsert:
	default:
		return importer.Request{}, fmt.Errorf("invalid import_mode %q", mode)
	}

	req := importer.Request{
		EntityType:       entity,
		Mode:             mode,
		PreviewOnly:      c.FormValue("preview") == "true",
		DefaultMC:        c.FormValue("mc_number"),
		DefaultCarrierID: localString(c, "carrier_id"),
		CompanyID:        localString(c, "company_id"),
		UserID:           localString(c, "user_id"),
	}

	if raw := c.FormValue("column_mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.ColumnMapping); err != nil {
			return req, fmt.Errorf("invalid column_mapping: %w", err)
		}
	}
	if raw := c.FormValue("value_resolutions"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.ValueResolutions); err != nil {
			return req, fmt.Errorf("invalid value_resolutions: %w", err)
		}
	}
	if raw := c.FormValue("fixed_values"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.FixedValues); err != nil {
			return req, fmt.Errorf("invalid fixed_values: %w", err)
		}
	}
	return req, nil
}

// Template serves an empty upload template for one entity type.
func (h *ImportHandler) Template(c *fiber.Ctx) error {
	entity := c.Params("entity")
	if !validEntities[entity] {
		return utils.ErrorResponse(c, fiber.StatusNotFound, utils.CodeNotFound, "Unknown entity type: "+entity)
	}

	path := filepath.Join(h.cfg.UploadPath, fmt.Sprintf("template-%s-%s.xlsx", entity, uuid.NewString()[:8]))
	if err := h.spreadsheet.GenerateTemplate(entity, path); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.CodeInternal, "Failed to generate template")
	}
	return c.Download(path, fmt.Sprintf("%s-import-template.xlsx", entity))
}

func localString(c *fiber.Ctx, key string) string {
	if v, ok := c.Locals(key).(string); ok {
		return v
	}
	return ""
}
