package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"fleet-web/internal/importer"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format, expected .xlsx, .xls or .csv")
	ErrEmptyFile         = errors.New("file must contain a header row and at least one data row")
)

// SpreadsheetService turns uploaded files into rows for the import
// engine. Excel files go through excelize; CSV through encoding/csv.
type SpreadsheetService struct{}

func NewSpreadsheetService() *SpreadsheetService {
	return &SpreadsheetService{}
}

// ParseFile reads the file at path and returns its rows. Row indices are
// 1-based data positions; the header row is consumed, not returned.
func (s *SpreadsheetService) ParseFile(path string) ([]importer.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls", ".xlsm":
		return s.parseExcel(path)
	case ".csv", ".txt":
		return s.parseCSV(path)
	default:
		return nil, ErrUnsupportedFormat
	}
}

func (s *SpreadsheetService) parseExcel(path string) ([]importer.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyFile
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	return buildRows(rows)
}

func (s *SpreadsheetService) parseCSV(path string) ([]importer.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var raw [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		raw = append(raw, record)
	}
	return buildRows(raw)
}

func buildRows(raw [][]string) ([]importer.Row, error) {
	if len(raw) < 2 {
		return nil, ErrEmptyFile
	}
	headers := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	var rows []importer.Row
	for i := 1; i < len(raw); i++ {
		row := importer.NewRow(i, headers, raw[i])
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}
	return rows, nil
}

// Template headers per entity, used by GenerateTemplate.
var templateHeaders = map[string][]string{
	importer.EntityCustomers: {"Customer Number", "Name", "Type", "Address", "City", "State", "Zip", "Phone", "Email", "MC Number", "Billing Email", "Tags"},
	importer.EntityTrucks:    {"Truck Number", "VIN", "Make", "Model", "Year", "License Plate", "State", "Equipment Type", "Status", "Odometer", "Registration Expiry", "Insurance Expiry", "Inspection Expiry", "MC Number"},
	importer.EntityTrailers:  {"Trailer Number", "VIN", "Make", "Model", "Year", "License Plate", "State", "Type", "Status", "Assigned Truck", "MC Number"},
	importer.EntityDrivers:   {"First Name", "Last Name", "Email", "Phone", "Driver Number", "Driver Type", "Status", "License Number", "License State", "License Expiry", "Medical Card Expiry", "Pay Type", "Pay Rate", "MC Number"},
	importer.EntityVendors:   {"Vendor Number", "Name", "Type", "Email", "Phone", "Website", "Address", "City", "State", "Zip", "Tags"},
	importer.EntityLocations: {"Location Number", "Name", "Company", "Address", "City", "State", "Zip", "Contact Name"},
	importer.EntityLoads:     {"Load Number", "Customer", "Status", "Pickup City", "Pickup State", "Pickup Date", "Delivery City", "Delivery State", "Delivery Date", "Truck", "Trailer", "Driver", "Revenue", "Driver Pay", "Total Miles", "MC Number"},
	importer.EntityPersonnel: {"First Name", "Last Name", "Phone", "Email", "Status", "Priority", "Source", "CDL Number", "CDL Class", "CDL Expiration", "Endorsements", "Years Experience", "Previous Employers", "Freight Types", "Address", "City", "State", "Zip", "Tags"},
}

// GenerateTemplate writes an empty upload template for one entity type.
func (s *SpreadsheetService) GenerateTemplate(entityType, outputPath string) error {
	headers, ok := templateHeaders[entityType]
	if !ok {
		return fmt.Errorf("unknown entity type %q", entityType)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Import"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	for i, header := range headers {
		cell := fmt.Sprintf("%s1", columnName(i))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", columnName(len(headers)-1)), headerStyle)

	for i := range headers {
		col := columnName(i)
		f.SetColWidth(sheetName, col, col, 18)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	return f.SaveAs(outputPath)
}

func columnName(index int) string {
	result := ""
	for index >= 0 {
		result = string(rune('A'+(index%26))) + result
		index = index/26 - 1
	}
	return result
}
