package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-web/internal/importer"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseFileCSV(t *testing.T) {
	s := NewSpreadsheetService()
	path := writeTempFile(t, "customers.csv",
		"Customer Name,Customer Number,City\n"+
			"Acme Logistics,CUST-001,Dallas\n"+
			",,\n"+ // blank line is dropped
			"Midwest Freight,CUST-002,Chicago\n")

	rows, err := s.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, "Acme Logistics", rows[0].Values["customer_name"])
	assert.Equal(t, 3, rows[1].Index, "indices track file position, not slice position")
	assert.Equal(t, "Chicago", rows[1].Values["city"])
}

func TestParseFileCSVStripsBOM(t *testing.T) {
	s := NewSpreadsheetService()
	path := writeTempFile(t, "bom.csv", "\ufeffName,City\nAcme,Dallas\n")

	rows, err := s.ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Acme", rows[0].Values["name"])
}

func TestParseFileRaggedCSV(t *testing.T) {
	s := NewSpreadsheetService()
	path := writeTempFile(t, "ragged.csv", "Name,City,State\nAcme,Dallas\n")

	rows, err := s.ParseFile(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "", rows[0].Values["state"])
}

func TestParseFileHeaderOnly(t *testing.T) {
	s := NewSpreadsheetService()
	path := writeTempFile(t, "empty.csv", "Name,City\n")

	_, err := s.ParseFile(path)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParseFileUnsupportedExtension(t *testing.T) {
	s := NewSpreadsheetService()
	_, err := s.ParseFile("upload.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestGenerateTemplateRoundTrip(t *testing.T) {
	s := NewSpreadsheetService()
	path := filepath.Join(t.TempDir(), "trucks.xlsx")
	require.NoError(t, s.GenerateTemplate(importer.EntityTrucks, path))

	// The generated workbook parses back as an empty import.
	_, err := s.ParseFile(path)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestGenerateTemplateUnknownEntity(t *testing.T) {
	s := NewSpreadsheetService()
	err := s.GenerateTemplate("widgets", filepath.Join(t.TempDir(), "w.xlsx"))
	assert.Error(t, err)
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "A", columnName(0))
	assert.Equal(t, "Z", columnName(25))
	assert.Equal(t, "AA", columnName(26))
	assert.Equal(t, "AB", columnName(27))
}
