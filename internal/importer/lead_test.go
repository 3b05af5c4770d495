package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-web/internal/models"
)

func validateLead(t *testing.T, rc *RunContext, row Row) *LeadRecord {
	t.Helper()
	rec, rowErr := LeadReconciler{}.Validate(rc, row)
	require.Nil(t, rowErr)
	return rec.(*LeadRecord)
}

func TestLeadValidateFullRow(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityPersonnel, CompanyID: "co-1"})
	row := NewRow(2,
		[]string{"First Name", "Last Name", "Phone", "Email", "Status", "Priority", "Source", "CDL Class", "Years Experience"},
		[]string{"Carlos", "Reyes", "(555) 987-6543", "CReyes@Example.com", "docs pending", "hot", "facebook ads", "Class A", "7.6"},
	)

	l := validateLead(t, rc, row)
	assert.Equal(t, "co-1", l.CompanyID)
	assert.Equal(t, "creyes@example.com", l.Email)
	assert.Equal(t, models.LeadDocumentsPending, l.Status)
	assert.Equal(t, models.LeadHot, l.Priority)
	assert.Equal(t, models.LeadSourceFacebook, l.Source)
	assert.Equal(t, "A", l.CdlClass)
	assert.Equal(t, 8, l.YearsExperience)
}

func TestLeadRequiresNameAndContact(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityPersonnel})

	_, rowErr := LeadReconciler{}.Validate(rc, NewRow(2, []string{"Phone"}, []string{"555-000-1111"}))
	require.NotNil(t, rowErr)
	assert.Equal(t, "name", rowErr.Field)

	_, rowErr = LeadReconciler{}.Validate(rc, NewRow(3, []string{"Name", "City"}, []string{"Carlos Reyes", "Dallas"}))
	require.NotNil(t, rowErr)
	assert.Equal(t, "contact", rowErr.Field)
}

func TestLeadGeneratesNumberWithWarning(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityPersonnel})
	row := NewRow(2, []string{"Name", "Phone"}, []string{"Carlos Reyes", "555-987-6543"})

	l := validateLead(t, rc, row)
	assert.True(t, IsPendingNumber(l.LeadNumber))
	assert.Contains(t, l.LeadNumber, "CRM-")
	require.Len(t, rc.Warnings, 1)
	assert.Equal(t, "lead_number", rc.Warnings[0].Field)
}

func TestLeadWarnsOnUnreadableCdlExpiration(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityPersonnel})
	row := NewRow(2,
		[]string{"Name", "Phone", "Lead Number", "CDL Expiration"},
		[]string{"Carlos Reyes", "555-987-6543", "CRM-001", "sometime soon"},
	)

	l := validateLead(t, rc, row)
	assert.Nil(t, l.CdlExpiration)
	require.Len(t, rc.Warnings, 1)
	assert.Equal(t, "cdl_expiration", rc.Warnings[0].Field)
}

func TestLeadKeys(t *testing.T) {
	l := &LeadRecord{Lead: models.Lead{Phone: "(555) 987-6543", Email: "creyes@example.com"}}
	assert.Equal(t, []string{"phone|5559876543", "email|creyes@example.com"}, l.Keys())

	l = &LeadRecord{Lead: models.Lead{Email: "creyes@example.com"}}
	assert.Equal(t, []string{"email|creyes@example.com"}, l.Keys())
}

func TestLeadDedupAcrossPhoneAndEmail(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityPersonnel, Mode: ModeCreate})
	engine := NewEngine(LeadReconciler{})

	headers := []string{"Name", "Phone", "Email"}
	outcomes, err := engine.Run(rc, []Row{
		NewRow(2, headers, []string{"Carlos Reyes", "555-987-6543", "creyes@example.com"}),
		NewRow(3, headers, []string{"C. Reyes", "(555) 987.6543", ""}),
		NewRow(4, headers, []string{"Carl Reyes", "", "CREYES@example.com"}),
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, StatusCreated, outcomes[0].Status)
	assert.Equal(t, StatusSkippedDuplicate, outcomes[1].Status, "same phone digits")
	assert.Equal(t, StatusSkippedDuplicate, outcomes[2].Status, "same email, case folded")
}

func TestParseEndorsements(t *testing.T) {
	cases := map[string]string{
		"H, N, T":   "H,N,T",
		"h n":       "H,N",
		"HNT":       "H,N,T",
		"HAZMAT123": "H,T", // only endorsement codes survive a run-on cell
		"":          "",
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseEndorsements(in), "input %q", in)
	}
}

func TestMapCdlClass(t *testing.T) {
	cases := map[string]string{
		"A":       "A",
		"class b": "B",
		"CDL-C":   "C",
		"CDL":     "",
		"":        "",
	}
	for in, want := range cases {
		assert.Equal(t, want, MapCdlClass(in), "input %q", in)
	}
}
