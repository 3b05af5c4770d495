package importer

import (
	"strings"

	"fleet-web/internal/models"
)

// LeadRecord is a recruiting-pipeline prospect. Leads carry no linked
// user; the phone digits and lowercased email are the duplicate keys.
type LeadRecord struct {
	models.Lead
}

func (r *LeadRecord) Keys() []string {
	var keys []string
	if d := DigitsOnly(r.Phone); d != "" {
		keys = append(keys, "phone|"+d)
	}
	if r.Email != "" {
		keys = append(keys, "email|"+r.Email)
	}
	return keys
}

func (r *LeadRecord) Label() string {
	name := strings.TrimSpace(r.FirstName + " " + r.LastName)
	if name != "" {
		return name
	}
	return r.LeadNumber
}

type LeadReconciler struct{}

func (LeadReconciler) EntityType() string { return EntityPersonnel }

func (LeadReconciler) Validate(rc *RunContext, row Row) (Record, *RowError) {
	m := rc.Req.ColumnMapping

	first := row.Get(m, "first_name", "first name", "first")
	last := row.Get(m, "last_name", "last name", "last")
	if first == "" && last == "" {
		first, last = SplitName(row.Get(m, "name", "name", "full name", "lead name", "applicant", "driver name"))
	}
	if first == "" && last == "" {
		return nil, &RowError{Row: row.Index, Field: "name", Message: "lead name is required"}
	}

	phone := row.Get(m, "phone", "phone", "phone number", "cell", "cell phone", "mobile")
	email := strings.ToLower(row.Get(m, "email", "email", "email address", "e-mail"))
	if phone == "" && email == "" {
		return nil, &RowError{Row: row.Index, Field: "contact", Message: "phone or email is required"}
	}

	number := row.Get(m, "lead_number", "lead number", "lead #", "lead id")
	if number == "" {
		number = PendingNumber("CRM")
		rc.Warn(row.Index, "lead_number", "no lead number, generated "+number)
	}

	cdlExpRaw := row.Get(m, "cdl_expiration", "cdl expiration", "cdl expiry", "license expiration")
	cdlExpiration := ParseDate(cdlExpRaw)
	if cdlExpRaw != "" && cdlExpiration == nil {
		rc.Warn(row.Index, "cdl_expiration", "unreadable date "+cdlExpRaw)
	}

	rec := &LeadRecord{Lead: models.Lead{
		CompanyID:         rc.Req.CompanyID,
		LeadNumber:        number,
		FirstName:         first,
		LastName:          last,
		Phone:             phone,
		Email:             email,
		Address:           row.Get(m, "address", "address", "street", "street address"),
		City:              row.Get(m, "city", "city"),
		State:             NormalizeState(row.Get(m, "state", "state", "st")),
		Zip:               row.Get(m, "zip", "zip", "zip code", "postal code"),
		Status:            MapLeadStatus(row.Get(m, "status", "status", "stage", "pipeline stage")),
		Priority:          MapLeadPriority(row.Get(m, "priority", "priority", "temperature")),
		Source:            MapLeadSource(row.Get(m, "source", "source", "lead source", "channel")),
		CdlNumber:         row.Get(m, "cdl_number", "cdl number", "cdl #", "cdl", "license number"),
		CdlClass:          MapCdlClass(row.Get(m, "cdl_class", "cdl class", "license class", "class")),
		CdlExpiration:     cdlExpiration,
		Endorsements:      ParseEndorsements(row.Get(m, "endorsements", "endorsements", "endorsement")),
		YearsExperience:   int(ParseFloat(row.Get(m, "years_experience", "years experience", "experience", "yrs exp")) + 0.5),
		PreviousEmployers: row.Get(m, "previous_employers", "previous employers", "previous employer", "last employer"),
		FreightTypes:      JoinTags(row.Get(m, "freight_types", "freight types", "freight type", "freight experience")),
		DateOfBirth:       ParseDate(row.Get(m, "date_of_birth", "date of birth", "dob", "birth date")),
		Tags:              JoinTags(row.Get(m, "tags", "tags", "tag")),
		ImportBatchID:     rc.Req.BatchID,
		IsActive:          true,
	}}
	return rec, nil
}

// ParseEndorsements reads a CDL endorsement cell in any of its common
// shapes: comma separated, space separated, or the letters run together
// ("HNT"). Only the federal endorsement codes survive.
func ParseEndorsements(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	var codes []string
	switch {
	case strings.Contains(value, ","):
		for _, p := range strings.Split(value, ",") {
			if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
				codes = append(codes, p)
			}
		}
	case strings.ContainsAny(value, " \t"):
		for _, p := range strings.Fields(value) {
			codes = append(codes, strings.ToUpper(p))
		}
	default:
		for _, r := range strings.ToUpper(value) {
			switch r {
			case 'H', 'N', 'T', 'P', 'S', 'X':
				codes = append(codes, string(r))
			}
		}
	}
	return strings.Join(codes, ",")
}

func (LeadReconciler) ResolveReferences(rc *RunContext, row Row, rec Record) {
	// Leads reference nothing; they enter the system before any
	// carrier or equipment assignment exists.
}

func (LeadReconciler) Classify(rc *RunContext, row Row, rec Record) Outcome {
	return classifyByKeys(rc, row, rec, EntityPersonnel)
}
