package importer

import (
	"strings"

	"fleet-web/internal/models"
)

type LocationRecord struct {
	models.Location
}

// Locations have no natural unique number, so the duplicate key is the
// name, address, city and state taken together.
func (r *LocationRecord) Keys() []string {
	quad := strings.Join([]string{r.Name, r.Address, r.City, r.State}, "~")
	return []string{"site|" + quad}
}

func (r *LocationRecord) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return strings.TrimSpace(r.Address + " " + r.City)
}

type LocationReconciler struct{}

func (LocationReconciler) EntityType() string { return EntityLocations }

func (LocationReconciler) Validate(rc *RunContext, row Row) (Record, *RowError) {
	m := rc.Req.ColumnMapping

	name := row.Get(m, "name", "name", "location name", "location", "facility", "facility name")
	address := row.Get(m, "address", "address", "street", "street address", "full address")
	city := row.Get(m, "city", "city")
	state := NormalizeState(row.Get(m, "state", "state", "st"))
	zip := row.Get(m, "zip", "zip", "zip code", "postal code")

	// Files often carry the whole location in one cell.
	if city == "" {
		combined := address
		if combined == "" {
			combined = name
		}
		if strings.Contains(combined, ",") {
			a := ParseAddress(combined)
			if a.City != "" {
				city = a.City
				if address == "" || combined == address {
					address = a.Street
				}
				if state == "" {
					state = a.State
				}
				if zip == "" {
					zip = a.Zip
				}
			}
		}
	}

	if name == "" && address == "" && city == "" {
		return nil, &RowError{Row: row.Index, Field: "name", Message: "location needs a name or an address"}
	}
	if name == "" {
		name = strings.TrimSpace(address + ", " + city)
		name = strings.Trim(name, ", ")
	}

	number := row.Get(m, "location_number", "location number", "location #", "location id", "site number", "site #")
	if number == "" {
		number = PendingNumber("LOC")
	}

	rec := &LocationRecord{Location: models.Location{
		CompanyID:       rc.Req.CompanyID,
		LocationNumber:  number,
		Name:            name,
		LocationCompany: row.Get(m, "location_company", "company", "company name"),
		Address:         address,
		City:            city,
		State:           state,
		Zip:             zip,
		ContactName:     row.Get(m, "contact_name", "contact", "contact name"),
		ImportBatchID:   rc.Req.BatchID,
		IsActive:        true,
	}}
	return rec, nil
}

func (LocationReconciler) ResolveReferences(rc *RunContext, row Row, rec Record) {}

func (LocationReconciler) Classify(rc *RunContext, row Row, rec Record) Outcome {
	return classifyByKeys(rc, row, rec, EntityLocations)
}
