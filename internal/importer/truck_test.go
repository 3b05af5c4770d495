package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-web/internal/models"
)

func TestTruckValidate(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityTrucks, CompanyID: "co-1", DefaultCarrierID: "carrier-1"})
	engine := NewEngine(TruckReconciler{})

	row := NewRow(2,
		[]string{"Truck #", "VIN", "Make", "Model", "Year", "Plate", "Plate State", "Equipment", "Status", "Odometer"},
		[]string{"T-101", "1xkad49x1kj211825", "Kenworth", "T680", "2019", "ABC1234", "tx", "Dry Van", "Available", "452,310"},
	)
	outcomes, err := engine.Run(rc, []Row{row})
	require.NoError(t, err)
	require.Equal(t, StatusCreated, outcomes[0].Status)

	tr := outcomes[0].Record.(*TruckRecord)
	assert.Equal(t, "T-101", tr.TruckNumber)
	assert.Equal(t, "1XKAD49X1KJ211825", tr.VIN)
	assert.Equal(t, 2019, tr.Year)
	assert.Equal(t, "TX", tr.State)
	assert.Equal(t, models.EquipmentDryVan, tr.EquipmentType)
	assert.Equal(t, models.FleetAvailable, tr.Status)
	assert.Equal(t, 452310.0, tr.OdometerReading)
	assert.Equal(t, "carrier-1", tr.CarrierID)
	assert.Equal(t, []string{"number|T-101", "vin|1XKAD49X1KJ211825"}, tr.Keys())
}

func TestTruckRequiresNumber(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityTrucks})
	_, rowErr := TruckReconciler{}.Validate(rc, NewRow(2, []string{"VIN"}, []string{"1XKAD49X1KJ211825"}))
	require.NotNil(t, rowErr)
	assert.Equal(t, "truck_number", rowErr.Field)
}

func TestTruckMissingVINGetsPlaceholder(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityTrucks})
	rec, rowErr := TruckReconciler{}.Validate(rc, NewRow(2, []string{"Truck Number"}, []string{"T-102"}))
	require.Nil(t, rowErr)

	tr := rec.(*TruckRecord)
	assert.True(t, IsPendingNumber(tr.VIN))
	// Placeholder VINs never enter the duplicate key space.
	assert.Equal(t, []string{"number|T-102"}, tr.Keys())
	require.Len(t, rc.Warnings, 1)
	assert.Equal(t, "vin", rc.Warnings[0].Field)
}

func TestTruckResolvesAssignedDriver(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityTrucks})
	rc.Refs.Add(RefDriver, "John Smith", "driver-js")
	engine := NewEngine(TruckReconciler{})

	row := NewRow(2, []string{"Truck Number", "Driver"}, []string{"T-103", "John Smith"})
	outcomes, err := engine.Run(rc, []Row{row})
	require.NoError(t, err)
	assert.Equal(t, "driver-js", outcomes[0].Record.(*TruckRecord).DriverID)
}

func TestTrailerValidate(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityTrailers, CompanyID: "co-1"})
	rc.Refs.Add(RefTruck, "T-101", "truck-101")
	engine := NewEngine(TrailerReconciler{})

	row := NewRow(2,
		[]string{"Trailer #", "Trailer Type", "Truck"},
		[]string{"TR-55", "Reefer", "T-101"},
	)
	outcomes, err := engine.Run(rc, []Row{row})
	require.NoError(t, err)
	require.Equal(t, StatusCreated, outcomes[0].Status)

	tr := outcomes[0].Record.(*TrailerRecord)
	assert.Equal(t, "TR-55", tr.TrailerNumber)
	assert.Equal(t, models.EquipmentReefer, tr.Type)
	assert.Equal(t, "truck-101", tr.AssignedTruckID)
	// A blank VIN stays blank rather than becoming a key.
	assert.Equal(t, []string{"number|TR-55"}, tr.Keys())
}

func TestVendorValidate(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityVendors, CompanyID: "co-1"})
	engine := NewEngine(VendorReconciler{})

	row := NewRow(2,
		[]string{"Vendor Name", "Category", "Address"},
		[]string{"Big Rig Repair", "Repair Shop", "900 Shop Rd, Tulsa, OK 74101"},
	)
	outcomes, err := engine.Run(rc, []Row{row})
	require.NoError(t, err)
	require.Equal(t, StatusCreated, outcomes[0].Status)

	v := outcomes[0].Record.(*VendorRecord)
	assert.Equal(t, models.VendorRepairShop, v.Type)
	assert.Equal(t, "900 Shop Rd", v.Address)
	assert.Equal(t, "Tulsa", v.City)
	assert.Equal(t, "OK", v.State)
	assert.Equal(t, "74101", v.Zip)
	assert.True(t, IsPendingNumber(v.VendorNumber))
	assert.Equal(t, []string{"name|Big Rig Repair"}, v.Keys())
}

func TestLocationValidate(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityLocations, CompanyID: "co-1"})
	engine := NewEngine(LocationReconciler{})

	rows := []Row{
		NewRow(2, []string{"Facility", "Address"}, []string{"Acme DC", "500 Dock St, Laredo, TX 78040"}),
		// Same site again, keyed by the name/address/city/state quad.
		NewRow(3, []string{"Facility", "Address"}, []string{"Acme DC", "500 Dock St, Laredo, TX 78040"}),
		// Nameless rows synthesize a name from the address.
		NewRow(4, []string{"Address"}, []string{"77 Pier Ave, Long Beach, CA"}),
	}
	outcomes, err := engine.Run(rc, rows)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.Equal(t, StatusCreated, outcomes[0].Status)
	loc := outcomes[0].Record.(*LocationRecord)
	assert.Equal(t, "Acme DC", loc.Name)
	assert.Equal(t, "500 Dock St", loc.Address)
	assert.Equal(t, "Laredo", loc.City)
	assert.Equal(t, "TX", loc.State)
	assert.Equal(t, "78040", loc.Zip)

	assert.Equal(t, StatusSkippedDuplicate, outcomes[1].Status)

	assert.Equal(t, StatusCreated, outcomes[2].Status)
	loc = outcomes[2].Record.(*LocationRecord)
	assert.Equal(t, "77 Pier Ave, Long Beach", loc.Name)
	assert.Equal(t, "CA", loc.State)
}

func TestLocationRequiresNameOrAddress(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityLocations})
	_, rowErr := LocationReconciler{}.Validate(rc, NewRow(2, []string{"Contact"}, []string{"Bob"}))
	require.NotNil(t, rowErr)
}
