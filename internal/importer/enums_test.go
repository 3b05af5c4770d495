package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fleet-web/internal/models"
)

func TestMapFleetStatus(t *testing.T) {
	assert.Equal(t, models.FleetAvailable, MapFleetStatus("Available"))
	assert.Equal(t, models.FleetAvailable, MapFleetStatus("active"))
	assert.Equal(t, models.FleetInUse, MapFleetStatus("Dispatched"))
	assert.Equal(t, models.FleetMaintenance, MapFleetStatus("in the shop"))
	assert.Equal(t, models.FleetOutOfService, MapFleetStatus("OOS"))
	assert.Equal(t, models.FleetInactive, MapFleetStatus("Retired"))
	assert.Equal(t, models.FleetAvailable, MapFleetStatus(""))
	assert.Equal(t, models.FleetAvailable, MapFleetStatus("???"))

	// "inactive" contains "active", so the INACTIVE rule must win.
	assert.Equal(t, models.FleetInactive, MapFleetStatus("Inactive"))
	assert.Equal(t, models.FleetOutOfService, MapFleetStatus("out-of-service"))
}

func TestMapEquipmentType(t *testing.T) {
	assert.Equal(t, models.EquipmentReefer, MapEquipmentType("Refrigerated"))
	assert.Equal(t, models.EquipmentStepDeck, MapEquipmentType("step deck"))
	assert.Equal(t, models.EquipmentFlatbed, MapEquipmentType("48' Flatbed"))
	assert.Equal(t, models.EquipmentTanker, MapEquipmentType("Tank"))
	assert.Equal(t, models.EquipmentDryVan, MapEquipmentType("Dry Van 53"))
	assert.Equal(t, models.EquipmentDryVan, MapEquipmentType("box truck"))
	assert.Equal(t, models.EquipmentDryVan, MapEquipmentType(""))
}

func TestMapDriverStatus(t *testing.T) {
	// "off duty" contains both OFF and DUTY; OFF is listed first.
	assert.Equal(t, models.DriverOffDuty, MapDriverStatus("Off Duty"))
	assert.Equal(t, models.DriverOnDuty, MapDriverStatus("On Duty"))
	assert.Equal(t, models.DriverInTransit, MapDriverStatus("in transit"))
	assert.Equal(t, models.DriverOnLeave, MapDriverStatus("Vacation"))
	assert.Equal(t, models.DriverInactive, MapDriverStatus("Terminated"))
	assert.Equal(t, models.DriverAvailable, MapDriverStatus("Active"))
	assert.Equal(t, models.DriverAvailable, MapDriverStatus(""))
}

func TestMapDriverType(t *testing.T) {
	assert.Equal(t, models.DriverOwnerOperator, MapDriverType("Owner Operator"))
	assert.Equal(t, models.DriverOwnerOperator, MapDriverType("O/O"))
	assert.Equal(t, models.DriverLease, MapDriverType("Lease Purchase"))
	assert.Equal(t, models.DriverCompany, MapDriverType("Company"))
	assert.Equal(t, models.DriverCompany, MapDriverType(""))
}

func TestMapCustomerType(t *testing.T) {
	assert.Equal(t, models.CustomerBroker, MapCustomerType("Freight Broker"))
	assert.Equal(t, models.CustomerForwarder, MapCustomerType("Forwarder"))
	assert.Equal(t, models.CustomerThirdParty, MapCustomerType("3PL"))
	assert.Equal(t, models.CustomerDirect, MapCustomerType("Direct Shipper"))
	assert.Equal(t, models.CustomerDirect, MapCustomerType(""))
}

func TestMapVendorType(t *testing.T) {
	assert.Equal(t, models.VendorFuelVendor, MapVendorType("Fuel Stop"))
	assert.Equal(t, models.VendorTireShop, MapVendorType("Tires"))
	assert.Equal(t, models.VendorRepairShop, MapVendorType("Truck Repair"))
	assert.Equal(t, models.VendorPartsVendor, MapVendorType("Parts"))
	assert.Equal(t, models.VendorSupplier, MapVendorType(""))
}

func TestMapPayType(t *testing.T) {
	assert.Equal(t, models.PayPerMile, MapPayType("per mile"))
	assert.Equal(t, models.PayPercent, MapPayType("25%"))
	assert.Equal(t, models.PayFlat, MapPayType("flat per load"))
	assert.Equal(t, models.PayPerHour, MapPayType("Hourly"))
	assert.Equal(t, models.PayPerMile, MapPayType(""))
}

func TestMapLoadStatus(t *testing.T) {
	assert.Equal(t, models.LoadDelivered, MapLoadStatus("Delivered"))
	assert.Equal(t, models.LoadCancelled, MapLoadStatus("Cancelled"))
	assert.Equal(t, models.LoadPaid, MapLoadStatus("Paid in full"))
	assert.Equal(t, models.LoadInvoiced, MapLoadStatus("Invoiced"))
	assert.Equal(t, models.LoadEnRouteDelivery, MapLoadStatus("In Transit"))
	assert.Equal(t, models.LoadAtPickup, MapLoadStatus("at pickup"))
	assert.Equal(t, models.LoadAssigned, MapLoadStatus("Dispatched"))
	assert.Equal(t, models.LoadPending, MapLoadStatus("Open"))
	assert.Equal(t, models.LoadPending, MapLoadStatus(""))
}
