package importer

import (
	"strings"

	"fleet-web/internal/models"
)

// enumRule maps a keyword to a canonical enum value. Rules run in order,
// most specific first, so "OFF DUTY" hits OFF before DUTY.
type enumRule struct {
	keyword string
	value   string
}

func mapByKeyword(value string, rules []enumRule, fallback string) string {
	v := strings.ToUpper(strings.TrimSpace(value))
	if v == "" {
		return fallback
	}
	v = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(v)
	for _, r := range rules {
		if strings.Contains(v, r.keyword) {
			return r.value
		}
	}
	return fallback
}

var fleetStatusRules = []enumRule{
	{"AVAIL", models.FleetAvailable},
	{"READY", models.FleetAvailable},
	{"IN USE", models.FleetInUse},
	{"DISPATCH", models.FleetInUse},
	{"ASSIGNED", models.FleetInUse},
	{"MAINT", models.FleetMaintenance},
	{"SHOP", models.FleetMaintenance},
	{"REPAIR", models.FleetMaintenance},
	{"OUT OF SERVICE", models.FleetOutOfService},
	{"OOS", models.FleetOutOfService},
	{"INACTIVE", models.FleetInactive},
	{"RETIRED", models.FleetInactive},
	{"SOLD", models.FleetInactive},
	{"ACTIVE", models.FleetAvailable},
}

// MapFleetStatus normalizes a truck or trailer status cell.
func MapFleetStatus(value string) string {
	return mapByKeyword(value, fleetStatusRules, models.FleetAvailable)
}

var equipmentRules = []enumRule{
	{"REEFER", models.EquipmentReefer},
	{"REFRIG", models.EquipmentReefer},
	{"STEP", models.EquipmentStepDeck},
	{"FLAT", models.EquipmentFlatbed},
	{"TANK", models.EquipmentTanker},
	{"DRY", models.EquipmentDryVan},
	{"VAN", models.EquipmentDryVan},
	{"BOX", models.EquipmentDryVan},
}

// MapEquipmentType normalizes an equipment/trailer type cell.
func MapEquipmentType(value string) string {
	return mapByKeyword(value, equipmentRules, models.EquipmentDryVan)
}

var driverStatusRules = []enumRule{
	{"AVAIL", models.DriverAvailable},
	{"READY", models.DriverAvailable},
	{"TRANSIT", models.DriverInTransit},
	{"OFF", models.DriverOffDuty},
	{"DUTY", models.DriverOnDuty},
	{"DRIVING", models.DriverDriving},
	{"LEAVE", models.DriverOnLeave},
	{"VACATION", models.DriverOnLeave},
	{"INACTIVE", models.DriverInactive},
	{"TERMINATED", models.DriverInactive},
	{"QUIT", models.DriverInactive},
	{"ACTIVE", models.DriverAvailable},
}

func MapDriverStatus(value string) string {
	return mapByKeyword(value, driverStatusRules, models.DriverAvailable)
}

var driverTypeRules = []enumRule{
	{"OWNER", models.DriverOwnerOperator},
	{"O/O", models.DriverOwnerOperator},
	{"OO", models.DriverOwnerOperator},
	{"LEASE", models.DriverLease},
	{"COMPANY", models.DriverCompany},
}

func MapDriverType(value string) string {
	return mapByKeyword(value, driverTypeRules, models.DriverCompany)
}

var customerTypeRules = []enumRule{
	{"BROKER", models.CustomerBroker},
	{"FORWARD", models.CustomerForwarder},
	{"3PL", models.CustomerThirdParty},
	{"THIRD", models.CustomerThirdParty},
	{"LOGISTICS", models.CustomerThirdParty},
	{"DIRECT", models.CustomerDirect},
	{"SHIPPER", models.CustomerDirect},
}

func MapCustomerType(value string) string {
	return mapByKeyword(value, customerTypeRules, models.CustomerDirect)
}

var vendorTypeRules = []enumRule{
	{"FUEL", models.VendorFuelVendor},
	{"TIRE", models.VendorTireShop},
	{"REPAIR", models.VendorRepairShop},
	{"SHOP", models.VendorRepairShop},
	{"PART", models.VendorPartsVendor},
	{"SERVICE", models.VendorServiceProvider},
	{"SUPPL", models.VendorSupplier},
}

func MapVendorType(value string) string {
	return mapByKeyword(value, vendorTypeRules, models.VendorSupplier)
}

var payTypeRules = []enumRule{
	{"MILE", models.PayPerMile},
	{"PERCENT", models.PayPercent},
	{"%", models.PayPercent},
	{"FLAT", models.PayFlat},
	{"LOAD", models.PayFlat},
	{"HOUR", models.PayPerHour},
	{"SALARY", models.PayPerHour},
}

func MapPayType(value string) string {
	return mapByKeyword(value, payTypeRules, models.PayPerMile)
}

var loadStatusRules = []enumRule{
	{"CANCEL", models.LoadCancelled},
	{"PAID", models.LoadPaid},
	{"INVOICE", models.LoadInvoiced},
	{"DELIVERED", models.LoadDelivered},
	{"COMPLETE", models.LoadDelivered},
	{"AT DELIVERY", models.LoadAtDelivery},
	{"AT PICKUP", models.LoadAtPickup},
	{"LOADED", models.LoadLoaded},
	{"PICKUP", models.LoadEnRoutePickup},
	{"DELIVERY", models.LoadEnRouteDelivery},
	{"TRANSIT", models.LoadEnRouteDelivery},
	{"ASSIGN", models.LoadAssigned},
	{"DISPATCH", models.LoadAssigned},
	{"PENDING", models.LoadPending},
	{"OPEN", models.LoadPending},
	{"NEW", models.LoadPending},
}

func MapLoadStatus(value string) string {
	return mapByKeyword(value, loadStatusRules, models.LoadPending)
}

var leadStatusRules = []enumRule{
	{"COLLECT", models.LeadDocumentsCollected},
	{"PENDING", models.LeadDocumentsPending},
	{"DOC", models.LeadDocumentsPending},
	{"INTERVIEW", models.LeadInterview},
	{"OFFER", models.LeadOffer},
	{"HIRED", models.LeadHired},
	{"REJECT", models.LeadLost},
	{"QUALIF", models.LeadQualified},
	{"CONTACT", models.LeadContacted},
	{"NEW", models.LeadNew},
}

func MapLeadStatus(value string) string {
	return mapByKeyword(value, leadStatusRules, models.LeadNew)
}

var leadPriorityRules = []enumRule{
	{"HOT", models.LeadHot},
	{"HIGH", models.LeadHot},
	{"WARM", models.LeadWarm},
	{"MED", models.LeadWarm},
	{"COLD", models.LeadCold},
	{"LOW", models.LeadCold},
}

func MapLeadPriority(value string) string {
	return mapByKeyword(value, leadPriorityRules, models.LeadWarm)
}

var leadSourceRules = []enumRule{
	{"FACEBOOK", models.LeadSourceFacebook},
	{"FB", models.LeadSourceFacebook},
	{"INSTAGRAM", models.LeadSourceFacebook},
	{"REFER", models.LeadSourceReferral},
	{"WORD OF MOUTH", models.LeadSourceReferral},
	{"WALK", models.LeadSourceDirect},
	{"DIRECT", models.LeadSourceDirect},
	{"PHONE", models.LeadSourceDirect},
	{"WEB", models.LeadSourceWebsite},
	{"ONLINE", models.LeadSourceWebsite},
}

func MapLeadSource(value string) string {
	return mapByKeyword(value, leadSourceRules, models.LeadSourceOther)
}

// MapCdlClass reads the class letter off cells like "Class A" or
// "CDL-B". Anything without a trailing A, B, or C comes back empty.
func MapCdlClass(value string) string {
	v := strings.ToUpper(strings.TrimSpace(value))
	v = strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(v)
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return ""
	}
	switch last := fields[len(fields)-1]; last {
	case "A", "B", "C":
		return last
	}
	return ""
}
