package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestIndex() *ReferenceIndex {
	ix := NewReferenceIndex()
	ix.Add(RefCustomer, "Acme Trucking LLC", "cust-acme")
	ix.Add(RefCustomer, "Midwest Logistics", "cust-midwest")
	ix.Add(RefCustomer, "Fleet Services III", "cust-fleet3")
	ix.Add(RefTruck, "T-101", "truck-101")
	return ix
}

func TestResolveExactStages(t *testing.T) {
	ix := newTestIndex()

	id, ok := ix.Resolve(RefCustomer, "Acme Trucking LLC", 0.7, 0.8)
	assert.True(t, ok)
	assert.Equal(t, "cust-acme", id)

	id, ok = ix.Resolve(RefCustomer, "ACME TRUCKING LLC", 0.7, 0.8)
	assert.True(t, ok)
	assert.Equal(t, "cust-acme", id)

	// Punctuation and corporate suffix are ignored in the normalized stage.
	id, ok = ix.Resolve(RefCustomer, "Acme Trucking, Inc.", 0.7, 0.8)
	assert.True(t, ok)
	assert.Equal(t, "cust-acme", id)
}

func TestResolveKnownID(t *testing.T) {
	ix := NewReferenceIndex()
	ix.Add(RefCustomer, "Acme", "3f2e8b1a-9c4d-4e5f-8a6b-7c8d9e0f1a2b")

	id, ok := ix.Resolve(RefCustomer, "3f2e8b1a-9c4d-4e5f-8a6b-7c8d9e0f1a2b", 0.7, 0.8)
	assert.True(t, ok)
	assert.Equal(t, "3f2e8b1a-9c4d-4e5f-8a6b-7c8d9e0f1a2b", id)

	// A UUID the index never saw does not match.
	_, ok = ix.Resolve(RefCustomer, "00000000-0000-4000-8000-000000000000", 0.7, 0.8)
	assert.False(t, ok)
}

func TestResolveRomanNumerals(t *testing.T) {
	ix := newTestIndex()
	id, ok := ix.Resolve(RefCustomer, "Fleet Services 3", 0.7, 0.8)
	assert.True(t, ok)
	assert.Equal(t, "cust-fleet3", id)
}

func TestResolveContainment(t *testing.T) {
	ix := newTestIndex()
	// "midwest logistics" is fully contained in the query at a ratio
	// above the containment threshold.
	id, ok := ix.Resolve(RefCustomer, "Midwest Logistics Group", 0.7, 0.8)
	assert.True(t, ok)
	assert.Equal(t, "cust-midwest", id)
}

func TestResolveWordOverlapWithTypo(t *testing.T) {
	ix := newTestIndex()
	// "Truckng" is one edit from "trucking"; both tokens match.
	id, ok := ix.Resolve(RefCustomer, "Acme Truckng", 0.7, 0.8)
	assert.True(t, ok)
	assert.Equal(t, "cust-acme", id)
}

func TestResolveMiss(t *testing.T) {
	ix := newTestIndex()
	_, ok := ix.Resolve(RefCustomer, "Pacific Northwest Freight", 0.7, 0.8)
	assert.False(t, ok)
	_, ok = ix.Resolve(RefCustomer, "", 0.7, 0.8)
	assert.False(t, ok)
	// Kinds are isolated from each other.
	_, ok = ix.Resolve(RefTrailer, "T-101", 0.7, 0.8)
	assert.False(t, ok)
}

func TestRunContextResolveRefValueResolutions(t *testing.T) {
	rc := NewRunContext(Request{
		EntityType: EntityLoads,
		ValueResolutions: map[string]map[string]string{
			"customer": {"Acme?": "cust-manual"},
		},
	})

	id, ok := rc.ResolveRef(RefCustomer, 4, "customer", "Acme?")
	assert.True(t, ok)
	assert.Equal(t, "cust-manual", id)
	assert.Empty(t, rc.Unresolved)
}

func TestRunContextResolveRefMultiValue(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityLoads})
	rc.Refs.Add(RefTruck, "T-101", "truck-101")

	id, ok := rc.ResolveRef(RefTruck, 7, "truck", "T-101, T-102")
	assert.True(t, ok)
	assert.Equal(t, "truck-101", id)
	assert.Len(t, rc.Warnings, 1)
	assert.Equal(t, 7, rc.Warnings[0].Row)
	assert.Contains(t, rc.Warnings[0].Message, "T-101")
}

func TestRunContextResolveRefRecordsUnresolved(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityLoads})

	_, ok := rc.ResolveRef(RefCustomer, 9, "customer", "Nobody Knows Inc")
	assert.False(t, ok)
	assert.Len(t, rc.Unresolved, 1)
	assert.Equal(t, UnresolvedValue{Row: 9, Field: "customer", Value: "Nobody Knows Inc"}, rc.Unresolved[0])
}

func TestResolveCarrierFallsBackToDefault(t *testing.T) {
	rc := NewRunContext(Request{EntityType: EntityTrucks, DefaultCarrierID: "carrier-default"})
	rc.Refs.Add(RefCarrier, "MC 123456", "carrier-1")

	assert.Equal(t, "carrier-1", rc.ResolveCarrier(1, "carrier", "MC 123456"))
	assert.Equal(t, "carrier-default", rc.ResolveCarrier(2, "carrier", ""))
	assert.Equal(t, "carrier-default", rc.ResolveCarrier(3, "carrier", "Unknown Carrier Name"))
}
