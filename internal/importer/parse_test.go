package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFirst(t *testing.T) {
	first, multi := SplitFirst("T-101")
	assert.Equal(t, "T-101", first)
	assert.False(t, multi)

	first, multi = SplitFirst("T-101, T-102")
	assert.Equal(t, "T-101", first)
	assert.True(t, multi)

	first, multi = SplitFirst("alpha; beta | gamma")
	assert.Equal(t, "alpha", first)
	assert.True(t, multi)

	first, multi = SplitFirst(" , , ")
	assert.Equal(t, "", first)
	assert.False(t, multi)
}

func TestParseFloat(t *testing.T) {
	assert.Equal(t, 1250.5, ParseFloat("1,250.50"))
	assert.Equal(t, 1250.5, ParseFloat("$1,250.50"))
	assert.Equal(t, 0.65, ParseFloat("0.65 per mile"))
	assert.Equal(t, -42.0, ParseFloat("-42"))
	assert.Equal(t, 0.0, ParseFloat("n/a"))
	assert.Equal(t, 0.0, ParseFloat(""))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 2019, ParseInt("2019"))
	assert.Equal(t, 145000, ParseInt("145,000 mi"))
	assert.Equal(t, 0, ParseInt("unknown"))
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("John Smith")
	assert.Equal(t, "John", first)
	assert.Equal(t, "Smith", last)

	first, last = SplitName("Mary Anne van der Berg")
	assert.Equal(t, "Mary", first)
	assert.Equal(t, "Anne van der Berg", last)

	first, last = SplitName("Cher")
	assert.Equal(t, "Cher", first)
	assert.Equal(t, "", last)

	first, last = SplitName("   ")
	assert.Equal(t, "", first)
	assert.Equal(t, "", last)
}

func TestParseAddress(t *testing.T) {
	a := ParseAddress("123 Main St, Dallas, TX 75201")
	assert.Equal(t, "123 Main St", a.Street)
	assert.Equal(t, "Dallas", a.City)
	assert.Equal(t, "TX", a.State)
	assert.Equal(t, "75201", a.Zip)

	a = ParseAddress("456 Oak Ave Suite 2, Chicago, IL 60601-4412")
	assert.Equal(t, "456 Oak Ave Suite 2", a.Street)
	assert.Equal(t, "Chicago", a.City)
	assert.Equal(t, "IL", a.State)
	assert.Equal(t, "60601", a.Zip)

	a = ParseAddress("Memphis, TN")
	assert.Equal(t, "", a.Street)
	assert.Equal(t, "Memphis", a.City)
	assert.Equal(t, "TN", a.State)
	assert.Equal(t, "", a.Zip)

	a = ParseAddress("Phoenix")
	assert.Equal(t, "Phoenix", a.City)
	assert.Equal(t, "", a.State)

	a = ParseAddress("")
	assert.Equal(t, Address{}, a)
}

func TestJoinTags(t *testing.T) {
	assert.Equal(t, "vip,net30,reefer", JoinTags("vip; net30, reefer"))
	assert.Equal(t, "", JoinTags("  "))
	assert.Equal(t, "single", JoinTags("single"))
}
