package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, v := range Vendors() {
		c, ok := Lookup(v)
		require.True(t, ok, "vendor %s", v)
		assert.Equal(t, v, c.Vendor)
	}

	_, ok := Lookup("unknown")
	assert.False(t, ok)
}

func TestOffers(t *testing.T) {
	d, _ := Lookup(VendorDirect)
	p, _ := Lookup(VendorPartner)

	assert.True(t, d.Offers(CategoryMattress))
	assert.False(t, p.Offers(CategoryMattress))
	assert.True(t, p.Offers(CategoryAircon))

	var nilCatalog *Catalog
	assert.False(t, nilCatalog.Offers(CategoryAircon))
}

func TestOfficeBracketsDecrease(t *testing.T) {
	d, _ := Lookup(VendorDirect)
	require.Len(t, d.OfficeBrackets, 8)

	for i := 1; i < len(d.OfficeBrackets); i++ {
		prev, cur := d.OfficeBrackets[i-1], d.OfficeBrackets[i]
		assert.Greater(t, cur.Min, prev.Min)
		assert.Less(t, cur.Rate, prev.Rate)
	}
	assert.Equal(t, d.OfficeFlatBelow, d.OfficeBrackets[0].Min)
}

func TestBundlesImplyKnownTypes(t *testing.T) {
	for _, v := range Vendors() {
		c, _ := Lookup(v)
		for name, b := range c.Bundles {
			_, ok := c.EquipmentTypes[b.Type]
			assert.True(t, ok, "%s bundle %s implies unpriced type %s", v, name, b.Type)
		}
	}
}

func TestSummarySorted(t *testing.T) {
	d, _ := Lookup(VendorDirect)
	s := d.Summary()

	assert.Equal(t, VendorDirect, s.Vendor)
	assert.Len(t, s.Categories, 13)
	assert.True(t, sort.SliceIsSorted(s.EquipmentTypes, func(i, j int) bool {
		return s.EquipmentTypes[i] < s.EquipmentTypes[j]
	}))
	assert.Empty(t, s.WaterBundles)

	p, _ := Lookup(VendorPartner)
	assert.Equal(t, []WaterBundle{WaterSet3, WaterSet4, WaterSet5}, p.Summary().WaterBundles)
}
