package quote

import (
	"testing"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startOrder() order.Order {
	o := order.New("q", catalog.VendorDirect, order.ModeCustomer)
	reprice(&o)
	return o
}

func mustApply(t *testing.T, o order.Order, path string, value any) order.Order {
	t.Helper()
	next, err := ApplyMutation(o, path, value)
	require.NoError(t, err)
	return next
}

func TestApplyMutation_EndToEnd(t *testing.T) {
	o := startOrder()
	o = mustApply(t, o, order.PathCategories, []string{"aircon"})
	id := o.Lines[0].ID
	o = mustApply(t, o, order.LinePath(id, "type"), "wall_general")
	o = mustApply(t, o, order.LinePath(id, "addOns"), []string{"anti_mold_coat"})

	assert.Equal(t, 12730, o.Price.Total)
	assert.Equal(t, 0, o.Price.Discount)
	assert.Equal(t, 3, o.Revision)

	o = mustApply(t, o, order.PathUnits, 2)
	second := o.Lines[1].ID
	o = mustApply(t, o, order.LinePath(second, "type"), "wall_general")
	o = mustApply(t, o, order.LinePath(second, "addOns"), "anti_mold_coat")

	assert.Equal(t, 21114, o.Price.Total)
	assert.Equal(t, 2346, o.Price.Discount)
	assert.Equal(t, o.NumberOfUnits, len(o.Lines))
}

func TestApplyMutation_InputUntouched(t *testing.T) {
	o := startOrder()
	before := o.Clone()

	_ = mustApply(t, o, order.PathCategories, []string{"aircon", "toilet"})
	assert.Equal(t, before, o)
}

func TestApplyMutation_UnknownField(t *testing.T) {
	o := startOrder()

	next, err := ApplyMutation(o, "aircon.colour", "red")
	require.ErrorIs(t, err, order.ErrUnknownField)
	assert.Equal(t, o, next)

	_, err = ApplyMutation(o, order.LinePath("missing", "type"), "wall_general")
	require.ErrorIs(t, err, order.ErrUnknownLine)
}

func TestApplyMutation_CategoryClearing(t *testing.T) {
	o := startOrder()
	o = mustApply(t, o, order.PathCategories, []string{"drainage", "aircon"})
	o = mustApply(t, o, "drainage.buildingType", "detached")
	o = mustApply(t, o, "drainage.clogged", true)
	o = mustApply(t, o, "drainage.locations", []string{"kitchen", "toilet"})
	o = mustApply(t, o, order.PathUnits, 3)
	require.Positive(t, o.Price.Total)

	o = mustApply(t, o, order.PathCategories, []string{"aircon"})
	assert.Equal(t, order.Drainage{}, o.Drainage)
	assert.Equal(t, 3, o.NumberOfUnits)

	o = mustApply(t, o, order.PathCategories, []string{"drainage"})
	assert.Equal(t, order.Drainage{}, o.Drainage)
	assert.Equal(t, 1, o.NumberOfUnits)
	assert.Len(t, o.Lines, 1)
	assert.Equal(t, 0, o.Price.Total)
}

func TestApplyMutation_PriceAlwaysDerived(t *testing.T) {
	o := startOrder()
	o = mustApply(t, o, order.PathCategories, []string{"toilet"})
	o = mustApply(t, o, "toilet.count", 2)

	o2 := o.Clone()
	reprice(&o2)
	assert.Equal(t, o2.Price, o.Price)
	assert.Equal(t, 13200, o.Price.Total)

	_, err := ApplyMutation(o, "price.total", 1)
	assert.ErrorIs(t, err, order.ErrUnknownField)
}

func TestApplyMutation_MalformedNumbers(t *testing.T) {
	o := startOrder()
	o = mustApply(t, o, order.PathCategories, []string{"floor"})
	o = mustApply(t, o, "floor.method", "wax")

	for _, v := range []any{"abc", -5, "-3.2", nil} {
		next := mustApply(t, o, "floor.area", v)
		assert.Zero(t, next.Floor.Area, "%v", v)
		assert.Equal(t, 0, next.Price.Total, "%v", v)
	}

	next := mustApply(t, o, "floor.area", "１０")
	assert.Equal(t, 3300, next.Price.Total)
}

func TestSwitchVendor(t *testing.T) {
	o := startOrder()
	o = mustApply(t, o, order.PathCategories, []string{"aircon", "mattress"})
	id := o.Lines[0].ID
	o = mustApply(t, o, order.LinePath(id, "type"), "ceiling_cassette")
	o = mustApply(t, o, "mattress.size", "single")
	o = mustApply(t, o, "mattress.side", "one")
	require.Equal(t, 24800+11000-3580, o.Price.Total)

	partner, err := SwitchVendor(o, catalog.VendorPartner)
	require.NoError(t, err)

	assert.Equal(t, catalog.VendorPartner, partner.Vendor)
	assert.Equal(t, catalog.TypeCeilingCassette, partner.Lines[0].Type)
	assert.Equal(t, catalog.MattressSingle, partner.Mattress.Size)
	assert.Equal(t, 0, partner.Price.Total)
	assert.ElementsMatch(t, []string{
		"categories=mattress",
		order.LinePath(id, "type") + "=ceiling_cassette",
	}, partner.Price.Unmatched)

	back, err := SwitchVendor(partner, catalog.VendorDirect)
	require.NoError(t, err)
	assert.Equal(t, o.Price, back.Price)

	_, err = SwitchVendor(o, "acme")
	assert.ErrorIs(t, err, ErrUnknownVendor)
}
