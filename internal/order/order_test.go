package order

import (
	"errors"
	"testing"

	"cleaning-quote/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder() Order {
	return New("q-1", catalog.VendorDirect, ModeCustomer)
}

func TestNew(t *testing.T) {
	o := newTestOrder()

	assert.Equal(t, 1, o.NumberOfUnits)
	require.Len(t, o.Lines, 1)
	assert.NotEmpty(t, o.Lines[0].ID)
	assert.False(t, o.CreatedAt.IsZero())
}

func TestSetUnits(t *testing.T) {
	o := newTestOrder()
	first := o.Lines[0].ID

	o.SetUnits(3)
	assert.Equal(t, 3, o.NumberOfUnits)
	assert.Len(t, o.Lines, 3)
	assert.Equal(t, first, o.Lines[0].ID)
	assert.NotEqual(t, o.Lines[1].ID, o.Lines[2].ID)

	o.SetUnits(2)
	assert.Equal(t, 2, o.NumberOfUnits)
	assert.Len(t, o.Lines, 2)
	assert.Equal(t, first, o.Lines[0].ID)

	o.SetUnits(0)
	assert.Equal(t, 1, o.NumberOfUnits)
	assert.Len(t, o.Lines, 1)
}

func TestSetUnitsClamped(t *testing.T) {
	o := New("q", catalog.VendorDirect, ModeCustomer)

	o.SetUnits(MaxUnits + 1)
	assert.Len(t, o.Lines, MaxUnits)
	assert.Equal(t, MaxUnits, o.NumberOfUnits)

	o.SetUnits(1 << 30)
	assert.Len(t, o.Lines, MaxUnits)
}

func TestRemoveLine(t *testing.T) {
	o := newTestOrder()
	o.SetUnits(3)
	keep := []string{o.Lines[0].ID, o.Lines[2].ID}

	require.NoError(t, o.RemoveLine(o.Lines[1].ID))
	assert.Equal(t, 2, o.NumberOfUnits)
	assert.Equal(t, keep, []string{o.Lines[0].ID, o.Lines[1].ID})

	assert.ErrorIs(t, o.RemoveLine("missing"), ErrUnknownLine)

	o.SetUnits(1)
	last := o.Lines[0].ID
	require.NoError(t, o.RemoveLine(last))
	assert.Equal(t, 1, o.NumberOfUnits)
	require.Len(t, o.Lines, 1)
	assert.NotEqual(t, last, o.Lines[0].ID)
}

func TestActivate(t *testing.T) {
	t.Run("deactivation clears sub-records", func(t *testing.T) {
		o := newTestOrder()
		o.Categories = []catalog.Category{catalog.CategoryDrainage, catalog.CategoryAircon}
		o.Drainage = Drainage{
			BuildingType: catalog.BuildingDetached,
			Clogged:      true,
			Locations:    []catalog.DrainLocation{catalog.DrainKitchen},
		}
		o.SetUnits(4)
		o.Lines[0].Type = catalog.TypeWallGeneral

		prev := o.Categories
		o.Categories = nil
		o.Activate(prev, o.Categories)

		assert.Equal(t, Drainage{}, o.Drainage)
		assert.Equal(t, 1, o.NumberOfUnits)
		require.Len(t, o.Lines, 1)
		assert.Empty(t, o.Lines[0].Type)
	})

	t.Run("activation keeps values", func(t *testing.T) {
		o := newTestOrder()
		o.Mattress.Size = catalog.MattressKing

		o.Activate(nil, []catalog.Category{catalog.CategoryMattress})
		assert.Equal(t, catalog.MattressKing, o.Mattress.Size)
	})

	t.Run("idempotent without change", func(t *testing.T) {
		o := newTestOrder()
		o.Categories = []catalog.Category{catalog.CategoryKitchen}
		o.Kitchen.Plan = catalog.KitchenStandard

		before := o.Clone()
		o.Activate(o.Categories, o.Categories)
		o.Activate(o.Categories, o.Categories)
		assert.Equal(t, before, o)
	})

	t.Run("every category resets", func(t *testing.T) {
		d, _ := catalog.Lookup(catalog.VendorDirect)
		o := newTestOrder()
		o.Washer = Washer{Type: catalog.WasherDrum, Drying: TriYes}
		o.WaterArea.Rooms = []catalog.WaterRoom{catalog.RoomKitchen}
		o.Disinfection.OfficeArea = 300
		o.Surfaces.Windows = 4

		o.Activate(d.Categories, nil)
		assert.Equal(t, Washer{}, o.Washer)
		assert.Equal(t, WaterArea{}, o.WaterArea)
		assert.Equal(t, Disinfection{}, o.Disinfection)
		assert.Equal(t, Surfaces{}, o.Surfaces)
	})
}

func TestSet(t *testing.T) {
	o := newTestOrder()
	id := o.Lines[0].ID

	cases := []struct {
		path  string
		value any
		check func(t *testing.T, o *Order)
	}{
		{"customer.name", " 山田 太郎 ", func(t *testing.T, o *Order) { assert.Equal(t, "山田 太郎", o.Customer.Name) }},
		{PathPostalCode, "１２３-４５６７", func(t *testing.T, o *Order) { assert.Equal(t, "1234567", o.Customer.PostalCode) }},
		{PathCategories, []any{"aircon", "drainage", "aircon", ""}, func(t *testing.T, o *Order) {
			assert.Equal(t, []catalog.Category{catalog.CategoryAircon, catalog.CategoryDrainage}, o.Categories)
		}},
		{PathUnits, 2.0, func(t *testing.T, o *Order) { assert.Len(t, o.Lines, 2) }},
		{PathUnits, 2_000_000_000.0, func(t *testing.T, o *Order) {
			assert.Len(t, o.Lines, MaxUnits)
			assert.Equal(t, MaxUnits, o.NumberOfUnits)
		}},
		{"floor.area", "12.5", func(t *testing.T, o *Order) { assert.Equal(t, 12.5, o.Floor.Area) }},
		{"carpet.area", "abc", func(t *testing.T, o *Order) { assert.Zero(t, o.Carpet.Area) }},
		{"toilet.count", -2.0, func(t *testing.T, o *Order) { assert.Zero(t, o.Toilet.Count) }},
		{"extraCharge", "3,300", func(t *testing.T, o *Order) { assert.Equal(t, 3300, o.ExtraCharge) }},
		{"washer.drying", "no", func(t *testing.T, o *Order) { assert.Equal(t, TriNo, o.Washer.Drying) }},
		{"acknowledged", "on", func(t *testing.T, o *Order) { assert.True(t, o.Acknowledged) }},
		{LinePath(id, "type"), "wall_general", func(t *testing.T, o *Order) {
			assert.Equal(t, catalog.TypeWallGeneral, o.Lines[0].Type)
		}},
		{LinePath(id, "addOns"), []string{"anti_mold_coat"}, func(t *testing.T, o *Order) {
			assert.Equal(t, []catalog.AddOn{catalog.AddOnAntiMoldCoat}, o.Lines[0].AddOns)
		}},
		{LinePath(id, "cleaningFeature"), true, func(t *testing.T, o *Order) {
			assert.Equal(t, TriYes, o.Lines[0].CleaningFeature)
		}},
		{SlotPath(2, "date"), "2026-11-01", func(t *testing.T, o *Order) { assert.Equal(t, "2026-11-01", o.Slots[1].Date) }},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			require.NoError(t, o.Set(tc.path, tc.value))
			tc.check(t, &o)
		})
	}
}

func TestSetErrors(t *testing.T) {
	o := newTestOrder()

	assert.ErrorIs(t, o.Set("total", 100), ErrUnknownField)
	assert.ErrorIs(t, o.Set("price.discount", 100), ErrUnknownField)
	assert.ErrorIs(t, o.Set(SlotPath(4, "date"), "x"), ErrUnknownField)
	assert.ErrorIs(t, o.Set("slots.1.availability", "x"), ErrUnknownField)
	assert.ErrorIs(t, o.Set(LinePath("nope", "type"), "x"), ErrUnknownLine)
	assert.ErrorIs(t, o.Set(LinePath(o.Lines[0].ID, "colour"), "x"), ErrUnknownField)
	assert.ErrorIs(t, o.Set(LinePath(o.Lines[0].ID, ""), "x"), ErrUnknownField)
}

func TestSetSlotClearsAvailability(t *testing.T) {
	o := newTestOrder()
	o.Slots[0] = PreferredSlot{Date: "2026-11-01", Time: "am", Availability: "空きあり"}

	require.NoError(t, o.Set(SlotPath(1, "time"), "pm"))
	assert.Empty(t, o.Slots[0].Availability)
	assert.True(t, o.Slots[0].Filled())
}

func TestCloneIsDeep(t *testing.T) {
	o := newTestOrder()
	o.Categories = []catalog.Category{catalog.CategoryAircon}
	o.Lines[0].AddOns = []catalog.AddOn{catalog.AddOnDeodorize}
	o.Issue("address")

	c := o.Clone()
	c.Categories[0] = catalog.CategoryFloor
	c.Lines[0].AddOns[0] = catalog.AddOnDrainHose
	c.Issue("address")

	assert.Equal(t, catalog.CategoryAircon, o.Categories[0])
	assert.Equal(t, catalog.AddOnDeodorize, o.Lines[0].AddOns[0])
	assert.Equal(t, uint64(1), o.Sequences["address"])
}

func TestSequences(t *testing.T) {
	o := newTestOrder()

	first := o.Issue("address")
	second := o.Issue("address")

	assert.False(t, o.Latest("address", first))
	assert.True(t, o.Latest("address", second))
	assert.False(t, o.Latest("slot.1", 0))
}

func TestParsePaths(t *testing.T) {
	id, field, ok := ParseLinePath("aircon.lines.abc-1.maker")
	assert.True(t, ok)
	assert.Equal(t, "abc-1", id)
	assert.Equal(t, "maker", field)

	_, _, ok = ParseLinePath("aircon.units")
	assert.False(t, ok)

	n, field, ok := ParseSlotPath("slots.3.time")
	assert.True(t, ok)
	assert.Equal(t, 3, n)
	assert.Equal(t, "time", field)

	_, _, ok = ParseSlotPath("slots.0.time")
	assert.False(t, ok)
}

func TestErrorsWrap(t *testing.T) {
	o := newTestOrder()
	err := o.Set("nope", 1)
	assert.True(t, errors.Is(err, ErrUnknownField))
	assert.Contains(t, err.Error(), "nope")
}
