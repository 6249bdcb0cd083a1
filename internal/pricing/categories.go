package pricing

import (
	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
)

// priceDrainage looks up building type by number of work locations. The
// largest tier covers every count above it.
func priceDrainage(o *order.Order, c *catalog.Catalog, t *tally) {
	d := o.Drainage
	n := len(d.Locations)
	if d.BuildingType == "" || n == 0 {
		return
	}

	tiers, ok := c.Drainage[d.BuildingType]
	if !ok {
		t.miss("drainage.buildingType", d.BuildingType)
		return
	}

	top := 0
	for count := range tiers {
		top = max(top, count)
	}
	t.add(tiers[min(n, top)])
}

func priceBathroom(o *order.Order, c *catalog.Catalog, t *tally) {
	b := o.Bathroom
	if b.Plan != "" {
		if p, ok := c.BathroomPlans[b.Plan]; ok {
			t.addFlat(p)
		} else {
			t.miss("bathroom.plan", b.Plan)
		}
	}
	t.fee("bathroom.apron", b.Apron, c.BathroomApron)
	t.fee("bathroom.reheatPipe", b.ReheatPipe, c.BathroomReheat)
}

func priceKitchen(o *order.Order, c *catalog.Catalog, t *tally) {
	k := o.Kitchen
	if k.Plan != "" {
		if p, ok := c.KitchenPlans[k.Plan]; ok {
			t.addFlat(p)
		} else {
			t.miss("kitchen.plan", k.Plan)
		}
	}
	t.fee("kitchen.rangeHood", k.RangeHood, c.RangeHood)
}

func priceToilet(o *order.Order, c *catalog.Catalog, t *tally) {
	n := o.Toilet.Count
	if n == 0 {
		return
	}
	if p, ok := c.Toilet[n]; ok {
		t.addFlat(p)
		return
	}
	t.miss("toilet.count", n)
}

func priceFloor(o *order.Order, c *catalog.Catalog, t *tally) {
	f := o.Floor
	if f.Method == "" {
		return
	}
	rate, ok := c.FloorRates[f.Method]
	if !ok {
		t.miss("floor.method", f.Method)
		return
	}
	t.add(perArea(rate, f.Area))
}

func priceCarpet(o *order.Order, c *catalog.Catalog, t *tally) {
	t.add(perArea(c.CarpetRate, o.Carpet.Area))
}

func priceSurfaces(o *order.Order, c *catalog.Catalog, t *tally) {
	s := o.Surfaces
	t.add(c.WindowRate * s.Windows)
	t.add(perArea(c.VerandaRate, s.VerandaArea))
	t.fee("surfaces.entrance", s.Entrance, c.EntranceFee)
}

// priceVacant charges the layout price plus a per-m² overage above the
// threshold area.
func priceVacant(o *order.Order, c *catalog.Catalog, t *tally) {
	v := o.Vacant
	if v.Layout != "" {
		if price, ok := c.VacantLayouts[v.Layout]; ok {
			t.add(price)
		} else {
			t.miss("vacant.layout", v.Layout)
		}
	}
	if v.Area > c.VacantThreshold {
		t.add(perArea(c.VacantOverageRate, v.Area-c.VacantThreshold))
	}
}

func priceWasher(o *order.Order, c *catalog.Catalog, t *tally) {
	w := o.Washer
	if w.Type == "" {
		return
	}
	byDrying, ok := c.Washer[w.Type]
	if !ok {
		t.miss("washer.type", w.Type)
		return
	}
	t.add(byDrying[w.Drying.Bool()])
}
