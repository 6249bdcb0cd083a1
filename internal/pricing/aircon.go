package pricing

import (
	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
)

func priceLines(o *order.Order, c *catalog.Catalog, t *tally) {
	for i := range o.Lines {
		priceLine(&o.Lines[i], c, t)
	}
}

// priceLine adds one unit. A complete bundle replaces the standalone type
// and add-on prices; the extra option is charged either way.
func priceLine(l *order.EquipmentLine, c *catalog.Catalog, t *tally) {
	field := func(name string) string { return order.LinePath(l.ID, name) }

	if l.Bundle != "" {
		if spec, ok := c.BundleFor(l.Bundle); ok {
			t.addFlat(catalog.FlatPrice{Now: spec.Price, Was: spec.Was})
		} else {
			t.miss(field("bundle"), l.Bundle)
		}
	} else {
		if l.Type != "" {
			if price, ok := c.EquipmentTypes[l.Type]; ok {
				t.add(price)
			} else {
				t.miss(field("type"), l.Type)
			}
		}
		for _, a := range l.AddOns {
			if price, ok := c.AddOns[a]; ok {
				t.add(price)
			} else {
				t.miss(field("addOns"), a)
			}
		}
	}

	if l.Extra != catalog.ExtraNone {
		if price, ok := c.ExtraOptions[l.Extra]; ok {
			t.add(price)
		} else {
			t.miss(field("extra"), l.Extra)
		}
	}
}
