package pricing

import (
	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
)

// priceMattress adds the size×side base price and each add-on on its own.
func priceMattress(o *order.Order, c *catalog.Catalog, t *tally) {
	m := o.Mattress

	if m.Size != "" && m.Side != "" {
		if price, ok := lookupSizeSide(c.Mattress, m.Size, m.Side); ok {
			t.add(price)
		} else {
			t.miss("mattress.size", string(m.Size)+"/"+string(m.Side))
		}
	}

	if m.StainRemoval {
		t.add(m.StainCount * c.StainRemovalUnit)
	}
	t.fee("mattress.petDeodorize", m.PetDeodorize, c.PetDeodorizeFee)

	if m.AntiOdorCoat && m.Size != "" && m.Side != "" {
		if price, ok := lookupSizeSide(c.MattressCoating, m.Size, m.Side); ok {
			t.add(price)
		} else {
			t.miss("mattress.antiOdorCoat", string(m.Size)+"/"+string(m.Side))
		}
	}
}

func lookupSizeSide(table map[catalog.MattressSize]map[catalog.MattressSide]int, size catalog.MattressSize, side catalog.MattressSide) (int, bool) {
	bySide, ok := table[size]
	if !ok {
		return 0, false
	}
	price, ok := bySide[side]
	return price, ok
}
