package pricing

import (
	"fmt"
	"math"

	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
)

// rule prices one category of an order into the tally.
type rule func(o *order.Order, c *catalog.Catalog, t *tally)

var directRules = map[catalog.Category]rule{
	catalog.CategoryAircon:       priceLines,
	catalog.CategoryDrainage:     priceDrainage,
	catalog.CategoryBathroom:     priceBathroom,
	catalog.CategoryKitchen:      priceKitchen,
	catalog.CategoryToilet:       priceToilet,
	catalog.CategoryFloor:        priceFloor,
	catalog.CategoryCarpet:       priceCarpet,
	catalog.CategorySurfaces:     priceSurfaces,
	catalog.CategoryVacant:       priceVacant,
	catalog.CategoryMattress:     priceMattress,
	catalog.CategoryDisinfection: priceDisinfection,
	catalog.CategoryWaterArea:    priceWaterPoints,
	catalog.CategoryWasher:       priceWasher,
}

var partnerRules = map[catalog.Category]rule{
	catalog.CategoryAircon:    priceLines,
	catalog.CategoryBathroom:  priceBathroom,
	catalog.CategoryKitchen:   priceKitchen,
	catalog.CategoryToilet:    priceToilet,
	catalog.CategoryWaterArea: priceWaterBundle,
}

// Compute prices o against catalog c. It never fails: selections the
// catalog does not know contribute zero and are listed in Unmatched.
func Compute(o *order.Order, c *catalog.Catalog) order.Price {
	t := &tally{}
	if c == nil {
		t.miss(order.PathVendor, o.Vendor)
		return t.price(0, 0)
	}

	rules := directRules
	if c.Vendor == catalog.VendorPartner {
		rules = partnerRules
	}

	for _, cat := range o.Categories {
		price, ok := rules[cat]
		if !ok || !c.Offers(cat) {
			t.miss(order.PathCategories, cat)
			continue
		}
		price(o, c, t)
	}

	t.add(o.ExtraCharge)

	if !c.StackDiscounts {
		return t.price(t.sum, t.saved)
	}
	return stackDiscounts(o, c, t)
}

// stackDiscounts applies the unit-count volume discount and then the
// threshold discount. Above the threshold only the threshold discount is
// shown, computed on the already volume-discounted total.
func stackDiscounts(o *order.Order, c *catalog.Catalog, t *tally) order.Price {
	total := t.sum

	discount := 0
	if o.Active(catalog.CategoryAircon) {
		discount = min(c.VolumeDiscounts[o.NumberOfUnits], total)
		total -= discount
	}

	if c.ThresholdTotal > 0 && total >= c.ThresholdTotal {
		discount = total * c.ThresholdRate / 100
		total -= discount
	}

	return t.price(total, discount)
}

type tally struct {
	sum       int
	saved     int
	notices   []order.Notice
	unmatched []string
}

func (t *tally) add(yen int) {
	if yen > 0 {
		t.sum += yen
	}
}

// addFlat adds a bundle price and records the display saving against Was.
func (t *tally) addFlat(p catalog.FlatPrice) {
	t.add(p.Now)
	if p.Was > p.Now {
		t.saved += p.Was - p.Now
	}
}

// fee adds price when selected, reporting a selection the vendor does not price.
func (t *tally) fee(field string, selected bool, price int) {
	if !selected {
		return
	}
	if price <= 0 {
		t.miss(field, true)
		return
	}
	t.add(price)
}

func (t *tally) miss(field string, value any) {
	t.unmatched = append(t.unmatched, fmt.Sprintf("%s=%v", field, value))
}

func (t *tally) notice(field, message string) {
	t.notices = append(t.notices, order.Notice{Field: field, Message: message})
}

func (t *tally) price(total, discount int) order.Price {
	return order.Price{
		Total:     total,
		Discount:  discount,
		Notices:   t.notices,
		Unmatched: t.unmatched,
	}
}

// perArea multiplies a unit price by an area, truncating to whole yen.
func perArea(rate int, area float64) int {
	if rate <= 0 || area <= 0 {
		return 0
	}
	return int(math.Floor(float64(rate) * area))
}
