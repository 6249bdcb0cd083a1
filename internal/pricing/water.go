package pricing

import (
	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
)

const (
	waterField = "waterArea.rooms"

	msgWaterTooFew  = "水回りセットは2ポイント以上で適用されます。お部屋を追加するか、個別メニューをお選びください。"
	msgWaterTooMany = "4.5ポイント以上の水回りセットは個別にお見積りいたします。"
)

// WaterPoints sums the points of the selected rooms.
func WaterPoints(c *catalog.Catalog, rooms []catalog.WaterRoom) (points float64, unknown []catalog.WaterRoom) {
	for _, r := range rooms {
		p, ok := c.WaterPoints[r]
		if !ok {
			unknown = append(unknown, r)
			continue
		}
		points += p
	}
	return points, unknown
}

// waterBucket returns the bucket price for points, false when no bucket
// covers them.
func waterBucket(c *catalog.Catalog, points float64) (int, bool) {
	for _, b := range c.WaterBuckets {
		if points >= b.Min && points < b.Max {
			return b.Price, true
		}
	}
	return 0, false
}

func priceWaterPoints(o *order.Order, c *catalog.Catalog, t *tally) {
	w := o.WaterArea
	if w.Bundle != "" {
		t.miss("waterArea.bundle", w.Bundle)
	}

	points, unknown := WaterPoints(c, w.Rooms)
	for _, r := range unknown {
		t.miss(waterField, r)
	}

	price, ok := waterBucket(c, points)
	if ok {
		t.add(price)
		return
	}

	msg := msgWaterTooFew
	if len(c.WaterBuckets) > 0 && points >= c.WaterBuckets[len(c.WaterBuckets)-1].Max {
		msg = msgWaterTooMany
	}
	t.notice(waterField, msg)
}

// priceWaterBundle is the flat-bundle variant: the customer picks a set
// and rooms are informational.
func priceWaterBundle(o *order.Order, c *catalog.Catalog, t *tally) {
	w := o.WaterArea
	if w.Bundle == "" {
		return
	}
	if p, ok := c.WaterBundles[w.Bundle]; ok {
		t.addFlat(p)
		return
	}
	t.miss("waterArea.bundle", w.Bundle)
}
