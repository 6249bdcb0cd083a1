package pricing

import (
	"cleaning-quote/internal/catalog"
	"cleaning-quote/internal/order"
)

func priceDisinfection(o *order.Order, c *catalog.Catalog, t *tally) {
	d := o.Disinfection

	switch d.Target {
	case "":
		return
	case catalog.TargetHouse:
		if d.HouseSize == "" {
			return
		}
		if price, ok := c.DisinfectionHouse[d.HouseSize]; ok {
			t.add(price)
		} else {
			t.miss("disinfection.houseSize", d.HouseSize)
		}
	case catalog.TargetOffice:
		t.add(officeRate(c, d.OfficeArea))
	case catalog.TargetVehicle:
		if d.VehicleType == "" {
			return
		}
		if price, ok := c.Vehicles[d.VehicleType]; ok {
			t.add(price * d.VehicleCount)
		} else {
			t.miss("disinfection.vehicleType", d.VehicleType)
		}
	default:
		t.miss("disinfection.target", d.Target)
	}
}

// officeRate prices the whole area at the single bracket it falls into.
// Areas below the first breakpoint pay the flat fee.
func officeRate(c *catalog.Catalog, area float64) int {
	if area <= 0 {
		return 0
	}
	if area < c.OfficeFlatBelow || len(c.OfficeBrackets) == 0 {
		return c.OfficeFlatFee
	}

	rate := 0
	for _, b := range c.OfficeBrackets {
		if area < b.Min {
			break
		}
		rate = b.Rate
	}
	return perArea(rate, area)
}
