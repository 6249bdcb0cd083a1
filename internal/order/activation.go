package order

import "cleaning-quote/internal/catalog"

// Activate clears the sub-record of every category present in prev but
// absent from next. Newly activated categories are left as they are.
func (o *Order) Activate(prev, next []catalog.Category) {
	keep := make(map[catalog.Category]bool, len(next))
	for _, c := range next {
		keep[c] = true
	}

	for _, c := range prev {
		if keep[c] {
			continue
		}
		o.reset(c)
	}
}

// reset puts the sub-record of category c back to its zero value.
func (o *Order) reset(c catalog.Category) {
	switch c {
	case catalog.CategoryAircon:
		o.resetLines()
	case catalog.CategoryDrainage:
		o.Drainage = Drainage{}
	case catalog.CategoryBathroom:
		o.Bathroom = Bathroom{}
	case catalog.CategoryKitchen:
		o.Kitchen = Kitchen{}
	case catalog.CategoryToilet:
		o.Toilet = Toilet{}
	case catalog.CategoryFloor:
		o.Floor = Floor{}
	case catalog.CategoryCarpet:
		o.Carpet = Carpet{}
	case catalog.CategorySurfaces:
		o.Surfaces = Surfaces{}
	case catalog.CategoryVacant:
		o.Vacant = Vacant{}
	case catalog.CategoryMattress:
		o.Mattress = Mattress{}
	case catalog.CategoryDisinfection:
		o.Disinfection = Disinfection{}
	case catalog.CategoryWaterArea:
		o.WaterArea = WaterArea{}
	case catalog.CategoryWasher:
		o.Washer = Washer{}
	}
}
