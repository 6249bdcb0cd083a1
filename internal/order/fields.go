package order

import (
	"fmt"
	"strconv"
	"strings"

	"cleaning-quote/internal/catalog"
)

const (
	PathVendor     = "vendor"
	PathCategories = "categories"
	PathUnits      = "aircon.units"
	PathPostalCode = "customer.postalCode"
	PathAddress    = "customer.address"

	linePrefix = "aircon.lines."
	slotPrefix = "slots."
)

// LinePath builds the path of a line field; an empty field addresses the
// line itself.
func LinePath(id, field string) string {
	if field == "" {
		return linePrefix + id
	}
	return linePrefix + id + "." + field
}

// SlotPath builds the path of a slot field, n counting from 1.
func SlotPath(n int, field string) string {
	return slotPrefix + strconv.Itoa(n) + "." + field
}

// ParseLinePath splits a line path into id and field.
func ParseLinePath(path string) (id, field string, ok bool) {
	rest, ok := strings.CutPrefix(path, linePrefix)
	if !ok || rest == "" {
		return "", "", false
	}
	id, field, _ = strings.Cut(rest, ".")
	return id, field, true
}

// ParseSlotPath splits a slot path into its 1-based index and field.
func ParseSlotPath(path string) (n int, field string, ok bool) {
	rest, ok := strings.CutPrefix(path, slotPrefix)
	if !ok {
		return 0, "", false
	}
	idx, field, found := strings.Cut(rest, ".")
	if !found {
		return 0, "", false
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 1 || n > MaxSlots {
		return 0, "", false
	}
	return n, field, true
}

type setter func(o *Order, v any)

var setters = map[string]setter{
	PathVendor: func(o *Order, v any) { o.Vendor = catalog.Vendor(toString(v)) },

	"customer.name":  func(o *Order, v any) { o.Customer.Name = toString(v) },
	PathPostalCode:   func(o *Order, v any) { o.Customer.PostalCode = Digits(toString(v)) },
	PathAddress:      func(o *Order, v any) { o.Customer.Address = toString(v) },
	"customer.phone": func(o *Order, v any) { o.Customer.Phone = toString(v) },
	"customer.email": func(o *Order, v any) { o.Customer.Email = toString(v) },

	PathCategories: func(o *Order, v any) { o.Categories = asEnum[catalog.Category](toStrings(v)) },
	PathUnits:      func(o *Order, v any) { o.SetUnits(toInt(v)) },

	"drainage.buildingType": func(o *Order, v any) { o.Drainage.BuildingType = catalog.BuildingType(toString(v)) },
	"drainage.clogged":      func(o *Order, v any) { o.Drainage.Clogged = toBool(v) },
	"drainage.locations": func(o *Order, v any) {
		o.Drainage.Locations = asEnum[catalog.DrainLocation](toStrings(v))
	},

	"bathroom.plan":       func(o *Order, v any) { o.Bathroom.Plan = catalog.BathroomPlan(toString(v)) },
	"bathroom.apron":      func(o *Order, v any) { o.Bathroom.Apron = toBool(v) },
	"bathroom.reheatPipe": func(o *Order, v any) { o.Bathroom.ReheatPipe = toBool(v) },

	"kitchen.plan":      func(o *Order, v any) { o.Kitchen.Plan = catalog.KitchenPlan(toString(v)) },
	"kitchen.rangeHood": func(o *Order, v any) { o.Kitchen.RangeHood = toBool(v) },

	"toilet.count": func(o *Order, v any) { o.Toilet.Count = toInt(v) },

	"floor.method": func(o *Order, v any) { o.Floor.Method = catalog.FloorMethod(toString(v)) },
	"floor.area":   func(o *Order, v any) { o.Floor.Area = toFloat(v) },
	"carpet.area":  func(o *Order, v any) { o.Carpet.Area = toFloat(v) },

	"surfaces.windows":     func(o *Order, v any) { o.Surfaces.Windows = toInt(v) },
	"surfaces.verandaArea": func(o *Order, v any) { o.Surfaces.VerandaArea = toFloat(v) },
	"surfaces.entrance":    func(o *Order, v any) { o.Surfaces.Entrance = toBool(v) },

	"vacant.layout": func(o *Order, v any) { o.Vacant.Layout = catalog.Layout(toString(v)) },
	"vacant.area":   func(o *Order, v any) { o.Vacant.Area = toFloat(v) },

	"mattress.size":         func(o *Order, v any) { o.Mattress.Size = catalog.MattressSize(toString(v)) },
	"mattress.side":         func(o *Order, v any) { o.Mattress.Side = catalog.MattressSide(toString(v)) },
	"mattress.stainRemoval": func(o *Order, v any) { o.Mattress.StainRemoval = toBool(v) },
	"mattress.stainCount":   func(o *Order, v any) { o.Mattress.StainCount = toInt(v) },
	"mattress.petDeodorize": func(o *Order, v any) { o.Mattress.PetDeodorize = toBool(v) },
	"mattress.antiOdorCoat": func(o *Order, v any) { o.Mattress.AntiOdorCoat = toBool(v) },

	"disinfection.target": func(o *Order, v any) {
		o.Disinfection.Target = catalog.DisinfectionTarget(toString(v))
	},
	"disinfection.houseSize":  func(o *Order, v any) { o.Disinfection.HouseSize = catalog.HouseSize(toString(v)) },
	"disinfection.officeArea": func(o *Order, v any) { o.Disinfection.OfficeArea = toFloat(v) },
	"disinfection.vehicleType": func(o *Order, v any) {
		o.Disinfection.VehicleType = catalog.VehicleType(toString(v))
	},
	"disinfection.vehicleCount": func(o *Order, v any) { o.Disinfection.VehicleCount = toInt(v) },

	"waterArea.rooms":  func(o *Order, v any) { o.WaterArea.Rooms = asEnum[catalog.WaterRoom](toStrings(v)) },
	"waterArea.bundle": func(o *Order, v any) { o.WaterArea.Bundle = catalog.WaterBundle(toString(v)) },

	"washer.type":   func(o *Order, v any) { o.Washer.Type = catalog.WasherType(toString(v)) },
	"washer.drying": func(o *Order, v any) { o.Washer.Drying = toTri(v) },

	"extraCharge":         func(o *Order, v any) { o.ExtraCharge = toInt(v) },
	"notes":               func(o *Order, v any) { o.Notes = toString(v) },
	"acknowledged":        func(o *Order, v any) { o.Acknowledged = toBool(v) },
	"parkingAcknowledged": func(o *Order, v any) { o.ParkingAcknowledged = toBool(v) },
}

var lineSetters = map[string]func(l *EquipmentLine, v any){
	"bundle":          func(l *EquipmentLine, v any) { l.Bundle = catalog.Bundle(toString(v)) },
	"maker":           func(l *EquipmentLine, v any) { l.Maker = toString(v) },
	"model":           func(l *EquipmentLine, v any) { l.Model = toString(v) },
	"type":            func(l *EquipmentLine, v any) { l.Type = catalog.EquipmentType(toString(v)) },
	"cleaningFeature": func(l *EquipmentLine, v any) { l.CleaningFeature = toTri(v) },
	"location":        func(l *EquipmentLine, v any) { l.Location = toString(v) },
	"highPlacement":   func(l *EquipmentLine, v any) { l.HighPlacement = toBool(v) },
	"addOns":          func(l *EquipmentLine, v any) { l.AddOns = asEnum[catalog.AddOn](toStrings(v)) },
	"extra":           func(l *EquipmentLine, v any) { l.Extra = catalog.ExtraOption(toString(v)) },
}

// Set assigns value to the field at path. It does not run the category
// cascade or pricing; callers go through quote.ApplyMutation for that.
func (o *Order) Set(path string, value any) error {
	if id, field, ok := ParseLinePath(path); ok {
		return o.setLine(id, field, value)
	}
	if strings.HasPrefix(path, slotPrefix) {
		return o.setSlot(path, value)
	}

	set, ok := setters[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
	set(o, value)
	return nil
}

func (o *Order) setLine(id, field string, value any) error {
	if field == "" {
		if value != nil {
			return fmt.Errorf("%w: %s", ErrUnknownField, LinePath(id, ""))
		}
		return o.RemoveLine(id)
	}

	set, ok := lineSetters[field]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, LinePath(id, field))
	}
	line, ok := o.Line(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLine, id)
	}
	set(line, value)
	return nil
}

func (o *Order) setSlot(path string, value any) error {
	n, field, ok := ParseSlotPath(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, path)
	}

	slot := &o.Slots[n-1]
	switch field {
	case "date":
		slot.Date = toString(value)
	case "time":
		slot.Time = toString(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
	// a changed slot invalidates the previous availability answer
	slot.Availability = ""
	return nil
}
