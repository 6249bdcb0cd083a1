package order

import (
	"time"

	"cleaning-quote/internal/catalog"
)

// Mode selects which validation rules apply.
type Mode string

const (
	ModeCustomer Mode = "customer"
	ModeStaff    Mode = "staff"
)

// MaxSlots is the number of preferred visit slots a customer may give.
const MaxSlots = 3

// Tri is a yes/no answer that may still be unknown.
type Tri string

const (
	TriUnknown Tri = ""
	TriYes     Tri = "yes"
	TriNo      Tri = "no"
)

// Known reports whether t carries an answer.
func (t Tri) Known() bool { return t == TriYes || t == TriNo }

// Bool returns the answer; unknown reads as false.
func (t Tri) Bool() bool { return t == TriYes }

func TriOf(b bool) Tri {
	if b {
		return TriYes
	}
	return TriNo
}

type Customer struct {
	Name       string `json:"name"`
	PostalCode string `json:"postal_code"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

type Drainage struct {
	BuildingType catalog.BuildingType    `json:"building_type"`
	Clogged      bool                    `json:"clogged"`
	Locations    []catalog.DrainLocation `json:"locations"`
}

type Bathroom struct {
	Plan       catalog.BathroomPlan `json:"plan"`
	Apron      bool                 `json:"apron"`
	ReheatPipe bool                 `json:"reheat_pipe"`
}

type Kitchen struct {
	Plan      catalog.KitchenPlan `json:"plan"`
	RangeHood bool                `json:"range_hood"`
}

type Toilet struct {
	Count int `json:"count"`
}

type Floor struct {
	Method catalog.FloorMethod `json:"method"`
	Area   float64             `json:"area"`
}

type Carpet struct {
	Area float64 `json:"area"`
}

type Surfaces struct {
	Windows     int     `json:"windows"`
	VerandaArea float64 `json:"veranda_area"`
	Entrance    bool    `json:"entrance"`
}

type Vacant struct {
	Layout catalog.Layout `json:"layout"`
	Area   float64        `json:"area"`
}

type Mattress struct {
	Size         catalog.MattressSize `json:"size"`
	Side         catalog.MattressSide `json:"side"`
	StainRemoval bool                 `json:"stain_removal"`
	StainCount   int                  `json:"stain_count"`
	PetDeodorize bool                 `json:"pet_deodorize"`
	AntiOdorCoat bool                 `json:"anti_odor_coat"`
}

type Disinfection struct {
	Target       catalog.DisinfectionTarget `json:"target"`
	HouseSize    catalog.HouseSize          `json:"house_size"`
	OfficeArea   float64                    `json:"office_area"`
	VehicleType  catalog.VehicleType        `json:"vehicle_type"`
	VehicleCount int                        `json:"vehicle_count"`
}

type WaterArea struct {
	Rooms  []catalog.WaterRoom `json:"rooms"`
	Bundle catalog.WaterBundle `json:"bundle"`
}

type Washer struct {
	Type   catalog.WasherType `json:"type"`
	Drying Tri                `json:"drying"`
}

// PreferredSlot is one requested visit time. Availability is filled in by
// the availability checker and never by the customer.
type PreferredSlot struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Availability string `json:"availability,omitempty"`
}

// Filled reports whether both date and time are present.
func (s PreferredSlot) Filled() bool { return s.Date != "" && s.Time != "" }

// Notice is non-error guidance attached to a price.
type Notice struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Price is derived from the rest of the order and never set directly.
type Price struct {
	Total     int      `json:"total"`
	Discount  int      `json:"discount"`
	Notices   []Notice `json:"notices,omitempty"`
	Unmatched []string `json:"unmatched,omitempty"`
}

// Order is one customer session. Treat it as a value: mutations go through
// Clone and produce a new revision.
type Order struct {
	ID       string         `json:"id"`
	Revision int            `json:"revision"`
	Vendor   catalog.Vendor `json:"vendor"`
	Mode     Mode           `json:"mode"`

	Customer   Customer           `json:"customer"`
	Categories []catalog.Category `json:"categories"`

	NumberOfUnits int             `json:"number_of_units"`
	Lines         []EquipmentLine `json:"lines"`

	Drainage     Drainage     `json:"drainage"`
	Bathroom     Bathroom     `json:"bathroom"`
	Kitchen      Kitchen      `json:"kitchen"`
	Toilet       Toilet       `json:"toilet"`
	Floor        Floor        `json:"floor"`
	Carpet       Carpet       `json:"carpet"`
	Surfaces     Surfaces     `json:"surfaces"`
	Vacant       Vacant       `json:"vacant"`
	Mattress     Mattress     `json:"mattress"`
	Disinfection Disinfection `json:"disinfection"`
	WaterArea    WaterArea    `json:"water_area"`
	Washer       Washer       `json:"washer"`

	Slots [MaxSlots]PreferredSlot `json:"slots"`

	ExtraCharge         int    `json:"extra_charge"`
	Notes               string `json:"notes"`
	Acknowledged        bool   `json:"acknowledged"`
	ParkingAcknowledged bool   `json:"parking_acknowledged"`

	Price Price `json:"price"`

	// Sequences holds the latest request number issued per async field.
	Sequences map[string]uint64 `json:"sequences,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}

// New returns an empty order with one default equipment line.
func New(id string, vendor catalog.Vendor, mode Mode) Order {
	return Order{
		ID:            id,
		Vendor:        vendor,
		Mode:          mode,
		NumberOfUnits: 1,
		Lines:         []EquipmentLine{NewLine()},
		CreatedAt:     time.Now().UTC(),
	}
}

// Active reports whether category c is requested.
func (o *Order) Active(c catalog.Category) bool {
	for _, have := range o.Categories {
		if have == c {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of o.
func (o Order) Clone() Order {
	out := o
	out.Categories = append([]catalog.Category(nil), o.Categories...)

	out.Lines = make([]EquipmentLine, len(o.Lines))
	for i, l := range o.Lines {
		out.Lines[i] = l.clone()
	}

	out.Drainage.Locations = append([]catalog.DrainLocation(nil), o.Drainage.Locations...)
	out.WaterArea.Rooms = append([]catalog.WaterRoom(nil), o.WaterArea.Rooms...)
	out.Price.Notices = append([]Notice(nil), o.Price.Notices...)
	out.Price.Unmatched = append([]string(nil), o.Price.Unmatched...)

	if o.Sequences != nil {
		out.Sequences = make(map[string]uint64, len(o.Sequences))
		for k, v := range o.Sequences {
			out.Sequences[k] = v
		}
	}
	if o.SubmittedAt != nil {
		at := *o.SubmittedAt
		out.SubmittedAt = &at
	}
	return out
}

// Issue records and returns the next request number for field.
func (o *Order) Issue(field string) uint64 {
	if o.Sequences == nil {
		o.Sequences = make(map[string]uint64)
	}
	o.Sequences[field]++
	return o.Sequences[field]
}

// Latest reports whether seq is the newest request issued for field.
func (o *Order) Latest(field string, seq uint64) bool {
	return seq != 0 && o.Sequences[field] == seq
}
