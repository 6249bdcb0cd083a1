package catalog

// Vendor selects which catalog prices an order.
type Vendor string

const (
	VendorDirect  Vendor = "direct"
	VendorPartner Vendor = "partner"
)

// BundleSpec is a complete per-unit bundle. Type and Feature are the
// equipment pair the bundle is sold for; Was is a display-only list price.
type BundleSpec struct {
	Price   int
	Was     int
	Type    EquipmentType
	Feature bool
}

// AreaBracket applies Rate yen/m² to the whole area once area >= Min.
type AreaBracket struct {
	Min  float64
	Rate int
}

// PointBucket prices the water-area bundle for Min <= points < Max.
type PointBucket struct {
	Min   float64
	Max   float64
	Price int
}

// FlatPrice is a bundle price with an optional list price for display.
type FlatPrice struct {
	Now int
	Was int
}

// Catalog holds every price table of one vendor. Missing keys price as zero.
type Catalog struct {
	Vendor     Vendor
	Categories []Category

	// StackDiscounts enables the volume and threshold discount steps.
	StackDiscounts  bool
	VolumeDiscounts map[int]int
	ThresholdTotal  int
	ThresholdRate   int // percent

	EquipmentTypes map[EquipmentType]int
	AddOns         map[AddOn]int
	ExtraOptions   map[ExtraOption]int
	Bundles        map[Bundle]BundleSpec

	Drainage map[BuildingType]map[int]int

	BathroomPlans  map[BathroomPlan]FlatPrice
	BathroomApron  int
	BathroomReheat int

	KitchenPlans map[KitchenPlan]FlatPrice
	RangeHood    int

	Toilet map[int]FlatPrice

	FloorRates map[FloorMethod]int
	CarpetRate int

	WindowRate  int
	VerandaRate int
	EntranceFee int

	VacantLayouts     map[Layout]int
	VacantThreshold   float64
	VacantOverageRate int

	Mattress         map[MattressSize]map[MattressSide]int
	MattressCoating  map[MattressSize]map[MattressSide]int
	StainRemovalUnit int
	PetDeodorizeFee  int

	DisinfectionHouse map[HouseSize]int
	OfficeFlatBelow   float64
	OfficeFlatFee     int
	OfficeBrackets    []AreaBracket
	Vehicles          map[VehicleType]int

	WaterPoints  map[WaterRoom]float64
	WaterBuckets []PointBucket
	WaterBundles map[WaterBundle]FlatPrice

	Washer map[WasherType]map[bool]int
}

var registry = map[Vendor]*Catalog{
	VendorDirect:  direct,
	VendorPartner: partner,
}

// Lookup returns the catalog of v.
func Lookup(v Vendor) (*Catalog, bool) {
	c, ok := registry[v]
	return c, ok
}

// Vendors lists the known vendors in a stable order.
func Vendors() []Vendor {
	return []Vendor{VendorDirect, VendorPartner}
}

// Offers reports whether the vendor sells category c.
func (c *Catalog) Offers(cat Category) bool {
	if c == nil {
		return false
	}
	for _, have := range c.Categories {
		if have == cat {
			return true
		}
	}
	return false
}

// BundleFor returns the bundle spec and whether the vendor sells it.
func (c *Catalog) BundleFor(b Bundle) (BundleSpec, bool) {
	if c == nil {
		return BundleSpec{}, false
	}
	spec, ok := c.Bundles[b]
	return spec, ok
}
