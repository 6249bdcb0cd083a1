package catalog

// Partner catalog. Prices already include the partner's own campaign
// discount; Was is shown struck through next to Now.
var partner = &Catalog{
	Vendor: VendorPartner,
	Categories: []Category{
		CategoryAircon, CategoryBathroom, CategoryKitchen,
		CategoryToilet, CategoryWaterArea,
	},

	EquipmentTypes: map[EquipmentType]int{
		TypeWallGeneral:   11000,
		TypeWallAutoClean: 20900,
	},
	AddOns: map[AddOn]int{
		AddOnAntiMoldCoat: 3300,
	},
	ExtraOptions: map[ExtraOption]int{
		ExtraOutdoorUnit: 5500,
	},
	Bundles: map[Bundle]BundleSpec{
		BundleWallStandardSet: {Price: 12100, Was: 14300, Type: TypeWallGeneral, Feature: false},
		BundleWallAutoSet:     {Price: 22000, Was: 24200, Type: TypeWallAutoClean, Feature: true},
	},

	BathroomPlans: map[BathroomPlan]FlatPrice{
		BathroomBasicSet: {Now: 16500, Was: 18700},
	},
	KitchenPlans: map[KitchenPlan]FlatPrice{
		KitchenBasicSet: {Now: 16500, Was: 18700},
	},
	Toilet: map[int]FlatPrice{
		1: {Now: 8800},
		2: {Now: 15400, Was: 17600},
	},

	WaterBundles: map[WaterBundle]FlatPrice{
		WaterSet3: {Now: 38500, Was: 45100},
		WaterSet4: {Now: 49500, Was: 59400},
		WaterSet5: {Now: 58300, Was: 71500},
	},
}
