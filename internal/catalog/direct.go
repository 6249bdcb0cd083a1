package catalog

// Direct catalog, yen incl. tax.
var direct = &Catalog{
	Vendor: VendorDirect,
	Categories: []Category{
		CategoryAircon, CategoryDrainage, CategoryBathroom, CategoryKitchen,
		CategoryToilet, CategoryFloor, CategoryCarpet, CategorySurfaces,
		CategoryVacant, CategoryMattress, CategoryDisinfection,
		CategoryWaterArea, CategoryWasher,
	},

	StackDiscounts: true,
	VolumeDiscounts: map[int]int{
		1:  0,
		2:  2000,
		3:  4000,
		4:  6000,
		5:  8000,
		6:  10000,
		7:  12000,
		8:  14000,
		9:  16000,
		10: 18000,
	},
	ThresholdTotal: 22000,
	ThresholdRate:  10,

	EquipmentTypes: map[EquipmentType]int{
		TypeWallGeneral:     9980,
		TypeWallAutoClean:   18980,
		TypeCeilingCassette: 24800,
		TypeCeilingHanging:  22000,
		TypeFloorStanding:   19800,
	},
	AddOns: map[AddOn]int{
		AddOnAntiMoldCoat:  2750,
		AddOnAntibacterial: 1650,
		AddOnDrainHose:     2200,
		AddOnDeodorize:     1100,
	},
	ExtraOptions: map[ExtraOption]int{
		ExtraOutdoorUnit: 4950,
		ExtraHighPlace:   3300,
	},
	Bundles: map[Bundle]BundleSpec{
		BundleWallGeneralFull: {Price: 13200, Type: TypeWallGeneral, Feature: false},
		BundleWallAutoFull:    {Price: 23100, Type: TypeWallAutoClean, Feature: true},
		BundleCeilingFull:     {Price: 30800, Type: TypeCeilingCassette, Feature: false},
	},

	// keyed by number of work locations; 4 covers 4 and more
	Drainage: map[BuildingType]map[int]int{
		BuildingDetached: {
			1: 16500,
			2: 27500,
			3: 35200,
			4: 41800,
		},
		BuildingApartment: {
			1: 14300,
			2: 23100,
			3: 29700,
			4: 35200,
		},
	},

	BathroomPlans: map[BathroomPlan]FlatPrice{
		BathroomStandard: {Now: 15400},
		BathroomPremium:  {Now: 19800},
	},
	BathroomApron:  5500,
	BathroomReheat: 7700,

	KitchenPlans: map[KitchenPlan]FlatPrice{
		KitchenSinkOnly: {Now: 11000},
		KitchenStandard: {Now: 15400},
	},
	RangeHood: 11000,

	Toilet: map[int]FlatPrice{
		1: {Now: 7700},
		2: {Now: 13200},
		3: {Now: 18700},
	},

	FloorRates: map[FloorMethod]int{
		FloorWax:     330,
		FloorCoating: 660,
	},
	CarpetRate: 550,

	WindowRate:  2200,
	VerandaRate: 440,
	EntranceFee: 3300,

	VacantLayouts: map[Layout]int{
		Layout1R:   33000,
		Layout1LDK: 44000,
		Layout2LDK: 55000,
		Layout3LDK: 66000,
		Layout4LDK: 77000,
	},
	VacantThreshold:   60,
	VacantOverageRate: 550,

	Mattress: map[MattressSize]map[MattressSide]int{
		MattressSingle:     {SideOne: 11000, SideBoth: 16500},
		MattressSemiDouble: {SideOne: 13200, SideBoth: 19800},
		MattressDouble:     {SideOne: 15400, SideBoth: 23100},
		MattressQueen:      {SideOne: 17600, SideBoth: 26400},
		MattressKing:       {SideOne: 19800, SideBoth: 29700},
	},
	MattressCoating: map[MattressSize]map[MattressSide]int{
		MattressSingle:     {SideOne: 3300, SideBoth: 5500},
		MattressSemiDouble: {SideOne: 3850, SideBoth: 6600},
		MattressDouble:     {SideOne: 4400, SideBoth: 7700},
		MattressQueen:      {SideOne: 4950, SideBoth: 8800},
		MattressKing:       {SideOne: 5500, SideBoth: 9900},
	},
	StainRemovalUnit: 1100,
	PetDeodorizeFee:  3300,

	DisinfectionHouse: map[HouseSize]int{
		House1K:   22000,
		House2LDK: 33000,
		House3LDK: 44000,
		House4LDK: 55000,
	},
	OfficeFlatBelow: 100,
	OfficeFlatFee:   55000,
	OfficeBrackets: []AreaBracket{
		{Min: 100, Rate: 750},
		{Min: 200, Rate: 700},
		{Min: 300, Rate: 650},
		{Min: 400, Rate: 620},
		{Min: 500, Rate: 580},
		{Min: 600, Rate: 550},
		{Min: 800, Rate: 520},
		{Min: 1000, Rate: 500},
	},
	Vehicles: map[VehicleType]int{
		VehicleCompact: 5500,
		VehicleSedan:   7700,
		VehicleVan:     9900,
		VehicleBus:     22000,
	},

	WaterPoints: map[WaterRoom]float64{
		RoomBathroom:  1.0,
		RoomKitchen:   1.0,
		RoomRangeHood: 1.0,
		RoomWashroom:  0.5,
		RoomToilet:    0.5,
		RoomToiletTwo: 1.0,
	},
	WaterBuckets: []PointBucket{
		{Min: 2, Max: 3, Price: 27500},
		{Min: 3, Max: 4, Price: 38500},
		{Min: 4, Max: 4.5, Price: 49500},
	},

	Washer: map[WasherType]map[bool]int{
		WasherVertical: {false: 13200, true: 15400},
		WasherDrum:     {false: 19800, true: 22000},
	},
}
