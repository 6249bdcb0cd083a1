package catalog

type Category string

const (
	CategoryAircon       Category = "aircon"
	CategoryDrainage     Category = "drainage"
	CategoryBathroom     Category = "bathroom"
	CategoryKitchen      Category = "kitchen"
	CategoryToilet       Category = "toilet"
	CategoryFloor        Category = "floor"
	CategoryCarpet       Category = "carpet"
	CategorySurfaces     Category = "surfaces"
	CategoryVacant       Category = "vacant"
	CategoryMattress     Category = "mattress"
	CategoryDisinfection Category = "disinfection"
	CategoryWaterArea    Category = "water_area"
	CategoryWasher       Category = "washer"
)

// EquipmentType is the air-conditioner form factor used for standalone pricing.
type EquipmentType string

const (
	TypeWallGeneral     EquipmentType = "wall_general"
	TypeWallAutoClean   EquipmentType = "wall_auto_clean"
	TypeCeilingCassette EquipmentType = "ceiling_cassette"
	TypeCeilingHanging  EquipmentType = "ceiling_hanging"
	TypeFloorStanding   EquipmentType = "floor_standing"
)

type AddOn string

const (
	AddOnAntiMoldCoat  AddOn = "anti_mold_coat"
	AddOnAntibacterial AddOn = "antibacterial"
	AddOnDrainHose     AddOn = "drain_hose"
	AddOnDeodorize     AddOn = "deodorize"
)

// ExtraOption is priced on top of a line whether or not a bundle is chosen.
type ExtraOption string

const (
	ExtraNone        ExtraOption = ""
	ExtraOutdoorUnit ExtraOption = "outdoor_unit"
	ExtraHighPlace   ExtraOption = "high_place"
)

type Bundle string

const (
	BundleWallGeneralFull Bundle = "wall_general_full"
	BundleWallAutoFull    Bundle = "wall_auto_full"
	BundleCeilingFull     Bundle = "ceiling_full"
	BundleWallStandardSet Bundle = "wall_standard_set"
	BundleWallAutoSet     Bundle = "wall_auto_set"
)

type BuildingType string

const (
	BuildingDetached  BuildingType = "detached"
	BuildingApartment BuildingType = "apartment"
)

type DrainLocation string

const (
	DrainKitchen  DrainLocation = "kitchen"
	DrainBathroom DrainLocation = "bathroom"
	DrainWashroom DrainLocation = "washroom"
	DrainToilet   DrainLocation = "toilet"
	DrainOutdoor  DrainLocation = "outdoor"
)

type BathroomPlan string

const (
	BathroomStandard BathroomPlan = "standard"
	BathroomPremium  BathroomPlan = "premium"
	BathroomBasicSet BathroomPlan = "basic_set"
)

type KitchenPlan string

const (
	KitchenSinkOnly KitchenPlan = "sink_only"
	KitchenStandard KitchenPlan = "standard"
	KitchenBasicSet KitchenPlan = "basic_set"
)

type FloorMethod string

const (
	FloorWax     FloorMethod = "wax"
	FloorCoating FloorMethod = "coating"
)

type Layout string

const (
	Layout1R   Layout = "1R"
	Layout1LDK Layout = "1LDK"
	Layout2LDK Layout = "2LDK"
	Layout3LDK Layout = "3LDK"
	Layout4LDK Layout = "4LDK"
)

type MattressSize string

const (
	MattressSingle     MattressSize = "single"
	MattressSemiDouble MattressSize = "semi_double"
	MattressDouble     MattressSize = "double"
	MattressQueen      MattressSize = "queen"
	MattressKing       MattressSize = "king"
)

type MattressSide string

const (
	SideOne  MattressSide = "one"
	SideBoth MattressSide = "both"
)

type DisinfectionTarget string

const (
	TargetHouse   DisinfectionTarget = "house"
	TargetOffice  DisinfectionTarget = "office"
	TargetVehicle DisinfectionTarget = "vehicle"
)

type HouseSize string

const (
	House1K   HouseSize = "1K"
	House2LDK HouseSize = "2LDK"
	House3LDK HouseSize = "3LDK"
	House4LDK HouseSize = "4LDK"
)

type VehicleType string

const (
	VehicleCompact VehicleType = "compact"
	VehicleSedan   VehicleType = "sedan"
	VehicleVan     VehicleType = "van"
	VehicleBus     VehicleType = "bus"
)

type WaterRoom string

const (
	RoomBathroom  WaterRoom = "bathroom"
	RoomKitchen   WaterRoom = "kitchen"
	RoomRangeHood WaterRoom = "range_hood"
	RoomWashroom  WaterRoom = "washroom"
	RoomToilet    WaterRoom = "toilet"
	RoomToiletTwo WaterRoom = "toilet_two"
)

type WaterBundle string

const (
	WaterSet3 WaterBundle = "set_3"
	WaterSet4 WaterBundle = "set_4"
	WaterSet5 WaterBundle = "set_5"
)

type WasherType string

const (
	WasherVertical WasherType = "vertical"
	WasherDrum     WasherType = "drum"
)
