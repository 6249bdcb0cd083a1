package catalog

import "sort"

// Summary lists the selectable keys of a catalog for form rendering.
type Summary struct {
	Vendor         Vendor          `json:"vendor"`
	Categories     []Category      `json:"categories"`
	EquipmentTypes []EquipmentType `json:"equipment_types"`
	AddOns         []AddOn         `json:"add_ons"`
	ExtraOptions   []ExtraOption   `json:"extra_options"`
	Bundles        []Bundle        `json:"bundles"`
	WaterBundles   []WaterBundle   `json:"water_bundles,omitempty"`
}

func (c *Catalog) Summary() Summary {
	return Summary{
		Vendor:         c.Vendor,
		Categories:     append([]Category(nil), c.Categories...),
		EquipmentTypes: sortedKeys(c.EquipmentTypes),
		AddOns:         sortedKeys(c.AddOns),
		ExtraOptions:   sortedKeys(c.ExtraOptions),
		Bundles:        sortedKeys(c.Bundles),
		WaterBundles:   sortedKeys(c.WaterBundles),
	}
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	if len(m) == 0 {
		return nil
	}
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
