package store

import "sort"

// Product is a catalog entry. Prices are authoritative server side.
type Product struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
}

// catalog is the fixed Yates Inc. product line.
var catalog = map[string]Product{
	"yates-water": {
		ID:          "yates-water",
		Name:        "Yates Water",
		Description: "Regular water, now with a logo.",
		PriceCents:  1_299,
	},
	"invisible-hat": {
		ID:          "invisible-hat",
		Name:        "Invisible Hat",
		Description: "You will have to trust us on this one.",
		PriceCents:  4_999,
	},
	"premium-air": {
		ID:          "premium-air",
		Name:        "Premium Air (1L)",
		Description: "Hand-collected from above the Yates parking lot.",
		PriceCents:  899,
	},
	"yates-pickaxe": {
		ID:          "yates-pickaxe",
		Name:        "Official Yates Pickaxe",
		Description: "Foam. Not suitable for mining.",
		PriceCents:  2_499,
	},
	"rock": {
		ID:          "rock",
		Name:        "A Rock",
		Description: "It is a rock.",
		PriceCents:  19_999,
	},
	"subscription-nothing": {
		ID:          "subscription-nothing",
		Name:        "Nothing+ (monthly)",
		Description: "Exclusive access to nothing, billed monthly.",
		PriceCents:  999,
	},
}

// LookupProduct returns the catalog entry for id
func LookupProduct(id string) (Product, bool) {
	p, ok := catalog[id]
	return p, ok
}

// Products returns the catalog sorted by price, then id
func Products() []Product {
	list := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].PriceCents != list[j].PriceCents {
			return list[i].PriceCents < list[j].PriceCents
		}
		return list[i].ID < list[j].ID
	})
	return list
}
