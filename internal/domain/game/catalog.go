package game

import "time"

// Pickaxe determines the damage dealt per click
type Pickaxe struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Power            float64 `json:"power"`
	RequiresPrestige int64   `json:"requires_prestige"`
}

// Rock is a mineable target. Breaking it pays Reward; it needs a pickaxe of at least MinPower.
type Rock struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	HP       float64 `json:"hp"`
	Reward   float64 `json:"reward"`
	MinPower float64 `json:"min_power"`
}

// Ritual is a timed income multiplier cast at the wizard tower
type Ritual struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	CostStokens int64         `json:"cost_stokens"`
	Multiplier  float64       `json:"multiplier"`
	Duration    time.Duration `json:"duration"`
}

// Starting equipment
const (
	StarterPickaxe = "wooden"
	StarterRock    = "pebble"
)

// Economy constants
const (
	MinerPower          = 1.0   // damage per miner per second
	MinerBaseCost       = 100.0 // cost of the first miner
	MinerCostGrowth     = 1.15  // cost factor per miner owned
	MaxMinersPerHire    = 1000  // upper bound of one hire order
	RocksPerStoken      = 25    // rocks broken per stoken earned
	PrestigeUnit        = 1e6   // run dollars per squared prestige token
	PrestigeTokenBonus  = 0.1   // multiplier bonus per prestige token
	WizardTowerCost     = 50_000.0
	WizardTowerPrestige = 1
	StokenBasePrice     = 1_000.0 // dollars per stoken before the prestige surcharge
	TicketPriceStokens  = 3
	MaxShopOrder        = 1_000_000 // upper bound of one stoken or ticket order
	SacrificeBonus      = 0.02      // multiplier per sacrificed miner
	SacrificeMaxBonus   = 3.0
	SacrificeDuration   = 10 * time.Minute
)

var pickaxeOrder = []Pickaxe{
	{ID: "wooden", Name: "Wooden Pickaxe", Price: 0, Power: 1},
	{ID: "stone", Name: "Stone Pickaxe", Price: 50, Power: 2},
	{ID: "iron", Name: "Iron Pickaxe", Price: 250, Power: 5},
	{ID: "gold", Name: "Gold Pickaxe", Price: 1_000, Power: 12},
	{ID: "diamond", Name: "Diamond Pickaxe", Price: 5_000, Power: 30},
	{ID: "obsidian", Name: "Obsidian Pickaxe", Price: 25_000, Power: 80},
	{ID: "yates", Name: "The Yates Pickaxe", Price: 150_000, Power: 250, RequiresPrestige: 1},
	{ID: "cosmic", Name: "Cosmic Pickaxe", Price: 1_000_000, Power: 1_000, RequiresPrestige: 3},
}

var rockOrder = []Rock{
	{ID: "pebble", Name: "Pebble", HP: 5, Reward: 2, MinPower: 1},
	{ID: "stone", Name: "Stone", HP: 20, Reward: 10, MinPower: 2},
	{ID: "granite", Name: "Granite", HP: 60, Reward: 35, MinPower: 5},
	{ID: "marble", Name: "Marble", HP: 150, Reward: 100, MinPower: 12},
	{ID: "ruby", Name: "Ruby Vein", HP: 500, Reward: 400, MinPower: 30},
	{ID: "diamond_ore", Name: "Diamond Ore", HP: 2_000, Reward: 1_800, MinPower: 80},
	{ID: "yatesium", Name: "Yatesium", HP: 10_000, Reward: 12_000, MinPower: 250},
}

var ritualOrder = []Ritual{
	{ID: "ember", Name: "Ember Chant", CostStokens: 5, Multiplier: 1.5, Duration: 5 * time.Minute},
	{ID: "storm", Name: "Storm Call", CostStokens: 15, Multiplier: 2, Duration: 10 * time.Minute},
	{ID: "eclipse", Name: "Eclipse Rite", CostStokens: 40, Multiplier: 3, Duration: 15 * time.Minute},
}

// Pickaxes returns the pickaxe catalog in progression order
func Pickaxes() []Pickaxe {
	return append([]Pickaxe(nil), pickaxeOrder...)
}

// Rocks returns the rock catalog in progression order
func Rocks() []Rock {
	return append([]Rock(nil), rockOrder...)
}

// Rituals returns the ritual catalog
func Rituals() []Ritual {
	return append([]Ritual(nil), ritualOrder...)
}

// LookupPickaxe finds a pickaxe by id
func LookupPickaxe(id string) (Pickaxe, bool) {
	for _, p := range pickaxeOrder {
		if p.ID == id {
			return p, true
		}
	}
	return Pickaxe{}, false
}

// LookupRock finds a rock by id
func LookupRock(id string) (Rock, bool) {
	for _, r := range rockOrder {
		if r.ID == id {
			return r, true
		}
	}
	return Rock{}, false
}

// LookupRitual finds a ritual by id
func LookupRitual(id string) (Ritual, bool) {
	for _, r := range ritualOrder {
		if r.ID == id {
			return r, true
		}
	}
	return Ritual{}, false
}
