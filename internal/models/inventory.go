package models

// Inventory item keys.
const (
	ItemOil       = "oil"
	ItemAirFilter = "air_filter"
	ItemTires     = "tires"
)

// Inventory maps an item key to the quantity currently in stock. It is a
// single record, not a collection; only current levels are kept.
type Inventory map[string]int

// DefaultInventory returns the zero-valued inventory written when no
// inventory document exists yet.
func DefaultInventory() Inventory {
	return Inventory{
		ItemOil:       0,
		ItemAirFilter: 0,
		ItemTires:     0,
	}
}
