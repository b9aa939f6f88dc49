package alerts

import (
	"sort"

	"github.com/haulstack/fleetops/internal/models"
)

// Stock alert priorities.
const (
	StockCritical = "Critical"
	StockHigh     = "High"
	StockMedium   = "Medium"
)

// StockAlert flags an inventory item at or below its reorder level.
type StockAlert struct {
	Item           string `json:"item"`
	Quantity       int    `json:"quantity"`
	ReorderLevel   int    `json:"reorder_level"`
	Priority       string `json:"priority"`
	SuggestedOrder int    `json:"suggested_order"`
}

const fallbackReorderLevel = 5

// DefaultReorderLevels returns the stock thresholds below which restocking
// is recommended.
func DefaultReorderLevels() map[string]int {
	return map[string]int{
		models.ItemOil:       5,
		models.ItemAirFilter: 10,
		models.ItemTires:     8,
	}
}

// LowStock flags every item at or below its reorder level: Critical when
// out of stock, High at or below half the reorder level, Medium at or below
// the reorder level. Items above their reorder level are not flagged. The
// suggested order tops the item back up to twice its reorder level.
func LowStock(inventory models.Inventory, reorderLevels map[string]int) []StockAlert {
	if reorderLevels == nil {
		reorderLevels = DefaultReorderLevels()
	}

	items := make([]string, 0, len(inventory))
	for item := range inventory {
		items = append(items, item)
	}
	sort.Strings(items)

	flagged := []StockAlert{}
	for _, item := range items {
		quantity := inventory[item]
		level, ok := reorderLevels[item]
		if !ok {
			level = fallbackReorderLevel
		}
		if quantity > level {
			continue
		}

		priority := StockMedium
		switch {
		case quantity == 0:
			priority = StockCritical
		case float64(quantity) <= float64(level)*0.5:
			priority = StockHigh
		}

		flagged = append(flagged, StockAlert{
			Item:           item,
			Quantity:       quantity,
			ReorderLevel:   level,
			Priority:       priority,
			SuggestedOrder: level*2 - quantity,
		})
	}
	return flagged
}
