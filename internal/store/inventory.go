package store

import (
	"github.com/haulstack/fleetops/internal/metrics"
	"github.com/haulstack/fleetops/internal/models"
)

// Inventory returns current stock levels.
func (s *FileStore) Inventory() models.Inventory {
	inventory := models.Inventory{}
	if !s.readDoc(EntityInventory, &inventory) {
		return models.DefaultInventory()
	}
	return inventory
}

// UpdateInventory changes the stock level for one item. Add increases
// unconditionally, subtract clamps at zero and never fails, set replaces.
// An unknown item key is initialized to zero before the operation.
func (s *FileStore) UpdateInventory(item string, quantity int, op InventoryOp) (Result, error) {
	if item == "" {
		metrics.ValidationFailures.WithLabelValues(string(EntityInventory)).Inc()
		return failure("Item type is required"), nil
	}
	if quantity < 0 {
		metrics.ValidationFailures.WithLabelValues(string(EntityInventory)).Inc()
		return failure("Quantity must not be negative"), nil
	}

	inventory := s.Inventory()
	if _, ok := inventory[item]; !ok {
		inventory[item] = 0
	}

	switch op {
	case OpAdd:
		inventory[item] += quantity
	case OpSubtract:
		inventory[item] -= quantity
		if inventory[item] < 0 {
			inventory[item] = 0
		}
	case OpSet:
		inventory[item] = quantity
	default:
		metrics.ValidationFailures.WithLabelValues(string(EntityInventory)).Inc()
		return failure("Unknown inventory operation: %s", op), nil
	}

	if err := s.writeDoc(EntityInventory, inventory); err != nil {
		return Result{}, err
	}
	s.log.WithField("item", item).Info("inventory updated")
	return success("Inventory updated: %s = %d", item, inventory[item]), nil
}

// ResetInventory sets every stock level back to zero.
func (s *FileStore) ResetInventory() (Result, error) {
	if err := s.writeDoc(EntityInventory, models.DefaultInventory()); err != nil {
		return Result{}, err
	}
	s.log.Info("inventory reset")
	return success("Inventory reset successfully"), nil
}
