package store

import (
	log "github.com/sirupsen/logrus"

	"github.com/haulstack/fleetops/internal/metrics"
	"github.com/haulstack/fleetops/internal/models"
)

// MaintenanceRecords returns maintenance records, optionally filtered by
// plate number. An empty plate returns every record.
func (s *FileStore) MaintenanceRecords(plate string) []models.MaintenanceRecord {
	records := []models.MaintenanceRecord{}
	s.readDoc(EntityMaintenance, &records)
	if plate == "" {
		return records
	}
	filtered := []models.MaintenanceRecord{}
	for _, r := range records {
		if r.PlateNumber == plate {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// AddMaintenanceRecord adds a maintenance record and deducts the replaced
// parts from inventory. Every requirement is checked against stock before
// anything is written, so insufficient stock for any one item leaves both
// the inventory and the maintenance collection untouched.
func (s *FileStore) AddMaintenanceRecord(m models.MaintenanceRecord) (Result, error) {
	if m.PlateNumber == "" {
		metrics.ValidationFailures.WithLabelValues(string(EntityMaintenance)).Inc()
		return failure("Plate number is required"), nil
	}
	if m.KMTravelled <= 0 {
		metrics.ValidationFailures.WithLabelValues(string(EntityMaintenance)).Inc()
		return failure("KM travelled must be positive"), nil
	}
	if m.MaintenanceDate == "" {
		m.MaintenanceDate = s.now().Format("2006-01-02")
	}

	inventory := s.Inventory()
	if m.OilChanged {
		if inventory[models.ItemOil] < 1 {
			metrics.ValidationFailures.WithLabelValues(string(EntityMaintenance)).Inc()
			return failure("Insufficient oil in inventory"), nil
		}
		inventory[models.ItemOil]--
	}
	if m.AirFilterChanged {
		if inventory[models.ItemAirFilter] < 1 {
			metrics.ValidationFailures.WithLabelValues(string(EntityMaintenance)).Inc()
			return failure("Insufficient air filters in inventory"), nil
		}
		inventory[models.ItemAirFilter]--
	}
	if m.TiresChanged > 0 {
		if inventory[models.ItemTires] < m.TiresChanged {
			metrics.ValidationFailures.WithLabelValues(string(EntityMaintenance)).Inc()
			return failure("Insufficient tires in inventory"), nil
		}
		inventory[models.ItemTires] -= m.TiresChanged
	}

	records := s.MaintenanceRecords("")
	id, err := s.nextID(EntityMaintenance, len(records))
	if err != nil {
		return Result{}, err
	}
	m.ID = id
	m.TotalCost = m.ComputeTotalCost()
	m.CreatedAt = s.timestamp()
	m.UpdatedAt = ""

	if err := s.writeDoc(EntityInventory, inventory); err != nil {
		return Result{}, err
	}
	records = append(records, m)
	if err := s.writeDoc(EntityMaintenance, records); err != nil {
		return Result{}, err
	}

	metrics.RecordsAdded.WithLabelValues(string(EntityMaintenance)).Inc()
	s.log.WithFields(log.Fields{
		"plate_number": m.PlateNumber,
		"total_cost":   m.TotalCost,
	}).Info("maintenance record added")
	return success("Maintenance record added successfully"), nil
}
