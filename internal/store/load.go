package store

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/haulstack/fleetops/internal/metrics"
	"github.com/haulstack/fleetops/internal/models"
)

// Loads returns load records, optionally filtered by plate number.
func (s *FileStore) Loads(plate string) []models.Load {
	loads := []models.Load{}
	s.readDoc(EntityLoads, &loads)
	if plate == "" {
		return loads
	}
	filtered := []models.Load{}
	for _, l := range loads {
		if l.PlateNumber == plate {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

// AddLoad adds a load record. The load number is generated from the durable
// serial and the derived amounts (net weight, amount, pending) are
// recalculated before the record is persisted.
func (s *FileStore) AddLoad(l models.Load) (Result, error) {
	if l.PlateNumber == "" {
		metrics.ValidationFailures.WithLabelValues(string(EntityLoads)).Inc()
		return failure("Plate number is required"), nil
	}
	if l.GrossWeight <= l.TareWeight {
		metrics.ValidationFailures.WithLabelValues(string(EntityLoads)).Inc()
		return failure("Net weight must be positive. Check gross and tare weights."), nil
	}
	if l.Status == "" {
		l.Status = models.LoadStatusLoading
	}
	if !models.IsValidLoadStatus(l.Status) {
		metrics.ValidationFailures.WithLabelValues(string(EntityLoads)).Inc()
		return failure("Invalid load status: %s", l.Status), nil
	}

	loads := s.Loads("")
	id, err := s.nextID(EntityLoads, len(loads))
	if err != nil {
		return Result{}, err
	}
	l.ID = id
	l.LoadNumber = fmt.Sprintf("LD%06d", id)
	l.ComputeDerived()
	l.CreatedAt = s.timestamp()
	l.UpdatedAt = ""

	loads = append(loads, l)
	if err := s.writeDoc(EntityLoads, loads); err != nil {
		return Result{}, err
	}

	metrics.RecordsAdded.WithLabelValues(string(EntityLoads)).Inc()
	s.log.WithFields(log.Fields{
		"load_number":  l.LoadNumber,
		"plate_number": l.PlateNumber,
	}).Info("load added")
	return success("Load %s added successfully", l.LoadNumber), nil
}

// UpdateLoad merges a partial update into the load with the given load
// number, refreshes the derived amounts and stamps updated_at.
func (s *FileStore) UpdateLoad(loadNumber string, u models.LoadUpdate) (Result, error) {
	if u.Status != nil && !models.IsValidLoadStatus(*u.Status) {
		metrics.ValidationFailures.WithLabelValues(string(EntityLoads)).Inc()
		return failure("Invalid load status: %s", *u.Status), nil
	}

	loads := s.Loads("")
	for i := range loads {
		if loads[i].LoadNumber != loadNumber {
			continue
		}
		loads[i].Apply(u)
		loads[i].UpdatedAt = s.timestamp()
		if err := s.writeDoc(EntityLoads, loads); err != nil {
			return Result{}, err
		}
		s.log.WithField("load_number", loadNumber).Info("load updated")
		return success("Load updated successfully"), nil
	}

	metrics.ValidationFailures.WithLabelValues(string(EntityLoads)).Inc()
	return failure("Load not found"), nil
}

// UpdateLoadStatus changes only the status of a load.
func (s *FileStore) UpdateLoadStatus(loadNumber, status string) (Result, error) {
	res, err := s.UpdateLoad(loadNumber, models.LoadUpdate{Status: &status})
	if err != nil || !res.OK {
		return res, err
	}
	return success("Load status updated successfully"), nil
}
