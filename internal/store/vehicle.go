package store

import (
	"strings"

	"github.com/haulstack/fleetops/internal/metrics"
	"github.com/haulstack/fleetops/internal/models"
)

// Vehicles returns all vehicles.
func (s *FileStore) Vehicles() []models.Vehicle {
	vehicles := []models.Vehicle{}
	s.readDoc(EntityVehicles, &vehicles)
	return vehicles
}

// VehicleByPlate finds a vehicle by its plate number, case-insensitively.
func (s *FileStore) VehicleByPlate(plate string) (models.Vehicle, bool) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	for _, v := range s.Vehicles() {
		if v.PlateNumber == plate {
			return v, true
		}
	}
	return models.Vehicle{}, false
}

// AddVehicle adds a new vehicle to the fleet. The plate number is uppercased
// and must be unique across the collection.
func (s *FileStore) AddVehicle(v models.Vehicle) (Result, error) {
	v.PlateNumber = strings.ToUpper(strings.TrimSpace(v.PlateNumber))
	if v.PlateNumber == "" {
		metrics.ValidationFailures.WithLabelValues(string(EntityVehicles)).Inc()
		return failure("Plate number is required"), nil
	}
	if v.Status == "" {
		v.Status = models.VehicleStatusActive
	}
	if !models.IsValidVehicleStatus(v.Status) {
		metrics.ValidationFailures.WithLabelValues(string(EntityVehicles)).Inc()
		return failure("Invalid vehicle status: %s", v.Status), nil
	}

	vehicles := s.Vehicles()
	for _, existing := range vehicles {
		if existing.PlateNumber == v.PlateNumber {
			metrics.ValidationFailures.WithLabelValues(string(EntityVehicles)).Inc()
			return failure("Vehicle with this plate number already exists"), nil
		}
	}

	id, err := s.nextID(EntityVehicles, len(vehicles))
	if err != nil {
		return Result{}, err
	}
	v.ID = id
	v.CreatedAt = s.timestamp()
	v.UpdatedAt = ""

	vehicles = append(vehicles, v)
	if err := s.writeDoc(EntityVehicles, vehicles); err != nil {
		return Result{}, err
	}

	metrics.RecordsAdded.WithLabelValues(string(EntityVehicles)).Inc()
	s.log.WithField("plate_number", v.PlateNumber).Info("vehicle added")
	return success("Vehicle added successfully"), nil
}

// UpdateVehicle merges a partial update into the vehicle with the given
// plate number and stamps updated_at.
func (s *FileStore) UpdateVehicle(plate string, u models.VehicleUpdate) (Result, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if u.Status != nil && !models.IsValidVehicleStatus(*u.Status) {
		metrics.ValidationFailures.WithLabelValues(string(EntityVehicles)).Inc()
		return failure("Invalid vehicle status: %s", *u.Status), nil
	}

	vehicles := s.Vehicles()
	for i := range vehicles {
		if vehicles[i].PlateNumber != plate {
			continue
		}
		vehicles[i].Apply(u)
		vehicles[i].UpdatedAt = s.timestamp()
		if err := s.writeDoc(EntityVehicles, vehicles); err != nil {
			return Result{}, err
		}
		s.log.WithField("plate_number", plate).Info("vehicle updated")
		return success("Vehicle updated successfully"), nil
	}

	metrics.ValidationFailures.WithLabelValues(string(EntityVehicles)).Inc()
	return failure("Vehicle not found"), nil
}
