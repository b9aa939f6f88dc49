package store

import (
	"github.com/haulstack/fleetops/internal/metrics"
	"github.com/haulstack/fleetops/internal/models"
)

// Permits returns route permits, optionally filtered by plate number.
func (s *FileStore) Permits(plate string) []models.Permit {
	permits := []models.Permit{}
	s.readDoc(EntityPermits, &permits)
	if plate == "" {
		return permits
	}
	filtered := []models.Permit{}
	for _, p := range permits {
		if p.PlateNumber == plate {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// AddPermit adds a route permit.
func (s *FileStore) AddPermit(p models.Permit) (Result, error) {
	if p.PlateNumber == "" || p.PermitNumber == "" {
		metrics.ValidationFailures.WithLabelValues(string(EntityPermits)).Inc()
		return failure("Plate number and permit number are required"), nil
	}
	if p.ExpireDate == "" {
		metrics.ValidationFailures.WithLabelValues(string(EntityPermits)).Inc()
		return failure("Expiry date is required"), nil
	}

	permits := s.Permits("")
	id, err := s.nextID(EntityPermits, len(permits))
	if err != nil {
		return Result{}, err
	}
	p.ID = id
	p.CreatedAt = s.timestamp()
	p.UpdatedAt = ""

	permits = append(permits, p)
	if err := s.writeDoc(EntityPermits, permits); err != nil {
		return Result{}, err
	}

	metrics.RecordsAdded.WithLabelValues(string(EntityPermits)).Inc()
	s.log.WithField("permit_number", p.PermitNumber).Info("permit added")
	return success("Permit added successfully"), nil
}

// TaxRecords returns token tax records, optionally filtered by plate number.
func (s *FileStore) TaxRecords(plate string) []models.TaxRecord {
	taxes := []models.TaxRecord{}
	s.readDoc(EntityTokenTax, &taxes)
	if plate == "" {
		return taxes
	}
	filtered := []models.TaxRecord{}
	for _, t := range taxes {
		if t.PlateNumber == plate {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// AddTaxRecord adds a token tax record.
func (s *FileStore) AddTaxRecord(t models.TaxRecord) (Result, error) {
	if t.PlateNumber == "" {
		metrics.ValidationFailures.WithLabelValues(string(EntityTokenTax)).Inc()
		return failure("Plate number is required"), nil
	}
	if t.ExpireDate == "" {
		metrics.ValidationFailures.WithLabelValues(string(EntityTokenTax)).Inc()
		return failure("Expiry date is required"), nil
	}

	taxes := s.TaxRecords("")
	id, err := s.nextID(EntityTokenTax, len(taxes))
	if err != nil {
		return Result{}, err
	}
	t.ID = id
	t.CreatedAt = s.timestamp()
	t.UpdatedAt = ""

	taxes = append(taxes, t)
	if err := s.writeDoc(EntityTokenTax, taxes); err != nil {
		return Result{}, err
	}

	metrics.RecordsAdded.WithLabelValues(string(EntityTokenTax)).Inc()
	s.log.WithField("plate_number", t.PlateNumber).Info("token tax record added")
	return success("Token tax record added successfully"), nil
}
