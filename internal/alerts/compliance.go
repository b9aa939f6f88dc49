package alerts

import (
	"time"

	"github.com/haulstack/fleetops/internal/models"
)

// Compliance statuses.
const (
	StatusCompliant    = "Compliant"
	StatusPartial      = "Partial"
	StatusNonCompliant = "Non-Compliant"
)

// VehicleCompliance is the per-vehicle document compliance summary.
type VehicleCompliance struct {
	PlateNumber  string `json:"plate_number"`
	Status       string `json:"status"`
	ValidPermits int    `json:"valid_permits"`
	ValidTaxes   int    `json:"valid_taxes"`
}

// countUnexpired counts records expiring strictly after today.
func countUnexpired[T Expirable](records []T, today time.Time) (int, error) {
	valid := 0
	for _, r := range records {
		days, err := DaysToExpire(r, today)
		if err != nil {
			return 0, err
		}
		if days > 0 {
			valid++
		}
	}
	return valid, nil
}

// ComplianceStatus derives a vehicle's document status: Compliant with at
// least one unexpired permit and one unexpired tax record, Partial with
// exactly one of the two, Non-Compliant with neither. A document expiring
// today no longer counts as unexpired.
func ComplianceStatus(vehicle models.Vehicle, permits []models.Permit, taxes []models.TaxRecord, today time.Time) (VehicleCompliance, error) {
	vehiclePermits := []models.Permit{}
	for _, p := range permits {
		if p.PlateNumber == vehicle.PlateNumber {
			vehiclePermits = append(vehiclePermits, p)
		}
	}
	vehicleTaxes := []models.TaxRecord{}
	for _, t := range taxes {
		if t.PlateNumber == vehicle.PlateNumber {
			vehicleTaxes = append(vehicleTaxes, t)
		}
	}

	validPermits, err := countUnexpired(vehiclePermits, today)
	if err != nil {
		return VehicleCompliance{}, err
	}
	validTaxes, err := countUnexpired(vehicleTaxes, today)
	if err != nil {
		return VehicleCompliance{}, err
	}

	status := StatusNonCompliant
	switch {
	case validPermits > 0 && validTaxes > 0:
		status = StatusCompliant
	case validPermits > 0 || validTaxes > 0:
		status = StatusPartial
	}

	return VehicleCompliance{
		PlateNumber:  vehicle.PlateNumber,
		Status:       status,
		ValidPermits: validPermits,
		ValidTaxes:   validTaxes,
	}, nil
}

// FleetCompliance computes the compliance summary for every vehicle.
func FleetCompliance(vehicles []models.Vehicle, permits []models.Permit, taxes []models.TaxRecord, today time.Time) ([]VehicleCompliance, error) {
	summaries := []VehicleCompliance{}
	for _, v := range vehicles {
		c, err := ComplianceStatus(v, permits, taxes, today)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, c)
	}
	return summaries, nil
}

// ComplianceRate is the fleet-wide percentage of unexpired documents over
// all permits and tax records. An empty document set rates as 0.
func ComplianceRate(permits []models.Permit, taxes []models.TaxRecord, today time.Time) (float64, error) {
	validPermits, err := countUnexpired(permits, today)
	if err != nil {
		return 0, err
	}
	validTaxes, err := countUnexpired(taxes, today)
	if err != nil {
		return 0, err
	}
	total := len(permits) + len(taxes)
	if total == 0 {
		return 0, nil
	}
	return float64(validPermits+validTaxes) / float64(total) * 100, nil
}
