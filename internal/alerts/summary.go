package alerts

import (
	"time"

	"github.com/haulstack/fleetops/internal/models"
)

// FleetStatusCounts counts vehicles per status.
func FleetStatusCounts(vehicles []models.Vehicle) map[string]int {
	counts := map[string]int{}
	for _, v := range vehicles {
		counts[v.Status]++
	}
	return counts
}

// TotalCapacity sums tanker capacity in liters across the fleet and across
// active vehicles only.
func TotalCapacity(vehicles []models.Vehicle) (total, active int) {
	for _, v := range vehicles {
		total += v.TankerSize
		if v.Status == models.VehicleStatusActive {
			active += v.TankerSize
		}
	}
	return total, active
}

// MonthlyMaintenanceCost groups total maintenance cost by calendar month
// (YYYY-MM keys).
func MonthlyMaintenanceCost(records []models.MaintenanceRecord) (map[string]float64, error) {
	monthly := map[string]float64{}
	for _, r := range records {
		date, err := ParseDate(r.MaintenanceDate)
		if err != nil {
			return nil, err
		}
		monthly[date.Format("2006-01")] += r.TotalCost
	}
	return monthly, nil
}

// RecentMaintenanceCost totals maintenance cost and record count over the
// trailing window of days.
func RecentMaintenanceCost(records []models.MaintenanceRecord, now time.Time, days int) (float64, int, error) {
	cutoff := now.AddDate(0, 0, -days)
	var cost float64
	count := 0
	for _, r := range records {
		date, err := ParseDate(r.MaintenanceDate)
		if err != nil {
			return 0, 0, err
		}
		if !date.Before(cutoff) {
			cost += r.TotalCost
			count++
		}
	}
	return cost, count, nil
}
