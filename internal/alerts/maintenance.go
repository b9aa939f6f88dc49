package alerts

import (
	"fmt"
	"time"

	"github.com/haulstack/fleetops/internal/models"
)

// Alert priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
)

// MaintenanceAlert flags a vehicle whose last maintenance is overdue or
// missing entirely.
type MaintenanceAlert struct {
	PlateNumber string `json:"plate_number"`
	Alert       string `json:"alert"`
	Priority    string `json:"priority"`
	DaysSince   int    `json:"days_since,omitempty"`
}

// MaintenanceAlerts scans every vehicle for its most recent maintenance
// record by created_at. A vehicle with no records gets a high-priority
// alert. Otherwise: nothing up to 90 days since the last record, medium up
// to 180 days, high beyond that.
func MaintenanceAlerts(vehicles []models.Vehicle, records []models.MaintenanceRecord, now time.Time) ([]MaintenanceAlert, error) {
	alerts := []MaintenanceAlert{}

	for _, v := range vehicles {
		var last *models.MaintenanceRecord
		for i := range records {
			if records[i].PlateNumber != v.PlateNumber {
				continue
			}
			// created_at is zero-padded RFC3339, so the lexicographically
			// greatest string is the most recent record.
			if last == nil || records[i].CreatedAt > last.CreatedAt {
				last = &records[i]
			}
		}

		if last == nil {
			alerts = append(alerts, MaintenanceAlert{
				PlateNumber: v.PlateNumber,
				Alert:       "No maintenance records found",
				Priority:    PriorityHigh,
			})
			continue
		}

		lastAt, err := time.Parse(time.RFC3339, last.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unparseable created_at %q for %s: %w", last.CreatedAt, v.PlateNumber, err)
		}
		daysSince := int(now.Sub(lastAt).Hours() / 24)
		if daysSince <= 90 {
			continue
		}

		priority := PriorityMedium
		if daysSince > 180 {
			priority = PriorityHigh
		}
		alerts = append(alerts, MaintenanceAlert{
			PlateNumber: v.PlateNumber,
			Alert:       fmt.Sprintf("Last maintenance %d days ago", daysSince),
			Priority:    priority,
			DaysSince:   daysSince,
		})
	}

	return alerts, nil
}
