package handlers

import (
	"net/http"
	"time"

	"github.com/haulstack/fleetops/internal/alerts"
	"github.com/haulstack/fleetops/internal/models"
	"github.com/haulstack/fleetops/internal/store"
)

// expiryWindowDays is the dashboard lookahead for document expirations.
const expiryWindowDays = 30

// DashboardHandler aggregates the derived views into one payload.
type DashboardHandler struct {
	store store.Store
	now   func() time.Time
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(s store.Store) *DashboardHandler {
	return &DashboardHandler{store: s, now: time.Now}
}

// DashboardResponse is the dashboard aggregate payload.
type DashboardResponse struct {
	FleetSize          int                        `json:"fleet_size"`
	ActiveVehicles     int                        `json:"active_vehicles"`
	StatusCounts       map[string]int             `json:"status_counts"`
	TotalCapacity      int                        `json:"total_capacity"`
	ActiveCapacity     int                        `json:"active_capacity"`
	ComplianceRate     float64                    `json:"compliance_rate"`
	Compliance         []alerts.VehicleCompliance `json:"compliance"`
	MaintenanceAlerts  []alerts.MaintenanceAlert  `json:"maintenance_alerts"`
	ExpiringPermits    []models.Permit            `json:"expiring_permits"`
	ExpiringTaxes      []models.TaxRecord         `json:"expiring_taxes"`
	LowStock           []alerts.StockAlert        `json:"low_stock"`
	MonthlyCost        float64                    `json:"monthly_maintenance_cost"`
	MonthlyRecordCount int                        `json:"monthly_maintenance_records"`
}

// Handle dispatches /api/dashboard requests.
func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	now := h.now()
	vehicles := h.store.Vehicles()
	maintenance := h.store.MaintenanceRecords("")
	permits := h.store.Permits("")
	taxes := h.store.TaxRecords("")
	inventory := h.store.Inventory()

	maintenanceAlerts, err := alerts.MaintenanceAlerts(vehicles, maintenance, now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	expiringPermits, err := alerts.ExpiringWithin(permits, now, expiryWindowDays)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	expiringTaxes, err := alerts.ExpiringWithin(taxes, now, expiryWindowDays)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	compliance, err := alerts.FleetCompliance(vehicles, permits, taxes, now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rate, err := alerts.ComplianceRate(permits, taxes, now)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	monthlyCost, monthlyCount, err := alerts.RecentMaintenanceCost(maintenance, now, 30)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	statusCounts := alerts.FleetStatusCounts(vehicles)
	total, active := alerts.TotalCapacity(vehicles)

	writeJSON(w, http.StatusOK, DashboardResponse{
		FleetSize:          len(vehicles),
		ActiveVehicles:     statusCounts[models.VehicleStatusActive],
		StatusCounts:       statusCounts,
		TotalCapacity:      total,
		ActiveCapacity:     active,
		ComplianceRate:     rate,
		Compliance:         compliance,
		MaintenanceAlerts:  maintenanceAlerts,
		ExpiringPermits:    expiringPermits,
		ExpiringTaxes:      expiringTaxes,
		LowStock:           alerts.LowStock(inventory, nil),
		MonthlyCost:        monthlyCost,
		MonthlyRecordCount: monthlyCount,
	})
}
