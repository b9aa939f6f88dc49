package models

// MaintenanceRecord represents a workshop visit for a vehicle. The replacement
// flags (OilChanged, AirFilterChanged, TiresChanged) drive inventory deduction
// when the record is added. Date sub-fields for parts that were not replaced
// stay nil so the persisted document keeps explicit nulls.
type MaintenanceRecord struct {
	ID               int     `json:"id"`
	PlateNumber      string  `json:"plate_number"`
	MaintenanceDate  string  `json:"maintenance_date"` // YYYY-MM-DD
	KMTravelled      int     `json:"km_travelled"`
	NextServiceKM    int     `json:"next_service_km"`
	LaborCost        float64 `json:"labor_cost"`
	OilChanged       bool    `json:"oil_changed"`
	OilType          *string `json:"oil_type"`
	OilDate          *string `json:"oil_date"`
	OilCost          float64 `json:"oil_cost"`
	AirFilterChanged bool    `json:"air_filter_changed"`
	FilterDate       *string `json:"filter_date"`
	FilterCost       float64 `json:"filter_cost"`
	DieselAdded      float64 `json:"diesel_added"` // liters
	DieselCost       float64 `json:"diesel_cost"`
	TiresChanged     int     `json:"tires_changed"`
	TireCost         float64 `json:"tire_cost"`
	RepairCost       float64 `json:"repair_cost"`
	PartsCost        float64 `json:"parts_cost"`
	TotalCost        float64 `json:"total_cost"`
	Notes            string  `json:"notes"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at,omitempty"`
}

// ComputeTotalCost sums the cost breakdown fields.
func (m *MaintenanceRecord) ComputeTotalCost() float64 {
	return m.LaborCost + m.OilCost + m.FilterCost + m.DieselCost +
		m.TireCost + m.RepairCost + m.PartsCost
}
