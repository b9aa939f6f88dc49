package models

// Vehicle statuses.
const (
	VehicleStatusActive       = "Active"
	VehicleStatusMaintenance  = "Maintenance"
	VehicleStatusOutOfService = "Out of Service"
)

// Vehicle represents a fleet vehicle. PlateNumber is the natural key and is
// stored uppercased.
type Vehicle struct {
	ID           int      `json:"id"`
	PlateNumber  string   `json:"plate_number"`
	DriverName   string   `json:"driver_name"`
	HelperName   string   `json:"helper_name"`
	RoutePermits []string `json:"route_permits"`
	TankerSize   int      `json:"tanker_size"` // liters
	VehicleType  string   `json:"vehicle_type"`
	MakeModel    string   `json:"make_model"`
	Year         int      `json:"year"`
	EngineType   string   `json:"engine_type"` // "Diesel", "Petrol", "Hybrid", "Electric"
	Status       string   `json:"status"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at,omitempty"`
}

// IsValidVehicleStatus checks if a vehicle status is valid.
func IsValidVehicleStatus(status string) bool {
	switch status {
	case VehicleStatusActive, VehicleStatusMaintenance, VehicleStatusOutOfService:
		return true
	default:
		return false
	}
}

// VehicleUpdate carries a partial vehicle update. Nil fields are left
// untouched by Apply.
type VehicleUpdate struct {
	DriverName   *string   `json:"driver_name,omitempty"`
	HelperName   *string   `json:"helper_name,omitempty"`
	RoutePermits *[]string `json:"route_permits,omitempty"`
	TankerSize   *int      `json:"tanker_size,omitempty"`
	VehicleType  *string   `json:"vehicle_type,omitempty"`
	MakeModel    *string   `json:"make_model,omitempty"`
	Year         *int      `json:"year,omitempty"`
	EngineType   *string   `json:"engine_type,omitempty"`
	Status       *string   `json:"status,omitempty"`
}

// Apply merges the supplied fields into the vehicle.
func (v *Vehicle) Apply(u VehicleUpdate) {
	if u.DriverName != nil {
		v.DriverName = *u.DriverName
	}
	if u.HelperName != nil {
		v.HelperName = *u.HelperName
	}
	if u.RoutePermits != nil {
		v.RoutePermits = *u.RoutePermits
	}
	if u.TankerSize != nil {
		v.TankerSize = *u.TankerSize
	}
	if u.VehicleType != nil {
		v.VehicleType = *u.VehicleType
	}
	if u.MakeModel != nil {
		v.MakeModel = *u.MakeModel
	}
	if u.Year != nil {
		v.Year = *u.Year
	}
	if u.EngineType != nil {
		v.EngineType = *u.EngineType
	}
	if u.Status != nil {
		v.Status = *u.Status
	}
}
