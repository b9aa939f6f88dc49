package models

// Permit represents a route permit for a vehicle.
type Permit struct {
	ID           int    `json:"id"`
	PlateNumber  string `json:"plate_number"`
	PermitNumber string `json:"permit_number"`
	Location     string `json:"location"` // route or area the permit covers
	ExpireDate   string `json:"expire_date"` // YYYY-MM-DD
	Notes        string `json:"notes"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at,omitempty"`
}

// Expiry returns the permit expiry date string.
func (p Permit) Expiry() string { return p.ExpireDate }
