package models

// TaxRecord represents a token tax payment for a vehicle.
type TaxRecord struct {
	ID            int     `json:"id"`
	PlateNumber   string  `json:"plate_number"`
	TaxAmount     float64 `json:"tax_amount"`
	PaymentDate   string  `json:"payment_date"` // YYYY-MM-DD
	PaymentMethod string  `json:"payment_method"`
	ExpireDate    string  `json:"expire_date"` // YYYY-MM-DD
	Notes         string  `json:"notes"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}

// Expiry returns the tax expiry date string.
func (t TaxRecord) Expiry() string { return t.ExpireDate }
