package models

// Load statuses.
const (
	LoadStatusLoading   = "Loading"
	LoadStatusInTransit = "In Transit"
	LoadStatusDelivered = "Delivered"
	LoadStatusCancelled = "Cancelled"
)

// Load represents a haulage job. LoadNumber is the natural key, generated
// as "LD" plus a six-digit zero-padded serial. NetWeight, Amount and
// PendingAmount are derived from the weights, rate and advance payment.
type Load struct {
	ID             int     `json:"id"`
	LoadNumber     string  `json:"load_number"`
	PlateNumber    string  `json:"plate_number"`
	LoadingDate    string  `json:"loading_date"` // YYYY-MM-DD
	Source         string  `json:"source"`
	Destination    string  `json:"destination"`
	PartyName      string  `json:"party_name"`
	GrossWeight    float64 `json:"gross_weight"` // kg, including vehicle
	TareWeight     float64 `json:"tare_weight"`  // kg, empty vehicle
	NetWeight      float64 `json:"net_weight"`
	RatePerUnit    float64 `json:"rate_per_unit"`
	Amount         float64 `json:"amount"`
	AdvancePayment float64 `json:"advance_payment"`
	PendingAmount  float64 `json:"pending_amount"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at,omitempty"`
}

// IsValidLoadStatus checks if a load status is valid.
func IsValidLoadStatus(status string) bool {
	switch status {
	case LoadStatusLoading, LoadStatusInTransit, LoadStatusDelivered, LoadStatusCancelled:
		return true
	default:
		return false
	}
}

// ComputeDerived recalculates net weight, amount and pending amount from the
// weights, rate and advance payment.
func (l *Load) ComputeDerived() {
	l.NetWeight = l.GrossWeight - l.TareWeight
	if l.NetWeight < 0 {
		l.NetWeight = 0
	}
	l.Amount = l.NetWeight * l.RatePerUnit
	l.PendingAmount = l.Amount - l.AdvancePayment
}

// LoadUpdate carries a partial load update. Nil fields are left untouched
// by Apply; derived amounts are recalculated afterwards.
type LoadUpdate struct {
	LoadingDate    *string  `json:"loading_date,omitempty"`
	Source         *string  `json:"source,omitempty"`
	Destination    *string  `json:"destination,omitempty"`
	PartyName      *string  `json:"party_name,omitempty"`
	GrossWeight    *float64 `json:"gross_weight,omitempty"`
	TareWeight     *float64 `json:"tare_weight,omitempty"`
	RatePerUnit    *float64 `json:"rate_per_unit,omitempty"`
	AdvancePayment *float64 `json:"advance_payment,omitempty"`
	Status         *string  `json:"status,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// Apply merges the supplied fields into the load and refreshes the derived
// amounts.
func (l *Load) Apply(u LoadUpdate) {
	if u.LoadingDate != nil {
		l.LoadingDate = *u.LoadingDate
	}
	if u.Source != nil {
		l.Source = *u.Source
	}
	if u.Destination != nil {
		l.Destination = *u.Destination
	}
	if u.PartyName != nil {
		l.PartyName = *u.PartyName
	}
	if u.GrossWeight != nil {
		l.GrossWeight = *u.GrossWeight
	}
	if u.TareWeight != nil {
		l.TareWeight = *u.TareWeight
	}
	if u.RatePerUnit != nil {
		l.RatePerUnit = *u.RatePerUnit
	}
	if u.AdvancePayment != nil {
		l.AdvancePayment = *u.AdvancePayment
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
	if u.Notes != nil {
		l.Notes = *u.Notes
	}
	l.ComputeDerived()
}
