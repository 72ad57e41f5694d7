package types

// TrustedContact is the single recipient of duress alerts.
type TrustedContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
