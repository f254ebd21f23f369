package responses

import "medical-portal/internal/app/models"

type BookingState struct {
	ID          string             `json:"id"`
	State       models.WizardState `json:"state"`
	Completion  map[int]bool       `json:"completion"`
	Reachable   map[int]bool       `json:"reachable"`
	FieldErrors map[string]string  `json:"field_errors,omitempty"`
}

type BookingTransition struct {
	Moved   bool          `json:"moved"`
	Booking *BookingState `json:"booking"`
}
