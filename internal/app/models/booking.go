package models

type BookingStep int

const (
	BookingStepSpecialization BookingStep = 1
	BookingStepDoctor         BookingStep = 2
	BookingStepSchedule       BookingStep = 3
	BookingStepPatientInfo    BookingStep = 4
)

const (
	BookingFirstStep = BookingStepSpecialization
	BookingLastStep  = BookingStepPatientInfo
)

func (s BookingStep) IsValid() bool {
	return s >= BookingFirstStep && s <= BookingLastStep
}

type DoctorReference struct {
	ID             string `json:"id" validate:"required"`
	Name           string `json:"name,omitempty"`
	Specialization string `json:"specialization,omitempty"`
}

type BookingSpecialization struct {
	Specialization string `json:"specialization" validate:"required"`
}

type BookingDoctor struct {
	Doctor *DoctorReference `json:"doctor" validate:"required"`
}

type BookingSchedule struct {
	Date            string `json:"date" validate:"required"`
	Time            string `json:"time" validate:"required"`
	AppointmentType string `json:"appointment_type" validate:"required"`
}

type BookingPatientInfo struct {
	Name   string `json:"name" validate:"required"`
	Phone  string `json:"phone" validate:"required,egyptian_phone"`
	Email  string `json:"email" validate:"required,contact_email"`
	Age    string `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// WizardState is owned by exactly one booking wizard. It is never persisted.
type WizardState struct {
	CurrentStep    BookingStep           `json:"current_step"`
	Specialization BookingSpecialization `json:"specialization"`
	Doctor         BookingDoctor         `json:"doctor"`
	Schedule       BookingSchedule       `json:"schedule"`
	PatientInfo    BookingPatientInfo    `json:"patient_info"`
	Submitted      bool                  `json:"submitted"`
	Reference      string                `json:"reference,omitempty"`
}
