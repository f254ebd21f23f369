package requests

import "medical-portal/internal/app/models"

type StartBooking struct {
	Specialization string                  `json:"specialization,omitempty"`
	Doctor         *models.DoctorReference `json:"doctor,omitempty"`
}

type BookingSpecialization struct {
	Specialization string `json:"specialization"`
}

type BookingDoctor struct {
	Doctor *models.DoctorReference `json:"doctor"`
}

type BookingSchedule struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	AppointmentType string `json:"appointment_type"`
}

type BookingPatientInfo struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Age    string `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
	Notes  string `json:"notes,omitempty"`
}
