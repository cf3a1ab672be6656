package utils

import "medifax-client/internal/pkg/dto/requests"

func BuildCreateAppointmentRequest(patientID, doctorID string, form *requests.AppointmentForm) *requests.CreateAppointment {
	return &requests.CreateAppointment{
		Patient:     requests.Identifier{ID: patientID},
		Doctor:      requests.Identifier{ID: doctorID},
		Date:        form.Date,
		Description: form.Description,
	}
}
