package utils

import (
	"medifax-client/internal/pkg/dto/requests"
	"strings"
)

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeLoginCheckRequest(input *requests.LoginCheck) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeRegisterPatientRequest(input *requests.RegisterPatient) {
	input.Email = sanitizeEmail(input.Email)
	input.FullName = strings.Join(strings.Fields(input.FullName), " ")
}

// SanitizeAppointmentForm trims surrounding whitespace only, inner line breaks
// of the description are kept.
func SanitizeAppointmentForm(input *requests.AppointmentForm) {
	input.Date = strings.TrimSpace(input.Date)
	input.Description = strings.TrimSpace(input.Description)
}
