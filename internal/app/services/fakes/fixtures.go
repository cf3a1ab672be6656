package fakes

import "medifax-client/internal/app/models"

// DemoDoctors is the catalogue used when the client runs offline.
func DemoDoctors() []models.Doctor {
	return []models.Doctor{
		{ID: "1", FullName: "Dr Amani Kabila", Speciality: "General practice", IsAvailable: true},
		{ID: "2", FullName: "Dr Grace Mbuyi", Speciality: "Pediatrics", IsAvailable: true},
		{ID: "3", FullName: "Dr Joel Tshisekedi", Speciality: "Cardiology", IsAvailable: false},
	}
}

const (
	DemoPatientEmail    = "demo@medifax.local"
	DemoPatientPassword = "demo1234"
)

func DemoPatient() models.Patient {
	return models.Patient{ID: "demo-patient", Email: DemoPatientEmail, FullName: "Demo Patient"}
}
