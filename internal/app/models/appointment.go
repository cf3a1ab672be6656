package models

type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	DoctorID    string `json:"doctorId"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
