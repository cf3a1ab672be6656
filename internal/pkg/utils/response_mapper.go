package utils

import (
	"medifax-client/internal/app/models"
	"medifax-client/internal/pkg/dto/responses"
	"strings"
)

func MapPatientResponseToModel(dto *responses.Patient) *models.Patient {
	return &models.Patient{
		ID:           dto.ID,
		Email:        dto.Email,
		FullName:     dto.FullName,
		ProfileImage: dto.ProfileImage,
	}
}

func MapDoctorResponseToModel(dto *responses.Doctor) *models.Doctor {
	return &models.Doctor{
		ID:           dto.ID,
		FullName:     dto.FullName,
		Speciality:   dto.Speciality,
		ProfileImage: dto.ProfileImage,
		IsAvailable:  dto.IsAvailable,
	}
}

func MapDoctorResponsesToModels(dtos []responses.Doctor) []models.Doctor {
	doctors := make([]models.Doctor, len(dtos))
	for i := range dtos {
		doctors[i] = *MapDoctorResponseToModel(&dtos[i])
	}
	return doctors
}

func MapAppointmentResponseToModel(dto *responses.Appointment) *models.Appointment {
	return &models.Appointment{
		ID:          dto.ID,
		PatientID:   trimIRI(dto.Patient.ID),
		DoctorID:    trimIRI(dto.Doctor.ID),
		Date:        dto.Date,
		Description: dto.Description,
	}
}

func MapAppointmentResponsesToModels(dtos []responses.Appointment) []models.Appointment {
	appointments := make([]models.Appointment, len(dtos))
	for i := range dtos {
		appointments[i] = *MapAppointmentResponseToModel(&dtos[i])
	}
	return appointments
}

// trimIRI turns "/api/patients/12" into "12" and leaves plain ids untouched.
func trimIRI(id string) string {
	if idx := strings.LastIndex(id, "/"); idx >= 0 {
		return id[idx+1:]
	}
	return id
}
