package fakes

import (
	"context"
	"fmt"
	"medifax-client/internal/app/models"
	"medifax-client/internal/pkg/dto/requests"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"
	"sync"
)

type FakeAppointmentRepository struct {
	recorder
	mu           sync.Mutex
	appointments []models.Appointment
	Requests     []requests.CreateAppointment
}

func NewFakeAppointmentRepository() *FakeAppointmentRepository {
	return &FakeAppointmentRepository{}
}

func (f *FakeAppointmentRepository) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	if err := f.record(ctx, "Create"); err != nil {
		return nil, err
	}
	if request == nil {
		return nil, exceptions.ErrInvariant(nil, "appointment request is required")
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Requests = append(f.Requests, *request)
	appointment := models.Appointment{
		ID:          fmt.Sprintf("fake-appointment-%d", len(f.appointments)+1),
		PatientID:   request.Patient.ID,
		DoctorID:    request.Doctor.ID,
		Date:        request.Date,
		Description: request.Description,
	}
	f.appointments = append(f.appointments, appointment)
	return &appointment, nil
}

func (f *FakeAppointmentRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	if err := f.record(ctx, "FindAll"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	appointments := make([]models.Appointment, len(f.appointments))
	copy(appointments, f.appointments)
	return appointments, nil
}
