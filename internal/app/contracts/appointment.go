package contracts

import (
	"context"
	"medifax-client/internal/app/models"
	"medifax-client/internal/pkg/dto/requests"
)

type AppointmentRepository interface {
	Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	FindAll(ctx context.Context) ([]models.Appointment, error)
}
