package contracts

import (
	"context"
	"medifax-client/internal/app/models"
)

type DoctorRepository interface {
	Find(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindAll(ctx context.Context) ([]models.Doctor, error)
}
