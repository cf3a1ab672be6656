package contracts

import (
	"context"
	"medifax-client/internal/app/models"
)

// PatientRepository is the remote access to patients and their session.
// A nil patient with a nil error is a valid empty answer.
type PatientRepository interface {
	Find(ctx context.Context, patientID string) (*models.Patient, error)
	Register(ctx context.Context, email, password, fullName string) (*models.Patient, error)
	Login(ctx context.Context, email, password string) (*models.SessionInfo, error)
	Me(ctx context.Context) (*models.Patient, error)
}
