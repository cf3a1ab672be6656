package fakes

import (
	"context"
	"medifax-client/internal/app/models"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/exceptions"
	"sort"
	"strings"
	"sync"
)

type FakeDoctorRepository struct {
	recorder
	mu      sync.Mutex
	doctors map[string]models.Doctor
}

func NewFakeDoctorRepository(doctors ...models.Doctor) *FakeDoctorRepository {
	f := &FakeDoctorRepository{doctors: make(map[string]models.Doctor)}
	for _, doctor := range doctors {
		f.doctors[doctor.ID] = doctor
	}
	return f
}

func (f *FakeDoctorRepository) Find(ctx context.Context, doctorID string) (*models.Doctor, error) {
	if err := f.record(ctx, "Find"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(doctorID) == "" {
		return nil, exceptions.ErrInvariant(nil, "doctor id is required")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	doctor, ok := f.doctors[doctorID]
	if !ok {
		return nil, exceptions.ErrRemoteNotFound(nil, constvars.EndpointDoctors+"/"+doctorID)
	}
	return &doctor, nil
}

func (f *FakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	if err := f.record(ctx, "FindAll"); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	doctors := make([]models.Doctor, 0, len(f.doctors))
	for _, doctor := range f.doctors {
		doctors = append(doctors, doctor)
	}
	sort.Slice(doctors, func(i, j int) bool { return doctors[i].ID < doctors[j].ID })
	return doctors, nil
}
