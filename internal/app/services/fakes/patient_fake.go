package fakes

import (
	"context"
	"fmt"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/models"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/dto/requests"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"
	"strings"
	"sync"
)

type account struct {
	password  string
	patientID string
}

// FakePatientRepository keeps patients in memory. Tokens it issues are only
// understood by its own Me.
type FakePatientRepository struct {
	recorder
	mu       sync.Mutex
	patients map[string]*models.Patient
	accounts map[string]account
	sessions map[string]string
	nextID   int
	Tokens   contracts.TokenProvider
}

func NewFakePatientRepository(tokens contracts.TokenProvider) *FakePatientRepository {
	return &FakePatientRepository{
		patients: make(map[string]*models.Patient),
		accounts: make(map[string]account),
		sessions: make(map[string]string),
		Tokens:   tokens,
	}
}

// Seed adds a patient that can log in with password. A patient without an id
// logs in fine but has no profile behind the session.
func (f *FakePatientRepository) Seed(patient models.Patient, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := patient
	stored.Password = ""
	if stored.ID != "" {
		f.patients[stored.ID] = &stored
	}
	f.accounts[strings.ToLower(stored.Email)] = account{password: password, patientID: stored.ID}
}

func (f *FakePatientRepository) Find(ctx context.Context, patientID string) (*models.Patient, error) {
	if err := f.record(ctx, "Find"); err != nil {
		return nil, err
	}
	if strings.TrimSpace(patientID) == "" {
		return nil, exceptions.ErrInvariant(nil, "patient id is required")
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	patient, ok := f.patients[patientID]
	if !ok {
		return nil, exceptions.ErrRemoteNotFound(nil, constvars.EndpointPatients+"/"+patientID)
	}
	copied := *patient
	return &copied, nil
}

func (f *FakePatientRepository) Register(ctx context.Context, email, password, fullName string) (*models.Patient, error) {
	if err := f.record(ctx, "Register"); err != nil {
		return nil, err
	}

	request := &requests.RegisterPatient{Email: email, Password: password, FullName: fullName}
	utils.SanitizeRegisterPatientRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.accounts[request.Email]; exists {
		return nil, exceptions.ErrRemoteRejected(nil, constvars.EndpointPatients, constvars.ErrClientEmailAlreadyExists)
	}

	f.nextID++
	patient := &models.Patient{
		ID:       fmt.Sprintf("fake-patient-%d", f.nextID),
		Email:    request.Email,
		FullName: request.FullName,
	}
	f.patients[patient.ID] = patient
	f.accounts[patient.Email] = account{password: request.Password, patientID: patient.ID}

	copied := *patient
	return &copied, nil
}

func (f *FakePatientRepository) Login(ctx context.Context, email, password string) (*models.SessionInfo, error) {
	if err := f.record(ctx, "Login"); err != nil {
		return nil, err
	}

	request := &requests.LoginCheck{Email: email, Password: password}
	utils.SanitizeLoginCheckRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.accounts[request.Email]
	if !ok || stored.password != request.Password {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	token := fmt.Sprintf("fake-token-%d", len(f.sessions)+1)
	f.sessions[token] = stored.patientID
	return &models.SessionInfo{Token: token, Subject: request.Email}, nil
}

func (f *FakePatientRepository) Me(ctx context.Context) (*models.Patient, error) {
	if err := f.record(ctx, "Me"); err != nil {
		return nil, err
	}

	var patient *models.Patient
	err := f.Tokens.WithToken(ctx, func(token string) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		patientID, ok := f.sessions[token]
		if !ok {
			return exceptions.ErrRemoteUnauthorized(nil, constvars.EndpointMe)
		}
		if stored, found := f.patients[patientID]; found {
			copied := *stored
			patient = &copied
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return patient, nil
}
