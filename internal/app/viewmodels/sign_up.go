package viewmodels

import (
	"context"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/models"
	"medifax-client/internal/app/viewstate"

	"go.uber.org/zap"
)

const CommandRegister = "register"

type SignUp struct {
	screen
	Patients contracts.PatientRepository
	Patient  *viewstate.Pipeline[models.Patient]
}

func NewSignUp(patients contracts.PatientRepository, logger *zap.Logger) *SignUp {
	vm := &SignUp{
		Patients: patients,
	}
	vm.init(logger)
	vm.Patient = register(&vm.screen, viewstate.New[models.Patient]("sign_up.patient", vm.intents, logger))
	return vm
}

func (vm *SignUp) Register(email, password, fullName string) {
	vm.Patient.Run(viewstate.Command[models.Patient]{
		Name: CommandRegister,
		Call: func(ctx context.Context) (*models.Patient, error) {
			return vm.Patients.Register(ctx, email, password, fullName)
		},
		OnSuccess: func(*models.Patient) []viewstate.Intent {
			return []viewstate.Intent{viewstate.NavigateTo(viewstate.RouteSignIn)}
		},
	})
}
