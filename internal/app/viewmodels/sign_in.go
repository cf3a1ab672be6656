package viewmodels

import (
	"context"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/models"
	"medifax-client/internal/app/viewstate"

	"go.uber.org/zap"
)

const CommandLogin = "login"

type SignIn struct {
	screen
	Patients contracts.PatientRepository
	Sessions contracts.TokenStore
	Session  *viewstate.Pipeline[models.SessionInfo]
}

func NewSignIn(patients contracts.PatientRepository, sessions contracts.TokenStore, logger *zap.Logger) *SignIn {
	vm := &SignIn{
		Patients: patients,
		Sessions: sessions,
	}
	vm.init(logger)
	vm.Session = register(&vm.screen, viewstate.New[models.SessionInfo]("sign_in.session", vm.intents, logger))
	return vm
}

// Login stores the token only after a successful login that is still the
// latest one. A superseded login has its context cancelled, which the store
// checks under its write lock.
func (vm *SignIn) Login(email, password string) {
	vm.Session.Run(viewstate.Command[models.SessionInfo]{
		Name: CommandLogin,
		Call: func(ctx context.Context) (*models.SessionInfo, error) {
			session, err := vm.Patients.Login(ctx, email, password)
			if err != nil {
				return nil, err
			}
			stored, err := vm.Sessions.Set(ctx, session.Token)
			if err != nil {
				return nil, err
			}
			if stored.Subject == "" {
				stored.Subject = session.Subject
			}
			return stored, nil
		},
		OnSuccess: func(*models.SessionInfo) []viewstate.Intent {
			return []viewstate.Intent{viewstate.NavigateTo(viewstate.RouteHome)}
		},
	})
}
