package viewmodels

import (
	"context"
	"medifax-client/internal/app/config"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/models"
	"medifax-client/internal/app/viewstate"
	"medifax-client/internal/pkg/utils"

	"go.uber.org/zap"
)

const CommandMe = "me"

type Profile struct {
	screen
	Patients    contracts.PatientRepository
	Sessions    contracts.TokenStore
	BaseUrl     string
	UploadsPath string
	Patient     *viewstate.Pipeline[models.Patient]
}

func NewProfile(patients contracts.PatientRepository, sessions contracts.TokenStore, internalConfig *config.InternalConfig, logger *zap.Logger) *Profile {
	vm := &Profile{
		Patients:    patients,
		Sessions:    sessions,
		BaseUrl:     internalConfig.API.BaseUrl,
		UploadsPath: internalConfig.API.UploadsPath,
	}
	vm.init(logger)
	vm.Patient = register(&vm.screen, viewstate.New[models.Patient]("profile.patient", vm.intents, logger))
	return vm
}

// Mount loads the signed-in patient. Without a session the load fails before
// any request and the view is sent to sign in.
func (vm *Profile) Mount() {
	vm.Patient.Run(viewstate.Command[models.Patient]{
		Name: CommandMe,
		Call: func(ctx context.Context) (*models.Patient, error) {
			return vm.Patients.Me(ctx)
		},
		RedirectOnAuthError: true,
	})
}

func (vm *Profile) IsLoggedIn() bool {
	return vm.Sessions.IsLoggedIn()
}

func (vm *Profile) Logout(ctx context.Context) error {
	err := vm.Sessions.Clear(utils.WithRequestID(ctx))
	if err != nil {
		return err
	}
	vm.intents.Push(viewstate.NavigateTo(viewstate.RouteLogout))
	return nil
}

// OpenAppointments sends a signed-in patient to their appointments. It
// reports false, emitting nothing, when there is no session.
func (vm *Profile) OpenAppointments() bool {
	if !vm.Sessions.IsLoggedIn() {
		return false
	}
	return vm.intents.Push(viewstate.NavigateTo(viewstate.RouteAppointments))
}

// ProfileImageURL is empty until a patient with an image is loaded.
func (vm *Profile) ProfileImageURL() string {
	state := vm.Patient.Snapshot()
	if state.Status != viewstate.Success || !state.Data.HasProfileImage() {
		return ""
	}
	return utils.BuildProfileImageURL(vm.BaseUrl, vm.UploadsPath, state.Data.ProfileImage)
}
