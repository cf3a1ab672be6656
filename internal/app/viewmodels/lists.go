package viewmodels

import (
	"context"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/models"
	"medifax-client/internal/app/viewstate"

	"go.uber.org/zap"
)

const (
	CommandFindDoctors      = "find_doctors"
	CommandFindAppointments = "find_appointments"
)

type Doctors struct {
	screen
	Repository contracts.DoctorRepository
	Doctors    *viewstate.Pipeline[[]models.Doctor]
}

func NewDoctors(doctors contracts.DoctorRepository, logger *zap.Logger) *Doctors {
	vm := &Doctors{
		Repository: doctors,
	}
	vm.init(logger)
	vm.Doctors = register(&vm.screen, viewstate.New[[]models.Doctor]("doctors.list", vm.intents, logger))
	return vm
}

func (vm *Doctors) Mount() {
	vm.Doctors.Run(viewstate.Command[[]models.Doctor]{
		Name: CommandFindDoctors,
		Call: func(ctx context.Context) (*[]models.Doctor, error) {
			doctors, err := vm.Repository.FindAll(ctx)
			if err != nil {
				return nil, err
			}
			return &doctors, nil
		},
		RedirectOnAuthError: true,
	})
}

// Appointments lists the bookings of the signed-in patient.
type Appointments struct {
	screen
	Repository   contracts.AppointmentRepository
	Appointments *viewstate.Pipeline[[]models.Appointment]
}

func NewAppointments(appointments contracts.AppointmentRepository, logger *zap.Logger) *Appointments {
	vm := &Appointments{
		Repository: appointments,
	}
	vm.init(logger)
	vm.Appointments = register(&vm.screen, viewstate.New[[]models.Appointment]("appointments.list", vm.intents, logger))
	return vm
}

func (vm *Appointments) Mount() {
	vm.Appointments.Run(viewstate.Command[[]models.Appointment]{
		Name: CommandFindAppointments,
		Call: func(ctx context.Context) (*[]models.Appointment, error) {
			appointments, err := vm.Repository.FindAll(ctx)
			if err != nil {
				return nil, err
			}
			return &appointments, nil
		},
		RedirectOnAuthError: true,
	})
}
