package viewmodels

import (
	"context"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/models"
	"medifax-client/internal/app/viewstate"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/dto/requests"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	CommandFindDoctor        = "find_doctor"
	CommandCreateAppointment = "create_appointment"
)

// DoctorDetail shows one doctor and books appointments with them.
type DoctorDetail struct {
	screen
	Doctors      contracts.DoctorRepository
	Patients     contracts.PatientRepository
	Appointments contracts.AppointmentRepository
	Doctor       *viewstate.Pipeline[models.Doctor]
	Booking      *viewstate.Pipeline[models.Appointment]

	mu       sync.Mutex
	doctorID string
}

func NewDoctorDetail(doctors contracts.DoctorRepository, patients contracts.PatientRepository, appointments contracts.AppointmentRepository, logger *zap.Logger) *DoctorDetail {
	vm := &DoctorDetail{
		Doctors:      doctors,
		Patients:     patients,
		Appointments: appointments,
	}
	vm.init(logger)
	vm.Doctor = register(&vm.screen, viewstate.New[models.Doctor]("doctor_detail.doctor", vm.intents, logger))
	vm.Booking = register(&vm.screen, viewstate.New[models.Appointment]("doctor_detail.booking", vm.intents, logger))
	return vm
}

func (vm *DoctorDetail) Mount(doctorID string) error {
	doctorID = strings.TrimSpace(doctorID)
	if doctorID == "" {
		return exceptions.ErrInvariant(nil, "doctor id is required to mount the doctor screen")
	}

	vm.mu.Lock()
	vm.doctorID = doctorID
	vm.mu.Unlock()

	vm.Doctor.Run(viewstate.Command[models.Doctor]{
		Name: CommandFindDoctor,
		Call: func(ctx context.Context) (*models.Doctor, error) {
			return vm.Doctors.Find(ctx, doctorID)
		},
		RedirectOnAuthError: true,
	})
	return nil
}

// CreateAppointment books the mounted doctor for the signed-in patient. Input
// problems end in the Booking error state without any backend call, only a
// missing doctor id is reported as an error.
func (vm *DoctorDetail) CreateAppointment(description, date string) error {
	vm.mu.Lock()
	doctorID := vm.doctorID
	vm.mu.Unlock()
	if doctorID == "" {
		return exceptions.ErrInvariant(nil, "doctor must be mounted before booking")
	}

	form := &requests.AppointmentForm{Date: date, Description: description}
	utils.SanitizeAppointmentForm(form)
	err := utils.ValidateStruct(form)
	if err != nil {
		vm.Booking.Reject(CommandCreateAppointment, exceptions.ErrInputValidation(err))
		return nil
	}

	doctor := vm.Doctor.Snapshot()
	if doctor.Status != viewstate.Success || !doctor.Data.CanBeBooked() || doctor.Data.ID != doctorID {
		vm.Log.Info("DoctorDetail.CreateAppointment doctor cannot be booked",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.String(constvars.LoggingStateKey, doctor.Status.String()),
		)
		vm.Booking.Reject(CommandCreateAppointment, exceptions.ErrDoctorNotAvailable(nil))
		return nil
	}

	vm.Booking.Run(viewstate.Command[models.Appointment]{
		Name: CommandCreateAppointment,
		Call: func(ctx context.Context) (*models.Appointment, error) {
			patient, err := vm.Patients.Me(ctx)
			if err != nil {
				return nil, err
			}
			if patient == nil || patient.ID == "" {
				return nil, exceptions.ErrProfileIncomplete(nil)
			}

			request := utils.BuildCreateAppointmentRequest(patient.ID, doctorID, form)
			return vm.Appointments.Create(ctx, request)
		},
		OnSuccess: func(*models.Appointment) []viewstate.Intent {
			return []viewstate.Intent{viewstate.PopBack()}
		},
		RedirectOnAuthError: true,
	})
	return nil
}
