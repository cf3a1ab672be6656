package appointments

import (
	"context"
	"errors"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/models"
	"medifax-client/internal/app/services/transport"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/dto/requests"
	"medifax-client/internal/pkg/dto/responses"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentRemoteRepository struct {
	Transport contracts.Transport
	Log       *zap.Logger
}

func NewAppointmentRemoteRepository(transport contracts.Transport, logger *zap.Logger) contracts.AppointmentRepository {
	return &appointmentRemoteRepository{
		Transport: transport,
		Log:       logger,
	}
}

func (r *appointmentRemoteRepository) Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("appointmentRemoteRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request == nil {
		return nil, exceptions.ErrInvariant(nil, "appointment request is required")
	}

	err := utils.ValidateStruct(request)
	if err != nil {
		r.Log.Info("appointmentRemoteRepository.Create rejected invalid input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := r.Transport.Invoke(ctx, constvars.EndpointAppointments, constvars.MethodPost, request, true)
	if err != nil {
		r.Log.Error("appointmentRemoteRepository.Create error invoking transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, request.Doctor.ID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := transport.Decode[responses.Appointment](raw, constvars.ResourceAppointment)
	if err == nil && response == nil {
		err = exceptions.ErrDecodeResponse(errors.New("empty body for created appointment"), constvars.ResourceAppointment)
	}
	if err != nil {
		r.Log.Error("appointmentRemoteRepository.Create error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	r.Log.Info("appointmentRemoteRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
	)
	return utils.MapAppointmentResponseToModel(response), nil
}

func (r *appointmentRemoteRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("appointmentRemoteRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	raw, err := r.Transport.Invoke(ctx, constvars.EndpointAppointments, constvars.MethodGet, nil, true)
	if err != nil {
		r.Log.Error("appointmentRemoteRepository.FindAll error invoking transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := transport.DecodeList[responses.Appointment](raw, constvars.ResourceAppointment)
	if err != nil {
		r.Log.Error("appointmentRemoteRepository.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	r.Log.Info("appointmentRemoteRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingAppointmentCountKey, len(response)),
	)
	return utils.MapAppointmentResponsesToModels(response), nil
}
