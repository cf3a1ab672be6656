package doctors

import (
	"context"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/models"
	"medifax-client/internal/app/services/transport"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/dto/responses"
	"medifax-client/internal/pkg/exceptions"
	"medifax-client/internal/pkg/utils"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

type doctorRemoteRepository struct {
	Transport contracts.Transport
	Log       *zap.Logger
}

func NewDoctorRemoteRepository(transport contracts.Transport, logger *zap.Logger) contracts.DoctorRepository {
	return &doctorRemoteRepository{
		Transport: transport,
		Log:       logger,
	}
}

func (r *doctorRemoteRepository) Find(ctx context.Context, doctorID string) (*models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("doctorRemoteRepository.Find called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	if strings.TrimSpace(doctorID) == "" {
		return nil, exceptions.ErrInvariant(nil, "doctor id is required")
	}

	raw, err := r.Transport.Invoke(ctx, constvars.EndpointDoctors+"/"+url.PathEscape(doctorID), constvars.MethodGet, nil, true)
	if err != nil {
		r.Log.Error("doctorRemoteRepository.Find error invoking transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := transport.Decode[responses.Doctor](raw, constvars.ResourceDoctor)
	if err != nil {
		r.Log.Error("doctorRemoteRepository.Find error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if response == nil {
		return nil, nil
	}

	r.Log.Info("doctorRemoteRepository.Find succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, response.ID),
	)
	return utils.MapDoctorResponseToModel(response), nil
}

func (r *doctorRemoteRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("doctorRemoteRepository.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	raw, err := r.Transport.Invoke(ctx, constvars.EndpointDoctors, constvars.MethodGet, nil, true)
	if err != nil {
		r.Log.Error("doctorRemoteRepository.FindAll error invoking transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := transport.DecodeList[responses.Doctor](raw, constvars.ResourceDoctor)
	if err != nil {
		r.Log.Error("doctorRemoteRepository.FindAll error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	r.Log.Info("doctorRemoteRepository.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingDoctorCountKey, len(response)),
	)
	return utils.MapDoctorResponsesToModels(response), nil
}
