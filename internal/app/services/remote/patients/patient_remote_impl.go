package patients

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
	"net/url"
	"strings"

	"go.uber.org/zap"
)

type patientRemoteRepository struct {
	Transport contracts.Transport
	Log       *zap.Logger
}

func NewPatientRemoteRepository(transport contracts.Transport, logger *zap.Logger) contracts.PatientRepository {
	return &patientRemoteRepository{
		Transport: transport,
		Log:       logger,
	}
}

func (r *patientRemoteRepository) Find(ctx context.Context, patientID string) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("patientRemoteRepository.Find called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if strings.TrimSpace(patientID) == "" {
		return nil, exceptions.ErrInvariant(nil, "patient id is required")
	}

	raw, err := r.Transport.Invoke(ctx, constvars.EndpointPatients+"/"+url.PathEscape(patientID), constvars.MethodGet, nil, true)
	if err != nil {
		r.Log.Error("patientRemoteRepository.Find error invoking transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := transport.Decode[responses.Patient](raw, constvars.ResourcePatient)
	if err != nil {
		r.Log.Error("patientRemoteRepository.Find error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if response == nil {
		r.Log.Info("patientRemoteRepository.Find succeeded with empty result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	}

	r.Log.Info("patientRemoteRepository.Find succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, response.ID),
	)
	return utils.MapPatientResponseToModel(response), nil
}

func (r *patientRemoteRepository) Register(ctx context.Context, email, password, fullName string) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("patientRemoteRepository.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.RegisterPatient{
		Email:    email,
		Password: password,
		FullName: fullName,
	}
	utils.SanitizeRegisterPatientRequest(request)

	err := utils.ValidateStruct(request)
	if err != nil {
		r.Log.Info("patientRemoteRepository.Register rejected invalid input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := r.Transport.Invoke(ctx, constvars.EndpointPatients, constvars.MethodPost, request, false)
	if err != nil {
		r.Log.Error("patientRemoteRepository.Register error invoking transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := transport.Decode[responses.Patient](raw, constvars.ResourcePatient)
	if err == nil && response == nil {
		err = exceptions.ErrDecodeResponse(errors.New("empty body for created patient"), constvars.ResourcePatient)
	}
	if err != nil {
		r.Log.Error("patientRemoteRepository.Register error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	r.Log.Info("patientRemoteRepository.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, response.ID),
	)
	return utils.MapPatientResponseToModel(response), nil
}

// Login only returns the session, storing the token is up to the caller.
func (r *patientRemoteRepository) Login(ctx context.Context, email, password string) (*models.SessionInfo, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("patientRemoteRepository.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.LoginCheck{
		Email:    email,
		Password: password,
	}
	utils.SanitizeLoginCheckRequest(request)

	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	raw, err := r.Transport.Invoke(ctx, constvars.EndpointLoginCheck, constvars.MethodPost, request, false)
	if err != nil {
		if exceptions.IsKind(err, exceptions.KindAuth) {
			r.Log.Info("patientRemoteRepository.Login invalid credentials",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return nil, exceptions.ErrInvalidEmailOrPassword(err)
		}
		r.Log.Error("patientRemoteRepository.Login error invoking transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := transport.Decode[responses.LoginCheck](raw, constvars.ResourceSession)
	if err == nil && response == nil {
		err = exceptions.ErrDecodeResponse(errors.New("empty body for login"), constvars.ResourceSession)
	}
	if err != nil {
		r.Log.Error("patientRemoteRepository.Login error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session, err := utils.ParseSessionToken(response.Token)
	if err != nil {
		r.Log.Error("patientRemoteRepository.Login error reading token claims",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	r.Log.Info("patientRemoteRepository.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenSubjectKey, session.Subject),
	)
	return session, nil
}

// Me returns (nil, nil) when the session is valid but the backend has no
// patient profile behind it.
func (r *patientRemoteRepository) Me(ctx context.Context) (*models.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	r.Log.Info("patientRemoteRepository.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	raw, err := r.Transport.Invoke(ctx, constvars.EndpointMe, constvars.MethodGet, nil, true)
	if err != nil {
		r.Log.Error("patientRemoteRepository.Me error invoking transport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorKindKey, string(exceptions.KindOf(err))),
			zap.Error(err),
		)
		return nil, err
	}

	response, err := transport.Decode[responses.Patient](raw, constvars.ResourcePatient)
	if err != nil {
		r.Log.Error("patientRemoteRepository.Me error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if response == nil {
		return nil, nil
	}

	r.Log.Info("patientRemoteRepository.Me succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, response.ID),
	)
	return utils.MapPatientResponseToModel(response), nil
}
