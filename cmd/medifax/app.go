package main

import (
	"context"
	"medifax-client/internal/app/config"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/drivers/database"
	"medifax-client/internal/app/drivers/logger"
	"medifax-client/internal/app/services/fakes"
	"medifax-client/internal/app/services/remote/appointments"
	"medifax-client/internal/app/services/remote/doctors"
	"medifax-client/internal/app/services/remote/patients"
	"medifax-client/internal/app/services/shared/redis"
	"medifax-client/internal/app/services/shared/session"
	"medifax-client/internal/app/services/transport"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type application struct {
	Bootstrap    *config.Bootstrap
	Tokens       contracts.TokenStore
	Patients     contracts.PatientRepository
	Doctors      contracts.DoctorRepository
	Appointments contracts.AppointmentRepository
}

// newApplication wires the client. Offline mode runs on in-memory demo data,
// signed in as the demo patient, and never touches the persisted session.
func newApplication(ctx context.Context, offline bool) (*application, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return nil, err
	}

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		zapLogger.Warn("Could not load timezone, keeping local time",
			zap.String("timezone", internalConfig.App.Timezone),
			zap.Error(err),
		)
	} else {
		time.Local = location
	}

	bootstrap := &config.Bootstrap{
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if offline {
		return bootstrapOffline(ctx, bootstrap)
	}

	var persister contracts.TokenPersister
	if internalConfig.Session.Persistence == constvars.SessionPersistenceRedis {
		rdb, err := database.NewRedisClient(driverConfig)
		if err != nil {
			return nil, err
		}
		bootstrap.Redis = rdb

		redisRepository := redis.NewRedisRepository(rdb, zapLogger)
		persister = session.NewRedisTokenPersister(redisRepository, internalConfig.Session.Profile, zapLogger)
	}

	tokens := session.NewTokenStore(persister, time.Duration(internalConfig.Session.DefaultTTLInHours)*time.Hour, zapLogger)
	err = tokens.Restore(utils.WithRequestID(ctx))
	if err != nil {
		zapLogger.Warn("Could not restore the saved session, continuing signed out", zap.Error(err))
	}

	httpTransport := transport.NewHttpTransport(internalConfig, tokens, zapLogger)

	return &application{
		Bootstrap:    bootstrap,
		Tokens:       tokens,
		Patients:     patients.NewPatientRemoteRepository(httpTransport, zapLogger),
		Doctors:      doctors.NewDoctorRemoteRepository(httpTransport, zapLogger),
		Appointments: appointments.NewAppointmentRemoteRepository(httpTransport, zapLogger),
	}, nil
}

func bootstrapOffline(ctx context.Context, bootstrap *config.Bootstrap) (*application, error) {
	tokens := session.NewTokenStore(nil, time.Hour, bootstrap.Logger)

	fakePatients := fakes.NewFakePatientRepository(tokens)
	fakePatients.Seed(fakes.DemoPatient(), fakes.DemoPatientPassword)

	info, err := fakePatients.Login(ctx, fakes.DemoPatientEmail, fakes.DemoPatientPassword)
	if err != nil {
		return nil, err
	}
	_, err = tokens.Set(ctx, info.Token)
	if err != nil {
		return nil, err
	}

	return &application{
		Bootstrap:    bootstrap,
		Tokens:       tokens,
		Patients:     fakePatients,
		Doctors:      fakes.NewFakeDoctorRepository(fakes.DemoDoctors()...),
		Appointments: fakes.NewFakeAppointmentRepository(),
	}, nil
}

func (a *application) Shutdown(ctx context.Context) error {
	return a.Bootstrap.Shutdown(ctx)
}
