package patients

import (
	"context"
	"io"
	"medifax-client/internal/app/config"
	"medifax-client/internal/app/contracts"
	"medifax-client/internal/app/services/shared/session"
	"medifax-client/internal/app/services/transport"
	"medifax-client/internal/pkg/constvars"
	"medifax-client/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepository(t *testing.T, router http.Handler) (contracts.PatientRepository, contracts.TokenStore) {
	t.Helper()
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	logger := zap.NewNop()
	tokens := session.NewTokenStore(nil, time.Hour, logger)
	internalConfig := &config.InternalConfig{API: config.API{BaseUrl: server.URL, RequestTimeoutInSeconds: 5}}
	return NewPatientRemoteRepository(transport.NewHttpTransport(internalConfig, tokens, logger), logger), tokens
}

func TestPatientRemoteRepository_Find(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/patients/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch chi.URLParam(r, "id") {
		case "1":
			w.Write([]byte(`{"id":"1","email":"jane@example.com","fullName":"Jane Doe","profileImage":"jane.png"}`))
		case "empty":
			w.WriteHeader(http.StatusNoContent)
		case "null":
			w.Write([]byte(`null`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Not Found"}`))
		}
	})
	repository, tokens := newTestRepository(t, router)
	_, err := tokens.Set(context.Background(), "opaque-token")
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		patient, err := repository.Find(context.Background(), "1")

		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", patient.FullName)
		assert.True(t, patient.HasProfileImage())
	})

	t.Run("Valid Empty Result Is Absent", func(t *testing.T) {
		for _, id := range []string{"empty", "null"} {
			patient, err := repository.Find(context.Background(), id)

			assert.NoError(t, err)
			assert.Nil(t, patient)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := repository.Find(context.Background(), "404")

		assert.Equal(t, exceptions.KindNotFound, exceptions.KindOf(err))
	})

	t.Run("Empty Id", func(t *testing.T) {
		_, err := repository.Find(context.Background(), " ")

		assert.Equal(t, exceptions.KindInvariant, exceptions.KindOf(err))
	})
}

func TestPatientRemoteRepository_Register(t *testing.T) {
	var hits int32
	router := chi.NewRouter()
	router.Post("/api/patients", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		body, _ := io.ReadAll(r.Body)
		if string(body) == `{"email":"taken@example.com","password":"secret1","fullName":"Jane Doe"}` {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"violations":[{"propertyPath":"email","title":"This email is already used."}]}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"7","email":"jane@example.com","fullName":"Jane Doe"}`))
	})
	repository, _ := newTestRepository(t, router)

	t.Run("Created", func(t *testing.T) {
		patient, err := repository.Register(context.Background(), " JANE@example.com ", "secret1", "Jane Doe")

		require.NoError(t, err)
		assert.Equal(t, "7", patient.ID)
		assert.Empty(t, patient.Password)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		_, err := repository.Register(context.Background(), "taken@example.com", "secret1", "Jane Doe")

		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
		assert.Equal(t, "This email is already used.", exceptions.ClientMessageOf(err))
	})

	t.Run("Invalid Input Never Reaches Backend", func(t *testing.T) {
		before := atomic.LoadInt32(&hits)

		_, err := repository.Register(context.Background(), "not-an-email", "secret1", "Jane Doe")

		assert.Equal(t, exceptions.KindValidation, exceptions.KindOf(err))
		assert.Equal(t, before, atomic.LoadInt32(&hits))
	})
}

func TestPatientRemoteRepository_LoginAndMe(t *testing.T) {
	router := chi.NewRouter()
	router.Post("/api/login_check", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"email":"jane@example.com","password":"secret1"}` {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"code":401,"message":"Invalid credentials."}`))
			return
		}
		w.Write([]byte(`{"token":"opaque-token"}`))
	})
	router.Get("/api/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(constvars.HeaderAuthorization) != "Bearer opaque-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id":"1","email":"jane@example.com","fullName":"Jane Doe"}`))
	})

	t.Run("Failed Login Stores Nothing", func(t *testing.T) {
		repository, tokens := newTestRepository(t, router)

		_, err := repository.Login(context.Background(), "jane@example.com", "wrong")
		require.Error(t, err)
		assert.Equal(t, exceptions.KindAuth, exceptions.KindOf(err))
		assert.Equal(t, constvars.ErrClientInvalidEmailOrPassword, exceptions.ClientMessageOf(err))
		assert.False(t, tokens.IsLoggedIn())

		_, err = repository.Me(context.Background())
		assert.Equal(t, exceptions.KindAuth, exceptions.KindOf(err))
	})

	t.Run("Successful Login Returns Session Only", func(t *testing.T) {
		repository, tokens := newTestRepository(t, router)

		session, err := repository.Login(context.Background(), "Jane@Example.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "opaque-token", session.Token)
		assert.False(t, tokens.IsLoggedIn(), "the repository never stores the token")

		_, err = tokens.Set(context.Background(), session.Token)
		require.NoError(t, err)
		patient, err := repository.Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "1", patient.ID)
	})
}

func TestPatientRemoteRepository_MeAbsent(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/api/me", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	repository, tokens := newTestRepository(t, router)
	_, err := tokens.Set(context.Background(), "opaque-token")
	require.NoError(t, err)

	patient, err := repository.Me(context.Background())

	assert.NoError(t, err)
	assert.Nil(t, patient)
}
