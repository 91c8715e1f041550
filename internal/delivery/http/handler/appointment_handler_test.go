package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/delivery/http/middleware"
	"healthcareplus/internal/domain/entity"
	"healthcareplus/internal/usecase"
	"healthcareplus/pkg/response"
	"healthcareplus/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentUsecase struct {
	bookFn         func(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	bookPaidFn     func(ctx context.Context, actor entity.Actor, patientID uuid.UUID, req *dto.BookPaidAppointmentRequest) (*dto.AppointmentResponse, error)
	updateStatusFn func(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error)
	cancelFn       func(ctx context.Context, actor entity.Actor, id uuid.UUID) error
}

func (f *fakeAppointmentUsecase) Book(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	return f.bookFn(ctx, actor, req)
}

func (f *fakeAppointmentUsecase) BookPaid(ctx context.Context, actor entity.Actor, patientID uuid.UUID, req *dto.BookPaidAppointmentRequest) (*dto.AppointmentResponse, error) {
	return f.bookPaidFn(ctx, actor, patientID, req)
}

func (f *fakeAppointmentUsecase) UpdateStatus(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
	return f.updateStatusFn(ctx, actor, id, status)
}

func (f *fakeAppointmentUsecase) Cancel(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
	return f.cancelFn(ctx, actor, id)
}

func (f *fakeAppointmentUsecase) Edit(ctx context.Context, actor entity.Actor, id uuid.UUID, req *dto.EditAppointmentRequest) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (f *fakeAppointmentUsecase) GetByID(ctx context.Context, actor entity.Actor, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return nil, nil
}

func (f *fakeAppointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]dto.AppointmentResponse, error) {
	return nil, nil
}

func (f *fakeAppointmentUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID, date *string) ([]dto.AppointmentResponse, error) {
	return nil, nil
}

func (f *fakeAppointmentUsecase) ListAll(ctx context.Context, portal entity.Portal) ([]dto.AppointmentResponse, error) {
	return nil, nil
}

func authedRequest(method, target string, body interface{}, actor entity.Actor) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)

	ctx := context.WithValue(req.Context(), middleware.UserIDKey, actor.ID)
	ctx = context.WithValue(ctx, middleware.RoleKey, actor.Role)
	return req.WithContext(ctx)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var res response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return res
}

func TestBookSuccess(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	fake := &fakeAppointmentUsecase{
		bookFn: func(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			assert.Equal(t, patientID, actor.ID)
			assert.Equal(t, patientID, req.PatientID)
			assert.Equal(t, doctorID, req.DoctorID)
			return &dto.AppointmentResponse{
				ID:            uuid.New(),
				PatientID:     req.PatientID,
				DoctorID:      req.DoctorID,
				Status:        "scheduled",
				DisplayStatus: "Scheduled",
			}, nil
		},
	}
	handler := NewAppointmentHandler(fake, nil, validator.NewValidator())

	body := dto.BookAppointmentRequest{
		DoctorID:        doctorID,
		AppointmentDate: "2030-01-15",
		AppointmentTime: "10:00",
	}
	req := authedRequest(http.MethodPost, "/api/v1/patient/appointments", body, entity.Actor{ID: patientID, Role: entity.RolePatient})
	rec := httptest.NewRecorder()
	handler.Book(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	res := decodeResponse(t, rec)
	assert.True(t, res.Success)
}

func TestBookConflictMapsTo409(t *testing.T) {
	conflicts := []error{usecase.ErrSlotTaken, usecase.ErrDoctorFullyBooked, usecase.ErrDoctorNotBookable}

	for _, conflict := range conflicts {
		fake := &fakeAppointmentUsecase{
			bookFn: func(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
				return nil, conflict
			},
		}
		handler := NewAppointmentHandler(fake, nil, validator.NewValidator())

		body := dto.BookAppointmentRequest{
			DoctorID:        uuid.New(),
			AppointmentDate: "2030-01-15",
			AppointmentTime: "10:00",
		}
		req := authedRequest(http.MethodPost, "/api/v1/patient/appointments", body, entity.Actor{ID: uuid.New(), Role: entity.RolePatient})
		rec := httptest.NewRecorder()
		handler.Book(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code, "expected 409 for %v", conflict)
		assert.False(t, decodeResponse(t, rec).Success)
	}
}

func TestBookPastDateMapsTo400(t *testing.T) {
	fake := &fakeAppointmentUsecase{
		bookFn: func(ctx context.Context, actor entity.Actor, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrPastDate
		},
	}
	handler := NewAppointmentHandler(fake, nil, validator.NewValidator())

	body := dto.BookAppointmentRequest{
		DoctorID:        uuid.New(),
		AppointmentDate: "2020-01-15",
		AppointmentTime: "10:00",
	}
	req := authedRequest(http.MethodPost, "/api/v1/patient/appointments", body, entity.Actor{ID: uuid.New(), Role: entity.RolePatient})
	rec := httptest.NewRecorder()
	handler.Book(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookValidationFailure(t *testing.T) {
	handler := NewAppointmentHandler(&fakeAppointmentUsecase{}, nil, validator.NewValidator())

	// missing doctor_id and times
	req := authedRequest(http.MethodPost, "/api/v1/patient/appointments", map[string]string{}, entity.Actor{ID: uuid.New(), Role: entity.RolePatient})
	rec := httptest.NewRecorder()
	handler.Book(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookPaidVerificationFailureMapsTo402(t *testing.T) {
	fake := &fakeAppointmentUsecase{
		bookPaidFn: func(ctx context.Context, actor entity.Actor, patientID uuid.UUID, req *dto.BookPaidAppointmentRequest) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrPaymentVerificationFailed
		},
	}
	handler := NewAppointmentHandler(fake, nil, validator.NewValidator())

	body := dto.BookPaidAppointmentRequest{
		BookAppointmentRequest: dto.BookAppointmentRequest{
			DoctorID:        uuid.New(),
			AppointmentDate: "2030-01-15",
			AppointmentTime: "10:00",
		},
		GatewayOrderID:   "order_abc",
		GatewayPaymentID: "pay_xyz",
		GatewaySignature: "bad_signature",
		Amount:           "500.00",
	}
	req := authedRequest(http.MethodPost, "/api/v1/patient/appointments/paid", body, entity.Actor{ID: uuid.New(), Role: entity.RolePatient})
	rec := httptest.NewRecorder()
	handler.BookPaid(rec, req)

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestUpdateStatusInvalidTransitionMapsTo409(t *testing.T) {
	fake := &fakeAppointmentUsecase{
		updateStatusFn: func(ctx context.Context, actor entity.Actor, id uuid.UUID, status string) (*dto.AppointmentResponse, error) {
			return nil, usecase.ErrInvalidTransition
		},
	}
	handler := NewAppointmentHandler(fake, nil, validator.NewValidator())

	appointmentID := uuid.New()
	req := authedRequest(http.MethodPut, "/api/v1/doctor/appointments/"+appointmentID.String()+"/status",
		dto.UpdateAppointmentStatusRequest{Status: "completed"},
		entity.Actor{ID: uuid.New(), Role: entity.RoleDoctor})
	req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
	rec := httptest.NewRecorder()
	handler.UpdateStatus(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelErrorMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{usecase.ErrAppointmentNotFound, http.StatusNotFound},
		{usecase.ErrNotAppointmentOwner, http.StatusForbidden},
		{usecase.ErrAlreadyCancelled, http.StatusConflict},
		{usecase.ErrInvalidTransition, http.StatusConflict},
		{nil, http.StatusOK},
	}

	for _, tt := range tests {
		fake := &fakeAppointmentUsecase{
			cancelFn: func(ctx context.Context, actor entity.Actor, id uuid.UUID) error {
				return tt.err
			},
		}
		handler := NewAppointmentHandler(fake, nil, validator.NewValidator())

		appointmentID := uuid.New()
		req := authedRequest(http.MethodPost, "/api/v1/patient/appointments/"+appointmentID.String()+"/cancel", nil,
			entity.Actor{ID: uuid.New(), Role: entity.RolePatient})
		req = mux.SetURLVars(req, map[string]string{"id": appointmentID.String()})
		rec := httptest.NewRecorder()
		handler.Cancel(rec, req)

		assert.Equal(t, tt.code, rec.Code, "for error %v", tt.err)
	}
}

func TestCancelInvalidID(t *testing.T) {
	handler := NewAppointmentHandler(&fakeAppointmentUsecase{}, nil, validator.NewValidator())

	req := authedRequest(http.MethodPost, "/api/v1/patient/appointments/not-a-uuid/cancel", nil,
		entity.Actor{ID: uuid.New(), Role: entity.RolePatient})
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()
	handler.Cancel(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookWithoutAuthContext(t *testing.T) {
	handler := NewAppointmentHandler(&fakeAppointmentUsecase{}, nil, validator.NewValidator())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patient/appointments", bytes.NewBufferString("{}"))
	rec := httptest.NewRecorder()
	handler.Book(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
