package usecase

import (
	"context"
	"errors"

	"healthcareplus/internal/converter"
	"healthcareplus/internal/delivery/dto"
	"healthcareplus/internal/domain/repository"
	"healthcareplus/internal/infrastructure/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentUsecase interface {
	// CreateOrder opens a gateway order for checkout. No local record is
	// written; payments only exist once a verified booking commits.
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*dto.PaymentResponse, error)
	ListAll(ctx context.Context, patientNameSearch string) (*dto.PaymentListResponse, error)
}

type paymentUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	paymentRepo repository.PaymentRepository
	gateway     payment.Gateway
}

func NewPaymentUsecase(db *gorm.DB, log *logrus.Logger, paymentRepo repository.PaymentRepository, gateway payment.Gateway) PaymentUsecase {
	return &paymentUsecase{db: db, log: log, paymentRepo: paymentRepo, gateway: gateway}
}

func (u *paymentUsecase) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || amount.IsNegative() || amount.IsZero() {
		return nil, ErrInvalidAmount
	}

	order, err := u.gateway.CreateOrder(ctx, amount, "INR", req.Receipt)
	if err != nil {
		u.log.WithError(err).Error("failed to create gateway order")
		return nil, err
	}

	return &dto.OrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   order.Status,
	}, nil
}

func (u *paymentUsecase) GetByAppointmentID(ctx context.Context, appointmentID uuid.UUID) (*dto.PaymentResponse, error) {
	pay, err := u.paymentRepo.FindByAppointmentID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.WithError(err).Error("failed to find payment")
		return nil, err
	}
	if pay == nil {
		return nil, ErrPaymentNotFound
	}
	return converter.PaymentToResponse(pay), nil
}

func (u *paymentUsecase) ListAll(ctx context.Context, patientNameSearch string) (*dto.PaymentListResponse, error) {
	payments, err := u.paymentRepo.FindAll(u.db.WithContext(ctx), patientNameSearch)
	if err != nil {
		u.log.WithError(err).Error("failed to list payments")
		return nil, err
	}
	responses := converter.PaymentsToResponses(payments)
	return &dto.PaymentListResponse{Payments: responses, Total: len(responses)}, nil
}
