package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	portssvc "github.com/mpcoutinho/condo_admin_app/internal/core/ports/services"
	"github.com/mpcoutinho/condo_admin_app/internal/core/services"
	"github.com/mpcoutinho/condo_admin_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, limit int, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

// --- Test Suite ---
type PaymentServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPaymentRepository
	service  portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPaymentRepository)
	suite.service = services.NewPaymentService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *PaymentServiceTestSuite) TestCreatePayment_Success() {
	ctx := context.Background()
	req := dto.PaymentRequest{
		Description:    "Limpeza da piscina",
		Amount:         decimal.RequireFromString("350.00"),
		DueDate:        "2025-07-10",
		SettlementDate: "2025-07-08",
		Status:         "pago",
		Method:         "pix",
	}

	suite.mockRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Description == req.Description &&
			p.Status == domain.PaymentPaid &&
			p.SettlementDate == "2025-07-08" &&
			p.Method == domain.MethodPix
	})).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.Equal(domain.PaymentPaid, payment.Status)
	suite.Equal("2025-07-08", payment.SettlementDate)
	suite.NotEmpty(payment.PaymentID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_DefaultsToPending() {
	ctx := context.Background()
	req := dto.PaymentRequest{
		Description: "Manutenção do elevador",
		Amount:      decimal.RequireFromString("1200.00"),
		DueDate:     "2025-07-20",
	}

	suite.mockRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentPending
	})).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPending, payment.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_ClearsSettlementWhenNotPaid() {
	ctx := context.Background()
	req := dto.PaymentRequest{
		Description:    "Jardinagem",
		Amount:         decimal.RequireFromString("500.00"),
		DueDate:        "2025-07-15",
		SettlementDate: "2025-07-01",
		Status:         "pendente",
	}

	suite.mockRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.Status == domain.PaymentPending && p.SettlementDate == ""
	})).Return(nil).Once()

	payment, err := suite.service.CreatePayment(ctx, req)

	suite.Require().NoError(err)
	suite.Empty(payment.SettlementDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_PaidWithoutSettlementFails() {
	ctx := context.Background()
	req := dto.PaymentRequest{
		Description: "Dedetização",
		Amount:      decimal.RequireFromString("800.00"),
		DueDate:     "2025-07-05",
		Status:      "pago",
	}

	payment, err := suite.service.CreatePayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal(apperrors.CodeMissingSettlementDate, vErr.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestCreatePayment_NegativeAmountFails() {
	ctx := context.Background()
	req := dto.PaymentRequest{
		Description: "Conserto do portão",
		Amount:      decimal.RequireFromString("-10.00"),
		DueDate:     "2025-07-05",
	}

	payment, err := suite.service.CreatePayment(ctx, req)

	suite.Require().Error(err)
	suite.Nil(payment)

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal(apperrors.CodeInvalidAmount, vErr.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayment")
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_Success() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	existing := &domain.Payment{
		PaymentID:   paymentID,
		Description: "Limpeza",
		Amount:      decimal.RequireFromString("300.00"),
		DueDate:     "2025-07-10",
		Status:      domain.PaymentPending,
	}
	req := dto.PaymentRequest{
		Description:    "Limpeza",
		Amount:         decimal.RequireFromString("300.00"),
		DueDate:        "2025-07-10",
		SettlementDate: "2025-07-09",
		Status:         "pago",
		Method:         "boleto",
	}

	suite.mockRepo.On("FindPaymentByID", ctx, paymentID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdatePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.PaymentID == paymentID && p.Status == domain.PaymentPaid && p.SettlementDate == "2025-07-09"
	})).Return(nil).Once()

	payment, err := suite.service.UpdatePayment(ctx, paymentID, req)

	suite.Require().NoError(err)
	suite.Equal(paymentID, payment.PaymentID)
	suite.Equal(domain.PaymentPaid, payment.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_NotFound() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	suite.mockRepo.On("FindPaymentByID", ctx, paymentID).Return(nil, apperrors.ErrNotFound).Once()

	payment, err := suite.service.UpdatePayment(ctx, paymentID, dto.PaymentRequest{
		Description: "Qualquer",
		Amount:      decimal.RequireFromString("10.00"),
		DueDate:     "2025-07-01",
	})

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePayment")
}

func (suite *PaymentServiceTestSuite) TestListPayments_Empty() {
	ctx := context.Background()
	var expected []domain.Payment

	suite.mockRepo.On("ListPayments", ctx, 20, 0).Return(expected, nil).Once()

	payments, err := suite.service.ListPayments(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.Empty(payments)
	suite.NotNil(payments)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestListPayments_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListPayments", ctx, 20, 0).Return(nil, expectedErr).Once()

	payments, err := suite.service.ListPayments(ctx, 20, 0)

	suite.Require().Error(err)
	suite.Nil(payments)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_NotFound() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	suite.mockRepo.On("DeletePayment", ctx, paymentID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeletePayment(ctx, paymentID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
