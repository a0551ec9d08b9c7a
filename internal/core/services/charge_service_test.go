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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ChargeRepository ---
type MockChargeRepository struct {
	mock.Mock
}

func (m *MockChargeRepository) FindChargeByID(ctx context.Context, chargeID string) (*domain.Charge, error) {
	args := m.Called(ctx, chargeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Charge), args.Error(1)
}

func (m *MockChargeRepository) ListCharges(ctx context.Context, limit int, offset int) ([]domain.Charge, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Charge), args.Error(1)
}

func (m *MockChargeRepository) SaveCharge(ctx context.Context, charge domain.Charge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockChargeRepository) UpdateCharge(ctx context.Context, charge domain.Charge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockChargeRepository) DeleteCharge(ctx context.Context, chargeID string) error {
	args := m.Called(ctx, chargeID)
	return args.Error(0)
}

// --- Mock ResidentReader ---
type MockResidentReader struct {
	mock.Mock
}

func (m *MockResidentReader) FindResidentByID(ctx context.Context, residentID string) (*domain.Resident, error) {
	args := m.Called(ctx, residentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resident), args.Error(1)
}

func (m *MockResidentReader) ListResidents(ctx context.Context, limit int, offset int) ([]domain.Resident, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resident), args.Error(1)
}

// --- Test Suite ---
type ChargeServiceTestSuite struct {
	suite.Suite
	mockRepo      *MockChargeRepository
	mockResidents *MockResidentReader
	service       portssvc.ChargeSvcFacade
}

func (suite *ChargeServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockChargeRepository)
	suite.mockResidents = new(MockResidentReader)
	suite.service = services.NewChargeService(suite.mockRepo, suite.mockResidents)
}

// --- Test Cases ---

func (suite *ChargeServiceTestSuite) TestCreateCharge_DefaultsToPending() {
	ctx := context.Background()
	req := dto.ChargeRequest{
		ResidentID:  uuid.NewString(),
		Description: "Taxa condominial Julho",
		Amount:      decimal.RequireFromString("450.00"),
		DueDate:     "2025-07-10",
	}

	suite.mockRepo.On("SaveCharge", ctx, mock.MatchedBy(func(c domain.Charge) bool {
		return c.Status == domain.ChargePending && c.ResidentID == req.ResidentID
	})).Return(nil).Once()

	charge, err := suite.service.CreateCharge(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.ChargePending, charge.Status)
	suite.NotEmpty(charge.ChargeID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChargeServiceTestSuite) TestCreateCharge_KeepsSettlementWhenPending() {
	// Charges keep a supplied settlement date regardless of status. Only
	// payments clear it on normalization.
	ctx := context.Background()
	req := dto.ChargeRequest{
		ResidentID:     uuid.NewString(),
		Description:    "Taxa extra",
		Amount:         decimal.RequireFromString("120.00"),
		DueDate:        "2025-07-10",
		SettlementDate: "2025-07-05",
		Status:         "pendente",
	}

	suite.mockRepo.On("SaveCharge", ctx, mock.MatchedBy(func(c domain.Charge) bool {
		return c.Status == domain.ChargePending && c.SettlementDate == "2025-07-05"
	})).Return(nil).Once()

	charge, err := suite.service.CreateCharge(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("2025-07-05", charge.SettlementDate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ChargeServiceTestSuite) TestCreateCharge_MissingResidentFails() {
	ctx := context.Background()
	req := dto.ChargeRequest{
		Description: "Taxa condominial",
		Amount:      decimal.RequireFromString("450.00"),
		DueDate:     "2025-07-10",
	}

	charge, err := suite.service.CreateCharge(ctx, req)

	suite.Require().Error(err)
	suite.Nil(charge)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal("morador_id", vErr.Field)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCharge")
}

func (suite *ChargeServiceTestSuite) TestUpdateCharge_NotFound() {
	ctx := context.Background()
	chargeID := uuid.NewString()

	suite.mockRepo.On("FindChargeByID", ctx, chargeID).Return(nil, apperrors.ErrNotFound).Once()

	charge, err := suite.service.UpdateCharge(ctx, chargeID, dto.ChargeRequest{
		ResidentID:  uuid.NewString(),
		Description: "Taxa",
		Amount:      decimal.RequireFromString("100.00"),
		DueDate:     "2025-07-01",
	})

	suite.Require().Error(err)
	suite.Nil(charge)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateCharge")
}

func (suite *ChargeServiceTestSuite) TestReminderMessage_Success() {
	ctx := context.Background()
	chargeID := uuid.NewString()
	residentID := uuid.NewString()

	charge := &domain.Charge{
		ChargeID:    chargeID,
		ResidentID:  residentID,
		Description: "Taxa condominial Julho",
		Amount:      decimal.RequireFromString("1234.50"),
		DueDate:     "2025-07-10",
		Status:      domain.ChargePending,
	}
	resident := &domain.Resident{
		ResidentID: residentID,
		Name:       "Maria Souza",
		CPF:        "123.456.789-00",
		Unit:       "Apto 101",
	}

	suite.mockRepo.On("FindChargeByID", ctx, chargeID).Return(charge, nil).Once()
	suite.mockResidents.On("FindResidentByID", ctx, residentID).Return(resident, nil).Once()

	message, err := suite.service.ReminderMessage(ctx, chargeID)

	suite.Require().NoError(err)
	suite.Contains(message, "*Maria Souza* (CPF: 123.456.789-00)")
	suite.Contains(message, "*10/07/2025*")
	suite.Contains(message, "*R$ 1.234,50*")
	suite.Contains(message, "Caso o pagamento já tenha sido realizado, por favor, desconsidere")
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockResidents.AssertExpectations(suite.T())
}

func (suite *ChargeServiceTestSuite) TestReminderMessage_WithSettlementDate() {
	ctx := context.Background()
	chargeID := uuid.NewString()
	residentID := uuid.NewString()

	charge := &domain.Charge{
		ChargeID:       chargeID,
		ResidentID:     residentID,
		Description:    "Taxa condominial",
		Amount:         decimal.RequireFromString("450.00"),
		DueDate:        "2025-07-10",
		SettlementDate: "2025-07-08",
		Status:         domain.ChargePending,
	}
	resident := &domain.Resident{
		ResidentID: residentID,
		Name:       "João Lima",
		Unit:       "Apto 202",
	}

	suite.mockRepo.On("FindChargeByID", ctx, chargeID).Return(charge, nil).Once()
	suite.mockResidents.On("FindResidentByID", ctx, residentID).Return(resident, nil).Once()

	message, err := suite.service.ReminderMessage(ctx, chargeID)

	suite.Require().NoError(err)
	suite.Contains(message, "*João Lima*,")
	suite.NotContains(message, "CPF")
	suite.Contains(message, "realizado em 08/07/2025")
}

func (suite *ChargeServiceTestSuite) TestReminderMessage_ChargeNotFound() {
	ctx := context.Background()
	chargeID := uuid.NewString()

	suite.mockRepo.On("FindChargeByID", ctx, chargeID).Return(nil, apperrors.ErrNotFound).Once()

	message, err := suite.service.ReminderMessage(ctx, chargeID)

	suite.Require().Error(err)
	suite.Empty(message)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockResidents.AssertNotCalled(suite.T(), "FindResidentByID")
}

// --- Run Suite ---
func TestChargeService(t *testing.T) {
	suite.Run(t, new(ChargeServiceTestSuite))
}
