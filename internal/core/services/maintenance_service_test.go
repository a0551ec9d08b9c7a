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

// --- Mock MaintenanceRepository ---
type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) FindMaintenanceByID(ctx context.Context, maintenanceID string) (*domain.MaintenanceTask, error) {
	args := m.Called(ctx, maintenanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MaintenanceTask), args.Error(1)
}

func (m *MockMaintenanceRepository) ListMaintenances(ctx context.Context, limit int, offset int) ([]domain.MaintenanceTask, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MaintenanceTask), args.Error(1)
}

func (m *MockMaintenanceRepository) ListUpcomingMaintenances(ctx context.Context, limit int) ([]domain.UpcomingMaintenance, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UpcomingMaintenance), args.Error(1)
}

func (m *MockMaintenanceRepository) SaveMaintenance(ctx context.Context, task domain.MaintenanceTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) UpdateMaintenance(ctx context.Context, task domain.MaintenanceTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockMaintenanceRepository) DeleteMaintenance(ctx context.Context, maintenanceID string) error {
	args := m.Called(ctx, maintenanceID)
	return args.Error(0)
}

// --- Test Suite ---
type MaintenanceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMaintenanceRepository
	service  portssvc.MaintenanceSvcFacade
}

func (suite *MaintenanceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMaintenanceRepository)
	suite.service = services.NewMaintenanceService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *MaintenanceServiceTestSuite) TestCreateMaintenance_NoEstimate() {
	ctx := context.Background()
	req := dto.MaintenanceRequest{
		Description:   "Revisão do gerador",
		ScheduledDate: "2025-08-01",
	}

	suite.mockRepo.On("SaveMaintenance", ctx, mock.MatchedBy(func(t domain.MaintenanceTask) bool {
		return t.Status == domain.MaintenancePending && !t.EstimatedCost.Valid
	})).Return(nil).Once()

	task, err := suite.service.CreateMaintenance(ctx, req)

	suite.Require().NoError(err)
	suite.False(task.EstimatedCost.Valid)
	suite.Equal(domain.MaintenancePending, task.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestCreateMaintenance_WithEstimate() {
	ctx := context.Background()
	cost := decimal.RequireFromString("0.00")
	req := dto.MaintenanceRequest{
		Description:   "Troca de lâmpadas",
		ScheduledDate: "2025-08-10",
		Status:        "agendado",
		EstimatedCost: &cost,
	}

	suite.mockRepo.On("SaveMaintenance", ctx, mock.MatchedBy(func(t domain.MaintenanceTask) bool {
		// An explicit zero estimate stays present; it is not "no estimate".
		return t.EstimatedCost.Valid && t.EstimatedCost.Decimal.IsZero() && t.Status == domain.MaintenanceScheduled
	})).Return(nil).Once()

	task, err := suite.service.CreateMaintenance(ctx, req)

	suite.Require().NoError(err)
	suite.True(task.EstimatedCost.Valid)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestCreateMaintenance_MissingScheduledDateFails() {
	ctx := context.Background()
	req := dto.MaintenanceRequest{
		Description: "Pintura da fachada",
	}

	task, err := suite.service.CreateMaintenance(ctx, req)

	suite.Require().Error(err)
	suite.Nil(task)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var vErr *apperrors.ValidationError
	suite.Require().True(errors.As(err, &vErr))
	suite.Equal("data_agendada", vErr.Field)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMaintenance")
}

func (suite *MaintenanceServiceTestSuite) TestNextMaintenances_FillsSupplierLabel() {
	ctx := context.Background()
	tasks := []domain.UpcomingMaintenance{
		{
			MaintenanceTask: domain.MaintenanceTask{
				MaintenanceID: uuid.NewString(),
				Description:   "Limpeza da caixa d'água",
				ScheduledDate: "2025-08-02",
				Status:        domain.MaintenanceScheduled,
			},
			SupplierName: "Hidro Serviços",
		},
		{
			MaintenanceTask: domain.MaintenanceTask{
				MaintenanceID: uuid.NewString(),
				Description:   "Poda das árvores",
				ScheduledDate: "2025-08-05",
				Status:        domain.MaintenancePending,
			},
		},
	}

	suite.mockRepo.On("ListUpcomingMaintenances", ctx, 5).Return(tasks, nil).Once()

	result, err := suite.service.NextMaintenances(ctx, 5)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Hidro Serviços", result[0].SupplierName)
	suite.Equal(domain.NoSupplierLabel, result[1].SupplierName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestNextMaintenances_DefaultLimit() {
	ctx := context.Background()

	suite.mockRepo.On("ListUpcomingMaintenances", ctx, 5).
		Return([]domain.UpcomingMaintenance{}, nil).Once()

	result, err := suite.service.NextMaintenances(ctx, 0)

	suite.Require().NoError(err)
	suite.Empty(result)
	suite.NotNil(result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestDeleteMaintenance_NotFound() {
	ctx := context.Background()
	maintenanceID := uuid.NewString()

	suite.mockRepo.On("DeleteMaintenance", ctx, maintenanceID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteMaintenance(ctx, maintenanceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestMaintenanceService(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}
