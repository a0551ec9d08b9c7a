package services_test

import (
	"context"
	"testing"

	"github.com/mpcoutinho/condo_admin_app/internal/core/domain"
	portssvc "github.com/mpcoutinho/condo_admin_app/internal/core/ports/services"
	"github.com/mpcoutinho/condo_admin_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListPaymentsDueInRange(ctx context.Context, from, to string) ([]domain.PaymentDueRow, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentDueRow), args.Error(1)
}

func (m *MockReportingRepository) CountActiveSuppliers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportingRepository) CountActiveMaintenances(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingService
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ReportingServiceTestSuite) TestMonthlySummary_Totals() {
	ctx := context.Background()
	rows := []domain.PaymentDueRow{
		{Amount: decimal.RequireFromString("100.00"), Status: domain.PaymentPaid, DueDate: "2025-07-05"},
		{Amount: decimal.RequireFromString("250.00"), Status: domain.PaymentPending, DueDate: "2025-07-05"},
		{Amount: decimal.RequireFromString("50.00"), Status: domain.PaymentOverdue, DueDate: "2025-07-20"},
	}

	suite.mockRepo.On("ListPaymentsDueInRange", ctx, "2025-07-01", "2025-07-31").Return(rows, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, 2025, 7)

	suite.Require().NoError(err)
	suite.True(summary.TotalDue.Equal(decimal.RequireFromString("400.00")))
	suite.True(summary.TotalPaid.Equal(decimal.RequireFromString("100.00")))
	suite.Len(summary.DailyBreakdown, 31)
	suite.Equal(5, summary.DailyBreakdown[4].Day)
	suite.True(summary.DailyBreakdown[4].Total.Equal(decimal.RequireFromString("350.00")))
	suite.True(summary.DailyBreakdown[19].Total.Equal(decimal.RequireFromString("50.00")))
	suite.True(summary.DailyBreakdown[0].Total.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_LeapFebruary() {
	ctx := context.Background()

	suite.mockRepo.On("ListPaymentsDueInRange", ctx, "2024-02-01", "2024-02-29").
		Return([]domain.PaymentDueRow{}, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, 2024, 2)

	suite.Require().NoError(err)
	suite.Len(summary.DailyBreakdown, 29)
	suite.True(summary.TotalDue.IsZero())
	suite.True(summary.TotalPaid.IsZero())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_SkipsUndecodableDueDate() {
	// A malformed due date drops the row from the daily breakdown but the
	// totals still count it.
	ctx := context.Background()
	rows := []domain.PaymentDueRow{
		{Amount: decimal.RequireFromString("75.00"), Status: domain.PaymentPending, DueDate: "garbage"},
		{Amount: decimal.RequireFromString("25.00"), Status: domain.PaymentPending, DueDate: "2025-06-10"},
	}

	suite.mockRepo.On("ListPaymentsDueInRange", ctx, "2025-06-01", "2025-06-30").Return(rows, nil).Once()

	summary, err := suite.service.MonthlySummary(ctx, 2025, 6)

	suite.Require().NoError(err)
	suite.True(summary.TotalDue.Equal(decimal.RequireFromString("100.00")))
	suite.True(summary.DailyBreakdown[9].Total.Equal(decimal.RequireFromString("25.00")))

	total := decimal.Zero
	for _, d := range summary.DailyBreakdown {
		total = total.Add(d.Total)
	}
	suite.True(total.Equal(decimal.RequireFromString("25.00")))
}

func (suite *ReportingServiceTestSuite) TestMonthlySummary_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListPaymentsDueInRange", ctx, "2025-07-01", "2025-07-31").Return(nil, expectedErr).Once()

	summary, err := suite.service.MonthlySummary(ctx, 2025, 7)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
}

func (suite *ReportingServiceTestSuite) TestDashboardSummary_Counters() {
	ctx := context.Background()

	suite.mockRepo.On("ListPaymentsDueInRange", ctx, "2025-07-01", "2025-07-31").
		Return([]domain.PaymentDueRow{}, nil).Once()
	suite.mockRepo.On("CountActiveSuppliers", ctx).Return(int64(4), nil).Once()
	suite.mockRepo.On("CountActiveMaintenances", ctx).Return(int64(2), nil).Once()

	summary, err := suite.service.DashboardSummary(ctx, 2025, 7)

	suite.Require().NoError(err)
	suite.Equal(int64(4), summary.ActiveSuppliers)
	suite.Equal(int64(2), summary.ActiveMaintenances)
	suite.Len(summary.DailyBreakdown, 31)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestDashboardSummary_CounterError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListPaymentsDueInRange", ctx, "2025-07-01", "2025-07-31").
		Return([]domain.PaymentDueRow{}, nil).Once()
	suite.mockRepo.On("CountActiveSuppliers", ctx).Return(int64(0), expectedErr).Once()

	summary, err := suite.service.DashboardSummary(ctx, 2025, 7)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountActiveMaintenances")
}

// --- Run Suite ---
func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
