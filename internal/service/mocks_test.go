package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"gamerental-backend/internal/domain"
)

// MockGameRepo
type MockGameRepo struct {
	mock.Mock
}

func (m *MockGameRepo) Exists(ctx context.Context, gameID string) (bool, error) {
	args := m.Called(ctx, gameID)
	return args.Bool(0), args.Error(1)
}
func (m *MockGameRepo) Search(ctx context.Context, title, platform string) ([]domain.Game, error) {
	args := m.Called(ctx, title, platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Game), args.Error(1)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) OpenPeriodCount(ctx context.Context, gameID string) (int, error) {
	args := m.Called(ctx, gameID)
	return args.Int(0), args.Error(1)
}
func (m *MockRentalRepo) CountOpenByCustomer(ctx context.Context, customerID string) (int, error) {
	args := m.Called(ctx, customerID)
	return args.Int(0), args.Error(1)
}
func (m *MockRentalRepo) IssueRental(ctx context.Context, customerID, gameID, startDate string) (int64, error) {
	args := m.Called(ctx, customerID, gameID, startDate)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalRepo) CloseOpenPeriods(ctx context.Context, gameID, endDate string) (int64, error) {
	args := m.Called(ctx, gameID, endDate)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockRentalRepo) LoadHistory(ctx context.Context, records []domain.RentalRecord, periods []domain.RentalPeriod) error {
	args := m.Called(ctx, records, periods)
	return args.Error(0)
}
func (m *MockRentalRepo) FindOpenRentalAnomalies(ctx context.Context) ([]domain.OpenRentalAnomaly, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpenRentalAnomaly), args.Error(1)
}
