package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RewardReels_Go/internal/domain"
)

// MockDBPool is a mock implementation of database.Pool
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockSlotsService is a mock implementation of slots.Service
type MockSlotsService struct {
	mock.Mock
}

func (m *MockSlotsService) Spin(ctx context.Context, userID string, bet domain.Money) (*domain.SpinResult, error) {
	args := m.Called(ctx, userID, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}

func (m *MockSlotsService) Jackpot(ctx context.Context) (domain.JackpotSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.JackpotSnapshot), args.Error(1)
}

func (m *MockSlotsService) Paytable() domain.Paytable {
	args := m.Called()
	return args.Get(0).(domain.Paytable)
}

func (m *MockSlotsService) SetMaintenance(ctx context.Context, enabled bool) {
	m.Called(ctx, enabled)
}

func (m *MockSlotsService) Maintenance() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockAutoplayController is a mock implementation of AutoplayController
type MockAutoplayController struct {
	mock.Mock
}

func (m *MockAutoplayController) Start(ctx context.Context, userID string, cfg domain.AutoplayConfig) (*domain.AutoplaySession, error) {
	args := m.Called(ctx, userID, cfg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutoplaySession), args.Error(1)
}

func (m *MockAutoplayController) Stop(ctx context.Context, userID string) (*domain.AutoplaySession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AutoplaySession), args.Error(1)
}

func (m *MockAutoplayController) State(userID string) domain.AutoplaySession {
	args := m.Called(userID)
	return args.Get(0).(domain.AutoplaySession)
}

// MockBonusService is a mock implementation of bonus.Service
type MockBonusService struct {
	mock.Mock
}

func (m *MockBonusService) Claim(ctx context.Context, userID string) (*domain.DailyBonusResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyBonusResult), args.Error(1)
}

func (m *MockBonusService) Table() []domain.Money {
	args := m.Called()
	return args.Get(0).([]domain.Money)
}
