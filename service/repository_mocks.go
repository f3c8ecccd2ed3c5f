package service

import (
	"context"

	"caketoss/events"
	"caketoss/models"

	"github.com/stretchr/testify/mock"
)

// MockGuildRepository is a mock implementation of GuildRepository
type MockGuildRepository struct {
	mock.Mock
}

func (m *MockGuildRepository) EnsureExists(ctx context.Context, guildID, name string) error {
	args := m.Called(ctx, guildID, name)
	return args.Error(0)
}

func (m *MockGuildRepository) Get(ctx context.Context, guildID string) (*models.Guild, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Guild), args.Error(1)
}

func (m *MockGuildRepository) AddThrow(ctx context.Context, guildID, name string, points int64) error {
	args := m.Called(ctx, guildID, name, points)
	return args.Error(0)
}

func (m *MockGuildRepository) Top(ctx context.Context, sort models.SortKey, limit, offset int) ([]*models.Guild, error) {
	args := m.Called(ctx, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Guild), args.Error(1)
}

func (m *MockGuildRepository) DecrementTotals(ctx context.Context, guildID string, cakes, points int64) error {
	args := m.Called(ctx, guildID, cakes, points)
	return args.Error(0)
}

func (m *MockGuildRepository) PruneEmpty(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureExists(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) AddThrow(ctx context.Context, userID string, points int64) error {
	args := m.Called(ctx, userID, points)
	return args.Error(0)
}

func (m *MockUserRepository) Top(ctx context.Context, sort models.SortKey, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockMemberRepository is a mock implementation of MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) EnsureExists(ctx context.Context, userID, guildID string) error {
	args := m.Called(ctx, userID, guildID)
	return args.Error(0)
}

func (m *MockMemberRepository) Get(ctx context.Context, userID, guildID string) (*models.Member, error) {
	args := m.Called(ctx, userID, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) GetFirstByUser(ctx context.Context, userID string) (*models.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Member), args.Error(1)
}

func (m *MockMemberRepository) ResetWindow(ctx context.Context, userID, guildID string, resetAt int64) error {
	args := m.Called(ctx, userID, guildID, resetAt)
	return args.Error(0)
}

func (m *MockMemberRepository) AddThrow(ctx context.Context, userID, guildID string, points int64) error {
	args := m.Called(ctx, userID, guildID, points)
	return args.Error(0)
}

func (m *MockMemberRepository) TopByGuild(ctx context.Context, guildID string, sort models.SortKey, limit, offset int) ([]*models.Member, error) {
	args := m.Called(ctx, guildID, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}

func (m *MockMemberRepository) ListByUser(ctx context.Context, userID string) ([]*models.Member, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Member), args.Error(1)
}

func (m *MockMemberRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork that hands out the
// provided repository mocks
type MockUnitOfWork struct {
	mock.Mock
	Guilds    *MockGuildRepository
	Users     *MockUserRepository
	Members   *MockMemberRepository
	Publisher *MockEventPublisher
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		Guilds:    new(MockGuildRepository),
		Users:     new(MockUserRepository),
		Members:   new(MockMemberRepository),
		Publisher: new(MockEventPublisher),
	}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) GuildRepository() GuildRepository {
	return m.Guilds
}

func (m *MockUnitOfWork) UserRepository() UserRepository {
	return m.Users
}

func (m *MockUnitOfWork) MemberRepository() MemberRepository {
	return m.Members
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.Publisher
}

// MockUnitOfWorkFactory always returns the same unit of work
type MockUnitOfWorkFactory struct {
	UOW *MockUnitOfWork
}

func (f *MockUnitOfWorkFactory) Create() UnitOfWork {
	return f.UOW
}
