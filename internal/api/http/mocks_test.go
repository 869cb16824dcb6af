package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rentescrow-backend/internal/domain"
	"rentescrow-backend/internal/service"
)

// MockRentService implements the read methods the query API uses. The
// embedded interface is nil, so any other call panics.
type MockRentService struct {
	mock.Mock
	service.RentService
}

func (m *MockRentService) DescribeItem(ctx context.Context, item domain.ItemKey) (*service.ItemView, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ItemView), args.Error(1)
}
func (m *MockRentService) ListRented(ctx context.Context) ([]domain.RentRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RentRecord), args.Error(1)
}
func (m *MockRentService) ListEvents(ctx context.Context, afterSeq int64, limit int32) ([]domain.Event, error) {
	args := m.Called(ctx, afterSeq, limit)
	return args.Get(0).([]domain.Event), args.Error(1)
}

// MockLedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Fund(ctx context.Context, addr domain.Address, amount int64) (*domain.Account, error) {
	args := m.Called(ctx, addr, amount)
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockLedgerService) GetAccount(ctx context.Context, addr domain.Address) (*domain.Account, error) {
	args := m.Called(ctx, addr)
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockLedgerService) GetBalance(ctx context.Context, addr domain.Address) (int64, error) {
	args := m.Called(ctx, addr)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockLedgerService) GetTransfers(ctx context.Context, addr domain.Address, page, pageSize int32) ([]domain.Transfer, int32, error) {
	args := m.Called(ctx, addr, page, pageSize)
	return args.Get(0).([]domain.Transfer), args.Get(1).(int32), args.Error(2)
}
func (m *MockLedgerService) SetRejectsPayments(ctx context.Context, addr domain.Address, rejects bool) error {
	args := m.Called(ctx, addr, rejects)
	return args.Error(0)
}

// MockTokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) RegisterCollection(ctx context.Context, c *domain.Collection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockTokenService) Mint(ctx context.Context, collection, to domain.Address, tokenID int64) error {
	args := m.Called(ctx, collection, to, tokenID)
	return args.Error(0)
}
func (m *MockTokenService) Approve(ctx context.Context, sender, collection, spender domain.Address, tokenID int64) error {
	args := m.Called(ctx, sender, collection, spender, tokenID)
	return args.Error(0)
}
func (m *MockTokenService) TransferFrom(ctx context.Context, sender, collection, from, to domain.Address, tokenID int64) error {
	args := m.Called(ctx, sender, collection, from, to, tokenID)
	return args.Error(0)
}
func (m *MockTokenService) OwnerOf(ctx context.Context, collection domain.Address, tokenID int64) (domain.Address, error) {
	args := m.Called(ctx, collection, tokenID)
	return args.Get(0).(domain.Address), args.Error(1)
}
func (m *MockTokenService) TokenURI(ctx context.Context, collection domain.Address, tokenID int64) (string, error) {
	args := m.Called(ctx, collection, tokenID)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) GetCollection(ctx context.Context, collection domain.Address) (*domain.Collection, error) {
	args := m.Called(ctx, collection)
	return args.Get(0).(*domain.Collection), args.Error(1)
}
