package callback

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"grandhorizon/internal/domain"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) Create(ctx context.Context, t *domain.CallbackTicket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTicketRepository) MaxSeq(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTicketRepository) GetByReference(ctx context.Context, reference string) (*domain.CallbackTicket, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CallbackTicket), args.Error(1)
}

func newTestService(repo TicketRepository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, time.January, 1, 9, 30, 0, 0, time.UTC)
	}
	svc.pickWait = func() int { return 30 }
	return svc
}

func TestRequestCallback_FirstTicket(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("MaxSeq", mock.Anything).Return(int64(0), nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo)

	result, err := svc.RequestCallback(context.Background(), CallbackRequest{
		GuestName: "John Smith",
		Phone:     "+1-555-123-4567",
		Issue:     "Billing question about minibar charges",
	})
	require.NoError(t, err)

	assert.Equal(t, "CB-5001", result.Reference)
	assert.Equal(t, "Within 30 minutes", result.EstimatedCallback)
	assert.Contains(t, result.Message, "CB-5001")
	assert.Contains(t, result.Message, "+1-555-123-4567")

	created := repo.Calls[1].Arguments.Get(1).(*domain.CallbackTicket)
	assert.Equal(t, int64(5001), created.Seq)
	assert.Equal(t, domain.CallbackPending, created.Status)
	assert.Equal(t, "Billing question about minibar charges", created.Issue)
}

func TestRequestCallback_MonotonicReferences(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("MaxSeq", mock.Anything).Return(int64(0), nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		result, err := svc.RequestCallback(context.Background(), CallbackRequest{
			GuestName: "Guest",
			Phone:     "+1-555-000-0000",
			Issue:     "test",
		})
		require.NoError(t, err)
		assert.False(t, seen[result.Reference], "reference %s reused", result.Reference)
		seen[result.Reference] = true
	}

	assert.True(t, seen["CB-5001"])
	assert.True(t, seen["CB-5005"])
	// the counter initializes once, not per call
	repo.AssertNumberOfCalls(t, "MaxSeq", 1)
}

func TestRequestCallback_CounterSeedsAbovePersisted(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("MaxSeq", mock.Anything).Return(int64(6100), nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(repo)

	result, err := svc.RequestCallback(context.Background(), CallbackRequest{
		GuestName: "Guest",
		Phone:     "+1-555-000-0000",
		Issue:     "test",
	})
	require.NoError(t, err)
	assert.Equal(t, "CB-6101", result.Reference)
}

func TestGetTicket(t *testing.T) {
	repo := new(MockTicketRepository)
	repo.On("GetByReference", mock.Anything, "CB-5001").Return(&domain.CallbackTicket{
		Seq:       5001,
		Reference: "CB-5001",
		Status:    domain.CallbackPending,
	}, nil)
	repo.On("GetByReference", mock.Anything, "CB-9999").Return(nil, nil)

	svc := newTestService(repo)

	ticket, err := svc.GetTicket(context.Background(), "CB-5001")
	require.NoError(t, err)
	assert.Equal(t, domain.CallbackPending, ticket.Status)

	_, err = svc.GetTicket(context.Background(), "CB-9999")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}
