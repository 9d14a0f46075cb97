package callback

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"grandhorizon/internal/domain"
)

// firstTicketSeq is the floor for the ticket sequence; pre-seeded tickets
// in the database always sit below the next allocated value.
const firstTicketSeq = 5001

// Illustrative queue wait windows, in minutes. The estimate is not a
// commitment to the guest.
var waitChoices = []int{15, 30, 45, 60}

var ErrTicketNotFound = errors.New("callback ticket not found")

type Service struct {
	tickets TicketRepository

	now      func() time.Time
	pickWait func() int

	mu      sync.Mutex
	nextSeq int64
}

func NewService(tickets TicketRepository) *Service {
	return &Service{
		tickets: tickets,
		now:     time.Now,
		pickWait: func() int {
			return waitChoices[rand.Intn(len(waitChoices))]
		},
	}
}

// RequestCallback files a pending ticket and returns its reference with an
// estimated wait window. No reservation verification is involved.
func (s *Service) RequestCallback(ctx context.Context, req CallbackRequest) (*CallbackResult, error) {
	seq, reference, err := s.allocate(ctx)
	if err != nil {
		return nil, err
	}

	ticket := &domain.CallbackTicket{
		Seq:         seq,
		Reference:   reference,
		GuestName:   req.GuestName,
		Phone:       req.Phone,
		Issue:       req.Issue,
		Status:      domain.CallbackPending,
		RequestedAt: s.now(),
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	wait := s.pickWait()

	return &CallbackResult{
		Reference:         reference,
		GuestName:         req.GuestName,
		Phone:             req.Phone,
		EstimatedCallback: fmt.Sprintf("Within %d minutes", wait),
		Message: fmt.Sprintf(
			"Thank you, %s. I've submitted a callback request with reference number %s. A member of our guest services team will call you at %s within %d minutes. Is there anything else I can help you with in the meantime?",
			req.GuestName, reference, req.Phone, wait,
		),
	}, nil
}

// GetTicket returns a previously filed ticket by its reference.
func (s *Service) GetTicket(ctx context.Context, reference string) (*domain.CallbackTicket, error) {
	t, err := s.tickets.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTicketNotFound
	}
	return t, nil
}

// allocate hands out the next ticket sequence exactly once per call. The
// counter initializes lazily from the highest persisted sequence and never
// resets or reuses a value within the process lifetime.
func (s *Service) allocate(ctx context.Context) (int64, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nextSeq == 0 {
		max, err := s.tickets.MaxSeq(ctx)
		if err != nil {
			return 0, "", err
		}
		s.nextSeq = firstTicketSeq
		if max >= firstTicketSeq {
			s.nextSeq = max + 1
		}
	}

	seq := s.nextSeq
	s.nextSeq++
	return seq, fmt.Sprintf("CB-%d", seq), nil
}
