package callback

import (
	"context"

	"grandhorizon/internal/domain"
)

// TicketRepository persists callback tickets.
type TicketRepository interface {
	Create(ctx context.Context, t *domain.CallbackTicket) error
	MaxSeq(ctx context.Context) (int64, error)
	GetByReference(ctx context.Context, reference string) (*domain.CallbackTicket, error)
}
