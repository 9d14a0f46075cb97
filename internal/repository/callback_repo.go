package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"grandhorizon/internal/domain"
)

// CallbackRepository persists callback tickets through gorm.
type CallbackRepository struct {
	db *gorm.DB
}

func NewCallbackRepository(db *gorm.DB) *CallbackRepository {
	return &CallbackRepository{db: db}
}

func (r *CallbackRepository) Create(ctx context.Context, t *domain.CallbackTicket) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// MaxSeq returns the highest allocated ticket sequence, 0 for an empty
// table. The callback service seeds its counter from this value.
func (r *CallbackRepository) MaxSeq(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.WithContext(ctx).
		Model(&domain.CallbackTicket{}).
		Select("COALESCE(MAX(seq), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max, nil
}

// GetByReference returns the ticket for an external reference, or nil when
// no such ticket exists.
func (r *CallbackRepository) GetByReference(ctx context.Context, reference string) (*domain.CallbackTicket, error) {
	var t domain.CallbackTicket
	err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}
