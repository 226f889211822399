package mocks

import (
	"context"
	"time"

	"github.com/cinechain/schedule-service/internal/domain"
)

type MockShowtimeRepo struct {
	domain.ShowtimeRepository
	HasOverlapFunc          func(ctx context.Context, roomId int, date, start, end time.Time) (bool, error)
	ExistsDuplicateFunc     func(ctx context.Context, key domain.DuplicateKey) (bool, error)
	CreateFunc              func(ctx context.Context, showtime *domain.Showtime) error
	WithinTxFunc            func(ctx context.Context, fn func(tx domain.ShowtimeStore) error) error
	GetByTheaterAndDateFunc func(ctx context.Context, theaterId int, date time.Time) ([]domain.Showtime, error)
}

func (m *MockShowtimeRepo) HasOverlap(ctx context.Context, roomId int, date, start, end time.Time) (bool, error) {
	return m.HasOverlapFunc(ctx, roomId, date, start, end)
}

func (m *MockShowtimeRepo) ExistsDuplicate(ctx context.Context, key domain.DuplicateKey) (bool, error) {
	return m.ExistsDuplicateFunc(ctx, key)
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	return m.CreateFunc(ctx, showtime)
}

// WithinTx runs fn against the mock itself unless a WithinTxFunc is
// supplied, mimicking a transaction that always commits.
func (m *MockShowtimeRepo) WithinTx(ctx context.Context, fn func(tx domain.ShowtimeStore) error) error {
	if m.WithinTxFunc != nil {
		return m.WithinTxFunc(ctx, fn)
	}

	return fn(m)
}

func (m *MockShowtimeRepo) GetByTheaterAndDate(ctx context.Context, theaterId int, date time.Time) ([]domain.Showtime, error) {
	return m.GetByTheaterAndDateFunc(ctx, theaterId, date)
}
