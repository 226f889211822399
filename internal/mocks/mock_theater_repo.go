package mocks

import (
	"context"

	"github.com/cinechain/schedule-service/internal/domain"
)

type MockTheaterRepo struct {
	domain.TheaterRepository
	GetRoomsByTheaterFunc func(ctx context.Context, theaterId int) ([]domain.Room, error)
}

func (m *MockTheaterRepo) GetRoomsByTheater(ctx context.Context, theaterId int) ([]domain.Room, error) {
	return m.GetRoomsByTheaterFunc(ctx, theaterId)
}
