package repository

import (
	"context"

	"github.com/cinechain/schedule-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

// GetRoomsByTheater returns the theater's rooms in id order. The order is
// load-bearing: bulk generation allocates rooms first-fit in this order.
func (p *PostgresTheaterRepository) GetRoomsByTheater(ctx context.Context, theaterId int) ([]domain.Room, error) {
	query := `
		SELECT r.id, t.name, r.room_name, r.room_type
		FROM rooms r
		JOIN theaters t ON r.theater_id = t.id
		WHERE r.theater_id = $1
		ORDER BY r.id
	`

	rows, err := p.db.Query(ctx, query, theaterId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)

	for rows.Next() {
		var room domain.Room

		err := rows.Scan(
			&room.ID,
			&room.TheaterName,
			&room.RoomName,
			&room.RoomType,
		)

		if err != nil {
			return nil, err
		}

		rooms = append(rooms, room)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rooms, nil
}
