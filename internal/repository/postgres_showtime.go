package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cinechain/schedule-service/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// querier is the subset of pgx shared by pools and transactions, so the
// same queries serve both direct calls and calls inside a unit of work.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
	q  querier
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
		q:  db,
	}
}

// WithinTx runs fn against a repository view bound to a single
// transaction. Reads inside fn see the transaction's own writes, which
// the bulk generator relies on for its conflict checks.
func (p *PostgresShowtimeRepository) WithinTx(ctx context.Context, fn func(tx domain.ShowtimeStore) error) error {
	var txOptions pgx.TxOptions

	tx, err := p.db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(&PostgresShowtimeRepository{db: p.db, q: tx})
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}

func (p *PostgresShowtimeRepository) HasOverlap(ctx context.Context, roomId int, date, start, end time.Time) (bool, error) {
	// Half-open interval test: showtimes that merely touch the candidate
	// at a boundary do not conflict.
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM showtimes
			WHERE room_id = $1
			  AND date = $2
			  AND start_time < $3
			  AND end_time > $4
		)
	`

	var exists bool

	err := p.q.QueryRow(ctx, query, roomId, date, end, start).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresShowtimeRepository) ExistsDuplicate(ctx context.Context, key domain.DuplicateKey) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM showtimes
			WHERE movie_id = $1
			  AND showtime_type = $2
			  AND date = $3
			  AND start_time = $4
			  AND theater_id = $5
		)
	`

	var exists bool

	err := p.q.QueryRow(
		ctx,
		query,
		key.MovieID,
		string(key.Type),
		key.Date,
		key.StartTime,
		key.TheaterID,
	).Scan(&exists)

	if err != nil {
		return false, err
	}

	return exists, nil
}

func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (
			movie_id, movie_title, movie_duration,
			theater_id, theater_name,
			room_id, room_name,
			date, start_time, end_time,
			price_regular, price_vip, showtime_type
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::numeric, $12::numeric, $13)
		RETURNING id, created_at
	`

	err := p.q.QueryRow(
		ctx,
		query,
		showtime.Movie.MovieID,
		showtime.Movie.Title,
		showtime.Movie.Duration,
		showtime.Theater.TheaterID,
		showtime.Theater.Name,
		showtime.Room.RoomID,
		showtime.Room.Name,
		showtime.Date,
		showtime.StartTime,
		showtime.EndTime,
		showtime.PriceRegular.String(),
		showtime.PriceVip.String(),
		string(showtime.Type),
	).Scan(&showtime.ID, &showtime.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateShowtime
		}

		return err
	}

	return nil
}

func (p *PostgresShowtimeRepository) GetByTheaterAndDate(ctx context.Context, theaterId int, date time.Time) ([]domain.Showtime, error) {
	query := `
		SELECT
			id,
			movie_id, movie_title, movie_duration,
			theater_id, theater_name,
			room_id, room_name,
			date, start_time, end_time,
			price_regular, price_vip, showtime_type,
			created_at
		FROM showtimes
		WHERE theater_id = $1 AND date = $2
		ORDER BY start_time, room_id
	`

	rows, err := p.q.Query(ctx, query, theaterId, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := make([]domain.Showtime, 0)

	for rows.Next() {
		var (
			showtime     domain.Showtime
			priceRegular pgtype.Numeric
			priceVip     pgtype.Numeric
			showtimeType string
		)

		err := rows.Scan(
			&showtime.ID,
			&showtime.Movie.MovieID,
			&showtime.Movie.Title,
			&showtime.Movie.Duration,
			&showtime.Theater.TheaterID,
			&showtime.Theater.Name,
			&showtime.Room.RoomID,
			&showtime.Room.Name,
			&showtime.Date,
			&showtime.StartTime,
			&showtime.EndTime,
			&priceRegular,
			&priceVip,
			&showtimeType,
			&showtime.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		showtime.PriceRegular = toDecimal(priceRegular)
		showtime.PriceVip = toDecimal(priceVip)
		showtime.Type = domain.Format(showtimeType)

		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

func toDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}
