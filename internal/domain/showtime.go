package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovieRef snapshots the movie at scheduling time. The duration is copied
// once and never re-read, so later edits to the movie do not shift
// existing showtimes.
type MovieRef struct {
	MovieID  int
	Title    string
	Duration int
}

type TheaterRef struct {
	TheaterID int
	Name      string
}

type RoomRef struct {
	RoomID int
	Name   string
}

type Showtime struct {
	ID           int
	Movie        MovieRef
	Theater      TheaterRef
	Room         RoomRef
	Date         time.Time // midnight of the showtime's calendar day
	StartTime    time.Time
	EndTime      time.Time
	PriceRegular decimal.Decimal
	PriceVip     decimal.Decimal
	Type         Format
	CreatedAt    time.Time
}

// DuplicateKey identifies a slot independently of the room it is assigned
// to. Two showtimes with the same key are duplicates even in different
// rooms.
type DuplicateKey struct {
	MovieID   int
	Type      Format
	Date      time.Time
	StartTime time.Time
	TheaterID int
}

// ShowtimeStore is the persistence surface the scheduling engine works
// against. Inside a unit of work the store must see the work's own
// earlier writes.
type ShowtimeStore interface {
	// HasOverlap reports whether any showtime in the room on the given
	// date intersects [start, end). Touching endpoints are not overlaps.
	HasOverlap(ctx context.Context, roomId int, date, start, end time.Time) (bool, error)
	ExistsDuplicate(ctx context.Context, key DuplicateKey) (bool, error)
	Create(ctx context.Context, showtime *Showtime) error
}

type ShowtimeRepository interface {
	ShowtimeStore

	// WithinTx runs fn inside a single transaction. The transaction is
	// committed when fn returns nil and rolled back otherwise; it is
	// never committed or rolled back more than once.
	WithinTx(ctx context.Context, fn func(tx ShowtimeStore) error) error

	GetByTheaterAndDate(ctx context.Context, theaterId int, date time.Time) ([]Showtime, error)
}
