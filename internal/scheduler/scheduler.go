package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cinechain/schedule-service/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultTimezone is the cinema chain's operating locale used for
// weekend pricing when no other timezone is configured.
const DefaultTimezone = "Europe/Istanbul"

// Scheduler places showtimes into theater rooms. It is safe for
// concurrent use; all state lives in the injected repositories.
type Scheduler struct {
	movieRepo    domain.MovieRepository
	theaterRepo  domain.TheaterRepository
	showtimeRepo domain.ShowtimeRepository
	location     *time.Location
	logger       *slog.Logger
}

func New(
	movieRepo domain.MovieRepository,
	theaterRepo domain.TheaterRepository,
	showtimeRepo domain.ShowtimeRepository,
	location *time.Location,
	logger *slog.Logger,
) *Scheduler {
	return &Scheduler{
		movieRepo:    movieRepo,
		theaterRepo:  theaterRepo,
		showtimeRepo: showtimeRepo,
		location:     location,
		logger:       logger,
	}
}

type CreateShowtimeParams struct {
	TheaterID    int
	RoomID       int
	MovieID      int
	Date         time.Time
	StartTime    string
	PriceRegular decimal.Decimal
	PriceVip     decimal.Decimal
	Type         domain.Format
}

// CreateShowtime schedules a single showtime into a specific room. The
// overlap check and the insert share one transaction so concurrent
// requests cannot double-book the room.
func (s *Scheduler) CreateShowtime(ctx context.Context, params CreateShowtimeParams) (*domain.Showtime, error) {
	movie, err := s.movieRepo.GetById(ctx, params.MovieID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}

		return nil, err
	}

	rooms, err := s.theaterRepo.GetRoomsByTheater(ctx, params.TheaterID)
	if err != nil {
		return nil, err
	}

	room, ok := findRoom(rooms, params.RoomID)
	if !ok {
		return nil, domain.ErrRoomNotInTheater
	}

	slot, err := ResolveSlot(params.Date, params.StartTime, movie.Duration)
	if err != nil {
		return nil, err
	}

	showtime := s.buildShowtime(movie, params.TheaterID, room, slot, params.PriceRegular, params.PriceVip, params.Type)

	err = s.showtimeRepo.WithinTx(ctx, func(tx domain.ShowtimeStore) error {
		conflict, err := tx.HasOverlap(ctx, room.ID, showtime.Date, slot.Start, slot.End)
		if err != nil {
			return err
		}
		if conflict {
			return domain.ErrScheduleConflict
		}

		return tx.Create(ctx, showtime)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("scheduled showtime",
		"movie", movie.Title,
		"room", room.RoomName,
		"start", slot.Start,
	)

	return showtime, nil
}

type GenerateScheduleParams struct {
	TheaterID       int
	MovieID         int
	StartDate       time.Time
	EndDate         time.Time
	ShowtimesPerDay []string
	Prices          PriceSet
	Type            domain.Format
}

// GenerateSchedule creates one showtime per (day, time-of-day) pair over
// the inclusive date range, all inside a single transaction. Days run in
// ascending order and times in request order; room candidates are tried
// first-fit in lookup order. Any slot that cannot be satisfied aborts
// the whole run, so a partial schedule is never persisted.
func (s *Scheduler) GenerateSchedule(ctx context.Context, params GenerateScheduleParams) ([]domain.Showtime, error) {
	movie, err := s.movieRepo.GetById(ctx, params.MovieID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, domain.ErrMovieNotFound
		}

		return nil, err
	}

	rooms, err := s.theaterRepo.GetRoomsByTheater(ctx, params.TheaterID)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, domain.ErrNoRoomsInTheater
	}

	candidates := filterRoomsByFormat(rooms, params.Type)
	if len(candidates) == 0 {
		return nil, domain.ErrNoMatchingRoomFormat
	}

	var created []domain.Showtime

	err = s.showtimeRepo.WithinTx(ctx, func(tx domain.ShowtimeStore) error {
		var pending []domain.Showtime

		start := DateOnly(params.StartDate)
		end := DateOnly(params.EndDate)

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			for _, timeOfDay := range params.ShowtimesPerDay {
				showtime, err := s.scheduleSlot(ctx, tx, slotRequest{
					day:       day,
					timeOfDay: timeOfDay,
					movie:     movie,
					theaterID: params.TheaterID,
					rooms:     candidates,
					pending:   pending,
					prices:    params.Prices,
					format:    params.Type,
				})
				if err != nil {
					return err
				}

				pending = append(pending, *showtime)
			}
		}

		created = pending

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("generated schedule",
		"movie", movie.Title,
		"theater", params.TheaterID,
		"showtimes", len(created),
	)

	return created, nil
}

type slotRequest struct {
	day       time.Time
	timeOfDay string
	movie     *domain.Movie
	theaterID int
	rooms     []domain.Room
	pending   []domain.Showtime
	prices    PriceSet
	format    domain.Format
}

// scheduleSlot resolves, prices and allocates one slot within the
// current unit of work.
func (s *Scheduler) scheduleSlot(ctx context.Context, tx domain.ShowtimeStore, req slotRequest) (*domain.Showtime, error) {
	slot, err := ResolveSlot(req.day, req.timeOfDay, req.movie.Duration)
	if err != nil {
		return nil, &domain.SlotError{Date: req.day, TimeOfDay: req.timeOfDay, Err: err}
	}

	dup, err := tx.ExistsDuplicate(ctx, domain.DuplicateKey{
		MovieID:   req.movie.ID,
		Type:      req.format,
		Date:      DateOnly(slot.Start),
		StartTime: slot.Start,
		TheaterID: req.theaterID,
	})
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, &domain.SlotError{Date: req.day, TimeOfDay: req.timeOfDay, Err: domain.ErrDuplicateShowtime}
	}

	room, err := s.pickRoom(ctx, tx, req.rooms, req.pending, slot)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, &domain.SlotError{Date: req.day, TimeOfDay: req.timeOfDay, Err: domain.ErrNoRoomAvailable}
	}

	regular, vip := req.prices.For(slot.Start, s.location)
	showtime := s.buildShowtime(req.movie, req.theaterID, *room, slot, regular, vip, req.format)

	err = tx.Create(ctx, showtime)
	if err != nil {
		return nil, err
	}

	return showtime, nil
}

// pickRoom returns the first candidate room with neither a persisted nor
// an in-batch overlap for the slot, or nil when every room is taken.
// First-fit in lookup order; earlier slots are never reassigned.
func (s *Scheduler) pickRoom(
	ctx context.Context,
	tx domain.ShowtimeStore,
	rooms []domain.Room,
	pending []domain.Showtime,
	slot Slot,
) (*domain.Room, error) {
	for i := range rooms {
		room := rooms[i]

		busy, err := tx.HasOverlap(ctx, room.ID, DateOnly(slot.Start), slot.Start, slot.End)
		if err != nil {
			return nil, err
		}
		if busy || overlapsPending(pending, room.ID, slot) {
			continue
		}

		return &room, nil
	}

	return nil, nil
}

// overlapsPending checks the slot against showtimes built earlier in the
// same run but not yet committed. Dates are compared by calendar day.
func overlapsPending(pending []domain.Showtime, roomId int, slot Slot) bool {
	day := slot.Start.Format("2006-01-02")

	for _, st := range pending {
		if st.Room.RoomID != roomId || st.Date.Format("2006-01-02") != day {
			continue
		}

		if Overlaps(st.StartTime, st.EndTime, slot.Start, slot.End) {
			return true
		}
	}

	return false
}

func (s *Scheduler) buildShowtime(
	movie *domain.Movie,
	theaterId int,
	room domain.Room,
	slot Slot,
	priceRegular, priceVip decimal.Decimal,
	format domain.Format,
) *domain.Showtime {
	return &domain.Showtime{
		Movie: domain.MovieRef{
			MovieID:  movie.ID,
			Title:    movie.Title,
			Duration: movie.Duration,
		},
		Theater: domain.TheaterRef{
			TheaterID: theaterId,
			Name:      room.TheaterName,
		},
		Room: domain.RoomRef{
			RoomID: room.ID,
			Name:   room.RoomName,
		},
		Date:         DateOnly(slot.Start),
		StartTime:    slot.Start,
		EndTime:      slot.End,
		PriceRegular: priceRegular,
		PriceVip:     priceVip,
		Type:         format,
	}
}

func findRoom(rooms []domain.Room, roomId int) (domain.Room, bool) {
	for _, room := range rooms {
		if room.ID == roomId {
			return room, true
		}
	}

	return domain.Room{}, false
}

func filterRoomsByFormat(rooms []domain.Room, format domain.Format) []domain.Room {
	filtered := make([]domain.Room, 0, len(rooms))

	for _, room := range rooms {
		if format.MatchesRoomType(room.RoomType) {
			filtered = append(filtered, room)
		}
	}

	return filtered
}
