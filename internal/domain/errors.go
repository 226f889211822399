package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRecordNotFound       = errors.New("record not found")
	ErrMovieNotFound        = errors.New("movie not found")
	ErrNoRoomsInTheater     = errors.New("theater has no rooms")
	ErrRoomNotInTheater     = errors.New("room does not belong to theater")
	ErrNoMatchingRoomFormat = errors.New("no room matches the requested format")
	ErrScheduleConflict     = errors.New("showtime overlaps an existing showtime in the room")
	ErrDuplicateShowtime    = errors.New("an identical showtime already exists")
	ErrNoRoomAvailable      = errors.New("no room is free for the slot")
)

// SlotError wraps a bulk-generation failure with the slot that caused
// it, so callers can pinpoint which date and time to adjust.
type SlotError struct {
	Date      time.Time
	TimeOfDay string
	Err       error
}

func (e *SlotError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Date.Format("2006-01-02"), e.TimeOfDay, e.Err)
}

func (e *SlotError) Unwrap() error {
	return e.Err
}
