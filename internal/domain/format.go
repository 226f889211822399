package domain

import "strings"

// Format is the projection format a showtime is screened in.
type Format string

const (
	Format2D   Format = "2D"
	Format3D   Format = "3D"
	FormatIMAX Format = "IMAX"
	Format4DX  Format = "4DX"
)

func ParseFormat(s string) (Format, bool) {
	switch Format(s) {
	case Format2D, Format3D, FormatIMAX, Format4DX:
		return Format(s), true
	}

	return "", false
}

// MatchesRoomType reports whether a room of the given type can screen
// this format. Room types are free-form labels such as "IMAX Laser", so
// the match is by substring.
func (f Format) MatchesRoomType(roomType string) bool {
	return strings.Contains(roomType, string(f))
}
