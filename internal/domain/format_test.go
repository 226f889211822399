package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		ok    bool
	}{
		{"2D", Format2D, true},
		{"3D", Format3D, true},
		{"IMAX", FormatIMAX, true},
		{"4DX", Format4DX, true},
		{"imax", "", false},
		{"5D", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseFormat(tc.input)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatMatchesRoomType(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		roomType string
		want     bool
	}{
		{"exact", Format2D, "2D", true},
		{"exact imax", FormatIMAX, "IMAX", true},
		{"labelled variant", FormatIMAX, "IMAX Laser", true},
		{"different format", Format3D, "2D", false},
		{"composite room screens both", Format3D, "IMAX 3D", true},
		{"composite room also matches imax", FormatIMAX, "IMAX 3D", true},
		{"empty room type", Format2D, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.format.MatchesRoomType(tc.roomType))
		})
	}
}
