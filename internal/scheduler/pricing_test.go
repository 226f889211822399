package scheduler

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestIsWeekend(t *testing.T) {
	// 2026-01-02 is a Friday, 2026-01-03 a Saturday, 2026-01-04 a Sunday.
	tests := []struct {
		name  string
		start time.Time
		loc   *time.Location
		want  bool
	}{
		{
			name:  "friday",
			start: date(2026, time.January, 2, 19, 0),
			loc:   time.UTC,
			want:  false,
		},
		{
			name:  "saturday",
			start: date(2026, time.January, 3, 19, 0),
			loc:   time.UTC,
			want:  true,
		},
		{
			name:  "sunday",
			start: date(2026, time.January, 4, 19, 0),
			loc:   time.UTC,
			want:  true,
		},
		{
			name:  "friday night is saturday in the cinema locale",
			start: date(2026, time.January, 2, 23, 0),
			loc:   time.FixedZone("UTC+3", 3*60*60),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWeekend(tt.start, tt.loc); got != tt.want {
				t.Errorf("IsWeekend(%v) = %v, want %v", tt.start, got, tt.want)
			}
		})
	}
}

func TestPriceSetFor(t *testing.T) {
	friday := date(2026, time.January, 2, 19, 0)
	saturday := date(2026, time.January, 3, 19, 0)

	base := PriceSet{
		Regular: decimal.NewFromInt(20),
		Vip:     decimal.NewFromInt(35),
	}

	withWeekend := base
	withWeekend.WeekendRegular = decimal.NewFromInt(25)
	withWeekend.WeekendVip = decimal.NewFromInt(40)

	regularOnly := base
	regularOnly.WeekendRegular = decimal.NewFromInt(25)

	tests := []struct {
		name        string
		prices      PriceSet
		start       time.Time
		wantRegular decimal.Decimal
		wantVip     decimal.Decimal
	}{
		{
			name:        "weekday uses base prices",
			prices:      withWeekend,
			start:       friday,
			wantRegular: decimal.NewFromInt(20),
			wantVip:     decimal.NewFromInt(35),
		},
		{
			name:        "weekend uses overrides",
			prices:      withWeekend,
			start:       saturday,
			wantRegular: decimal.NewFromInt(25),
			wantVip:     decimal.NewFromInt(40),
		},
		{
			name:        "weekend without overrides falls back to base",
			prices:      base,
			start:       saturday,
			wantRegular: decimal.NewFromInt(20),
			wantVip:     decimal.NewFromInt(35),
		},
		{
			name:        "overrides apply per tier",
			prices:      regularOnly,
			start:       saturday,
			wantRegular: decimal.NewFromInt(25),
			wantVip:     decimal.NewFromInt(35),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regular, vip := tt.prices.For(tt.start, time.UTC)

			if !regular.Equal(tt.wantRegular) {
				t.Errorf("regular = %v, want %v", regular, tt.wantRegular)
			}
			if !vip.Equal(tt.wantVip) {
				t.Errorf("vip = %v, want %v", vip, tt.wantVip)
			}
		})
	}
}
