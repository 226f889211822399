package scheduler

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestRoundUpToQuarterHour(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "already on a quarter mark",
			in:   date(2026, time.January, 2, 21, 15),
			want: date(2026, time.January, 2, 21, 15),
		},
		{
			name: "on a mark with seconds",
			in:   time.Date(2026, time.January, 2, 21, 15, 42, 17e6, time.UTC),
			want: date(2026, time.January, 2, 21, 15),
		},
		{
			name: "rounds up within the hour",
			in:   date(2026, time.January, 2, 21, 5),
			want: date(2026, time.January, 2, 21, 15),
		},
		{
			name: "one minute past a mark",
			in:   date(2026, time.January, 2, 21, 16),
			want: date(2026, time.January, 2, 21, 30),
		},
		{
			name: "carries into the next hour",
			in:   date(2026, time.January, 2, 21, 50),
			want: date(2026, time.January, 2, 22, 0),
		},
		{
			name: "carries into the next day",
			in:   date(2026, time.January, 2, 23, 50),
			want: date(2026, time.January, 3, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundUpToQuarterHour(tt.in); !got.Equal(tt.want) {
				t.Errorf("RoundUpToQuarterHour(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundUpToQuarterHourIdempotent(t *testing.T) {
	in := time.Date(2026, time.March, 7, 18, 7, 31, 0, time.UTC)

	once := RoundUpToQuarterHour(in)
	twice := RoundUpToQuarterHour(once)

	if !twice.Equal(once) {
		t.Errorf("rounding twice gave %v, want %v", twice, once)
	}
}

func TestResolveSlot(t *testing.T) {
	day := date(2026, time.January, 2, 0, 0)

	tests := []struct {
		name      string
		timeOfDay string
		duration  int
		wantStart time.Time
		wantEnd   time.Time
		wantErr   bool
	}{
		{
			name:      "two hour movie at prime time",
			timeOfDay: "19:00",
			duration:  120,
			wantStart: date(2026, time.January, 2, 19, 0),
			wantEnd:   date(2026, time.January, 2, 21, 15),
		},
		{
			name:      "end lands exactly on a mark",
			timeOfDay: "10:00",
			duration:  85,
			wantStart: date(2026, time.January, 2, 10, 0),
			wantEnd:   date(2026, time.January, 2, 11, 30),
		},
		{
			name:      "late show capped at 02:00 next day",
			timeOfDay: "23:50",
			duration:  150,
			wantStart: date(2026, time.January, 2, 23, 50),
			wantEnd:   date(2026, time.January, 3, 2, 0),
		},
		{
			name:      "end exactly at the cap is kept",
			timeOfDay: "23:00",
			duration:  175,
			wantStart: date(2026, time.January, 2, 23, 0),
			wantEnd:   date(2026, time.January, 3, 2, 0),
		},
		{
			name:      "invalid time of day",
			timeOfDay: "25:00",
			duration:  120,
			wantErr:   true,
		},
		{
			name:      "non-positive duration",
			timeOfDay: "19:00",
			duration:  0,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := ResolveSlot(day, tt.timeOfDay, tt.duration)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				return
			}

			if err != nil {
				t.Fatalf("ResolveSlot() error = %v", err)
			}

			if !slot.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", slot.Start, tt.wantStart)
			}
			if !slot.End.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", slot.End, tt.wantEnd)
			}
			if !slot.Start.Before(slot.End) {
				t.Errorf("slot %v..%v is not a positive interval", slot.Start, slot.End)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{
			name: "disjoint intervals",
			s1:   date(2026, time.January, 2, 10, 0), e1: date(2026, time.January, 2, 12, 0),
			s2: date(2026, time.January, 2, 14, 0), e2: date(2026, time.January, 2, 16, 0),
			want: false,
		},
		{
			name: "touching endpoints do not overlap",
			s1:   date(2026, time.January, 2, 10, 0), e1: date(2026, time.January, 2, 12, 0),
			s2: date(2026, time.January, 2, 12, 0), e2: date(2026, time.January, 2, 14, 0),
			want: false,
		},
		{
			name: "partial overlap",
			s1:   date(2026, time.January, 2, 10, 0), e1: date(2026, time.January, 2, 12, 0),
			s2: date(2026, time.January, 2, 11, 0), e2: date(2026, time.January, 2, 13, 0),
			want: true,
		},
		{
			name: "containment",
			s1:   date(2026, time.January, 2, 10, 0), e1: date(2026, time.January, 2, 16, 0),
			s2: date(2026, time.January, 2, 11, 0), e2: date(2026, time.January, 2, 12, 0),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.s1, tt.e1, tt.s2, tt.e2); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}

			// overlap is symmetric
			if got := Overlaps(tt.s2, tt.e2, tt.s1, tt.e1); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
