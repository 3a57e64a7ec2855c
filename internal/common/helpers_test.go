package common

import (
	"testing"
	"time"
)

var msk = time.FixedZone("MSK", 3*60*60)

func TestSameCalendarDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		loc  *time.Location
		want bool
	}{
		{
			"один день",
			time.Date(2026, 8, 28, 9, 0, 0, 0, msk),
			time.Date(2026, 8, 28, 21, 0, 0, 0, msk),
			msk, true,
		},
		{
			"через полночь",
			time.Date(2026, 8, 27, 23, 59, 59, 0, msk),
			time.Date(2026, 8, 28, 0, 0, 1, 0, msk),
			msk, false,
		},
		{
			"разные пояса, одна дата в MSK",
			// 27 августа 22:00 UTC = 28 августа 01:00 MSK
			time.Date(2026, 8, 27, 22, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 28, 12, 0, 0, 0, msk),
			msk, true,
		},
		{
			"те же моменты, но в UTC — даты разные",
			time.Date(2026, 8, 27, 22, 0, 0, 0, time.UTC),
			time.Date(2026, 8, 28, 12, 0, 0, 0, msk),
			time.UTC, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameCalendarDay(tt.a, tt.b, tt.loc); got != tt.want {
				t.Errorf("SameCalendarDay = %v, ожидалось %v", got, tt.want)
			}
		})
	}
}

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1, "1 очко"},
		{42, "42 очка"},
		{150, "150 очков"},
	}
	for _, tt := range tests {
		if got := FormatPoints(tt.n); got != tt.want {
			t.Errorf("FormatPoints(%d) = %q, ожидалось %q", tt.n, got, tt.want)
		}
	}
}

func TestPluralizePoints(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "очков"},
		{1, "очко"},
		{2, "очка"},
		{4, "очка"},
		{5, "очков"},
		{11, "очков"},
		{12, "очков"},
		{14, "очков"},
		{21, "очко"},
		{22, "очка"},
		{100, "очков"},
		{101, "очко"},
		{111, "очков"},
		{1000, "очков"},
	}

	for _, tt := range tests {
		if got := PluralizePoints(tt.n); got != tt.want {
			t.Errorf("PluralizePoints(%d) = %q, ожидалось %q", tt.n, got, tt.want)
		}
	}
}

func TestIsRejection(t *testing.T) {
	if !IsRejection(ErrInsufficientPoints) {
		t.Error("ErrInsufficientPoints должен быть бизнес-отказом")
	}
	if !IsRejection(ErrAlreadyClaimed) {
		t.Error("ErrAlreadyClaimed должен быть бизнес-отказом")
	}
	if IsRejection(nil) {
		t.Error("nil не является отказом")
	}
}
