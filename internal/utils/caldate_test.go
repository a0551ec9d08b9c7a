package utils

import (
	"testing"

	"github.com/mpcoutinho/condo_admin_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    CalendarDate
		wantErr bool
	}{
		{name: "plain date", input: "2026-01-15", want: CalendarDate{2026, 1, 15}},
		{name: "end of month", input: "2025-12-31", want: CalendarDate{2025, 12, 31}},
		{name: "unpadded components", input: "2026-3-5", want: CalendarDate{2026, 3, 5}},
		{name: "empty", input: "", wantErr: true},
		{name: "two parts", input: "2026-01", wantErr: true},
		{name: "four parts", input: "2026-01-15-00", wantErr: true},
		{name: "non numeric day", input: "2026-01-xx", wantErr: true},
		{name: "slashes", input: "15/01/2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCalendarDate(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalendarDateDisplay(t *testing.T) {
	d := CalendarDate{Year: 2026, Month: 3, Day: 9}
	assert.Equal(t, "09/03/2026", d.Display())
	assert.Equal(t, "09/03", d.DisplayShort())
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "10/03/2026", DisplayDate("2026-03-10"))
	assert.Equal(t, "-", DisplayDate(""))
	assert.Equal(t, "-", DisplayDate("not-a-date"))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, DaysInMonth(2026, 1))
	assert.Equal(t, 28, DaysInMonth(2026, 2))
	assert.Equal(t, 29, DaysInMonth(2024, 2))
	assert.Equal(t, 30, DaysInMonth(2026, 4))
	assert.Equal(t, 31, DaysInMonth(2026, 12))
}
