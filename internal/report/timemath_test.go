package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDurationMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start *string
		end   *string
		want  int
		ok    bool
	}{
		{"whole minutes", strPtr("09:00"), strPtr("09:45"), 45, true},
		{"with seconds truncates", strPtr("09:00:30"), strPtr("09:45:00"), 44, true},
		{"zero span", strPtr("14:30"), strPtr("14:30"), 0, true},
		{"across noon", strPtr("11:50"), strPtr("13:05"), 75, true},
		{"nil start", nil, strPtr("10:00"), 0, false},
		{"nil end", strPtr("10:00"), nil, 0, false},
		{"reversed", strPtr("10:00"), strPtr("09:00"), 0, false},
		{"single digit hour", strPtr("9:00"), strPtr("10:00"), 0, false},
		{"minute out of range", strPtr("09:60"), strPtr("10:00"), 0, false},
		{"hour out of range", strPtr("24:00"), strPtr("25:00"), 0, false},
		{"empty", strPtr(""), strPtr("10:00"), 0, false},
		{"garbage", strPtr("morning"), strPtr("noon"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DurationMinutes(tt.start, tt.end)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatTimeOfDay(t *testing.T) {
	require.Equal(t, "09:05", FormatTimeOfDay(strPtr("09:05:30")))
	require.Equal(t, "09:05", FormatTimeOfDay(strPtr("09:05")))
	require.Equal(t, "", FormatTimeOfDay(nil))
	require.Equal(t, "", FormatTimeOfDay(strPtr("not a time")))
	require.Equal(t, "", FormatTimeOfDay(strPtr("9:05")))
}
