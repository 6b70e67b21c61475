package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/estatecalc/esc/internal/domain"
)

func TestFilingDeadline(t *testing.T) {
	tests := []struct {
		name     string
		letters  domain.Date
		expected domain.Date
	}{
		{
			name:     "Six months out, same day number",
			letters:  domain.NewDate(2024, time.January, 15),
			expected: domain.NewDate(2024, time.July, 15),
		},
		{
			name:     "January 31 lands on July 31",
			letters:  domain.NewDate(2024, time.January, 31),
			expected: domain.NewDate(2024, time.July, 31),
		},
		{
			name: "Day carries past a short month",
			// Aug 31 + 6 months is Feb 31, which normalizes into March.
			letters:  domain.NewDate(2023, time.August, 31),
			expected: domain.NewDate(2024, time.March, 2),
		},
		{
			name:     "Day carry in a non-leap year",
			letters:  domain.NewDate(2024, time.August, 31),
			expected: domain.NewDate(2025, time.March, 3),
		},
		{
			name:     "Year rollover",
			letters:  domain.NewDate(2024, time.October, 1),
			expected: domain.NewDate(2025, time.April, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilingDeadline(tt.letters)
			assert.Equal(t, tt.expected.String(), got.String())
		})
	}
}

func TestFilingDeadlineAbsentLetters(t *testing.T) {
	assert.True(t, FilingDeadline(domain.Date{}).IsZero(), "no letters date means no deadline")
}

func TestClassifyDeadline(t *testing.T) {
	now := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		deadline       domain.Date
		expectedStatus domain.DeadlineStatus
		expectedDays   int
	}{
		{
			name:           "Far out is ok",
			deadline:       domain.NewDate(2024, time.December, 1),
			expectedStatus: domain.DeadlineOK,
			expectedDays:   183,
		},
		{
			name:           "Within thirty days is urgent",
			deadline:       domain.NewDate(2024, time.June, 20),
			expectedStatus: domain.DeadlineUrgent,
			expectedDays:   19,
		},
		{
			name:           "Exactly thirty days is urgent",
			deadline:       domain.NewDate(2024, time.July, 1),
			expectedStatus: domain.DeadlineUrgent,
			expectedDays:   30,
		},
		{
			name:           "Behind the clock is passed",
			deadline:       domain.NewDate(2024, time.May, 1),
			expectedStatus: domain.DeadlinePassed,
		},
		{
			name:           "No deadline at all",
			deadline:       domain.Date{},
			expectedStatus: domain.DeadlineNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, days := ClassifyDeadline(now, tt.deadline)
			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedDays != 0 {
				assert.Equal(t, tt.expectedDays, days)
			}
		})
	}
}
