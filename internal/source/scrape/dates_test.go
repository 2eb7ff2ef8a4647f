package scrape

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelativeDate(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		text string
		want time.Time
	}{
		{"3 days ago", now.AddDate(0, 0, -3)},
		{"Posted 1 day ago", now.AddDate(0, 0, -1)},
		{"5 hours ago", now.Add(-5 * time.Hour)},
		{"2 weeks ago", now.AddDate(0, 0, -14)},
		{"1 month ago", now.AddDate(0, -1, 0)},
		{"30+ Days Ago", now.AddDate(0, 0, -30)},
		{"Just now", now},
		{"Today", now},
		{"Yesterday", now.AddDate(0, 0, -1)},
		{"2025-03-01", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"12 Jan 2025", time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ParseRelativeDate(tt.text, now)
			require.NotNil(t, got)
			assert.True(t, tt.want.Equal(*got), "got %s want %s", got, tt.want)
		})
	}
}

func TestParseRelativeDate_Unparsable(t *testing.T) {
	now := time.Now()

	assert.Nil(t, ParseRelativeDate("", now))
	assert.Nil(t, ParseRelativeDate("recently", now))
	assert.Nil(t, ParseRelativeDate("Be an early applicant", now))
}

func TestParseApplyBy(t *testing.T) {
	got := ParseApplyBy("Apply By: 12 Jan 2025")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 12, 13, 0, 0, 0, 0, time.UTC), *got)

	got = ParseApplyBy("apply by 5 Feb' 25")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, ParseApplyBy("Starts immediately"))
	assert.Nil(t, ParseApplyBy("Apply By: 40 Foo 2025"))
}
