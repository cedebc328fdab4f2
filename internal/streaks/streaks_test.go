package streaks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 12, 0, 0, 0, time.UTC)
}

func TestCompute_ConsecutiveDays(t *testing.T) {
	now := day(10)
	activity := []time.Time{day(8), day(9), day(10)}

	s := Compute(activity, now)
	assert.Equal(t, 3, s.Current)
	assert.Equal(t, 3, s.Longest)
	assert.True(t, s.ActiveToday)
}

func TestCompute_SameDayRepeatsCountOnce(t *testing.T) {
	now := day(10)
	activity := []time.Time{
		day(9),
		day(10).Add(-3 * time.Hour),
		day(10),
		day(10).Add(5 * time.Hour),
	}

	s := Compute(activity, now)
	assert.Equal(t, 2, s.Current)
}

func TestCompute_StreakSurvivesUntilEndOfToday(t *testing.T) {
	// Last activity yesterday, nothing yet today: streak holds.
	now := day(10)
	activity := []time.Time{day(8), day(9)}

	s := Compute(activity, now)
	assert.Equal(t, 2, s.Current)
	assert.False(t, s.ActiveToday)
}

func TestCompute_GapBreaksStreak(t *testing.T) {
	now := day(10)
	activity := []time.Time{day(6), day(7), day(8)}

	s := Compute(activity, now)
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 3, s.Longest)
}

func TestCompute_LongestRemembersOldRun(t *testing.T) {
	now := day(20)
	activity := []time.Time{
		day(1), day(2), day(3), day(4), day(5),
		day(19), day(20),
	}

	s := Compute(activity, now)
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, 5, s.Longest)
}

func TestCompute_NoActivity(t *testing.T) {
	s := Compute(nil, day(10))
	assert.Equal(t, 0, s.Current)
	assert.Equal(t, 0, s.Longest)
	assert.Equal(t, 3, s.NextMilestone)
}

func TestNextMilestone(t *testing.T) {
	tests := []struct {
		current int
		want    int
	}{
		{0, 3},
		{2, 3},
		{3, 7},
		{7, 14},
		{14, 30},
		{30, 60},
		{45, 60},
		{60, 90},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NextMilestone(tt.current), "current=%d", tt.current)
	}
}

func TestIsMilestone(t *testing.T) {
	for _, n := range []int{3, 7, 14, 30, 60, 90} {
		assert.True(t, IsMilestone(n), "%d", n)
	}
	for _, n := range []int{0, 1, 2, 4, 15, 29, 31, 45} {
		assert.False(t, IsMilestone(n), "%d", n)
	}
}
