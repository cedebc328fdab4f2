package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLadderPolicy_PassAdvancesLadder(t *testing.T) {
	now := date(2025, time.July, 10)
	p := LadderPolicy{}

	tests := []struct {
		name         string
		reviewCount  int
		wantInterval int
	}{
		{"first review", 0, 1},
		{"second review", 1, 3},
		{"third review", 2, 7},
		{"fourth review", 3, 14},
		{"fifth review", 4, 30},
		{"ladder exhausted", 5, 60},
		{"well past ladder", 12, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, next := p.Next(1, tt.reviewCount, 85, now)
			assert.Equal(t, now.AddDate(0, 0, tt.wantInterval), next)
		})
	}
}

func TestLadderPolicy_PassRaisesMastery(t *testing.T) {
	now := date(2025, time.July, 10)
	p := LadderPolicy{}

	level, _ := p.Next(0, 0, 100, now)
	assert.Equal(t, 1, level)

	level, _ = p.Next(2, 4, 80, now) // boundary: 80 passes
	assert.Equal(t, 3, level)

	level, _ = p.Next(3, 8, 95, now) // capped at mastered
	assert.Equal(t, 3, level)
}

func TestLadderPolicy_FailRetriesTomorrow(t *testing.T) {
	now := date(2025, time.July, 10)
	p := LadderPolicy{}

	level, next := p.Next(2, 3, 79, now)
	assert.Equal(t, 1, level)
	assert.Equal(t, now.AddDate(0, 0, 1), next)

	level, next = p.Next(0, 0, 0, now) // mastery never goes negative
	assert.Equal(t, 0, level)
	assert.Equal(t, now.AddDate(0, 0, 1), next)
}
