package review

import "time"

// passingScore is the quiz score at or above which a review counts as a
// hit and the ladder advances.
const passingScore = 80

// ladderIntervals is the expanding review schedule in days. The index is
// the number of consecutive successful reviews.
var ladderIntervals = []int{1, 3, 7, 14, 30}

// maxIntervalDays is the interval once the ladder is exhausted.
const maxIntervalDays = 60

// IntervalPolicy decides when a lesson should next be reviewed and how
// its mastery level moves. The stored next_review_date is an external
// contract: swap this implementation without touching the selection code
// in review.go.
type IntervalPolicy interface {
	// Next returns the updated mastery level and next review date after a
	// quiz or review scored score out of 100 at now. reviewCount is the
	// number of reviews completed before this one.
	Next(masteryLevel, reviewCount, score int, now time.Time) (int, time.Time)
}

// LadderPolicy is the default policy: an expanding day ladder on passes,
// a one-day retry and a mastery step down on fails.
type LadderPolicy struct{}

func (LadderPolicy) Next(masteryLevel, reviewCount, score int, now time.Time) (int, time.Time) {
	if score < passingScore {
		if masteryLevel > 0 {
			masteryLevel--
		}
		return masteryLevel, now.AddDate(0, 0, 1)
	}

	if masteryLevel < 3 {
		masteryLevel++
	}

	interval := maxIntervalDays
	if reviewCount < len(ladderIntervals) {
		interval = ladderIntervals[reviewCount]
	}
	return masteryLevel, now.AddDate(0, 0, interval)
}
