package game

import "time"

const (
	linesPerLevel    = 10
	baseFallInterval = 800 * time.Millisecond
	fallSpeedup      = 60 * time.Millisecond
	minFallInterval  = 100 * time.Millisecond
)

// scoreForClear returns the points awarded for clearing the specified number
// of rows at once at the specified level. Clearing four rows with one piece
// pays far better than four separate singles.
func scoreForClear(rows int, level int) int {
	switch rows {
	case 1:
		return 100 * level
	case 2:
		return 300 * level
	case 3:
		return 500 * level
	case 4:
		return 800 * level
	}

	return 0
}

// levelForLines returns the level for a cumulative lines-cleared count. Play
// starts at level 1 and the level rises every 10 lines.
func levelForLines(lines int) int {
	return (lines / linesPerLevel) + 1
}

// FallInterval returns the gravity tick interval for the specified level.
// Higher levels fall faster, down to a fixed floor.
func FallInterval(level int) time.Duration {
	interval := baseFallInterval - time.Duration(level-1)*fallSpeedup
	if interval < minFallInterval {
		return minFallInterval
	}

	return interval
}
