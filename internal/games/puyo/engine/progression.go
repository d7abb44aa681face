package engine

import "time"

// Scoring and progression constants.
const (
	BasePoints     = 10
	PiecesPerLevel = 20

	BaseFallInterval = 1000 * time.Millisecond
	FallIntervalStep = 50 * time.Millisecond
	MinFallInterval  = 100 * time.Millisecond
)

// LevelFor returns the level reached after clearing the given number of pieces.
func LevelFor(cleared int) int {
	if cleared < 0 {
		cleared = 0
	}
	return cleared/PiecesPerLevel + 1
}

// FallIntervalFor returns the gravity period at the given level.
func FallIntervalFor(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	d := BaseFallInterval - time.Duration(level-1)*FallIntervalStep
	if d < MinFallInterval {
		return MinFallInterval
	}
	return d
}

// ChainScore returns the points for clearing n pieces at the given chain
// index (1-based): n × 10 × 2^(chain-1).
func ChainScore(n, chain int) int {
	if n <= 0 || chain < 1 {
		return 0
	}
	return n * BasePoints * (1 << (chain - 1))
}
