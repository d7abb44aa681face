package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		cleared int
		want    int
	}{
		{0, 1},
		{19, 1},
		{20, 2},
		{39, 2},
		{40, 3},
		{400, 21},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.cleared), "cleared %d", tt.cleared)
	}
}

func TestFallIntervalFor(t *testing.T) {
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 1000 * time.Millisecond},
		{2, 950 * time.Millisecond},
		{3, 900 * time.Millisecond},
		{18, 150 * time.Millisecond},
		{19, 100 * time.Millisecond},
		{50, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FallIntervalFor(tt.level), "level %d", tt.level)
	}
}

func TestChainScore(t *testing.T) {
	assert.Equal(t, 40, ChainScore(4, 1))
	assert.Equal(t, 100, ChainScore(5, 2))
	assert.Equal(t, 320, ChainScore(8, 3))
	assert.Equal(t, 0, ChainScore(0, 1))
}
