package sim

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunIsIndependentOfWorkerCount(t *testing.T) {
	opts := Options{Games: 6, Seed: 42, MaxPieces: 40}

	opts.Workers = 1
	serial, err := Run(context.Background(), opts)
	require.NoError(t, err)

	opts.Workers = 3
	parallel, err := Run(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, serial.Results, parallel.Results)
	assert.Equal(t, serial.MeanScore, parallel.MeanScore)
}

func TestRunRespectsPieceCap(t *testing.T) {
	report, err := Run(context.Background(), Options{Games: 4, Workers: 2, Seed: 7, MaxPieces: 5})
	require.NoError(t, err)

	require.Len(t, report.Results, 4)
	for i, res := range report.Results {
		assert.Equal(t, i, res.Index)
		assert.Equal(t, 5, res.Pieces)
		assert.True(t, res.Capped)
	}
	assert.Equal(t, 20, report.TotalPieces)
	assert.Equal(t, 4, report.Capped)
	assert.Equal(t, "greedy", report.Policy)
}

func TestRunRandomPolicyEndsGames(t *testing.T) {
	report, err := Run(context.Background(), Options{Games: 3, Seed: 1, Policy: "random"})
	require.NoError(t, err)

	for _, res := range report.Results {
		assert.False(t, res.Capped)
		assert.Positive(t, res.Pieces)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	_, err := Run(context.Background(), Options{Games: 0})
	assert.Error(t, err)

	_, err = Run(context.Background(), Options{Games: 1, MaxPieces: -1})
	assert.Error(t, err)

	_, err = Run(context.Background(), Options{Games: 1, Policy: "psychic"})
	assert.ErrorContains(t, err, "psychic")
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Options{Games: 50, Workers: 1, Seed: 3, MaxPieces: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWritesProgress(t *testing.T) {
	var buf bytes.Buffer
	_, err := Run(context.Background(), Options{Games: 2, Seed: 9, MaxPieces: 3, Progress: &buf})
	require.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}

func TestPlayIsDeterministic(t *testing.T) {
	a := Play(123, Greedy{}, 60)
	b := Play(123, Greedy{}, 60)
	assert.Equal(t, a, b)
}

func TestSeedForSpreadsSeeds(t *testing.T) {
	seen := make(map[int64]bool)
	for i := range 100 {
		s := seedFor(1, i)
		assert.False(t, seen[s], "seed %d repeated", i)
		seen[s] = true
	}
	assert.NotEqual(t, seedFor(1, 0), seedFor(2, 0))
}
