package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	results := []GameResult{
		{Index: 0, Score: 30, MaxChain: 1, Pieces: 10},
		{Index: 1, Score: 10, MaxChain: 2, Pieces: 20, Capped: true},
		{Index: 2, Score: 20, MaxChain: 2, Pieces: 30},
	}
	r := Summarize(results)

	assert.Equal(t, 3, r.Games)
	assert.InDelta(t, 20.0, r.MeanScore, 1e-9)
	assert.InDelta(t, 10.0, r.StdDevScore, 1e-9)
	assert.InDelta(t, 20.0, r.MedianScore, 1e-9)
	assert.Positive(t, r.CI95)
	assert.Equal(t, 30, r.BestScore)
	assert.Equal(t, 0, r.BestIndex)
	assert.Equal(t, 2, r.MaxChain)
	assert.InDelta(t, 5.0/3.0, r.MeanChain, 1e-9)
	assert.Equal(t, 60, r.TotalPieces)
	assert.InDelta(t, 20.0, r.MeanPieces, 1e-9)
	assert.Equal(t, 1, r.Capped)
	assert.Equal(t, map[int]int{1: 1, 2: 2}, r.ChainCounts)
}

func TestSummarizeSingleGame(t *testing.T) {
	r := Summarize([]GameResult{{Score: 50, MaxChain: 3}})
	assert.Zero(t, r.StdDevScore)
	assert.Zero(t, r.CI95)
	assert.Equal(t, 50, r.BestScore)
}

func TestSummarizeEmpty(t *testing.T) {
	r := Summarize(nil)
	assert.Zero(t, r.Games)
	assert.Empty(t, r.ChainCounts)
}

func TestReportWrite(t *testing.T) {
	r := Summarize([]GameResult{{Score: 40, MaxChain: 2, Pieces: 12}})
	r.Policy = "greedy"

	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf))
	out := buf.String()
	assert.Contains(t, out, "Simulation report")
	assert.Contains(t, out, "greedy")
	assert.Contains(t, out, "Best chain")
}
