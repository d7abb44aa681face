package sim

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Report summarizes a batch of games.
type Report struct {
	Policy  string
	Seed    int64
	Games   int
	Results []GameResult

	MeanScore   float64
	StdDevScore float64
	MedianScore float64
	P90Score    float64
	CI95        float64 // Half-width of the 95% confidence interval of MeanScore
	BestScore   int
	BestIndex   int

	MeanChain float64
	MaxChain  int
	// ChainCounts maps a best chain length to how many games reached it.
	ChainCounts map[int]int

	MeanPieces  float64
	TotalPieces int
	Capped      int

	Elapsed time.Duration
}

// Summarize computes the aggregate statistics of results.
func Summarize(results []GameResult) Report {
	r := Report{
		Games:       len(results),
		Results:     results,
		ChainCounts: make(map[int]int),
	}
	if len(results) == 0 {
		return r
	}

	scores := make([]float64, len(results))
	chains := make([]float64, len(results))
	pieces := make([]float64, len(results))
	for i, res := range results {
		scores[i] = float64(res.Score)
		chains[i] = float64(res.MaxChain)
		pieces[i] = float64(res.Pieces)
		r.ChainCounts[res.MaxChain]++
		r.TotalPieces += res.Pieces
		if res.Capped {
			r.Capped++
		}
	}

	r.MeanScore, r.StdDevScore = stat.MeanStdDev(scores, nil)
	n := float64(len(scores))
	if len(scores) < 2 {
		r.StdDevScore = 0
	} else {
		t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: n - 1}
		r.CI95 = t.Quantile(0.975) * r.StdDevScore / math.Sqrt(n)
	}

	r.BestIndex = floats.MaxIdx(scores)
	r.BestScore = results[r.BestIndex].Score
	r.MaxChain = int(floats.Max(chains))
	r.MeanChain = stat.Mean(chains, nil)
	r.MeanPieces = stat.Mean(pieces, nil)

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)
	r.MedianScore = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	r.P90Score = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return r
}

var (
	reportTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	reportBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Write prints the report as two tables: the summary and the distribution
// of best chains.
func (r Report) Write(w io.Writer) error {
	summary := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(reportBorderStyle).
		Headers("Metric", "Value").
		Row("Games", strconv.Itoa(r.Games)).
		Row("Policy", r.Policy).
		Row("Seed", strconv.FormatInt(r.Seed, 10)).
		Row("Mean score", fmt.Sprintf("%.1f ± %.1f", r.MeanScore, r.CI95)).
		Row("Std dev", fmt.Sprintf("%.1f", r.StdDevScore)).
		Row("Median", fmt.Sprintf("%.0f", r.MedianScore)).
		Row("P90", fmt.Sprintf("%.0f", r.P90Score)).
		Row("Best", fmt.Sprintf("%d (game %d)", r.BestScore, r.BestIndex)).
		Row("Mean chain", fmt.Sprintf("%.2f", r.MeanChain)).
		Row("Max chain", strconv.Itoa(r.MaxChain)).
		Row("Mean pieces", fmt.Sprintf("%.1f", r.MeanPieces)).
		Row("Capped", strconv.Itoa(r.Capped)).
		Row("Elapsed", r.Elapsed.Round(time.Millisecond).String())

	chainLens := make([]int, 0, len(r.ChainCounts))
	for c := range r.ChainCounts {
		chainLens = append(chainLens, c)
	}
	sort.Ints(chainLens)
	dist := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(reportBorderStyle).
		Headers("Best chain", "Games", "Share")
	for _, c := range chainLens {
		share := float64(r.ChainCounts[c]) / float64(max(r.Games, 1)) * 100
		dist.Row(strconv.Itoa(c), strconv.Itoa(r.ChainCounts[c]), fmt.Sprintf("%.1f%%", share))
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n",
		reportTitleStyle.Render("Simulation report"),
		summary.Render(),
		dist.Render(),
	)
	return err
}
