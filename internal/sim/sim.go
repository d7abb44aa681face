// Package sim plays many headless games with a placement policy and
// summarizes the outcomes. Games run in parallel on a worker pool; each one
// is seeded from the base seed and its index, so a report depends only on
// the options and never on scheduling.
package sim

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/cheggaaa/pb/v3"

	"github.com/vovakirdan/tui-puyo/internal/games/puyo/engine"
)

// Options configures a batch of simulated games.
type Options struct {
	Games     int   // Number of games to play
	Workers   int   // Parallel games; <= 0 uses every CPU
	Seed      int64 // Base seed
	MaxPieces int   // Stop a game after this many pairs; 0 plays to game over

	// Policy names the placement policy. Empty means "greedy".
	Policy string

	// Progress receives the progress bar. Nil hides it.
	Progress io.Writer

	// Logger receives per-game debug lines. Nil discards them.
	Logger *log.Logger
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Index    int
	Seed     int64
	Score    int
	Level    int
	MaxChain int
	Cleared  int
	Pieces   int  // Pairs placed
	Capped   bool // Stopped by MaxPieces rather than game over
}

type job struct {
	index int
	seed  int64
}

// Run plays opts.Games games and returns their summary. Cancelling ctx
// stops handing out games and returns ctx's error.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.Games <= 0 {
		return Report{}, errors.New("games must be positive")
	}
	if opts.MaxPieces < 0 {
		return Report{}, errors.New("max pieces must not be negative")
	}
	if opts.Policy == "" {
		opts.Policy = "greedy"
	}
	newPolicy, err := LookupPolicy(opts.Policy)
	if err != nil {
		return Report{}, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, opts.Games)
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	bar := pb.New(opts.Games)
	if opts.Progress == nil {
		bar.SetWriter(io.Discard)
	} else {
		bar.SetWriter(opts.Progress)
	}
	bar.Start()

	// each worker writes only the slots of the jobs it took
	results := make([]GameResult, opts.Games)
	jobs := make(chan job, workers)
	wg := new(sync.WaitGroup)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res := Play(j.seed, newPolicy(j.seed), opts.MaxPieces)
				res.Index = j.index
				results[j.index] = res
				logger.Debug("game finished", "index", j.index, "score", res.Score, "chain", res.MaxChain, "pieces", res.Pieces)
				bar.Increment()
			}
		}()
	}

feed:
	for i := range opts.Games {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{index: i, seed: seedFor(opts.Seed, i)}:
		}
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(bar.StartTime())
	bar.Finish()

	if err := ctx.Err(); err != nil {
		return Report{}, fmt.Errorf("simulation interrupted: %w", err)
	}

	report := Summarize(results)
	report.Policy = opts.Policy
	report.Seed = opts.Seed
	report.Elapsed = elapsed
	return report, nil
}

// Play runs a single game to game over, or until maxPieces pairs are placed
// when maxPieces > 0. Chains resolve instantly.
func Play(seed int64, policy Policy, maxPieces int) GameResult {
	s := engine.NewSession(engine.Config{
		Rand:        rand.New(rand.NewSource(seed)),
		SettleDelay: 0,
	})
	s.Start()

	res := GameResult{Seed: seed}
	for !s.GameOver() {
		if maxPieces > 0 && res.Pieces >= maxPieces {
			res.Capped = true
			break
		}
		cur, ok := s.Current()
		if !ok {
			// a chain is still settling; only possible with a delay
			s.Advance(time.Second)
			continue
		}
		steer(s, cur, policy.Choose(s.Grid(), cur))
		s.HardDrop()
		res.Pieces++
	}

	res.Score = s.Score()
	res.Level = s.Level()
	res.MaxChain = s.MaxChain()
	res.Cleared = s.Cleared()
	return res
}

// steer turns and slides the active pair toward m as far as the well allows.
func steer(s *engine.Session, cur engine.Pair, m Move) {
	for range 4 {
		if cur.Rotation == m.Rotation%4 || !s.TryRotate() {
			break
		}
		cur, _ = s.Current()
	}

	dx := 1
	if m.Column < cur.Anchor.X {
		dx = -1
	}
	for cur.Anchor.X != m.Column {
		if !s.TryMove(dx, 0) {
			break
		}
		cur, _ = s.Current()
	}
}

// seedFor derives the seed of game i with a splitmix64 step so nearby base
// seeds still give unrelated games.
func seedFor(base int64, i int) int64 {
	z := uint64(base) + uint64(i+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
