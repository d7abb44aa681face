package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionIsIdle(t *testing.T) {
	s := newTestSession(allDogs(), 0)

	snap := s.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.Current)
	assert.Nil(t, snap.Next)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.Level)
	assert.True(t, snap.Grid.IsEmpty())
	assert.False(t, s.Tick())
	assert.False(t, s.TryMove(1, 0))
}

func TestStartSpawnsAtCenter(t *testing.T) {
	s := newTestSession(&fixedRand{vals: []int{0, 1, 2, 3}}, 0)
	require.True(t, s.Start())

	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, C(3, 0), cur.Anchor)
	assert.Equal(t, 0, cur.Rotation)
	assert.Equal(t, C(3, -1), cur.SecondaryPos())

	next, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, KindRabbit, next.Primary)
	assert.Equal(t, KindFox, next.Secondary)
	assert.Equal(t, StateFalling, s.State())
	assert.False(t, s.Start())
}

func TestTryMoveStopsAtWalls(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	s.Start()

	for range 3 {
		require.True(t, s.TryMove(-1, 0))
	}
	assert.False(t, s.TryMove(-1, 0))

	for range 7 {
		require.True(t, s.TryMove(1, 0))
	}
	assert.False(t, s.TryMove(1, 0))

	cur, _ := s.Current()
	assert.Equal(t, 7, cur.Anchor.X)
}

func TestTryRotateKicksOffRightWall(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	s.Start()
	for s.TryMove(1, 0) {
	}

	require.True(t, s.TryRotate())

	cur, _ := s.Current()
	assert.Equal(t, C(6, 0), cur.Anchor)
	assert.Equal(t, 1, cur.Rotation)
	assert.Equal(t, C(7, 0), cur.SecondaryPos())
}

func TestTryRotateKicksOffLeftWall(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	s.Start()
	require.True(t, s.TryRotate())
	require.True(t, s.TryRotate())
	for s.TryMove(-1, 0) {
	}

	cur, _ := s.Current()
	require.Equal(t, C(0, 0), cur.Anchor)
	require.Equal(t, 2, cur.Rotation)

	require.True(t, s.TryRotate())

	cur, _ = s.Current()
	assert.Equal(t, C(1, 0), cur.Anchor)
	assert.Equal(t, 3, cur.Rotation)
	assert.Equal(t, C(0, 0), cur.SecondaryPos())
}

func TestTryRotateRevertsInShaft(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	rows := make([]string, Rows)
	for i := range rows {
		if i%2 == 0 {
			rows[i] = "..C.R..."
		} else {
			rows[i] = "..R.C..."
		}
	}
	s.SetGrid(ParseGrid(rows...))
	require.True(t, s.Start())

	before, _ := s.Current()
	assert.False(t, s.TryRotate())

	after, _ := s.Current()
	assert.Equal(t, before, after)
}

func TestTickFallsThenLands(t *testing.T) {
	s := newTestSession(&fixedRand{vals: []int{0, 1, 2, 3}}, 0)
	s.Start()

	falls := 0
	for s.Tick() {
		falls++
	}
	assert.Equal(t, Rows-1, falls)

	g := s.Grid()
	assert.Equal(t, KindDog, g.At(3, Rows-1))
	assert.Equal(t, KindCat, g.At(3, Rows-2))

	locked := eventsOf[PieceLocked](s.DrainEvents())
	require.Len(t, locked, 1)
	assert.Len(t, locked[0].Pieces, 2)

	// next pair promoted
	cur, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, KindRabbit, cur.Primary)
	assert.Equal(t, 2, s.Pieces())
}

func TestStackingFourClearsOnChainOne(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	s.Start()

	dropAt(s, 0)
	assert.Equal(t, 2, s.Grid().FilledCount())
	assert.Equal(t, 0, s.Score())

	s.DrainEvents()
	dropAt(s, 0)

	assert.Equal(t, 40, s.Score())
	assert.Equal(t, 4, s.Cleared())
	assert.True(t, s.Grid().IsEmpty())

	events := s.DrainEvents()
	cleared := eventsOf[GroupCleared](events)
	require.Len(t, cleared, 1)
	assert.Equal(t, KindDog, cleared[0].Kind)
	assert.Len(t, cleared[0].Cells, 4)

	steps := eventsOf[ChainStep](events)
	require.Len(t, steps, 1)
	assert.Equal(t, ChainStep{Index: 1, ScoreDelta: 40, Cleared: 4}, steps[0])
}

func TestGravityTriggersSecondChain(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	s.SetGrid(ParseGrid(
		"C.......",
		"D.......",
		"C.......",
		"CD......",
		"CD......",
	))
	s.Start()
	dropAt(s, 1)

	steps := eventsOf[ChainStep](s.DrainEvents())
	require.Len(t, steps, 2)
	assert.Equal(t, ChainStep{Index: 1, ScoreDelta: 50, Cleared: 5}, steps[0])
	assert.Equal(t, ChainStep{Index: 2, ScoreDelta: 80, Cleared: 4}, steps[1])
	assert.Equal(t, 130, s.Score())
	assert.Equal(t, 2, s.MaxChain())
	assert.True(t, s.Grid().IsEmpty())
}

func TestLevelTransitions(t *testing.T) {
	tests := []struct {
		name         string
		clearedStart int
		wantLevel    int
		wantInterval time.Duration
	}{
		{"16 plus 4 reaches level 2", 16, 2, 950 * time.Millisecond},
		{"from 19 reaches level 2", 19, 2, 950 * time.Millisecond},
		{"36 plus 4 reaches level 3", 36, 3, 900 * time.Millisecond},
		{"from 39 reaches level 3", 39, 3, 900 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(allDogs(), 0)
			s.cleared = tt.clearedStart
			s.level = LevelFor(tt.clearedStart)
			s.fallInterval = FallIntervalFor(s.level)
			s.Start()

			dropAt(s, 0)
			dropAt(s, 0)

			assert.Equal(t, tt.clearedStart+4, s.Cleared())
			assert.Equal(t, tt.wantLevel, s.Level())
			assert.Equal(t, tt.wantInterval, s.FallInterval())

			changes := eventsOf[LevelChanged](s.DrainEvents())
			require.Len(t, changes, 1)
			assert.Equal(t, LevelChanged{Level: tt.wantLevel, FallInterval: tt.wantInterval}, changes[0])
		})
	}
}

func TestSettleDelayHoldsProcessingLock(t *testing.T) {
	s := newTestSession(allDogs(), 300*time.Millisecond)
	s.Start()
	dropAt(s, 0)
	dropAt(s, 0)

	require.True(t, s.Processing())
	assert.Equal(t, StateChainResolving, s.State())
	assert.Equal(t, PhaseClear, s.Snapshot().Phase)
	assert.Equal(t, 40, s.Score())
	_, ok := s.Current()
	assert.False(t, ok)

	assert.False(t, s.TryMove(1, 0))
	assert.False(t, s.TryRotate())
	assert.False(t, s.Tick())
	assert.False(t, s.SpawnNext())

	s.Advance(299 * time.Millisecond)
	assert.Equal(t, PhaseClear, s.Snapshot().Phase)

	s.Advance(time.Millisecond)
	assert.Equal(t, PhaseFall, s.Snapshot().Phase)
	assert.True(t, s.Processing())

	s.Advance(300 * time.Millisecond)
	assert.False(t, s.Processing())
	assert.Equal(t, StateFalling, s.State())
	_, ok = s.Current()
	assert.True(t, ok)
}

func TestAdvanceDrivesFallTimer(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	s.Start()

	s.Advance(999 * time.Millisecond)
	cur, _ := s.Current()
	assert.Equal(t, 0, cur.Anchor.Y)

	s.Advance(time.Millisecond)
	cur, _ = s.Current()
	assert.Equal(t, 1, cur.Anchor.Y)

	s.Advance(3 * time.Second)
	cur, _ = s.Current()
	assert.Equal(t, 4, cur.Anchor.Y)
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	g := ParseGrid(
		"...C....",
		"...R....",
		"...C....",
	)
	g.Set(3, 0, KindRabbit)
	s.SetGrid(g)

	assert.False(t, s.Start())
	assert.True(t, s.GameOver())
	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, g, s.Grid())
	_, ok := s.Current()
	assert.False(t, ok)

	over := eventsOf[GameOver](s.DrainEvents())
	require.Len(t, over, 1)
	assert.Equal(t, 0, over[0].FinalScore)

	assert.False(t, s.SpawnNext())
	assert.False(t, s.TryMove(1, 0))
	s.Advance(10 * time.Second)
	assert.Equal(t, g, s.Grid())
}

func TestColumnOverflowEndsGame(t *testing.T) {
	s := newTestSession(&fixedRand{vals: []int{0, 1}}, 0)
	s.Start()

	for i := 0; i < Rows && !s.GameOver(); i++ {
		s.HardDrop()
	}
	require.True(t, s.GameOver())
	assert.Equal(t, 0, s.Score())
	assert.LessOrEqual(t, s.Grid().ColumnHeight(3), Rows)
}

func TestResetCancelsChainInFlight(t *testing.T) {
	s := newTestSession(allDogs(), 300*time.Millisecond)
	s.Start()
	dropAt(s, 0)
	dropAt(s, 0)
	require.True(t, s.Processing())

	s.Reset()

	snap := s.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.False(t, snap.Processing)
	assert.Equal(t, PhaseNone, snap.Phase)
	assert.True(t, snap.Grid.IsEmpty())
	assert.Equal(t, 0, snap.Score)
	assert.Empty(t, s.DrainEvents())

	s.Advance(5 * time.Second)
	assert.Equal(t, StateIdle, s.State())
	assert.True(t, s.Start())
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	s.Start()

	snap := s.Snapshot()
	snap.Grid.Set(0, 0, KindBear)
	snap.Current.Anchor = C(0, 0)

	assert.True(t, s.Grid().IsEmpty())
	cur, _ := s.Current()
	assert.Equal(t, C(3, 0), cur.Anchor)
}

func TestGhostMatchesLanding(t *testing.T) {
	s := newTestSession(allDogs(), 0)
	s.SetGrid(ParseGrid("...D....", "...C...."))
	s.Start()

	ghost, ok := s.Ghost()
	require.True(t, ok)
	require.Len(t, ghost, 2)
	assert.Equal(t, C(3, Rows-3), ghost[0].Coord)
	assert.Equal(t, C(3, Rows-4), ghost[1].Coord)
}

func TestSessionsWithSameSeedAreDeterministic(t *testing.T) {
	play := func() Snapshot {
		s := NewSession(Config{Rand: rand.New(rand.NewSource(7)), SettleDelay: 100 * time.Millisecond})
		s.Start()
		for i := range 200 {
			switch i % 5 {
			case 0:
				s.TryMove(-1, 0)
			case 1:
				s.TryRotate()
			case 3:
				s.TryMove(1, 0)
			}
			s.Advance(250 * time.Millisecond)
		}
		return s.Snapshot()
	}

	assert.Equal(t, play(), play())
}
