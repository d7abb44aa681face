package engine

// beginChain takes the processing lock and starts resolving the well.
func (s *Session) beginChain() {
	s.processing = true
	s.state = StateChainResolving
	s.chain = 1
	s.phase = PhaseScan
	s.resumeChain()
}

// resumeChain runs chain phases until one has to wait on the settle delay
// or the chain is exhausted. It is re-entered from Advance when the delay
// expires.
func (s *Session) resumeChain() {
	for {
		switch s.phase {
		case PhaseScan:
			if !s.clearGroups() {
				s.endChain()
				return
			}
			s.phase = PhaseClear
			if s.waitSettle() {
				return
			}

		case PhaseClear:
			ApplyGravity(&s.grid)
			s.phase = PhaseFall
			if s.waitSettle() {
				return
			}

		case PhaseFall:
			s.chain++
			s.phase = PhaseScan

		default:
			return
		}
	}
}

// waitSettle arms the settle delay and reports whether the chain must pause.
// A zero delay resolves the next phase immediately.
func (s *Session) waitSettle() bool {
	if s.settleDelay <= 0 {
		return false
	}
	s.delay.After(s.settleDelay)
	return true
}

// clearGroups removes every qualifying group, scores it at the current chain
// index and updates progression. Returns false when nothing matched.
func (s *Session) clearGroups() bool {
	groups := FindGroups(&s.grid)
	if len(groups) == 0 {
		return false
	}

	for _, gr := range groups {
		s.emit(GroupCleared{Kind: gr.Kind, Cells: gr.Cells, Chain: s.chain})
	}

	cells := unionCells(groups)
	for _, c := range cells {
		s.grid.Set(c.X, c.Y, KindNone)
	}

	n := len(cells)
	delta := ChainScore(n, s.chain)
	s.score += delta
	s.cleared += n
	if s.chain > s.maxChain {
		s.maxChain = s.chain
	}

	s.logger.Debug("chain step", "chain", s.chain, "cleared", n, "delta", delta, "score", s.score)
	s.emit(ChainStep{Index: s.chain, ScoreDelta: delta, Cleared: n})

	s.updateLevel()
	return true
}

// endChain releases the processing lock and brings in the next pair.
func (s *Session) endChain() {
	s.phase = PhaseNone
	s.chain = 0
	s.delay.Stop()
	s.processing = false
	s.SpawnNext()
}

// cancelChain drops an in-flight chain without resolving it.
func (s *Session) cancelChain() {
	s.phase = PhaseNone
	s.chain = 0
	s.delay.Stop()
	s.processing = false
}

// updateLevel re-derives the level from the cleared count and, on a rise,
// reschedules the fall timer at the new interval.
func (s *Session) updateLevel() {
	level := LevelFor(s.cleared)
	if level <= s.level {
		return
	}
	s.level = level
	s.fallInterval = FallIntervalFor(level)
	s.fall.Every(s.fallInterval)

	s.logger.Debug("level up", "level", s.level, "interval", s.fallInterval)
	s.emit(LevelChanged{Level: s.level, FallInterval: s.fallInterval})
}
