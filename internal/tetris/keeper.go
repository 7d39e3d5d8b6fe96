package tetris

// ScoreKeeper persists the best score between runs.
// ReadBest returns 0 when nothing is stored or the store is unreadable.
// WriteBest is best effort; failures are not reported to the engine.
type ScoreKeeper interface {
	ReadBest() int
	WriteBest(score int)
}

// nopKeeper is used when no keeper is configured.
type nopKeeper struct{}

func (nopKeeper) ReadBest() int   { return 0 }
func (nopKeeper) WriteBest(_ int) {}
