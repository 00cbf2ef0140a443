package tower

// Snapshot captures the complete game state for tests and reporting.
type Snapshot struct {
	Mode          Mode
	Floor         int // Zero-based
	TimeLeft      int // Seconds
	Coins         int
	X             int // Percent
	HighScore     int // Zero-based
	RecordAtStart int
	NewRecord     bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Mode:          g.mode,
		Floor:         g.floor,
		TimeLeft:      g.timeLeft,
		Coins:         g.coins,
		X:             g.x,
		HighScore:     g.highScore,
		RecordAtStart: g.recordAtStart,
		NewRecord:     g.NewRecord(),
	}
}
