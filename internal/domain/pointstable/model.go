package pointstable

// Row is one team's line in a tournament points table.
// Invariant: Played == Won + Lost + Tied + NoResult.
type Row struct {
	TeamID       int64
	TournamentID int64
	Played       int
	Won          int
	Lost         int
	Tied         int
	NoResult     int
	Points       int
	NetRunRate   float64
}

const (
	PointsPerWin = 2
	PointsPerTie = 1
)
