package teamstats

// Stats holds one team's cumulative batting and bowling figures for a
// tournament. Overs are stored in decimal form (balls already converted
// to sixths), never in the reported overs.balls form.
type Stats struct {
	TeamID            int64
	TournamentID      int64
	TotalRunsScored   int
	TotalOversPlayed  float64
	TotalRunsConceded int
	TotalOversBowled  float64
}

// AddInnings folds one match innings into the cumulative figures.
// scored/oversFaced are the team's own batting figures, conceded/oversBowled
// the opposition's, all overs in decimal form.
func (s *Stats) AddInnings(scored int, oversFaced float64, conceded int, oversBowled float64) {
	s.TotalRunsScored += scored
	s.TotalOversPlayed += oversFaced
	s.TotalRunsConceded += conceded
	s.TotalOversBowled += oversBowled
}
