package match

type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusTied      Status = "TIED"
	StatusNoResult  Status = "NO_RESULT"
)

func (s Status) Valid() bool {
	switch s {
	case StatusCompleted, StatusTied, StatusNoResult:
		return true
	default:
		return false
	}
}

// Result is the append-only record of one finished match. Overs are kept
// in the reported overs.balls form; normalization happens when the result
// is folded into team stats.
type Result struct {
	MatchNumber        int
	TournamentID       int64
	TeamOneID          int64
	TeamTwoID          int64
	TeamOneScore       int
	TeamTwoScore       int
	TeamOneWickets     int
	TeamTwoWickets     int
	TeamOneOversPlayed float64
	TeamTwoOversPlayed float64
	WinnerTeamID       int64
	LoserTeamID        int64
	Status             Status
}
