package httpapi

type tournamentDTO struct {
	TournamentID         int64  `json:"tournament_id"`
	TournamentName       string `json:"tournament_name"`
	Description          string `json:"description,omitempty"`
	Year                 int    `json:"year"`
	MaximumOversPerMatch int    `json:"maximum_overs_per_match"`
}

type pointsTableDTO struct {
	TournamentID int64                 `json:"tournament_id"`
	Entries      []pointsTableEntryDTO `json:"entries"`
}

type pointsTableEntryDTO struct {
	Position   int     `json:"position"`
	TeamID     int64   `json:"team_id"`
	TeamName   string  `json:"team_name"`
	Played     int     `json:"played"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	Tied       int     `json:"tied"`
	NoResult   int     `json:"no_result"`
	Points     int     `json:"points"`
	NetRunRate float64 `json:"net_run_rate"`
}

// Overs fields are in overs.balls form (12.3 = 12 overs 3 balls); the
// pipeline rejects a balls digit outside 0-5.
type submitMatchResultRequest struct {
	MatchNumber        int     `json:"match_number" validate:"required,min=1"`
	TeamOneID          int64   `json:"team_one_id" validate:"required,min=1"`
	TeamTwoID          int64   `json:"team_two_id" validate:"required,min=1,nefield=TeamOneID"`
	TeamOneScore       int     `json:"team_one_score" validate:"min=0"`
	TeamTwoScore       int     `json:"team_two_score" validate:"min=0"`
	TeamOneWickets     int     `json:"team_one_wickets" validate:"min=0,max=10"`
	TeamTwoWickets     int     `json:"team_two_wickets" validate:"min=0,max=10"`
	TeamOneOversPlayed float64 `json:"team_one_overs_played" validate:"min=0"`
	TeamTwoOversPlayed float64 `json:"team_two_overs_played" validate:"min=0"`
	WinnerTeamID       int64   `json:"winner_team_id" validate:"min=0"`
	LoserTeamID        int64   `json:"loser_team_id" validate:"min=0"`
	Status             string  `json:"status" validate:"required,oneof=COMPLETED TIED NO_RESULT"`
}

type submitMatchResultResponse struct {
	TournamentID int64  `json:"tournament_id"`
	MatchNumber  int    `json:"match_number"`
	Status       string `json:"status"`
}
