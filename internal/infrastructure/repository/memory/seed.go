package memory

import (
	"github.com/raju4789/tourna-mate/internal/domain/pointstable"
	"github.com/raju4789/tourna-mate/internal/domain/team"
	"github.com/raju4789/tourna-mate/internal/domain/teamstats"
	"github.com/raju4789/tourna-mate/internal/domain/tournament"
)

const (
	TournamentIDPremierT20 = int64(1)
	TournamentIDIslandCup  = int64(2)
)

func SeedTournaments() []tournament.Tournament {
	return []tournament.Tournament{
		{
			ID:                   TournamentIDPremierT20,
			Name:                 "Premier T20 League",
			Description:          "Franchise T20 round robin",
			Year:                 2026,
			MaximumOversPerMatch: 20,
		},
		{
			ID:                   TournamentIDIslandCup,
			Name:                 "Island Cup",
			Description:          "Fifty over invitational",
			Year:                 2026,
			MaximumOversPerMatch: 50,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 1, Name: "Mumbai Mavericks"},
		{ID: 2, Name: "Chennai Chargers"},
		{ID: 3, Name: "Delhi Dynamos"},
		{ID: 4, Name: "Kolkata Knights"},
		{ID: 5, Name: "Colombo Kings"},
		{ID: 6, Name: "Galle Gladiators"},
	}
}

// SeedTeamEntries maps each tournament to its participating team IDs.
// Entry here is what creates the zeroed stats and points rows.
func SeedTeamEntries() map[int64][]int64 {
	return map[int64][]int64{
		TournamentIDPremierT20: {1, 2, 3, 4},
		TournamentIDIslandCup:  {5, 6},
	}
}

func SeedTeamStats() []teamstats.Stats {
	var out []teamstats.Stats
	for tournamentID, teamIDs := range SeedTeamEntries() {
		for _, teamID := range teamIDs {
			out = append(out, teamstats.Stats{TeamID: teamID, TournamentID: tournamentID})
		}
	}
	return out
}

func SeedPointsRows() []pointstable.Row {
	var out []pointstable.Row
	for tournamentID, teamIDs := range SeedTeamEntries() {
		for _, teamID := range teamIDs {
			out = append(out, pointstable.Row{TeamID: teamID, TournamentID: tournamentID})
		}
	}
	return out
}
