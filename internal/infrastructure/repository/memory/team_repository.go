package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/raju4789/tourna-mate/internal/domain/team"
)

type TeamRepository struct {
	mu           sync.RWMutex
	byID         map[int64]team.Team
	byTournament map[int64][]int64
}

func NewTeamRepository(teams []team.Team, entries map[int64][]int64) *TeamRepository {
	byID := make(map[int64]team.Team, len(teams))
	for _, item := range teams {
		byID[item.ID] = item
	}

	byTournament := make(map[int64][]int64, len(entries))
	for tournamentID, teamIDs := range entries {
		byTournament[tournamentID] = append([]int64(nil), teamIDs...)
	}

	return &TeamRepository{byID: byID, byTournament: byTournament}
}

func (r *TeamRepository) GetByID(_ context.Context, teamID int64) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[teamID]
	return item, ok, nil
}

func (r *TeamRepository) ListByTournament(_ context.Context, tournamentID int64) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teamIDs := r.byTournament[tournamentID]
	out := make([]team.Team, 0, len(teamIDs))
	for _, teamID := range teamIDs {
		if item, ok := r.byID[teamID]; ok {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
