package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/raju4789/tourna-mate/internal/domain/teamstats"
)

type statsKey struct {
	teamID       int64
	tournamentID int64
}

type TeamStatsRepository struct {
	mu   sync.RWMutex
	rows map[statsKey]teamstats.Stats
}

func NewTeamStatsRepository(rows []teamstats.Stats) *TeamStatsRepository {
	out := &TeamStatsRepository{rows: make(map[statsKey]teamstats.Stats, len(rows))}
	for _, item := range rows {
		out.rows[statsKey{teamID: item.TeamID, tournamentID: item.TournamentID}] = item
	}
	return out
}

func (r *TeamStatsRepository) GetByTeamAndTournament(_ context.Context, teamID, tournamentID int64) (teamstats.Stats, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rows[statsKey{teamID: teamID, tournamentID: tournamentID}]
	return item, ok, nil
}

func (r *TeamStatsRepository) ListByTournament(_ context.Context, tournamentID int64) ([]teamstats.Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []teamstats.Stats
	for _, item := range r.rows {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })

	return out, nil
}

func (r *TeamStatsRepository) SaveAll(_ context.Context, rows []teamstats.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range rows {
		r.rows[statsKey{teamID: item.TeamID, tournamentID: item.TournamentID}] = item
	}

	return nil
}
