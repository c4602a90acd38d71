package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/raju4789/tourna-mate/internal/domain/pointstable"
)

type PointsTableRepository struct {
	mu   sync.RWMutex
	rows map[statsKey]pointstable.Row
}

func NewPointsTableRepository(rows []pointstable.Row) *PointsTableRepository {
	out := &PointsTableRepository{rows: make(map[statsKey]pointstable.Row, len(rows))}
	for _, item := range rows {
		out.rows[statsKey{teamID: item.TeamID, tournamentID: item.TournamentID}] = item
	}
	return out
}

func (r *PointsTableRepository) GetByTeamAndTournament(_ context.Context, teamID, tournamentID int64) (pointstable.Row, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.rows[statsKey{teamID: teamID, tournamentID: tournamentID}]
	return item, ok, nil
}

func (r *PointsTableRepository) ListByTournament(_ context.Context, tournamentID int64) ([]pointstable.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []pointstable.Row
	for _, item := range r.rows {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TeamID < out[j].TeamID })

	return out, nil
}

func (r *PointsTableRepository) SaveAll(_ context.Context, rows []pointstable.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range rows {
		r.rows[statsKey{teamID: item.TeamID, tournamentID: item.TournamentID}] = item
	}

	return nil
}
