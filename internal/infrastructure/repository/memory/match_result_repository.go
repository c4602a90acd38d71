package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/raju4789/tourna-mate/internal/domain/match"
)

type MatchResultRepository struct {
	mu      sync.RWMutex
	results []match.Result
}

func NewMatchResultRepository() *MatchResultRepository {
	return &MatchResultRepository{}
}

func (r *MatchResultRepository) Save(_ context.Context, result match.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, result)
	return nil
}

func (r *MatchResultRepository) ExistsByTournamentAndNumber(_ context.Context, tournamentID int64, matchNumber int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.results {
		if item.TournamentID == tournamentID && item.MatchNumber == matchNumber {
			return true, nil
		}
	}

	return false, nil
}

func (r *MatchResultRepository) ListByTournament(_ context.Context, tournamentID int64) ([]match.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []match.Result
	for _, item := range r.results {
		if item.TournamentID == tournamentID {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchNumber < out[j].MatchNumber })

	return out, nil
}
