package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/raju4789/tourna-mate/internal/domain/match"
	"github.com/raju4789/tourna-mate/internal/domain/pointstable"
	"github.com/raju4789/tourna-mate/internal/domain/teamstats"
	"github.com/raju4789/tourna-mate/internal/domain/tournament"
	"github.com/raju4789/tourna-mate/internal/platform/logging"
)

const (
	rebuildStatusSuccess = "success"
	rebuildStatusFailed  = "failed"

	defaultRebuildWorkers = 4
)

type RebuildResult struct {
	TournamentCount int                `json:"tournament_count"`
	SuccessCount    int                `json:"success_count"`
	FailedCount     int                `json:"failed_count"`
	WorkerCount     int                `json:"worker_count"`
	Tournaments     []RebuildRunResult `json:"tournaments"`
}

type RebuildRunResult struct {
	TournamentID int64  `json:"tournament_id"`
	Status       string `json:"status"`
	Matches      int    `json:"matches"`
	DurationMs   int64  `json:"duration_ms"`
	Message      string `json:"message,omitempty"`
}

// RebuildService reconstructs a tournament's cumulative stats and points
// table from its stored match log, using the same fold and outcome
// arithmetic as the live pipeline. It exists for operator reconciliation
// after a partially committed submission.
type RebuildService struct {
	tournamentRepo tournament.Repository
	teamStatsRepo  teamstats.Repository
	pointsRepo     pointstable.Repository
	matchRepo      match.Repository
	logger         *logging.Logger
}

func NewRebuildService(
	tournamentRepo tournament.Repository,
	teamStatsRepo teamstats.Repository,
	pointsRepo pointstable.Repository,
	matchRepo match.Repository,
	logger *logging.Logger,
) *RebuildService {
	if logger == nil {
		logger = logging.Default()
	}

	return &RebuildService{
		tournamentRepo: tournamentRepo,
		teamStatsRepo:  teamStatsRepo,
		pointsRepo:     pointsRepo,
		matchRepo:      matchRepo,
		logger:         logger,
	}
}

// RebuildTournament replays the tournament's match log in match-number
// order over zeroed aggregates and persists the result. The replay is
// strictly sequential within a tournament.
func (s *RebuildService) RebuildTournament(ctx context.Context, tournamentID int64) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RebuildService.RebuildTournament")
	defer span.End()

	if tournamentID <= 0 {
		return 0, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, found, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return 0, fmt.Errorf("get tournament: %w", err)
	}
	if !found {
		return 0, fmt.Errorf("%w: tournament=%d", ErrNotFound, tournamentID)
	}

	results, err := s.matchRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return 0, fmt.Errorf("list match results: %w", err)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchNumber < results[j].MatchNumber
	})

	existing, err := s.teamStatsRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return 0, fmt.Errorf("list team stats: %w", err)
	}

	statsByTeam := make(map[int64]*teamstats.Stats, len(existing))
	rowByTeam := make(map[int64]*pointstable.Row, len(existing))
	for _, st := range existing {
		statsByTeam[st.TeamID] = &teamstats.Stats{TeamID: st.TeamID, TournamentID: tournamentID}
		rowByTeam[st.TeamID] = &pointstable.Row{TeamID: st.TeamID, TournamentID: tournamentID}
	}

	for _, result := range results {
		one, ok := statsByTeam[result.TeamOneID]
		if !ok {
			return 0, fmt.Errorf("%w: team stats team=%d tournament=%d", ErrNotFound, result.TeamOneID, tournamentID)
		}
		two, ok := statsByTeam[result.TeamTwoID]
		if !ok {
			return 0, fmt.Errorf("%w: team stats team=%d tournament=%d", ErrNotFound, result.TeamTwoID, tournamentID)
		}

		if result.Status != match.StatusNoResult {
			foldMatchIntoStats(one, two, result, t.MaximumOversPerMatch)
		}
		if err := applyOutcome(rowByTeam[result.TeamOneID], rowByTeam[result.TeamTwoID], result, *one, *two); err != nil {
			return 0, fmt.Errorf("replay match %d: %w", result.MatchNumber, err)
		}
	}

	statsRows := make([]teamstats.Stats, 0, len(statsByTeam))
	for _, st := range statsByTeam {
		statsRows = append(statsRows, *st)
	}
	pointsRows := make([]pointstable.Row, 0, len(rowByTeam))
	for _, row := range rowByTeam {
		pointsRows = append(pointsRows, *row)
	}

	if err := s.teamStatsRepo.SaveAll(ctx, statsRows); err != nil {
		return 0, fmt.Errorf("%w: save rebuilt team stats: %v", ErrPersistence, err)
	}
	if err := s.pointsRepo.SaveAll(ctx, pointsRows); err != nil {
		return 0, fmt.Errorf("%w: save rebuilt points table: %v", ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "tournament rebuilt",
		"tournament_id", tournamentID,
		"matches", len(results),
		"teams", len(statsRows),
	)

	return len(results), nil
}

// RebuildAll rebuilds every tournament, fanning out across a bounded
// worker pool. Each tournament is still replayed sequentially; only
// distinct tournaments run concurrently.
func (s *RebuildService) RebuildAll(ctx context.Context, maxWorkers int) (RebuildResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RebuildService.RebuildAll")
	defer span.End()

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("list tournaments: %w", err)
	}

	workerCount := maxWorkers
	if workerCount <= 0 {
		workerCount = defaultRebuildWorkers
	}
	if workerCount > len(tournaments) && len(tournaments) > 0 {
		workerCount = len(tournaments)
	}

	out := RebuildResult{
		TournamentCount: len(tournaments),
		WorkerCount:     workerCount,
		Tournaments:     make([]RebuildRunResult, 0, len(tournaments)),
	}
	if len(tournaments) == 0 {
		return out, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RebuildResult{}, fmt.Errorf("create rebuild worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for _, t := range tournaments {
		tournamentID := t.ID
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			started := time.Now()
			matches, runErr := s.RebuildTournament(ctx, tournamentID)
			run := RebuildRunResult{
				TournamentID: tournamentID,
				Status:       rebuildStatusSuccess,
				Matches:      matches,
				DurationMs:   time.Since(started).Milliseconds(),
			}
			if runErr != nil {
				run.Status = rebuildStatusFailed
				run.Message = runErr.Error()
			}

			mu.Lock()
			out.Tournaments = append(out.Tournaments, run)
			if runErr != nil {
				out.FailedCount++
			} else {
				out.SuccessCount++
			}
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			out.FailedCount++
			out.Tournaments = append(out.Tournaments, RebuildRunResult{
				TournamentID: tournamentID,
				Status:       rebuildStatusFailed,
				Message:      submitErr.Error(),
			})
			mu.Unlock()
		}
	}

	wg.Wait()

	sort.Slice(out.Tournaments, func(i, j int) bool {
		return out.Tournaments[i].TournamentID < out.Tournaments[j].TournamentID
	})

	return out, nil
}
