package usecase

import (
	"context"
	"fmt"

	"github.com/raju4789/tourna-mate/internal/domain/cricket"
	"github.com/raju4789/tourna-mate/internal/domain/match"
	"github.com/raju4789/tourna-mate/internal/domain/pointstable"
	"github.com/raju4789/tourna-mate/internal/domain/teamstats"
	"github.com/raju4789/tourna-mate/internal/domain/tournament"
	"github.com/raju4789/tourna-mate/internal/platform/logging"
)

// SubmitMatchResultInput carries one finished match as reported by the
// scorer. Overs are in overs.balls form (12.3 = 12 overs 3 balls).
type SubmitMatchResultInput struct {
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
	Status             match.Status
}

// MatchResultService applies one incoming match result to both teams'
// cumulative stats and points-table rows, in that order, then appends
// the raw match record. Stats must be written before the points step so
// the recomputed net run rate reflects the current match.
type MatchResultService struct {
	tournamentRepo tournament.Repository
	teamStatsRepo  teamstats.Repository
	pointsRepo     pointstable.Repository
	matchRepo      match.Repository
	logger         *logging.Logger
}

func NewMatchResultService(
	tournamentRepo tournament.Repository,
	teamStatsRepo teamstats.Repository,
	pointsRepo pointstable.Repository,
	matchRepo match.Repository,
	logger *logging.Logger,
) *MatchResultService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchResultService{
		tournamentRepo: tournamentRepo,
		teamStatsRepo:  teamStatsRepo,
		pointsRepo:     pointsRepo,
		matchRepo:      matchRepo,
		logger:         logger,
	}
}

// SubmitMatchResult runs the full pipeline for one submission. Callers
// must serialize submissions per tournament; the read-then-write steps
// here are not isolated against concurrent writers of the same rows.
func (s *MatchResultService) SubmitMatchResult(ctx context.Context, input SubmitMatchResultInput) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.SubmitMatchResult")
	defer span.End()

	result, err := validateSubmission(input)
	if err != nil {
		return err
	}

	exists, err := s.matchRepo.ExistsByTournamentAndNumber(ctx, result.TournamentID, result.MatchNumber)
	if err != nil {
		return fmt.Errorf("check match number: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: match %d already recorded for tournament %d", ErrInvalidInput, result.MatchNumber, result.TournamentID)
	}

	t, found, err := s.tournamentRepo.GetByID(ctx, result.TournamentID)
	if err != nil {
		return fmt.Errorf("get tournament: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: tournament=%d", ErrNotFound, result.TournamentID)
	}

	statsOne, statsTwo, err := s.applyTeamStats(ctx, result, t.MaximumOversPerMatch)
	if err != nil {
		return err
	}

	if err := s.applyPointsTable(ctx, result, statsOne, statsTwo); err != nil {
		return err
	}

	if err := s.matchRepo.Save(ctx, result); err != nil {
		return fmt.Errorf("%w: save match result: %v", ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "match result applied",
		"tournament_id", result.TournamentID,
		"match_number", result.MatchNumber,
		"status", string(result.Status),
	)

	return nil
}

// applyTeamStats folds the match into both teams' cumulative figures and
// persists the pair. A NO_RESULT match contributes no batting or bowling
// figures; the unmodified rows are returned for the points step.
func (s *MatchResultService) applyTeamStats(ctx context.Context, result match.Result, maxOvers int) (teamstats.Stats, teamstats.Stats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.applyTeamStats")
	defer span.End()

	statsOne, found, err := s.teamStatsRepo.GetByTeamAndTournament(ctx, result.TeamOneID, result.TournamentID)
	if err != nil {
		return teamstats.Stats{}, teamstats.Stats{}, fmt.Errorf("get team stats: %w", err)
	}
	if !found {
		return teamstats.Stats{}, teamstats.Stats{}, fmt.Errorf("%w: team stats team=%d tournament=%d", ErrNotFound, result.TeamOneID, result.TournamentID)
	}

	statsTwo, found, err := s.teamStatsRepo.GetByTeamAndTournament(ctx, result.TeamTwoID, result.TournamentID)
	if err != nil {
		return teamstats.Stats{}, teamstats.Stats{}, fmt.Errorf("get team stats: %w", err)
	}
	if !found {
		return teamstats.Stats{}, teamstats.Stats{}, fmt.Errorf("%w: team stats team=%d tournament=%d", ErrNotFound, result.TeamTwoID, result.TournamentID)
	}

	if result.Status == match.StatusNoResult {
		return statsOne, statsTwo, nil
	}

	foldMatchIntoStats(&statsOne, &statsTwo, result, maxOvers)

	if err := s.teamStatsRepo.SaveAll(ctx, []teamstats.Stats{statsOne, statsTwo}); err != nil {
		return teamstats.Stats{}, teamstats.Stats{}, fmt.Errorf("%w: save team stats: %v", ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "team stats updated",
		"tournament_id", result.TournamentID,
		"team_one_id", result.TeamOneID,
		"team_two_id", result.TeamTwoID,
	)

	return statsOne, statsTwo, nil
}

// applyPointsTable converts the outcome into standings movement using the
// freshly updated cumulative stats and persists both rows.
func (s *MatchResultService) applyPointsTable(ctx context.Context, result match.Result, statsOne, statsTwo teamstats.Stats) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.applyPointsTable")
	defer span.End()

	rowOne, found, err := s.pointsRepo.GetByTeamAndTournament(ctx, result.TeamOneID, result.TournamentID)
	if err != nil {
		return fmt.Errorf("get points row: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: points row team=%d tournament=%d", ErrNotFound, result.TeamOneID, result.TournamentID)
	}

	rowTwo, found, err := s.pointsRepo.GetByTeamAndTournament(ctx, result.TeamTwoID, result.TournamentID)
	if err != nil {
		return fmt.Errorf("get points row: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: points row team=%d tournament=%d", ErrNotFound, result.TeamTwoID, result.TournamentID)
	}

	if err := applyOutcome(&rowOne, &rowTwo, result, statsOne, statsTwo); err != nil {
		return err
	}

	if err := s.pointsRepo.SaveAll(ctx, []pointstable.Row{rowOne, rowTwo}); err != nil {
		return fmt.Errorf("%w: save points table: %v", ErrPersistence, err)
	}

	s.logger.InfoContext(ctx, "points table updated",
		"tournament_id", result.TournamentID,
		"team_one_id", result.TeamOneID,
		"team_two_id", result.TeamTwoID,
	)

	return nil
}

// foldMatchIntoStats applies one match's batting and bowling figures to
// both teams, normalizing each side's overs with its own wicket count.
func foldMatchIntoStats(one, two *teamstats.Stats, result match.Result, maxOvers int) {
	oversOne := cricket.NormalizeOvers(result.TeamOneOversPlayed, maxOvers, result.TeamOneWickets)
	oversTwo := cricket.NormalizeOvers(result.TeamTwoOversPlayed, maxOvers, result.TeamTwoWickets)

	one.AddInnings(result.TeamOneScore, oversOne, result.TeamTwoScore, oversTwo)
	two.AddInnings(result.TeamTwoScore, oversTwo, result.TeamOneScore, oversOne)
}

// applyOutcome mutates both points rows for the match outcome. Net run
// rate is recomputed for completed and tied matches from the cumulative
// stats that already include this match; a no-result leaves it untouched.
// A tie awards one point to each side.
func applyOutcome(rowOne, rowTwo *pointstable.Row, result match.Result, statsOne, statsTwo teamstats.Stats) error {
	rowOne.Played++
	rowTwo.Played++

	switch result.Status {
	case match.StatusCompleted:
		if result.WinnerTeamID == rowOne.TeamID {
			rowOne.Won++
			rowOne.Points += pointstable.PointsPerWin
			rowTwo.Lost++
		} else {
			rowTwo.Won++
			rowTwo.Points += pointstable.PointsPerWin
			rowOne.Lost++
		}
	case match.StatusTied:
		rowOne.Tied++
		rowTwo.Tied++
		rowOne.Points += pointstable.PointsPerTie
		rowTwo.Points += pointstable.PointsPerTie
	case match.StatusNoResult:
		rowOne.NoResult++
		rowTwo.NoResult++
		return nil
	}

	nrrOne, err := cricket.NetRunRate(float64(statsOne.TotalRunsScored), statsOne.TotalOversPlayed, float64(statsOne.TotalRunsConceded), statsOne.TotalOversBowled)
	if err != nil {
		return fmt.Errorf("%w: net run rate team=%d: %v", ErrInvalidInput, rowOne.TeamID, err)
	}
	nrrTwo, err := cricket.NetRunRate(float64(statsTwo.TotalRunsScored), statsTwo.TotalOversPlayed, float64(statsTwo.TotalRunsConceded), statsTwo.TotalOversBowled)
	if err != nil {
		return fmt.Errorf("%w: net run rate team=%d: %v", ErrInvalidInput, rowTwo.TeamID, err)
	}

	rowOne.NetRunRate = nrrOne
	rowTwo.NetRunRate = nrrTwo

	return nil
}

func validateSubmission(input SubmitMatchResultInput) (match.Result, error) {
	if input.MatchNumber < 1 {
		return match.Result{}, fmt.Errorf("%w: match number must be >= 1", ErrInvalidInput)
	}
	if input.TournamentID <= 0 {
		return match.Result{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}
	if input.TeamOneID <= 0 || input.TeamTwoID <= 0 {
		return match.Result{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if input.TeamOneID == input.TeamTwoID {
		return match.Result{}, fmt.Errorf("%w: a team cannot play itself", ErrInvalidInput)
	}
	if input.TeamOneScore < 0 || input.TeamTwoScore < 0 {
		return match.Result{}, fmt.Errorf("%w: scores must be >= 0", ErrInvalidInput)
	}
	if input.TeamOneWickets < 0 || input.TeamOneWickets > cricket.WicketsPerInning ||
		input.TeamTwoWickets < 0 || input.TeamTwoWickets > cricket.WicketsPerInning {
		return match.Result{}, fmt.Errorf("%w: wickets must be between 0 and %d", ErrInvalidInput, cricket.WicketsPerInning)
	}
	if !cricket.ValidOversBallsForm(input.TeamOneOversPlayed) || !cricket.ValidOversBallsForm(input.TeamTwoOversPlayed) {
		return match.Result{}, fmt.Errorf("%w: overs must be in overs.balls form with 0-5 balls", ErrInvalidInput)
	}
	if !input.Status.Valid() {
		return match.Result{}, fmt.Errorf("%w: unknown match result status %q", ErrInvalidInput, input.Status)
	}
	// A played match has deliveries on both sides. Letting a zero-overs
	// innings through would write the stats pair and then fail the net
	// run rate division, leaving a partial commit for the rebuild job.
	if input.Status != match.StatusNoResult && (input.TeamOneOversPlayed <= 0 || input.TeamTwoOversPlayed <= 0) {
		return match.Result{}, fmt.Errorf("%w: a played match requires overs for both innings", ErrInvalidInput)
	}

	if input.Status == match.StatusCompleted {
		if input.WinnerTeamID == 0 || input.LoserTeamID == 0 {
			return match.Result{}, fmt.Errorf("%w: completed match requires winner and loser", ErrInvalidInput)
		}
		pair := map[int64]bool{input.TeamOneID: true, input.TeamTwoID: true}
		if !pair[input.WinnerTeamID] || !pair[input.LoserTeamID] || input.WinnerTeamID == input.LoserTeamID {
			return match.Result{}, fmt.Errorf("%w: winner and loser must be the two participating teams", ErrInvalidInput)
		}
	}

	return match.Result{
		MatchNumber:        input.MatchNumber,
		TournamentID:       input.TournamentID,
		TeamOneID:          input.TeamOneID,
		TeamTwoID:          input.TeamTwoID,
		TeamOneScore:       input.TeamOneScore,
		TeamTwoScore:       input.TeamTwoScore,
		TeamOneWickets:     input.TeamOneWickets,
		TeamTwoWickets:     input.TeamTwoWickets,
		TeamOneOversPlayed: input.TeamOneOversPlayed,
		TeamTwoOversPlayed: input.TeamTwoOversPlayed,
		WinnerTeamID:       input.WinnerTeamID,
		LoserTeamID:        input.LoserTeamID,
		Status:             input.Status,
	}, nil
}
