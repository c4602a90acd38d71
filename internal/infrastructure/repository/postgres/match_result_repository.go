package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/raju4789/tourna-mate/internal/domain/match"
	qb "github.com/raju4789/tourna-mate/internal/platform/querybuilder"
)

type matchResultTableModel struct {
	ID                 int64     `db:"id"`
	MatchNumber        int       `db:"match_number"`
	TournamentID       int64     `db:"tournament_id"`
	TeamOneID          int64     `db:"team_one_id"`
	TeamTwoID          int64     `db:"team_two_id"`
	TeamOneScore       int       `db:"team_one_score"`
	TeamTwoScore       int       `db:"team_two_score"`
	TeamOneWickets     int       `db:"team_one_wickets"`
	TeamTwoWickets     int       `db:"team_two_wickets"`
	TeamOneOversPlayed float64   `db:"team_one_overs_played"`
	TeamTwoOversPlayed float64   `db:"team_two_overs_played"`
	WinnerTeamID       int64     `db:"winner_team_id"`
	LoserTeamID        int64     `db:"loser_team_id"`
	Status             string    `db:"status"`
	CreatedAt          time.Time `db:"created_at"`
}

type matchResultInsertModel struct {
	MatchNumber        int     `db:"match_number"`
	TournamentID       int64   `db:"tournament_id"`
	TeamOneID          int64   `db:"team_one_id"`
	TeamTwoID          int64   `db:"team_two_id"`
	TeamOneScore       int     `db:"team_one_score"`
	TeamTwoScore       int     `db:"team_two_score"`
	TeamOneWickets     int     `db:"team_one_wickets"`
	TeamTwoWickets     int     `db:"team_two_wickets"`
	TeamOneOversPlayed float64 `db:"team_one_overs_played"`
	TeamTwoOversPlayed float64 `db:"team_two_overs_played"`
	WinnerTeamID       int64   `db:"winner_team_id"`
	LoserTeamID        int64   `db:"loser_team_id"`
	Status             string  `db:"status"`
}

type MatchResultRepository struct {
	db *sqlx.DB
}

func NewMatchResultRepository(db *sqlx.DB) *MatchResultRepository {
	return &MatchResultRepository{db: db}
}

func (r *MatchResultRepository) Save(ctx context.Context, result match.Result) error {
	insertModel := matchResultInsertModel{
		MatchNumber:        result.MatchNumber,
		TournamentID:       result.TournamentID,
		TeamOneID:          result.TeamOneID,
		TeamTwoID:          result.TeamTwoID,
		TeamOneScore:       result.TeamOneScore,
		TeamTwoScore:       result.TeamTwoScore,
		TeamOneWickets:     result.TeamOneWickets,
		TeamTwoWickets:     result.TeamTwoWickets,
		TeamOneOversPlayed: result.TeamOneOversPlayed,
		TeamTwoOversPlayed: result.TeamTwoOversPlayed,
		WinnerTeamID:       result.WinnerTeamID,
		LoserTeamID:        result.LoserTeamID,
		Status:             string(result.Status),
	}

	query, args, err := qb.InsertModel("match_result", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert match result query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match result tournament=%d match=%d: %w", result.TournamentID, result.MatchNumber, err)
	}

	return nil
}

func (r *MatchResultRepository) ExistsByTournamentAndNumber(ctx context.Context, tournamentID int64, matchNumber int) (bool, error) {
	query, args, err := qb.Select("1").From("match_result").
		Where(
			qb.Eq("tournament_id", tournamentID),
			qb.Eq("match_number", matchNumber),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build match result exists query: %w", err)
	}

	var one int
	if err := r.db.GetContext(ctx, &one, query, args...); err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("check match result exists: %w", err)
	}

	return true, nil
}

func (r *MatchResultRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]match.Result, error) {
	query, args, err := qb.Select("*").From("match_result").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("match_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match results query: %w", err)
	}

	var rows []matchResultTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match results: %w", err)
	}

	out := make([]match.Result, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Result{
			MatchNumber:        row.MatchNumber,
			TournamentID:       row.TournamentID,
			TeamOneID:          row.TeamOneID,
			TeamTwoID:          row.TeamTwoID,
			TeamOneScore:       row.TeamOneScore,
			TeamTwoScore:       row.TeamTwoScore,
			TeamOneWickets:     row.TeamOneWickets,
			TeamTwoWickets:     row.TeamTwoWickets,
			TeamOneOversPlayed: row.TeamOneOversPlayed,
			TeamTwoOversPlayed: row.TeamTwoOversPlayed,
			WinnerTeamID:       row.WinnerTeamID,
			LoserTeamID:        row.LoserTeamID,
			Status:             match.Status(row.Status),
		})
	}

	return out, nil
}
