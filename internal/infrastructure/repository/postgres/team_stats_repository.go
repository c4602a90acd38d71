package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/raju4789/tourna-mate/internal/domain/teamstats"
	qb "github.com/raju4789/tourna-mate/internal/platform/querybuilder"
)

type teamStatsTableModel struct {
	ID                int64     `db:"id"`
	TeamID            int64     `db:"team_id"`
	TournamentID      int64     `db:"tournament_id"`
	TotalRunsScored   int       `db:"total_runs_scored"`
	TotalOversPlayed  float64   `db:"total_overs_played"`
	TotalRunsConceded int       `db:"total_runs_conceded"`
	TotalOversBowled  float64   `db:"total_overs_bowled"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

type teamStatsInsertModel struct {
	TeamID            int64   `db:"team_id"`
	TournamentID      int64   `db:"tournament_id"`
	TotalRunsScored   int     `db:"total_runs_scored"`
	TotalOversPlayed  float64 `db:"total_overs_played"`
	TotalRunsConceded int     `db:"total_runs_conceded"`
	TotalOversBowled  float64 `db:"total_overs_bowled"`
}

type TeamStatsRepository struct {
	db *sqlx.DB
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) GetByTeamAndTournament(ctx context.Context, teamID, tournamentID int64) (teamstats.Stats, bool, error) {
	query, args, err := qb.Select("*").From("team_stats").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("tournament_id", tournamentID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return teamstats.Stats{}, false, fmt.Errorf("build select team stats query: %w", err)
	}

	var row teamStatsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return teamstats.Stats{}, false, nil
		}
		return teamstats.Stats{}, false, fmt.Errorf("select team stats: %w", err)
	}

	return toTeamStats(row), true, nil
}

func (r *TeamStatsRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]teamstats.Stats, error) {
	query, args, err := qb.Select("*").From("team_stats").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team stats query: %w", err)
	}

	var rows []teamStatsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team stats: %w", err)
	}

	out := make([]teamstats.Stats, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTeamStats(row))
	}

	return out, nil
}

// SaveAll upserts every row in one transaction so a pairwise update
// lands atomically.
func (r *TeamStatsRepository) SaveAll(ctx context.Context, rows []teamstats.Stats) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save team stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range rows {
		insertModel := teamStatsInsertModel{
			TeamID:            item.TeamID,
			TournamentID:      item.TournamentID,
			TotalRunsScored:   item.TotalRunsScored,
			TotalOversPlayed:  item.TotalOversPlayed,
			TotalRunsConceded: item.TotalRunsConceded,
			TotalOversBowled:  item.TotalOversBowled,
		}
		query, args, err := qb.InsertModel("team_stats", insertModel, `ON CONFLICT (team_id, tournament_id)
DO UPDATE SET
    total_runs_scored = EXCLUDED.total_runs_scored,
    total_overs_played = EXCLUDED.total_overs_played,
    total_runs_conceded = EXCLUDED.total_runs_conceded,
    total_overs_bowled = EXCLUDED.total_overs_bowled,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert team stats query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert team stats team=%d tournament=%d: %w", item.TeamID, item.TournamentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save team stats tx: %w", err)
	}
	return nil
}

func toTeamStats(row teamStatsTableModel) teamstats.Stats {
	return teamstats.Stats{
		TeamID:            row.TeamID,
		TournamentID:      row.TournamentID,
		TotalRunsScored:   row.TotalRunsScored,
		TotalOversPlayed:  row.TotalOversPlayed,
		TotalRunsConceded: row.TotalRunsConceded,
		TotalOversBowled:  row.TotalOversBowled,
	}
}
