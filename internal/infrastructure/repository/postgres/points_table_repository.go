package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/raju4789/tourna-mate/internal/domain/pointstable"
	qb "github.com/raju4789/tourna-mate/internal/platform/querybuilder"
)

type pointsTableModel struct {
	ID           int64     `db:"id"`
	TeamID       int64     `db:"team_id"`
	TournamentID int64     `db:"tournament_id"`
	Played       int       `db:"played"`
	Won          int       `db:"won"`
	Lost         int       `db:"lost"`
	Tied         int       `db:"tied"`
	NoResult     int       `db:"no_result"`
	Points       int       `db:"points"`
	NetRunRate   float64   `db:"net_run_rate"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type pointsInsertModel struct {
	TeamID       int64   `db:"team_id"`
	TournamentID int64   `db:"tournament_id"`
	Played       int     `db:"played"`
	Won          int     `db:"won"`
	Lost         int     `db:"lost"`
	Tied         int     `db:"tied"`
	NoResult     int     `db:"no_result"`
	Points       int     `db:"points"`
	NetRunRate   float64 `db:"net_run_rate"`
}

type PointsTableRepository struct {
	db *sqlx.DB
}

func NewPointsTableRepository(db *sqlx.DB) *PointsTableRepository {
	return &PointsTableRepository{db: db}
}

func (r *PointsTableRepository) GetByTeamAndTournament(ctx context.Context, teamID, tournamentID int64) (pointstable.Row, bool, error) {
	query, args, err := qb.Select("*").From("points_table").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("tournament_id", tournamentID),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return pointstable.Row{}, false, fmt.Errorf("build select points row query: %w", err)
	}

	var row pointsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return pointstable.Row{}, false, nil
		}
		return pointstable.Row{}, false, fmt.Errorf("select points row: %w", err)
	}

	return toPointsRow(row), true, nil
}

func (r *PointsTableRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]pointstable.Row, error) {
	query, args, err := qb.Select("*").From("points_table").
		Where(qb.Eq("tournament_id", tournamentID)).
		OrderBy("team_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list points table query: %w", err)
	}

	var rows []pointsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list points table: %w", err)
	}

	out := make([]pointstable.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, toPointsRow(row))
	}

	return out, nil
}

// SaveAll upserts every row in one transaction so a pairwise update
// lands atomically.
func (r *PointsTableRepository) SaveAll(ctx context.Context, rows []pointstable.Row) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save points table: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range rows {
		insertModel := pointsInsertModel{
			TeamID:       item.TeamID,
			TournamentID: item.TournamentID,
			Played:       item.Played,
			Won:          item.Won,
			Lost:         item.Lost,
			Tied:         item.Tied,
			NoResult:     item.NoResult,
			Points:       item.Points,
			NetRunRate:   item.NetRunRate,
		}
		query, args, err := qb.InsertModel("points_table", insertModel, `ON CONFLICT (team_id, tournament_id)
DO UPDATE SET
    played = EXCLUDED.played,
    won = EXCLUDED.won,
    lost = EXCLUDED.lost,
    tied = EXCLUDED.tied,
    no_result = EXCLUDED.no_result,
    points = EXCLUDED.points,
    net_run_rate = EXCLUDED.net_run_rate,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert points row query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert points row team=%d tournament=%d: %w", item.TeamID, item.TournamentID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save points table tx: %w", err)
	}
	return nil
}

func toPointsRow(row pointsTableModel) pointstable.Row {
	return pointstable.Row{
		TeamID:       row.TeamID,
		TournamentID: row.TournamentID,
		Played:       row.Played,
		Won:          row.Won,
		Lost:         row.Lost,
		Tied:         row.Tied,
		NoResult:     row.NoResult,
		Points:       row.Points,
		NetRunRate:   row.NetRunRate,
	}
}
