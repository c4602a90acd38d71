package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/raju4789/tourna-mate/internal/domain/tournament"
	qb "github.com/raju4789/tourna-mate/internal/platform/querybuilder"
)

type tournamentTableModel struct {
	ID                   int64     `db:"id"`
	Name                 string    `db:"tournament_name"`
	Description          string    `db:"tournament_description"`
	Year                 int       `db:"tournament_year"`
	MaximumOversPerMatch int       `db:"maximum_overs_per_match"`
	CreatedAt            time.Time `db:"created_at"`
	UpdatedAt            time.Time `db:"updated_at"`
}

type TournamentRepository struct {
	db *sqlx.DB
}

func NewTournamentRepository(db *sqlx.DB) *TournamentRepository {
	return &TournamentRepository{db: db}
}

func (r *TournamentRepository) GetByID(ctx context.Context, tournamentID int64) (tournament.Tournament, bool, error) {
	query, args, err := qb.Select("*").From("tournament").
		Where(qb.Eq("id", tournamentID)).
		Limit(1).
		ToSQL()
	if err != nil {
		return tournament.Tournament{}, false, fmt.Errorf("build select tournament query: %w", err)
	}

	var row tournamentTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return tournament.Tournament{}, false, nil
		}
		return tournament.Tournament{}, false, fmt.Errorf("select tournament: %w", err)
	}

	return toTournament(row), true, nil
}

func (r *TournamentRepository) List(ctx context.Context) ([]tournament.Tournament, error) {
	query, args, err := qb.Select("*").From("tournament").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list tournaments query: %w", err)
	}

	var rows []tournamentTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	out := make([]tournament.Tournament, 0, len(rows))
	for _, row := range rows {
		out = append(out, toTournament(row))
	}

	return out, nil
}

func toTournament(row tournamentTableModel) tournament.Tournament {
	return tournament.Tournament{
		ID:                   row.ID,
		Name:                 row.Name,
		Description:          row.Description,
		Year:                 row.Year,
		MaximumOversPerMatch: row.MaximumOversPerMatch,
	}
}
