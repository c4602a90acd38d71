package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/raju4789/tourna-mate/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo tournaments, teams and zeroed standings
// rows into an empty database. A database that already holds any
// tournament is left alone.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM tournament`); err != nil {
		return fmt.Errorf("count tournaments for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range memory.SeedTournaments() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO tournament (id, tournament_name, tournament_description, tournament_year, maximum_overs_per_match)
VALUES (:id, :tournament_name, :tournament_description, :tournament_year, :maximum_overs_per_match)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":                      t.ID,
			"tournament_name":         t.Name,
			"tournament_description":  t.Description,
			"tournament_year":         t.Year,
			"maximum_overs_per_match": t.MaximumOversPerMatch,
		})
		if err != nil {
			return fmt.Errorf("bind seed tournament %d query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed tournament %d: %w", t.ID, err)
		}
	}

	for _, item := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO team (id, team_name)
VALUES (:id, :team_name)
ON CONFLICT (id) DO NOTHING`, map[string]any{
			"id":        item.ID,
			"team_name": item.Name,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %d query: %w", item.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %d: %w", item.ID, err)
		}
	}

	for _, st := range memory.SeedTeamStats() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO team_stats (team_id, tournament_id, total_runs_scored, total_overs_played, total_runs_conceded, total_overs_bowled)
VALUES (:team_id, :tournament_id, 0, 0, 0, 0)
ON CONFLICT (team_id, tournament_id) DO NOTHING`, map[string]any{
			"team_id":       st.TeamID,
			"tournament_id": st.TournamentID,
		})
		if err != nil {
			return fmt.Errorf("bind seed team stats query: %w", err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team stats team=%d tournament=%d: %w", st.TeamID, st.TournamentID, err)
		}
	}

	for _, row := range memory.SeedPointsRows() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO points_table (team_id, tournament_id, played, won, lost, tied, no_result, points, net_run_rate)
VALUES (:team_id, :tournament_id, 0, 0, 0, 0, 0, 0, 0)
ON CONFLICT (team_id, tournament_id) DO NOTHING`, map[string]any{
			"team_id":       row.TeamID,
			"tournament_id": row.TournamentID,
		})
		if err != nil {
			return fmt.Errorf("bind seed points row query: %w", err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed points row team=%d tournament=%d: %w", row.TeamID, row.TournamentID, err)
		}
	}

	// Seed rows carry explicit IDs, so bump the sequences past them.
	for _, stmt := range []string{
		`SELECT setval(pg_get_serial_sequence('tournament', 'id'), (SELECT COALESCE(MAX(id), 1) FROM tournament))`,
		`SELECT setval(pg_get_serial_sequence('team', 'id'), (SELECT COALESCE(MAX(id), 1) FROM team))`,
	} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bump seed sequence: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
