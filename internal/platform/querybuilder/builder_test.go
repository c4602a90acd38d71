package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("team_id", "points", "net_run_rate").
		From("points_table").
		Where(Eq("tournament_id", int64(424))).
		OrderBy("points DESC", "net_run_rate DESC").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT team_id, points, net_run_rate FROM points_table WHERE tournament_id = $1 ORDER BY points DESC, net_run_rate DESC LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(424) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_MultiRowWithSuffix(t *testing.T) {
	query, args, err := InsertInto("team_stats").
		Columns("team_id", "tournament_id", "total_runs_scored").
		Values(int64(1), int64(424), 250).
		Values(int64(2), int64(424), 230).
		Suffix("ON CONFLICT (team_id, tournament_id) DO UPDATE SET total_runs_scored = EXCLUDED.total_runs_scored").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO team_stats (team_id, tournament_id, total_runs_scored) VALUES ($1, $2, $3), ($4, $5, $6) " +
		"ON CONFLICT (team_id, tournament_id) DO UPDATE SET total_runs_scored = EXCLUDED.total_runs_scored"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 6 || args[0] != int64(1) || args[5] != 230 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder_RowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("team_stats").
		Columns("team_id", "tournament_id").
		Values(int64(1)).
		ToSQL()
	if err == nil {
		t.Fatal("expected an error for a short value row")
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("points_table").
		Set("points", 6).
		SetExpr("updated_at", "NOW()").
		Where(Eq("team_id", int64(2)), Eq("tournament_id", int64(424))).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE points_table SET points = $1, updated_at = NOW() WHERE team_id = $2 AND tournament_id = $3"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != 6 || args[2] != int64(424) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInCondition_EmptyValues(t *testing.T) {
	query, args, err := Select("id").
		From("match_result").
		Where(In("match_number", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM match_result WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}
