package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/raju4789/tourna-mate/internal/domain/user"
	"github.com/raju4789/tourna-mate/internal/infrastructure/repository/memory"
	"github.com/raju4789/tourna-mate/internal/usecase"
)

type staticVerifier struct {
	principal user.Principal
	err       error
}

func (v staticVerifier) VerifyAccessToken(_ context.Context, _ string) (user.Principal, error) {
	return v.principal, v.err
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	tournamentRepo := memory.NewTournamentRepository(memory.SeedTournaments())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams(), memory.SeedTeamEntries())
	statsRepo := memory.NewTeamStatsRepository(memory.SeedTeamStats())
	pointsRepo := memory.NewPointsTableRepository(memory.SeedPointsRows())
	matchRepo := memory.NewMatchResultRepository()

	handler := NewHandler(
		usecase.NewMatchResultService(tournamentRepo, statsRepo, pointsRepo, matchRepo, nil),
		usecase.NewPointsTableService(tournamentRepo, teamRepo, pointsRepo),
		usecase.NewRebuildService(tournamentRepo, statsRepo, pointsRepo, matchRepo, nil),
		2,
		nil,
	)

	verifier := staticVerifier{principal: user.Principal{UserID: "scorer-1", Role: "scorer"}}
	return NewRouter(handler, verifier, nil, []string{"*"}, "job-secret")
}

func TestRouter_SubmitMatchResultAndReadTable(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	payload := `{
		"match_number": 1,
		"team_one_id": 1,
		"team_two_id": 2,
		"team_one_score": 180,
		"team_two_score": 165,
		"team_one_wickets": 5,
		"team_two_wickets": 10,
		"team_one_overs_played": 20.0,
		"team_two_overs_played": 18.3,
		"winner_team_id": 1,
		"loser_team_id": 2,
		"status": "COMPLETED"
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/tournaments/1/match-results", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	tableReq := httptest.NewRequest(http.MethodGet, "/v1/tournaments/1/points-table", nil)
	tableRec := httptest.NewRecorder()
	router.ServeHTTP(tableRec, tableReq)

	if tableRec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d body=%s", tableRec.Code, tableRec.Body.String())
	}

	var envelope struct {
		Data pointsTableDTO `json:"data"`
	}
	if err := sonic.Unmarshal(tableRec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal points table response: %v", err)
	}
	if len(envelope.Data.Entries) != 4 {
		t.Fatalf("expected 4 table entries, got %+v", envelope.Data)
	}

	top := envelope.Data.Entries[0]
	if top.TeamID != 1 || top.Points != 2 || top.Won != 1 || top.Position != 1 {
		t.Fatalf("expected the winner on top with two points, got %+v", top)
	}
}

func TestRouter_SubmitMatchResultRequiresAuth(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/tournaments/1/match-results", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRouter_SubmitMatchResultRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/tournaments/1/match-results", strings.NewReader(`{"match_number":1,"bogus":true}`))
	req.Header.Set("Authorization", "Bearer token-abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRouter_RebuildJobRequiresToken(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/rebuild", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", rec.Code)
	}

	authedReq := httptest.NewRequest(http.MethodPost, "/v1/internal/jobs/rebuild", nil)
	authedReq.Header.Set("X-Internal-Job-Token", "job-secret")
	authedRec := httptest.NewRecorder()
	router.ServeHTTP(authedRec, authedReq)
	if authedRec.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d body=%s", authedRec.Code, authedRec.Body.String())
	}
}

func TestRouter_HealthzIsPublic(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
