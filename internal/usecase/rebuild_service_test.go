package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raju4789/tourna-mate/internal/domain/match"
	"github.com/raju4789/tourna-mate/internal/domain/tournament"
)

func TestRebuildService_RebuildTournament_MatchesIncrementalPipeline(t *testing.T) {
	t.Parallel()

	inputs := []SubmitMatchResultInput{
		completedInput(1),
		tiedInput(2),
		{
			MatchNumber:  3,
			TournamentID: testTournamentID,
			TeamOneID:    teamAID,
			TeamTwoID:    teamBID,
			Status:       match.StatusNoResult,
		},
		{
			MatchNumber:        4,
			TournamentID:       testTournamentID,
			TeamOneID:          teamAID,
			TeamTwoID:          teamBID,
			TeamOneScore:       120,
			TeamTwoScore:       121,
			TeamOneWickets:     10,
			TeamTwoWickets:     3,
			TeamOneOversPlayed: 17.2,
			TeamTwoOversPlayed: 15.0,
			WinnerTeamID:       teamBID,
			LoserTeamID:        teamAID,
			Status:             match.StatusCompleted,
		},
	}

	// Feed the matches through the live pipeline first, then corrupt the
	// aggregates and check the replay restores them exactly.
	fixture := newPipelineFixture(t)
	submit := fixture.newService()
	for _, in := range inputs {
		require.NoError(t, submit.SubmitMatchResult(context.Background(), in))
	}

	wantStats := make(map[string]any, len(fixture.stats.rows))
	for k, v := range fixture.stats.rows {
		wantStats[k] = v
	}
	wantPoints := make(map[string]any, len(fixture.points.rows))
	for k, v := range fixture.points.rows {
		wantPoints[k] = v
	}

	for k, v := range fixture.stats.rows {
		v.TotalRunsScored += 500
		fixture.stats.rows[k] = v
	}
	for k, v := range fixture.points.rows {
		v.Points += 10
		fixture.points.rows[k] = v
	}

	rebuild := NewRebuildService(fixture.tournaments, fixture.stats, fixture.points, fixture.matches, nil)

	replayed, err := rebuild.RebuildTournament(context.Background(), testTournamentID)
	require.NoError(t, err)
	assert.Equal(t, len(inputs), replayed)

	for k, want := range wantStats {
		assert.Equal(t, want, fixture.stats.rows[k], "stats row %s", k)
	}
	for k, want := range wantPoints {
		assert.Equal(t, want, fixture.points.rows[k], "points row %s", k)
	}
}

func TestRebuildService_RebuildAll(t *testing.T) {
	t.Parallel()

	fixtureOne := newPipelineFixture(t)
	require.NoError(t, fixtureOne.newService().SubmitMatchResult(context.Background(), completedInput(1)))

	secondID := testTournamentID + 1
	fixtureOne.tournaments.byID[secondID] = tournament.Tournament{
		ID: secondID, Name: "T20 Blast", Year: 2026, MaximumOversPerMatch: 20,
	}

	rebuild := NewRebuildService(fixtureOne.tournaments, fixtureOne.stats, fixtureOne.points, fixtureOne.matches, nil)

	out, err := rebuild.RebuildAll(context.Background(), 2)
	require.NoError(t, err)

	assert.Equal(t, 2, out.TournamentCount)
	assert.Equal(t, 2, out.SuccessCount)
	assert.Equal(t, 0, out.FailedCount)
	require.Len(t, out.Tournaments, 2)
	assert.Equal(t, testTournamentID, out.Tournaments[0].TournamentID)
	assert.Equal(t, 1, out.Tournaments[0].Matches)
	assert.Equal(t, secondID, out.Tournaments[1].TournamentID)
	assert.Equal(t, 0, out.Tournaments[1].Matches)
}

func TestRebuildService_RebuildAll_ReportsPerTournamentFailure(t *testing.T) {
	t.Parallel()

	fixture := newPipelineFixture(t)
	require.NoError(t, fixture.newService().SubmitMatchResult(context.Background(), completedInput(1)))

	// A match referencing a team with no stats row makes that replay fail
	// without touching the other tournament's run.
	fixture.matches.saved = append(fixture.matches.saved, match.Result{
		MatchNumber:  2,
		TournamentID: testTournamentID,
		TeamOneID:    77,
		TeamTwoID:    teamBID,
		Status:       match.StatusNoResult,
	})

	rebuild := NewRebuildService(fixture.tournaments, fixture.stats, fixture.points, fixture.matches, nil)

	out, err := rebuild.RebuildAll(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, out.FailedCount)
	assert.Equal(t, 0, out.SuccessCount)
	require.Len(t, out.Tournaments, 1)
	assert.Equal(t, rebuildStatusFailed, out.Tournaments[0].Status)
	assert.Contains(t, out.Tournaments[0].Message, "team=77")
}
