package team

import "context"

type Repository interface {
	GetByID(ctx context.Context, teamID int64) (Team, bool, error)
	ListByTournament(ctx context.Context, tournamentID int64) ([]Team, error)
}
