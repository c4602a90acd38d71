package pointstable

import "context"

type Repository interface {
	GetByTeamAndTournament(ctx context.Context, teamID, tournamentID int64) (Row, bool, error)
	ListByTournament(ctx context.Context, tournamentID int64) ([]Row, error)
	// SaveAll persists the given rows as one atomic write.
	SaveAll(ctx context.Context, rows []Row) error
}
