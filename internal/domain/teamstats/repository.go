package teamstats

import "context"

type Repository interface {
	GetByTeamAndTournament(ctx context.Context, teamID, tournamentID int64) (Stats, bool, error)
	ListByTournament(ctx context.Context, tournamentID int64) ([]Stats, error)
	// SaveAll persists the given rows as one atomic write.
	SaveAll(ctx context.Context, rows []Stats) error
}
