package match

import "context"

type Repository interface {
	// Save appends the match record. Records are immutable once written.
	Save(ctx context.Context, result Result) error
	ExistsByTournamentAndNumber(ctx context.Context, tournamentID int64, matchNumber int) (bool, error)
	// ListByTournament returns the tournament's match log ordered by match number.
	ListByTournament(ctx context.Context, tournamentID int64) ([]Result, error)
}
