package tournament

import "context"

type Repository interface {
	GetByID(ctx context.Context, tournamentID int64) (Tournament, bool, error)
	List(ctx context.Context) ([]Tournament, error)
}
