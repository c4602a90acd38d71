package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/raju4789/tourna-mate/internal/domain/pointstable"
	"github.com/raju4789/tourna-mate/internal/domain/team"
	"github.com/raju4789/tourna-mate/internal/domain/tournament"
	"github.com/raju4789/tourna-mate/internal/platform/resilience"
)

// TableEntry is one presented standings line. Position is assigned at
// read time from the points-then-net-run-rate ordering, never stored.
type TableEntry struct {
	Position   int
	TeamID     int64
	TeamName   string
	Played     int
	Won        int
	Lost       int
	Tied       int
	NoResult   int
	Points     int
	NetRunRate float64
}

type PointsTableService struct {
	tournamentRepo tournament.Repository
	teamRepo       team.Repository
	pointsRepo     pointstable.Repository
	flight         resilience.SingleFlight
}

func NewPointsTableService(
	tournamentRepo tournament.Repository,
	teamRepo team.Repository,
	pointsRepo pointstable.Repository,
) *PointsTableService {
	return &PointsTableService{
		tournamentRepo: tournamentRepo,
		teamRepo:       teamRepo,
		pointsRepo:     pointsRepo,
	}
}

// GetByTournament returns the tournament standings ordered by points
// descending, then net run rate descending. Concurrent reads for the
// same tournament are collapsed into one repository round trip.
func (s *PointsTableService) GetByTournament(ctx context.Context, tournamentID int64) ([]TableEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsTableService.GetByTournament")
	defer span.End()

	if tournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	value, err, _ := s.flight.Do("points-table:"+strconv.FormatInt(tournamentID, 10), func() (any, error) {
		return s.loadTable(ctx, tournamentID)
	})
	if err != nil {
		return nil, err
	}

	entries, ok := value.([]TableEntry)
	if !ok {
		return nil, fmt.Errorf("unexpected points table result type %T", value)
	}

	return entries, nil
}

func (s *PointsTableService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsTableService.ListTournaments")
	defer span.End()

	items, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}

	return items, nil
}

func (s *PointsTableService) loadTable(ctx context.Context, tournamentID int64) ([]TableEntry, error) {
	_, found, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("get tournament: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: tournament=%d", ErrNotFound, tournamentID)
	}

	rows, err := s.pointsRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list points table: %w", err)
	}

	teams, err := s.teamRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	nameByID := make(map[int64]string, len(teams))
	for _, t := range teams {
		nameByID[t.ID] = t.Name
	}

	sorted := make([]pointstable.Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Points != sorted[j].Points {
			return sorted[i].Points > sorted[j].Points
		}
		return sorted[i].NetRunRate > sorted[j].NetRunRate
	})

	entries := make([]TableEntry, 0, len(sorted))
	for i, row := range sorted {
		entries = append(entries, TableEntry{
			Position:   i + 1,
			TeamID:     row.TeamID,
			TeamName:   nameByID[row.TeamID],
			Played:     row.Played,
			Won:        row.Won,
			Lost:       row.Lost,
			Tied:       row.Tied,
			NoResult:   row.NoResult,
			Points:     row.Points,
			NetRunRate: row.NetRunRate,
		})
	}

	return entries, nil
}
