package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/raju4789/tourna-mate/internal/domain/match"
	"github.com/raju4789/tourna-mate/internal/platform/logging"
	"github.com/raju4789/tourna-mate/internal/usecase"
)

type Handler struct {
	matchResultService *usecase.MatchResultService
	pointsTableService *usecase.PointsTableService
	rebuildService     *usecase.RebuildService
	rebuildMaxWorkers  int
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	matchResultService *usecase.MatchResultService,
	pointsTableService *usecase.PointsTableService,
	rebuildService *usecase.RebuildService,
	rebuildMaxWorkers int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchResultService: matchResultService,
		pointsTableService: pointsTableService,
		rebuildService:     rebuildService,
		rebuildMaxWorkers:  rebuildMaxWorkers,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTournaments")
	defer span.End()

	tournaments, err := h.pointsTableService.ListTournaments(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list tournaments failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]tournamentDTO, 0, len(tournaments))
	for _, t := range tournaments {
		items = append(items, tournamentDTO{
			TournamentID:         t.ID,
			TournamentName:       t.Name,
			Description:          t.Description,
			Year:                 t.Year,
			MaximumOversPerMatch: t.MaximumOversPerMatch,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPointsTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPointsTable")
	defer span.End()

	tournamentID, err := parseTournamentID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.pointsTableService.GetByTournament(ctx, tournamentID)
	if err != nil {
		h.logger.WarnContext(ctx, "get points table failed", "tournament_id", tournamentID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pointsTableEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, pointsTableEntryDTO{
			Position:   entry.Position,
			TeamID:     entry.TeamID,
			TeamName:   entry.TeamName,
			Played:     entry.Played,
			Won:        entry.Won,
			Lost:       entry.Lost,
			Tied:       entry.Tied,
			NoResult:   entry.NoResult,
			Points:     entry.Points,
			NetRunRate: entry.NetRunRate,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, pointsTableDTO{
		TournamentID: tournamentID,
		Entries:      items,
	})
}

func (h *Handler) SubmitMatchResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitMatchResult")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	tournamentID, err := parseTournamentID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req submitMatchResultRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	err = h.matchResultService.SubmitMatchResult(ctx, usecase.SubmitMatchResultInput{
		MatchNumber:        req.MatchNumber,
		TournamentID:       tournamentID,
		TeamOneID:          req.TeamOneID,
		TeamTwoID:          req.TeamTwoID,
		TeamOneScore:       req.TeamOneScore,
		TeamTwoScore:       req.TeamTwoScore,
		TeamOneWickets:     req.TeamOneWickets,
		TeamTwoWickets:     req.TeamTwoWickets,
		TeamOneOversPlayed: req.TeamOneOversPlayed,
		TeamTwoOversPlayed: req.TeamTwoOversPlayed,
		WinnerTeamID:       req.WinnerTeamID,
		LoserTeamID:        req.LoserTeamID,
		Status:             match.Status(req.Status),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit match result failed",
			"user_id", principal.UserID,
			"tournament_id", tournamentID,
			"match_number", req.MatchNumber,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, submitMatchResultResponse{
		TournamentID: tournamentID,
		MatchNumber:  req.MatchNumber,
		Status:       req.Status,
	})
}

func (h *Handler) RunRebuildJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRebuildJob")
	defer span.End()

	result, err := h.rebuildService.RebuildAll(ctx, h.rebuildMaxWorkers)
	if err != nil {
		h.logger.ErrorContext(ctx, "rebuild job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parseTournamentID(r *http.Request) (int64, error) {
	raw := r.PathValue("tournamentID")
	tournamentID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || tournamentID <= 0 {
		return 0, fmt.Errorf("%w: invalid tournament id %q", usecase.ErrInvalidInput, raw)
	}
	return tournamentID, nil
}
