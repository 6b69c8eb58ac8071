package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"vibetracker-backend/internal/database/models"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/logger"
	"vibetracker-backend/internal/metrics"
	"vibetracker-backend/internal/repository"
	"vibetracker-backend/internal/scoring"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	tracerName = "vibetracker/scoreboard"

	// DefaultBoardConcurrency bounds concurrent score lookups when none is configured
	DefaultBoardConcurrency = 8

	minCriterionValue = 1
	maxCriterionValue = 10
)

// ScoreBoardService joins teams with their scores, aggregates and ranks them
type ScoreBoardService struct {
	teamRepo     repository.TeamRepositoryInterface
	scoreRepo    repository.ScoreRepositoryInterface
	settingsRepo repository.SettingsRepositoryInterface
	concurrency  int
}

// NewScoreBoardService creates a new scoreboard service. concurrency bounds the
// number of score lookups in flight while building a board.
func NewScoreBoardService(teamRepo repository.TeamRepositoryInterface, scoreRepo repository.ScoreRepositoryInterface, settingsRepo repository.SettingsRepositoryInterface, concurrency int) *ScoreBoardService {
	if concurrency <= 0 {
		concurrency = DefaultBoardConcurrency
	}
	return &ScoreBoardService{
		teamRepo:     teamRepo,
		scoreRepo:    scoreRepo,
		settingsRepo: settingsRepo,
		concurrency:  concurrency,
	}
}

// ScoreRequest holds raw criterion values keyed c1..c10. Values may be absent,
// null, an empty string, an integer or a numeric string.
type ScoreRequest map[string]json.RawMessage

// TeamScoreResponse is a team's display fields joined with its criteria and aggregate
type TeamScoreResponse struct {
	TeamID      uuid.UUID `json:"teamId"`
	TeamName    string    `json:"teamName"`
	ProjectName string    `json:"projectName"`
	Description string    `json:"description"`
	Members     []string  `json:"members"`
	MemberCount int       `json:"memberCount"`
	RepoURL     string    `json:"repoUrl"`
	DemoURL     string    `json:"demoUrl"`
	scoring.Criteria
	scoring.Result
}

// BoardEntry is a ranked leaderboard row
type BoardEntry struct {
	TeamScoreResponse
	Rank int `json:"rank"`
}

// BoardResponse is the full leaderboard of a session with its display flags
type BoardResponse struct {
	ScoringLocked bool         `json:"scoringLocked"`
	ShowPartial   bool         `json:"showPartial"`
	Teams         []BoardEntry `json:"teams"`
}

// GetBoard builds the ranked leaderboard. Score lookups run concurrently and any
// failure fails the whole board.
func (s *ScoreBoardService) GetBoard(ctx context.Context, sessionKey string) (_ *BoardResponse, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "ScoreBoardService.GetBoard")
	span.SetAttributes(attribute.String("session.key", sessionKey))
	start := time.Now()
	defer func() {
		if err != nil {
			metrics.BoardBuildErrorCounter.Inc()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			metrics.BoardBuildDuration.Observe(time.Since(start).Seconds())
		}
		span.End()
	}()

	settings, err := s.loadSettings(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListBySession(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	scores := make([]*models.Score, len(teams))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i := range teams {
		g.Go(func() error {
			score, err := s.scoreRepo.GetByTeamID(gctx, sessionKey, teams[i].ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil
				}
				return fmt.Errorf("failed to get score for team %s: %w", teams[i].ID, err)
			}
			scores[i] = score
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]TeamScoreResponse, len(teams))
	for i := range teams {
		entries[i] = buildTeamScore(&teams[i], scores[i])
	}
	ranked := scoring.Rank(entries, func(e TeamScoreResponse) scoring.Key {
		return scoring.KeyFor(e.TeamName, e.Result)
	})

	board := make([]BoardEntry, len(ranked))
	for i, r := range ranked {
		board[i] = BoardEntry{TeamScoreResponse: r.Item, Rank: r.Rank}
	}

	metrics.BoardTeamsHistogram.Observe(float64(len(board)))
	span.SetAttributes(attribute.Int("board.teams", len(board)))

	return &BoardResponse{
		ScoringLocked: settings.ScoringLocked,
		ShowPartial:   settings.ShowPartial,
		Teams:         board,
	}, nil
}

// GetTeamScore returns one team's score entry without a rank
func (s *ScoreBoardService) GetTeamScore(ctx context.Context, sessionKey string, teamID uuid.UUID) (*TeamScoreResponse, error) {
	team, err := s.getTeam(ctx, sessionKey, teamID)
	if err != nil {
		return nil, err
	}
	score, err := s.getScore(ctx, sessionKey, teamID)
	if err != nil {
		return nil, err
	}
	entry := buildTeamScore(team, score)
	return &entry, nil
}

// SaveScore validates and stores all ten criteria of a team, replacing any
// previous values. Writes are rejected while scoring is locked.
func (s *ScoreBoardService) SaveScore(ctx context.Context, sessionKey string, teamID uuid.UUID, req ScoreRequest) (_ *TeamScoreResponse, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "ScoreBoardService.SaveScore")
	span.SetAttributes(
		attribute.String("session.key", sessionKey),
		attribute.String("team.id", teamID.String()),
	)
	defer func() {
		metrics.ScoreSavesCounter.WithLabelValues(saveOutcome(err)).Inc()
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	settings, err := s.loadSettings(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if settings.ScoringLocked {
		return nil, apperrors.ErrScoringLocked
	}

	team, err := s.getTeam(ctx, sessionKey, teamID)
	if err != nil {
		return nil, err
	}

	criteria, err := ParseCriteria(req)
	if err != nil {
		return nil, err
	}

	existing, err := s.getScore(ctx, sessionKey, teamID)
	if err != nil {
		return nil, err
	}
	score := &models.Score{TeamID: teamID, SessionKey: sessionKey}
	score.SetCriteria(criteria)
	if existing == nil {
		err = s.scoreRepo.Create(ctx, score)
	} else {
		err = s.scoreRepo.Update(ctx, score)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save score: %w", err)
	}

	entry := buildTeamScore(team, score)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team":   team.TeamName,
		"total":  entry.Total,
		"status": entry.Status,
	}).Info("Saved score")
	return &entry, nil
}

// ParseCriteria validates raw criterion values and reports every invalid field
func ParseCriteria(req ScoreRequest) (scoring.Criteria, error) {
	var values [scoring.CriteriaCount]*int
	var msgs []string
	for i := range values {
		key := fmt.Sprintf("c%d", i+1)
		v, ok := parseCriterion(req[key])
		if !ok {
			msgs = append(msgs, fmt.Sprintf("%s must be integer 1–10 or null", key))
			continue
		}
		values[i] = v
	}
	if len(msgs) > 0 {
		return scoring.Criteria{}, apperrors.NewValidationError(msgs...)
	}
	return scoring.CriteriaFromValues(values), nil
}

// parseCriterion accepts absent, null, "" (all meaning no value), a JSON number
// or a string holding one. The number must be whole and within the criterion
// range, so 7, "7", 7.0 and 1e1 are accepted while 7.5 and "7abc" are not.
func parseCriterion(raw json.RawMessage) (*int, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, true
	}

	var num json.Number
	if trimmed[0] == '"' {
		var text string
		if err := json.Unmarshal(trimmed, &text); err != nil {
			return nil, false
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil, true
		}
		trimmed = []byte(text)
	}
	if err := json.Unmarshal(trimmed, &num); err != nil {
		return nil, false
	}

	f, err := num.Float64()
	if err != nil || f != math.Trunc(f) || f < minCriterionValue || f > maxCriterionValue {
		return nil, false
	}
	n := int(f)
	return &n, true
}

func (s *ScoreBoardService) loadSettings(ctx context.Context, sessionKey string) (*models.EventSettings, error) {
	settings, err := s.settingsRepo.GetBySession(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			defaults := models.DefaultEventSettings(sessionKey)
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (s *ScoreBoardService) getTeam(ctx context.Context, sessionKey string, teamID uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, sessionKey, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// getScore returns nil without error when the team has not been scored yet
func (s *ScoreBoardService) getScore(ctx context.Context, sessionKey string, teamID uuid.UUID) (*models.Score, error) {
	score, err := s.scoreRepo.GetByTeamID(ctx, sessionKey, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}
	return score, nil
}

func buildTeamScore(team *models.Team, score *models.Score) TeamScoreResponse {
	criteria := score.Criteria()
	members := ParseMembers(team.MembersText)
	return TeamScoreResponse{
		TeamID:      team.ID,
		TeamName:    team.TeamName,
		ProjectName: team.ProjectName,
		Description: team.Description,
		Members:     members,
		MemberCount: len(members),
		RepoURL:     team.RepoURL,
		DemoURL:     team.DemoURL,
		Criteria:    criteria,
		Result:      scoring.Aggregate(criteria),
	}
}

func saveOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSaved
	case apperrors.IsValidation(err):
		return metrics.OutcomeInvalid
	case apperrors.IsLocked(err):
		return metrics.OutcomeLocked
	case apperrors.IsNotFound(err):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}
