package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"vibetracker-backend/internal/database/models"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/htmlsanitize"
	"vibetracker-backend/internal/logger"
	"vibetracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	minMembers          = 1
	maxMembers          = 15
	maxMemberNameLength = 60
)

// TeamService handles business logic for teams
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
	maxTeams  int
}

// NewTeamService creates a new team service limited to maxTeams teams per session
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate, maxTeams int) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
		maxTeams:  maxTeams,
	}
}

// TeamRequest represents the request to create or update a team
type TeamRequest struct {
	TeamName      string               `json:"teamName" validate:"required,max=60"`
	ProjectName   string               `json:"projectName" validate:"required,max=80"`
	MembersText   string               `json:"membersText" validate:"required"`
	RepoURL       string               `json:"repoUrl" validate:"omitempty,url,max=500"`
	DemoURL       string               `json:"demoUrl" validate:"omitempty,url,max=500"`
	Description   string               `json:"description" validate:"max=2000"`
	ProjectStatus models.ProjectStatus `json:"projectStatus"`
	ScoringStatus models.ScoringStatus `json:"scoringStatus"`
}

// TeamStatusRequest represents a status-only update
type TeamStatusRequest struct {
	ProjectStatus *models.ProjectStatus `json:"projectStatus"`
	ScoringStatus *models.ScoringStatus `json:"scoringStatus"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID            uuid.UUID            `json:"id"`
	TeamName      string               `json:"teamName"`
	ProjectName   string               `json:"projectName"`
	MembersText   string               `json:"membersText"`
	Members       []string             `json:"members"`
	MemberCount   int                  `json:"memberCount"`
	RepoURL       string               `json:"repoUrl"`
	DemoURL       string               `json:"demoUrl"`
	Description   string               `json:"description"`
	ProjectStatus models.ProjectStatus `json:"projectStatus"`
	ScoringStatus models.ScoringStatus `json:"scoringStatus"`
	CreatedAt     string               `json:"createdAt"`
	UpdatedAt     string               `json:"updatedAt"`
}

// ParseMembers splits newline-separated member text into trimmed, non-blank names
func ParseMembers(text string) []string {
	members := []string{}
	for _, line := range strings.Split(text, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			members = append(members, name)
		}
	}
	return members
}

// List returns all teams of a session ordered by name
func (s *TeamService) List(ctx context.Context, sessionKey string) ([]TeamResponse, error) {
	teams, err := s.repo.ListBySession(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

// GetByID returns a single team of the session
func (s *TeamService) GetByID(ctx context.Context, sessionKey string, id uuid.UUID) (*TeamResponse, error) {
	team, err := s.get(ctx, sessionKey, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(team), nil
}

// Create creates a new team after validating the request and the session's team limit
func (s *TeamService) Create(ctx context.Context, sessionKey string, req *TeamRequest) (*TeamResponse, error) {
	normalizeTeamRequest(req)
	msgs, err := s.validate(ctx, sessionKey, req, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}

	count, err := s.repo.CountBySession(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	if count >= int64(s.maxTeams) {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Maximum %d teams allowed", s.maxTeams))
	}

	team := &models.Team{
		SessionKey:    sessionKey,
		TeamName:      req.TeamName,
		ProjectName:   req.ProjectName,
		MembersText:   req.MembersText,
		RepoURL:       req.RepoURL,
		DemoURL:       req.DemoURL,
		Description:   req.Description,
		ProjectStatus: req.ProjectStatus,
		ScoringStatus: req.ScoringStatus,
	}
	if team.ProjectStatus == "" {
		team.ProjectStatus = models.ProjectStatusPlanning
	}
	if team.ScoringStatus == "" {
		team.ScoringStatus = models.ScoringStatusInProgress
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	logger.WithContext(ctx).WithField("team", team.TeamName).Info("Created team")
	return s.toResponse(team), nil
}

// Update replaces the editable fields of a team. Empty statuses keep their current values.
func (s *TeamService) Update(ctx context.Context, sessionKey string, id uuid.UUID, req *TeamRequest) (*TeamResponse, error) {
	team, err := s.get(ctx, sessionKey, id)
	if err != nil {
		return nil, err
	}

	normalizeTeamRequest(req)
	msgs, err := s.validate(ctx, sessionKey, req, id)
	if err != nil {
		return nil, err
	}
	if len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}

	team.TeamName = req.TeamName
	team.ProjectName = req.ProjectName
	team.MembersText = req.MembersText
	team.RepoURL = req.RepoURL
	team.DemoURL = req.DemoURL
	team.Description = req.Description
	if req.ProjectStatus != "" {
		team.ProjectStatus = req.ProjectStatus
	}
	if req.ScoringStatus != "" {
		team.ScoringStatus = req.ScoringStatus
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return s.toResponse(team), nil
}

// UpdateStatus changes the project and/or scoring status of a team
func (s *TeamService) UpdateStatus(ctx context.Context, sessionKey string, id uuid.UUID, req *TeamStatusRequest) (*TeamResponse, error) {
	var msgs []string
	if req.ProjectStatus != nil && !req.ProjectStatus.IsValid() {
		msgs = append(msgs, "projectStatus must be one of: Planning, Design, Coding, Testing, Deployed")
	}
	if req.ScoringStatus != nil && !req.ScoringStatus.IsValid() {
		msgs = append(msgs, "scoringStatus must be one of: In Progress, Complete")
	}
	if len(msgs) > 0 {
		return nil, apperrors.NewValidationError(msgs...)
	}

	team, err := s.get(ctx, sessionKey, id)
	if err != nil {
		return nil, err
	}
	if req.ProjectStatus != nil {
		team.ProjectStatus = *req.ProjectStatus
	}
	if req.ScoringStatus != nil {
		team.ScoringStatus = *req.ScoringStatus
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team status: %w", err)
	}
	return s.toResponse(team), nil
}

// Delete removes a team together with its score
func (s *TeamService) Delete(ctx context.Context, sessionKey string, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, sessionKey, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	logger.WithContext(ctx).WithField("team_id", id).Info("Deleted team")
	return nil
}

func (s *TeamService) get(ctx context.Context, sessionKey string, id uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(ctx, sessionKey, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// validate collects every field violation. selfID is excluded from the uniqueness check.
func (s *TeamService) validate(ctx context.Context, sessionKey string, req *TeamRequest, selfID uuid.UUID) ([]string, error) {
	msgs := validationMessages(s.validator.Struct(req))

	if req.MembersText != "" {
		members := ParseMembers(req.MembersText)
		if len(members) < minMembers || len(members) > maxMembers {
			msgs = append(msgs, "Must have 1–15 members")
		}
		for _, m := range members {
			if runeLen(m) > maxMemberNameLength {
				msgs = append(msgs, "Each member name max 60 characters")
				break
			}
		}
	}
	if req.ProjectStatus != "" && !req.ProjectStatus.IsValid() {
		msgs = append(msgs, "projectStatus must be one of: Planning, Design, Coding, Testing, Deployed")
	}
	if req.ScoringStatus != "" && !req.ScoringStatus.IsValid() {
		msgs = append(msgs, "scoringStatus must be one of: In Progress, Complete")
	}

	if req.TeamName != "" {
		existing, err := s.repo.GetByName(ctx, sessionKey, req.TeamName)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing team by name: %w", err)
		}
		if existing != nil && existing.ID != selfID {
			msgs = append(msgs, "teamName must be unique")
		}
	}
	return msgs, nil
}

func normalizeTeamRequest(req *TeamRequest) {
	req.TeamName = htmlsanitize.PlainText(req.TeamName)
	req.ProjectName = htmlsanitize.PlainText(req.ProjectName)
	req.MembersText = strings.TrimSpace(req.MembersText)
	req.RepoURL = strings.TrimSpace(req.RepoURL)
	req.DemoURL = strings.TrimSpace(req.DemoURL)
	req.Description = htmlsanitize.Sanitize(req.Description)
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	members := ParseMembers(team.MembersText)
	return &TeamResponse{
		ID:            team.ID,
		TeamName:      team.TeamName,
		ProjectName:   team.ProjectName,
		MembersText:   team.MembersText,
		Members:       members,
		MemberCount:   len(members),
		RepoURL:       team.RepoURL,
		DemoURL:       team.DemoURL,
		Description:   team.Description,
		ProjectStatus: team.ProjectStatus,
		ScoringStatus: team.ScoringStatus,
		CreatedAt:     team.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:     team.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
