package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"vibetracker-backend/internal/config"
	"vibetracker-backend/internal/database"
	"vibetracker-backend/internal/database/models"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/repository"
	"vibetracker-backend/internal/service"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// EventData describes one demo event: a session with its settings, teams,
// scores and announcements.
type EventData struct {
	SessionKey    string             `yaml:"session_key"`
	Settings      SettingsData       `yaml:"settings"`
	Teams         []TeamData         `yaml:"teams"`
	Announcements []AnnouncementData `yaml:"announcements"`
}

type SettingsData struct {
	EventName        *string `yaml:"event_name"`
	EventIcon        *string `yaml:"event_icon"`
	Tagline          *string `yaml:"tagline"`
	CountdownTarget  *string `yaml:"countdown_target"`
	ScoringLocked    *bool   `yaml:"scoring_locked"`
	ShowPartial      *bool   `yaml:"show_partial"`
	TVRefreshSeconds *int    `yaml:"tv_refresh_seconds"`
}

type TeamData struct {
	TeamName      string                 `yaml:"team_name"`
	ProjectName   string                 `yaml:"project_name"`
	Members       []string               `yaml:"members"`
	RepoURL       string                 `yaml:"repo_url,omitempty"`
	DemoURL       string                 `yaml:"demo_url,omitempty"`
	Description   string                 `yaml:"description,omitempty"`
	ProjectStatus string                 `yaml:"project_status,omitempty"`
	ScoringStatus string                 `yaml:"scoring_status,omitempty"`
	Scores        map[string]interface{} `yaml:"scores,omitempty"`
}

type AnnouncementData struct {
	Title     string `yaml:"title"`
	Body      string `yaml:"body"`
	Published bool   `yaml:"published"`
	Pinned    bool   `yaml:"pinned"`
}

type loader struct {
	sessionRepo   repository.SessionRepositoryInterface
	sessions      *service.SessionService
	settings      *service.SettingsService
	teams         *service.TeamService
	scoreboard    *service.ScoreBoardService
	announcements *service.AnnouncementService
}

func main() {
	log.Println("🚀 Loading demo events from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	l := newLoader(db, cfg)
	if err := l.loadDir(context.Background(), "scripts/data"); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	log.Println("✅ Demo data loaded successfully!")
}

func newLoader(db *gorm.DB, cfg *config.Config) *loader {
	sessionRepo := repository.NewSessionRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	validate := service.NewValidator()
	return &loader{
		sessionRepo:   sessionRepo,
		sessions:      service.NewSessionService(sessionRepo),
		settings:      service.NewSettingsService(settingsRepo, validate),
		teams:         service.NewTeamService(teamRepo, validate, cfg.MaxTeamsPerSession),
		scoreboard:    service.NewScoreBoardService(teamRepo, repository.NewScoreRepository(db), settingsRepo, cfg.BoardFetchConcurrency),
		announcements: service.NewAnnouncementService(repository.NewAnnouncementRepository(db), validate, cfg.MaxPinnedAnnouncements),
	}
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func (l *loader) loadDir(ctx context.Context, dataDir string) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		var event EventData
		if err := yaml.Unmarshal(data, &event); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := l.loadEvent(ctx, &event); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		return nil
	})
}

func (l *loader) loadEvent(ctx context.Context, event *EventData) error {
	key, created, err := l.ensureSession(ctx, event.SessionKey)
	if err != nil {
		return err
	}
	if !created {
		log.Printf("📋 Session %s already exists, skipping", key)
		return nil
	}

	teamsCreated := 0
	for _, td := range event.Teams {
		team, err := l.teams.Create(ctx, key, &service.TeamRequest{
			TeamName:      td.TeamName,
			ProjectName:   td.ProjectName,
			MembersText:   strings.Join(td.Members, "\n"),
			RepoURL:       td.RepoURL,
			DemoURL:       td.DemoURL,
			Description:   td.Description,
			ProjectStatus: models.ProjectStatus(td.ProjectStatus),
			ScoringStatus: models.ScoringStatus(td.ScoringStatus),
		})
		if err != nil {
			log.Printf("⚠️  Warning: failed to create team %s: %v", td.TeamName, err)
			continue
		}
		teamsCreated++

		if len(td.Scores) == 0 {
			continue
		}
		req, err := scoreRequest(td.Scores)
		if err != nil {
			return fmt.Errorf("failed to encode scores for %s: %w", td.TeamName, err)
		}
		if _, err := l.scoreboard.SaveScore(ctx, key, team.ID, req); err != nil {
			log.Printf("⚠️  Warning: failed to score team %s: %v", td.TeamName, err)
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamsCreated, len(event.Teams))

	announcementsCreated := 0
	for _, ad := range event.Announcements {
		_, err := l.announcements.Create(ctx, key, &service.CreateAnnouncementRequest{
			Title:     ad.Title,
			Body:      ad.Body,
			Published: ad.Published,
			Pinned:    ad.Pinned,
		})
		if err != nil {
			log.Printf("⚠️  Warning: failed to create announcement %q: %v", ad.Title, err)
			continue
		}
		announcementsCreated++
	}
	log.Printf("📋 Announcements: %d created, %d total", announcementsCreated, len(event.Announcements))

	// Settings last so a locked demo event can still be scored above
	s := event.Settings
	if _, err := l.settings.Update(ctx, key, &service.UpdateSettingsRequest{
		EventName:        s.EventName,
		EventIcon:        s.EventIcon,
		Tagline:          s.Tagline,
		CountdownTarget:  s.CountdownTarget,
		ScoringLocked:    s.ScoringLocked,
		ShowPartial:      s.ShowPartial,
		TVRefreshSeconds: s.TVRefreshSeconds,
	}); err != nil {
		return fmt.Errorf("failed to apply settings: %w", err)
	}

	log.Printf("📋 Session %s ready", key)
	return nil
}

// ensureSession creates the session with a fixed key when one is given, or a
// random key otherwise. created is false when the fixed key already exists.
func (l *loader) ensureSession(ctx context.Context, rawKey string) (string, bool, error) {
	if rawKey == "" {
		session, err := l.sessions.CreateSession(ctx)
		if err != nil {
			return "", false, err
		}
		return session.Key, true, nil
	}

	key, err := service.NormalizeSessionKey(rawKey)
	if err != nil {
		return "", false, err
	}
	if _, err := l.sessions.GetSession(ctx, key); err == nil {
		return key, false, nil
	} else if !errors.Is(err, apperrors.ErrSessionNotFound) {
		return "", false, err
	}

	rubric, err := database.DefaultRubric(key)
	if err != nil {
		return "", false, err
	}
	settings := models.DefaultEventSettings(key)
	if err := l.sessionRepo.CreateWithDefaults(ctx, &models.Session{Key: key}, &settings, rubric); err != nil {
		return "", false, fmt.Errorf("failed to create session %s: %w", key, err)
	}
	return key, true, nil
}

func scoreRequest(values map[string]interface{}) (service.ScoreRequest, error) {
	req := service.ScoreRequest{}
	for field, value := range values {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		req[field] = raw
	}
	return req, nil
}
