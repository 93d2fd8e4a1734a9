package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/repomanager"
)

// SettingsService reads and updates the grading intervals.
type SettingsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewSettingsService(db *sql.DB, m repomanager.RepositoryManager) *SettingsService {
	return &SettingsService{db: db, repomanager: m}
}

func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	return s.repomanager.Settings(s.db).Get(ctx)
}

// Update validates and stores new settings. Invalid settings are rejected
// with a *models.ValidationError.
func (s *SettingsService) Update(ctx context.Context, in models.Settings) (models.Settings, error) {
	if err := in.Validate(); err != nil {
		return models.Settings{}, err
	}
	if err := s.repomanager.Settings(s.db).Save(ctx, in); err != nil {
		return models.Settings{}, err
	}
	return in, nil
}
