package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/dbx"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/server/repositories/repomanager"
)

// CategoryService manages the category list. Mutations return the full list
// after the change.
type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager) *CategoryService {
	return &CategoryService{db: db, repomanager: m}
}

func (s *CategoryService) List(ctx context.Context) ([]string, error) {
	return s.repomanager.Categories(s.db).List(ctx)
}

// Add appends a new category. Names are trimmed and compared
// case-insensitively.
func (s *CategoryService) Add(ctx context.Context, name string) ([]string, error) {
	name, err := models.ValidateCategoryName(name)
	if err != nil {
		return nil, err
	}

	repo := s.repomanager.Categories(s.db)
	if err := repo.Add(ctx, name); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		return nil, err
	}
	return repo.List(ctx)
}

// Rename changes a category name and moves its items along, in one
// transaction. Changing only the letter case of a name is allowed.
func (s *CategoryService) Rename(ctx context.Context, oldName, newName string) ([]string, error) {
	newName, err := models.ValidateCategoryName(newName)
	if err != nil {
		return nil, err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		cats := s.repomanager.Categories(tx)

		stored, err := cats.Find(ctx, strings.TrimSpace(oldName))
		if err != nil {
			return fmt.Errorf("category %q: %w", oldName, err)
		}
		if !strings.EqualFold(stored, newName) {
			if _, err := cats.Find(ctx, newName); err == nil {
				return fmt.Errorf("category %q: %w", newName, common.ErrAlreadyExists)
			} else if !errors.Is(err, common.ErrorNotFound) {
				return err
			}
		}

		if err := cats.Rename(ctx, stored, newName); err != nil {
			return err
		}
		_, err = s.repomanager.Items(tx).RenameCategory(ctx, stored, newName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}

// Delete removes a category that no item uses.
func (s *CategoryService) Delete(ctx context.Context, name string) ([]string, error) {
	cats := s.repomanager.Categories(s.db)

	stored, err := cats.Find(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", name, err)
	}

	n, err := s.repomanager.Items(s.db).CountByCategory(ctx, stored)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, fmt.Errorf("category %q has %d items: %w", stored, n, common.ErrCategoryInUse)
	}

	if err := cats.Delete(ctx, stored); err != nil {
		return nil, err
	}
	return cats.List(ctx)
}
