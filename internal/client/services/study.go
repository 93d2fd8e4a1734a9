package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/mnemos/internal/calendar"
	"github.com/dmitrijs2005/mnemos/internal/client/client"
	"github.com/dmitrijs2005/mnemos/internal/common"
	"github.com/dmitrijs2005/mnemos/internal/logging"
	"github.com/dmitrijs2005/mnemos/internal/models"
	"github.com/dmitrijs2005/mnemos/internal/schedule"
)

type StudyService interface {
	// Load fetches items, settings and categories. When the server cannot
	// be reached the cached snapshot is loaded read-only.
	Load(ctx context.Context) error
	Ping(ctx context.Context) error
	Offline() bool
	SyncedAt() time.Time

	Today() calendar.Day
	ViewDate() calendar.Day
	// SetViewDate moves the view and resets items scheduled for the real
	// today. It returns how many resets were persisted.
	SetViewDate(ctx context.Context, day calendar.Day) (int, error)
	Due() []schedule.CategoryGroup
	Stats() schedule.Stats

	Items() []models.Item
	Item(id string) (models.Item, error)
	Create(ctx context.Context, draft models.Item) (models.Item, error)
	Edit(ctx context.Context, id string, changes models.Item) (models.Item, error)
	Review(ctx context.Context, id string, grade models.Grade, customDays int) (models.Item, error)
	Archive(ctx context.Context, id string, confirmed bool) error
	Delete(ctx context.Context, id string) error

	Settings() models.Settings
	UpdateSettings(ctx context.Context, s models.Settings) error

	Categories() []string
	AddCategory(ctx context.Context, name string) error
	RenameCategory(ctx context.Context, oldName, newName string) error
	DeleteCategory(ctx context.Context, name string) error
}

type studyService struct {
	client client.Client
	cache  Cache
	logger logging.Logger
	now    func() time.Time
	loc    *time.Location

	offline atomic.Bool

	mu         sync.Mutex
	items      []models.Item
	settings   models.Settings
	categories []string
	viewDate   calendar.Day
	syncedAt   time.Time
}

func NewStudyService(c client.Client, cache Cache, l logging.Logger, loc *time.Location) StudyService {
	s := &studyService{
		client:   c,
		cache:    cache,
		logger:   l,
		now:      time.Now,
		loc:      loc,
		settings: models.DefaultSettings(),
	}
	s.viewDate = s.Today()
	return s
}

func (s *studyService) Today() calendar.Day {
	return calendar.Today(s.now, s.loc)
}

func (s *studyService) Offline() bool {
	return s.offline.Load()
}

func (s *studyService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *studyService) SyncedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncedAt
}

func (s *studyService) Load(ctx context.Context) error {
	snap, err := s.fetch(ctx)
	if err != nil {
		if !errors.Is(err, client.ErrUnavailable) {
			return err
		}
		return s.loadCached(ctx, err)
	}

	s.mu.Lock()
	s.apply(*snap)
	s.mu.Unlock()
	s.offline.Store(false)

	if err := s.cache.Save(ctx, *snap); err != nil {
		s.logger.Warn(ctx, "cache save failed", "error", err.Error())
	}
	return nil
}

func (s *studyService) fetch(ctx context.Context) (*Snapshot, error) {
	items, err := s.client.GetAllItems(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.client.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := s.client.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{Items: items, Settings: settings, Categories: cats, SyncedAt: s.now()}, nil
}

func (s *studyService) loadCached(ctx context.Context, cause error) error {
	snap, err := s.cache.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", client.ErrLocalDataNotAvailable, err)
	}
	if snap == nil {
		return fmt.Errorf("%w: %w", client.ErrLocalDataNotAvailable, cause)
	}

	s.mu.Lock()
	s.apply(*snap)
	s.mu.Unlock()
	s.offline.Store(true)

	s.logger.Warn(ctx, "server unavailable, using cached data", "synced_at", snap.SyncedAt)
	return nil
}

// apply replaces the collection. Callers hold mu.
func (s *studyService) apply(snap Snapshot) {
	s.items = make([]models.Item, 0, len(snap.Items))
	for _, it := range snap.Items {
		if !it.Archived {
			s.items = append(s.items, it.Clone())
		}
	}
	s.settings = snap.Settings
	s.categories = slices.Clone(snap.Categories)
	s.syncedAt = snap.SyncedAt
}

func (s *studyService) ViewDate() calendar.Day {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewDate
}

func (s *studyService) SetViewDate(ctx context.Context, day calendar.Day) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.viewDate = day
	if s.Offline() {
		return 0, nil
	}

	var errs []error
	reset := 0
	for _, changed := range schedule.ReconcileDueToday(s.items, s.Today()) {
		saved, err := s.client.UpdateItem(ctx, changed.ID, changed)
		if err != nil {
			errs = append(errs, fmt.Errorf("reset %s: %w", changed.ID, err))
			continue
		}
		s.replace(saved)
		reset++
	}
	return reset, errors.Join(errs...)
}

func (s *studyService) Due() []schedule.CategoryGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schedule.GroupByCategory(schedule.SelectDueItems(s.items, s.viewDate), s.Today())
}

func (s *studyService) Stats() schedule.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schedule.Summary(s.items, s.viewDate, s.Today())
}

func (s *studyService) Items() []models.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Item, len(s.items))
	for i, it := range s.items {
		out[i] = it.Clone()
	}
	return out
}

func (s *studyService) Item(id string) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := models.FindItem(s.items, id)
	if k < 0 {
		return models.Item{}, common.ErrorNotFound
	}
	return s.items[k].Clone(), nil
}

// lookup resolves id for a mutation. Callers hold mu.
func (s *studyService) lookup(id string) (models.Item, error) {
	if s.Offline() {
		return models.Item{}, ErrOffline
	}
	k := models.FindItem(s.items, id)
	if k < 0 {
		return models.Item{}, common.ErrorNotFound
	}
	return s.items[k].Clone(), nil
}

// replace swaps in a persisted item, dropping it when archived. Callers
// hold mu.
func (s *studyService) replace(item models.Item) {
	k := models.FindItem(s.items, item.ID)
	switch {
	case item.Archived && k >= 0:
		s.items = slices.Delete(s.items, k, k+1)
	case item.Archived:
	case k >= 0:
		s.items[k] = item.Clone()
	default:
		s.items = append(s.items, item.Clone())
	}
	s.cacheItem(item)
}

func (s *studyService) cacheItem(item models.Item) {
	ctx := context.Background()
	var err error
	if item.Archived {
		err = s.cache.DeleteItem(ctx, item.ID)
	} else {
		err = s.cache.PutItem(ctx, item)
	}
	if err != nil {
		s.logger.Warn(ctx, "cache update failed", "id", item.ID, "error", err.Error())
	}
}

func (s *studyService) Create(ctx context.Context, draft models.Item) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Offline() {
		return models.Item{}, ErrOffline
	}

	created, err := s.client.CreateItem(ctx, draft)
	if err != nil {
		return models.Item{}, err
	}
	s.replace(created)
	s.rememberCategory(created.Category)
	return created.Clone(), nil
}

// Edit changes the content fields of an item. Scheduling fields and the
// review history are kept.
func (s *studyService) Edit(ctx context.Context, id string, changes models.Item) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.lookup(id)
	if err != nil {
		return models.Item{}, err
	}

	next := current.Clone()
	next.Name = changes.Name
	next.Category = changes.Category
	next.Problem = changes.Problem
	next.Answer = changes.Answer
	next.SideNote = changes.SideNote

	saved, err := s.client.UpdateItem(ctx, id, next)
	if err != nil {
		return models.Item{}, err
	}
	s.replace(saved)
	s.rememberCategory(saved.Category)
	return saved.Clone(), nil
}

// Review grades an item as of the real today. On any failure the
// collection keeps the pre-review item.
func (s *studyService) Review(ctx context.Context, id string, grade models.Grade, customDays int) (models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.lookup(id)
	if err != nil {
		return models.Item{}, err
	}

	next, err := schedule.ApplyReview(current, grade, s.settings, s.Today(), customDays)
	if err != nil {
		return models.Item{}, err
	}

	saved, err := s.client.UpdateItem(ctx, id, next)
	if err != nil {
		return models.Item{}, err
	}
	s.replace(saved)
	return saved.Clone(), nil
}

func (s *studyService) Archive(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.lookup(id)
	if err != nil {
		return err
	}

	saved, err := s.client.UpdateItem(ctx, id, schedule.ApplyArchive(current))
	if err != nil {
		return err
	}
	// The server answers with the archived item; drop it either way.
	saved.Archived = true
	s.replace(saved)
	return nil
}

func (s *studyService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(id); err != nil {
		return err
	}
	if err := s.client.DeleteItem(ctx, id); err != nil {
		return err
	}

	k := models.FindItem(s.items, id)
	s.items = slices.Delete(s.items, k, k+1)
	if err := s.cache.DeleteItem(ctx, id); err != nil {
		s.logger.Warn(ctx, "cache update failed", "id", id, "error", err.Error())
	}
	return nil
}

func (s *studyService) Settings() models.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings validates locally before any network call.
func (s *studyService) UpdateSettings(ctx context.Context, in models.Settings) error {
	if err := in.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Offline() {
		return ErrOffline
	}

	saved, err := s.client.UpdateSettings(ctx, in)
	if err != nil {
		return err
	}
	s.settings = saved
	if err := s.cache.SaveSettings(ctx, saved); err != nil {
		s.logger.Warn(ctx, "cache update failed", "error", err.Error())
	}
	return nil
}

func (s *studyService) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.categories)
}

// rememberCategory mirrors the server auto-registering an item's category.
// Callers hold mu.
func (s *studyService) rememberCategory(name string) {
	if name == "" || models.ContainsCategory(s.categories, name) {
		return
	}
	s.setCategories(append(slices.Clone(s.categories), name))
}

// setCategories stores the list and caches it. Callers hold mu.
func (s *studyService) setCategories(cats []string) {
	s.categories = cats
	if err := s.cache.SaveCategories(context.Background(), cats); err != nil {
		s.logger.Warn(context.Background(), "cache update failed", "error", err.Error())
	}
}

func (s *studyService) AddCategory(ctx context.Context, name string) error {
	name, err := models.ValidateCategoryName(name)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Offline() {
		return ErrOffline
	}
	if models.ContainsCategory(s.categories, name) {
		return fmt.Errorf("category %q: %w", name, common.ErrAlreadyExists)
	}

	cats, err := s.client.AddCategory(ctx, name)
	if err != nil {
		return err
	}
	s.setCategories(cats)
	return nil
}

// RenameCategory renames a category; items move along with it, as they do
// on the server.
func (s *studyService) RenameCategory(ctx context.Context, oldName, newName string) error {
	newName, err := models.ValidateCategoryName(newName)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Offline() {
		return ErrOffline
	}

	cats, err := s.client.RenameCategory(ctx, oldName, newName)
	if err != nil {
		return err
	}
	s.setCategories(cats)

	for i := range s.items {
		if strings.EqualFold(s.items[i].Category, oldName) {
			s.items[i].Category = newName
			s.cacheItem(s.items[i])
		}
	}
	return nil
}

// DeleteCategory removes an unused category. The server has the final say;
// the local check only spares a round-trip.
func (s *studyService) DeleteCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Offline() {
		return ErrOffline
	}
	for _, it := range s.items {
		if strings.EqualFold(it.Category, name) {
			return fmt.Errorf("category %q: %w", name, common.ErrCategoryInUse)
		}
	}

	cats, err := s.client.DeleteCategory(ctx, name)
	if err != nil {
		return err
	}
	s.setCategories(cats)
	return nil
}
