// Package admin exposes registered models for listing, inspection and
// deletion by staff.
package admin

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/delight/backend/internal/service"
)

// Record is a model the site can manage.
type Record interface {
	fmt.Stringer
	PrimaryKey() uuid.UUID
}

// Entry is one row of a model listing.
type Entry struct {
	ID      uuid.UUID `json:"id"`
	Display string    `json:"display"`
}

// Detail is a single record with its display string.
type Detail struct {
	Entry
	Object interface{} `json:"object"`
}

// ModelInfo describes a registered model on the index page.
type ModelInfo struct {
	Slug        string `json:"slug"`
	VerboseName string `json:"verbose_name"`
}

// Options tune how a registered model is queried.
type Options struct {
	VerboseName string
	// Order is the ORDER BY clause used for listings.
	Order string
	// Preload names relations loaded so display strings can use them.
	Preload []string
}

type modelAdmin interface {
	info() ModelInfo
	list(ctx context.Context) ([]Entry, error)
	get(ctx context.Context, id uuid.UUID) (*Detail, error)
	delete(ctx context.Context, id uuid.UUID) error
}

// Site is a registry of models keyed by their URL slug.
type Site struct {
	db     *gorm.DB
	models map[string]modelAdmin
}

// NewSite creates an empty site backed by db
func NewSite(db *gorm.DB) *Site {
	return &Site{db: db, models: make(map[string]modelAdmin)}
}

// Register adds model T to site under slug. Registering a slug twice panics.
func Register[T Record](site *Site, slug string, opts Options) {
	if _, exists := site.models[slug]; exists {
		panic(fmt.Sprintf("admin: model %q already registered", slug))
	}
	if opts.VerboseName == "" {
		opts.VerboseName = slug
	}
	site.models[slug] = &genericAdmin[T]{db: site.db, slug: slug, opts: opts}
}

// Models lists registered models sorted by slug
func (s *Site) Models() []ModelInfo {
	infos := make([]ModelInfo, 0, len(s.models))
	for _, m := range s.models {
		infos = append(infos, m.info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Slug < infos[j].Slug })
	return infos
}

// List returns every record of the model registered under slug
func (s *Site) List(ctx context.Context, slug string) ([]Entry, error) {
	m, err := s.lookup(slug)
	if err != nil {
		return nil, err
	}
	return m.list(ctx)
}

// Get returns one record of the model registered under slug
func (s *Site) Get(ctx context.Context, slug string, id uuid.UUID) (*Detail, error) {
	m, err := s.lookup(slug)
	if err != nil {
		return nil, err
	}
	return m.get(ctx, id)
}

// Delete removes one record. Dependent rows go with it through the
// foreign key cascades.
func (s *Site) Delete(ctx context.Context, slug string, id uuid.UUID) error {
	m, err := s.lookup(slug)
	if err != nil {
		return err
	}
	return m.delete(ctx, id)
}

func (s *Site) lookup(slug string) (modelAdmin, error) {
	m, ok := s.models[slug]
	if !ok {
		return nil, fmt.Errorf("%w: no model %q", service.ErrNotFound, slug)
	}
	return m, nil
}

type genericAdmin[T Record] struct {
	db   *gorm.DB
	slug string
	opts Options
}

func (a *genericAdmin[T]) info() ModelInfo {
	return ModelInfo{Slug: a.slug, VerboseName: a.opts.VerboseName}
}

func (a *genericAdmin[T]) query(ctx context.Context) *gorm.DB {
	q := a.db.WithContext(ctx)
	for _, rel := range a.opts.Preload {
		q = q.Preload(rel)
	}
	return q
}

func (a *genericAdmin[T]) list(ctx context.Context) ([]Entry, error) {
	q := a.query(ctx)
	if a.opts.Order != "" {
		q = q.Order(a.opts.Order)
	}

	var records []T
	if err := q.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", a.slug, err)
	}

	entries := make([]Entry, len(records))
	for i, r := range records {
		entries[i] = Entry{ID: r.PrimaryKey(), Display: r.String()}
	}
	return entries, nil
}

func (a *genericAdmin[T]) get(ctx context.Context, id uuid.UUID) (*Detail, error) {
	var record T
	if err := a.query(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrNotFound
		}
		return nil, fmt.Errorf("failed to load %s: %w", a.slug, err)
	}
	return &Detail{
		Entry:  Entry{ID: record.PrimaryKey(), Display: record.String()},
		Object: record,
	}, nil
}

func (a *genericAdmin[T]) delete(ctx context.Context, id uuid.UUID) error {
	result := a.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", a.slug, result.Error)
	}
	if result.RowsAffected == 0 {
		return service.ErrNotFound
	}
	return nil
}
